package domain

// BuildOptions toggles the optional edge rules
type BuildOptions struct {
	CreatedBy  bool `yaml:"created_by"`
	ModifiedBy bool `yaml:"modified_by"`
	Markings   bool `yaml:"markings"`

	// SkipMalformed records malformed objects on Graph.Skipped instead of
	// aborting the build.
	SkipMalformed bool `yaml:"skip_malformed"`
}

// BuildGraph derives a graph from objects in input order
func BuildGraph(objects []Object, opts BuildOptions) (*Graph, error) {
	g := NewGraph()

	for _, o := range objects {
		if err := addObject(g, o, opts); err != nil {
			if opts.SkipMalformed {
				g.Skipped = append(g.Skipped, err)
				continue
			}
			return nil, err
		}
	}

	return g, nil
}

// addObject applies every rule to one object. Required fields are checked
// before the graph is touched so a skipped object leaves no partial edges.
func addObject(g *Graph, o Object, opts BuildOptions) *MalformedObjectError {
	id, objType := o.ID(), o.Type()
	if id == "" {
		return &MalformedObjectError{Type: objType, Field: FieldID}
	}

	switch objType {
	case TypeRelationship:
		source, err := requireString(o, FieldSourceRef)
		if err != nil {
			return err
		}
		target, err := requireString(o, FieldTargetRef)
		if err != nil {
			return err
		}
		label, err := requireString(o, FieldRelationshipType)
		if err != nil {
			return err
		}
		g.AddEdge(source, target, EdgeType(label))

	case TypeExternalReference:
		// Not a node, and carries no edge of its own

	case TypeDataComponent:
		dataSource, err := requireString(o, FieldDataSourceRef)
		if err != nil {
			return err
		}
		g.AddNode(id, o)
		g.AddEdge(dataSource, id, EdgeTypeComponentOf)

	default:
		g.AddNode(id, o)
	}

	if opts.CreatedBy {
		if ref := o.GetString(FieldCreatedByRef); ref != "" {
			g.AddEdge(id, ref, EdgeTypeCreatedBy)
		}
	}

	if opts.ModifiedBy {
		if ref := o.GetString(FieldModifiedByRef); ref != "" {
			g.AddEdge(id, ref, EdgeTypeModifiedBy)
		}
	}

	if opts.Markings {
		for _, ref := range o.GetStrings(FieldObjectMarkingRefs) {
			g.AddEdge(ref, id, EdgeTypeAppliesTo)
		}
	}

	return nil
}

// requireString fails only when field is absent or not a string; an empty
// relationship_type still makes an edge, which Triples later skips
func requireString(o Object, field string) (string, *MalformedObjectError) {
	if s, ok := o.LookupString(field); ok {
		return s, nil
	}
	return "", &MalformedObjectError{ID: o.ID(), Type: o.Type(), Field: field}
}
