package domain

// Field names read by the conversion rules
const (
	FieldID                 = "id"
	FieldType               = "type"
	FieldName               = "name"
	FieldSourceRef          = "source_ref"
	FieldTargetRef          = "target_ref"
	FieldRelationshipType   = "relationship_type"
	FieldCreatedByRef       = "created_by_ref"
	FieldModifiedByRef      = "x_mitre_modified_by_ref"
	FieldObjectMarkingRefs  = "object_marking_refs"
	FieldDataSourceRef      = "x_mitre_data_source_ref"
	FieldAliases            = "x_mitre_aliases"
	FieldExternalReferences = "external_references"
	FieldRevoked            = "revoked"
	FieldDeprecated         = "x_mitre_deprecated"
	FieldCapecStatus        = "x_capec_status"
)

// Object types with dedicated rules
const (
	TypeRelationship      = "relationship"
	TypeExternalReference = "external_reference"
	TypeDataComponent     = "x-mitre-data-component"
	TypeMarkingDefinition = "marking-definition"
)

// Object is a STIX object decoded from JSON
type Object map[string]any

// ExternalReference is one entry of an object's external_references list
type ExternalReference struct {
	SourceName string
	ExternalID string
	URL        string
}

// ID returns the object's identifier, or "" when absent
func (o Object) ID() string {
	return o.GetString(FieldID)
}

// Type returns the object's type tag, or "" when absent
func (o Object) Type() string {
	return o.GetString(FieldType)
}

// Get gets a field value
func (o Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	val, ok := o[key]
	return val, ok
}

// LookupString gets a field as a string; ok is false for absent or non-string fields
func (o Object) LookupString(key string) (string, bool) {
	val, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// GetString gets a field as a string
func (o Object) GetString(key string) string {
	s, _ := o.LookupString(key)
	return s
}

// IsTrue reports whether a field holds exactly the boolean true
func (o Object) IsTrue(key string) bool {
	val, ok := o.Get(key)
	if !ok {
		return false
	}
	b, ok := val.(bool)
	return ok && b
}

// GetStrings gets a list field, keeping only its string entries
func (o Object) GetStrings(key string) []string {
	val, ok := o.Get(key)
	if !ok {
		return nil
	}

	switch list := val.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ExternalReferences returns the well-formed entries of external_references
func (o Object) ExternalReferences() []ExternalReference {
	val, ok := o.Get(FieldExternalReferences)
	if !ok {
		return nil
	}
	list, ok := val.([]any)
	if !ok {
		return nil
	}

	refs := make([]ExternalReference, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ref := Object(m)
		refs = append(refs, ExternalReference{
			SourceName: ref.GetString("source_name"),
			ExternalID: ref.GetString("external_id"),
			URL:        ref.GetString("url"),
		})
	}
	return refs
}
