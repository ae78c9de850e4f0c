package domain

import (
	"github.com/google/uuid"
)

// EdgeType is the relationship label carried by an edge. Relationship objects
// supply their own labels; the constants below are the labels the builder
// derives from reference fields.
type EdgeType string

const (
	EdgeTypeCreatedBy   EdgeType = "created-by"
	EdgeTypeModifiedBy  EdgeType = "modified-by"
	EdgeTypeAppliesTo   EdgeType = "applies-to"
	EdgeTypeComponentOf EdgeType = "component-of"
)

// EdgeNamespace seeds deterministic edge IDs
var EdgeNamespace = uuid.MustParse("7ab40379-3225-406f-8872-a1c24bc229d2")

// Edge is a directed, labeled connection between two object IDs
type Edge struct {
	ID     string   `json:"id" yaml:"id"`
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Type   EdgeType `json:"relationship_type" yaml:"relationship_type"`
}

// NewEdge creates a new edge
func NewEdge(source, target string, edgeType EdgeType) *Edge {
	edge := &Edge{
		Source: source,
		Target: target,
		Type:   edgeType,
	}
	edge.ID = edge.GenerateID()
	return edge
}

// GenerateID creates a deterministic ID for the edge from its endpoints and label.
// Direction matters: a->b and b->a get different IDs.
func (e *Edge) GenerateID() string {
	key := e.Source + "|" + string(e.Type) + "|" + e.Target
	return uuid.NewSHA1(EdgeNamespace, []byte(key)).String()
}

// Triple projects the edge to (source, label, target)
func (e Edge) Triple() Triple {
	return Triple{Source: e.Source, Label: string(e.Type), Target: e.Target}
}

type edgeKey struct {
	source, target string
	label          EdgeType
}

func (e Edge) key() edgeKey {
	return edgeKey{source: e.Source, target: e.Target, label: e.Type}
}
