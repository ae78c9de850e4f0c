package codec

import (
	"fmt"

	"stixgraph/internal/domain"
)

// GraphDocument is the node-link form of a graph shared by the JSON and
// YAML codecs
type GraphDocument struct {
	Directed   bool           `json:"directed" yaml:"directed"`
	Multigraph bool           `json:"multigraph" yaml:"multigraph"`
	Graph      GraphMeta      `json:"graph" yaml:"graph"`
	Nodes      []NodeDocument `json:"nodes" yaml:"nodes"`
	Links      []LinkDocument `json:"links" yaml:"links"`
}

// GraphMeta describes how the graph was derived
type GraphMeta struct {
	Rules string `json:"rules" yaml:"rules"`
}

// NodeDocument is one node of a GraphDocument
type NodeDocument struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// LinkDocument is one edge of a GraphDocument
type LinkDocument struct {
	ID               string `json:"id,omitempty" yaml:"id,omitempty"`
	Source           string `json:"source" yaml:"source"`
	Target           string `json:"target" yaml:"target"`
	RelationshipType string `json:"relationship_type" yaml:"relationship_type"`
}

// NewGraphDocument converts g, keeping node and edge insertion order
func NewGraphDocument(g *domain.Graph) *GraphDocument {
	doc := &GraphDocument{
		Directed:   true,
		Multigraph: true,
		Graph:      GraphMeta{Rules: domain.RuleSet},
		Nodes:      make([]NodeDocument, 0, g.NumNodes()),
		Links:      make([]LinkDocument, 0, g.NumEdges()),
	}

	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeDocument{ID: n.ID, Type: n.Type(), Name: n.Name()})
	}
	for _, e := range g.Edges() {
		doc.Links = append(doc.Links, LinkDocument{
			ID:               e.ID,
			Source:           e.Source,
			Target:           e.Target,
			RelationshipType: string(e.Type),
		})
	}

	return doc
}

// ToGraph rebuilds a graph. Node objects carry only id, type and name.
func (d *GraphDocument) ToGraph() (*domain.Graph, error) {
	g := domain.NewGraph()

	for i, n := range d.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d has no id", i)
		}
		obj := domain.Object{domain.FieldID: n.ID}
		if n.Type != "" {
			obj[domain.FieldType] = n.Type
		}
		if n.Name != "" {
			obj[domain.FieldName] = n.Name
		}
		g.AddNode(n.ID, obj)
	}

	for i, l := range d.Links {
		if l.Source == "" || l.Target == "" {
			return nil, fmt.Errorf("link %d is missing an endpoint", i)
		}
		g.AddEdge(l.Source, l.Target, domain.EdgeType(l.RelationshipType))
	}

	return g, nil
}
