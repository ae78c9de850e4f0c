package domain

import (
	"errors"
	"testing"
)

func TestBuildGraphRelationship(t *testing.T) {
	objects := []Object{
		{"id": "A", "type": "malware", "name": "Foo"},
		{"id": "B", "type": "tool", "name": "Bar"},
		{"id": "rel--1", "type": "relationship", "source_ref": "A", "target_ref": "B", "relationship_type": "uses"},
	}

	graph, err := BuildGraph(objects, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	if graph.NumNodes() != 2 {
		t.Errorf("expected 2 nodes, got %d", graph.NumNodes())
	}
	if graph.HasNode("rel--1") {
		t.Error("relationship must not become a node")
	}
	if !graph.HasEdge("A", "B", "uses") {
		t.Error("expected edge A -uses-> B")
	}

	triples := graph.Triples()
	if len(triples) != 1 || triples[0] != (Triple{Source: "A", Label: "uses", Target: "B"}) {
		t.Errorf("unexpected triples %v", triples)
	}
}

func TestBuildGraphRelationshipDoesNotRegisterEndpoints(t *testing.T) {
	objects := []Object{
		{"id": "rel--1", "type": "relationship", "source_ref": "A", "target_ref": "B", "relationship_type": "uses"},
	}

	graph, err := BuildGraph(objects, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	if graph.NumNodes() != 0 {
		t.Errorf("expected no nodes, got %d", graph.NumNodes())
	}
	if graph.NumEdges() != 1 {
		t.Errorf("expected 1 edge, got %d", graph.NumEdges())
	}
}

func TestBuildGraphDataComponent(t *testing.T) {
	objects := []Object{
		{"id": "m1", "type": "malware", "name": "Foo"},
		{"id": "g1", "type": "x-mitre-data-component", "x_mitre_data_source_ref": "m1"},
	}

	graph, err := BuildGraph(objects, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	nodes := graph.Nodes()
	if len(nodes) != 2 || nodes[0].ID != "m1" || nodes[1].ID != "g1" {
		t.Errorf("expected nodes [m1 g1], got %v", nodes)
	}

	triples := graph.Triples()
	want := Triple{Source: "m1", Label: "component-of", Target: "g1"}
	if len(triples) != 1 || triples[0] != want {
		t.Errorf("expected %v, got %v", want, triples)
	}
}

func TestBuildGraphEmptyRelationshipType(t *testing.T) {
	objects := []Object{
		{"id": "a", "type": "malware"},
		{"id": "relationship--1", "type": "relationship", "source_ref": "a", "target_ref": "b", "relationship_type": ""},
	}

	graph, err := BuildGraph(objects, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	if !graph.HasEdge("a", "b", "") {
		t.Error("expected unlabeled edge a -> b")
	}
	if got := Summarize(graph); got.TotalEdges != 1 {
		t.Errorf("expected 1 edge in summary, got %d", got.TotalEdges)
	}
	if triples := graph.Triples(); len(triples) != 0 {
		t.Errorf("expected unlabeled edge to be skipped in triples, got %v", triples)
	}
}

func TestBuildGraphExternalReference(t *testing.T) {
	objects := []Object{
		{"id": "ext--1", "type": "external_reference", "created_by_ref": "identity--1"},
	}

	graph, err := BuildGraph(objects, BuildOptions{CreatedBy: true})
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	if graph.NumNodes() != 0 {
		t.Errorf("expected no nodes, got %d", graph.NumNodes())
	}
	if !graph.HasEdge("ext--1", "identity--1", EdgeTypeCreatedBy) {
		t.Error("expected created-by edge from external reference")
	}
}

func TestBuildGraphMalformed(t *testing.T) {
	tests := []struct {
		name  string
		obj   Object
		field string
	}{
		{"missing id", Object{"type": "malware"}, FieldID},
		{"relationship missing source", Object{"id": "r", "type": "relationship", "target_ref": "B", "relationship_type": "uses"}, FieldSourceRef},
		{"relationship missing target", Object{"id": "r", "type": "relationship", "source_ref": "A", "relationship_type": "uses"}, FieldTargetRef},
		{"relationship missing label", Object{"id": "r", "type": "relationship", "source_ref": "A", "target_ref": "B"}, FieldRelationshipType},
		{"relationship non-string source", Object{"id": "r", "type": "relationship", "source_ref": 7, "target_ref": "B", "relationship_type": "uses"}, FieldSourceRef},
		{"data component missing source", Object{"id": "m1", "type": "x-mitre-data-component"}, FieldDataSourceRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildGraph([]Object{tt.obj}, BuildOptions{})
			if !errors.Is(err, ErrMalformedObject) {
				t.Fatalf("expected ErrMalformedObject, got %v", err)
			}

			var malformed *MalformedObjectError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedObjectError, got %T", err)
			}
			if malformed.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, malformed.Field)
			}
		})
	}
}

func TestBuildGraphSkipMalformed(t *testing.T) {
	objects := []Object{
		{"id": "A", "type": "malware"},
		{"id": "m1", "type": "x-mitre-data-component", "created_by_ref": "identity--1"},
		{"id": "r", "type": "relationship", "source_ref": "A", "relationship_type": "uses"},
		{"id": "B", "type": "tool"},
	}

	graph, err := BuildGraph(objects, BuildOptions{SkipMalformed: true, CreatedBy: true})
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	if len(graph.Skipped) != 2 {
		t.Fatalf("expected 2 skipped objects, got %d", len(graph.Skipped))
	}
	if graph.Skipped[0].ID != "m1" || graph.Skipped[1].ID != "r" {
		t.Errorf("unexpected skipped order: %v", graph.Skipped)
	}
	if graph.HasNode("m1") {
		t.Error("skipped data component must not leave a node")
	}
	if graph.NumEdges() != 0 {
		t.Errorf("skipped objects must not leave edges, got %v", graph.Edges())
	}
	if graph.NumNodes() != 2 {
		t.Errorf("expected 2 nodes, got %d", graph.NumNodes())
	}
}

func TestBuildGraphOptionalEdges(t *testing.T) {
	objects := []Object{
		{
			"id":                      "malware--1",
			"type":                    "malware",
			"created_by_ref":          "identity--1",
			"x_mitre_modified_by_ref": "identity--2",
			"object_marking_refs":     []any{"marking-definition--1", "marking-definition--2"},
		},
	}

	t.Run("disabled by default", func(t *testing.T) {
		graph, err := BuildGraph(objects, BuildOptions{})
		if err != nil {
			t.Fatalf("BuildGraph() error = %v", err)
		}
		if graph.NumEdges() != 0 {
			t.Errorf("expected no edges, got %v", graph.Edges())
		}
	})

	t.Run("all enabled", func(t *testing.T) {
		graph, err := BuildGraph(objects, BuildOptions{CreatedBy: true, ModifiedBy: true, Markings: true})
		if err != nil {
			t.Fatalf("BuildGraph() error = %v", err)
		}

		checks := []struct {
			source, target string
			label          EdgeType
		}{
			{"malware--1", "identity--1", EdgeTypeCreatedBy},
			{"malware--1", "identity--2", EdgeTypeModifiedBy},
			{"marking-definition--1", "malware--1", EdgeTypeAppliesTo},
			{"marking-definition--2", "malware--1", EdgeTypeAppliesTo},
		}
		for _, c := range checks {
			if !graph.HasEdge(c.source, c.target, c.label) {
				t.Errorf("expected edge %s -%s-> %s", c.source, c.label, c.target)
			}
		}
		if graph.NumEdges() != len(checks) {
			t.Errorf("expected %d edges, got %d", len(checks), graph.NumEdges())
		}
	})
}

func TestBuildGraphDeduplicates(t *testing.T) {
	rel := Object{"id": "r", "type": "relationship", "source_ref": "A", "target_ref": "B", "relationship_type": "uses"}
	objects := []Object{
		{"id": "A", "type": "malware", "name": "First"},
		{"id": "A", "type": "malware", "name": "Second"},
		rel, rel,
		{"id": "r2", "type": "relationship", "source_ref": "A", "target_ref": "B", "relationship_type": "mitigates"},
	}

	graph, err := BuildGraph(objects, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	if graph.NumNodes() != 1 {
		t.Errorf("expected 1 node, got %d", graph.NumNodes())
	}
	if node, _ := graph.Node("A"); node.Name() != "First" {
		t.Errorf("expected first definition to win, got %s", node.Name())
	}
	if graph.NumEdges() != 2 {
		t.Errorf("expected 2 edges, got %d", graph.NumEdges())
	}
}
