package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tripleFixture() *Graph {
	g := NewGraph()
	g.AddEdge("b", "x", "uses")
	g.AddEdge("a", "z", "uses")
	g.AddEdge("a", "y", "mitigates")
	g.AddEdge("a", "x", "uses")
	g.AddEdge("c", "d", "")
	return g
}

func TestGraphTriples(t *testing.T) {
	want := []Triple{
		{Source: "a", Label: "mitigates", Target: "y"},
		{Source: "a", Label: "uses", Target: "x"},
		{Source: "a", Label: "uses", Target: "z"},
		{Source: "b", Label: "uses", Target: "x"},
	}

	if diff := cmp.Diff(want, tripleFixture().Triples()); diff != "" {
		t.Errorf("Triples() mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphTriplesStable(t *testing.T) {
	g := tripleFixture()
	if diff := cmp.Diff(g.Triples(), g.Triples()); diff != "" {
		t.Errorf("Triples() not stable (-first +second):\n%s", diff)
	}
}

func TestGraphQuads(t *testing.T) {
	quads := tripleFixture().Quads("enterprise")

	if len(quads) != 4 {
		t.Fatalf("expected 4 quads, got %d", len(quads))
	}
	for _, q := range quads {
		if q.Namespace != "enterprise" {
			t.Errorf("expected namespace enterprise, got %s", q.Namespace)
		}
	}

	want := []string{"enterprise", "a", "mitigates", "y"}
	if diff := cmp.Diff(want, quads[0].Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}
