package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewEdge(t *testing.T) {
	t.Run("creates edge with generated ID", func(t *testing.T) {
		edge := NewEdge("malware--1", "attack-pattern--2", "uses")

		if edge.Source != "malware--1" {
			t.Errorf("expected Source 'malware--1', got %s", edge.Source)
		}
		if edge.Target != "attack-pattern--2" {
			t.Errorf("expected Target 'attack-pattern--2', got %s", edge.Target)
		}
		if edge.Type != "uses" {
			t.Errorf("expected Type 'uses', got %s", edge.Type)
		}
		if edge.ID == "" {
			t.Error("expected ID to be generated")
		}
	})
}

func TestEdgeGenerateID(t *testing.T) {
	t.Run("generates consistent ID", func(t *testing.T) {
		edge1 := NewEdge("a", "b", EdgeTypeComponentOf)
		edge2 := NewEdge("a", "b", EdgeTypeComponentOf)

		if edge1.ID != edge2.ID {
			t.Error("expected same endpoints to generate same ID")
		}
	})

	t.Run("direction changes the ID", func(t *testing.T) {
		edge1 := NewEdge("a", "b", EdgeTypeComponentOf)
		edge2 := NewEdge("b", "a", EdgeTypeComponentOf)

		if edge1.ID == edge2.ID {
			t.Error("expected reversed endpoints to generate different IDs")
		}
	})

	t.Run("different labels generate different IDs", func(t *testing.T) {
		edge1 := NewEdge("a", "b", "uses")
		edge2 := NewEdge("a", "b", "mitigates")

		if edge1.ID == edge2.ID {
			t.Error("expected different labels to generate different IDs")
		}
	})

	t.Run("ID is a name-based UUID in the edge namespace", func(t *testing.T) {
		edge := NewEdge("a", "b", "uses")

		parsed, err := uuid.Parse(edge.ID)
		if err != nil {
			t.Fatalf("expected UUID, got %q: %v", edge.ID, err)
		}
		if parsed.Version() != 5 {
			t.Errorf("expected version 5 UUID, got %d", parsed.Version())
		}
		want := uuid.NewSHA1(EdgeNamespace, []byte("a|uses|b")).String()
		if edge.ID != want {
			t.Errorf("expected %s, got %s", want, edge.ID)
		}
	})
}

func TestEdgeTriple(t *testing.T) {
	edge := NewEdge("a", "b", "uses")
	got := edge.Triple()
	want := Triple{Source: "a", Label: "uses", Target: "b"}

	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
