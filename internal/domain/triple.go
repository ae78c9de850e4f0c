package domain

import (
	"sort"
	"strings"
)

// Triple is an edge projected to (source, label, target)
type Triple struct {
	Source string
	Label  string
	Target string
}

// Fields returns the triple as a record
func (t Triple) Fields() []string {
	return []string{t.Source, t.Label, t.Target}
}

// Quad is a triple tagged with the namespace of the graph it came from
type Quad struct {
	Namespace string
	Triple
}

// Fields returns the quad as a record, namespace first
func (q Quad) Fields() []string {
	return []string{q.Namespace, q.Source, q.Label, q.Target}
}

// Triples returns the labeled edges of g sorted by (source, label, target).
// Unlabeled edges are skipped.
func (g *Graph) Triples() []Triple {
	triples := make([]Triple, 0, len(g.edgeList))
	for _, e := range g.edgeList {
		if e.Type == "" {
			continue
		}
		triples = append(triples, e.Triple())
	}

	sort.Slice(triples, func(i, j int) bool {
		return compareTriples(triples[i], triples[j]) < 0
	})
	return triples
}

// Quads returns Triples tagged with namespace. A shared namespace keeps the
// triple ordering, which is the full 4-tuple ordering.
func (g *Graph) Quads(namespace string) []Quad {
	triples := g.Triples()
	quads := make([]Quad, len(triples))
	for i, t := range triples {
		quads[i] = Quad{Namespace: namespace, Triple: t}
	}
	return quads
}

func compareTriples(a, b Triple) int {
	if c := strings.Compare(a.Source, b.Source); c != 0 {
		return c
	}
	if c := strings.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return strings.Compare(a.Target, b.Target)
}
