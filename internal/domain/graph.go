package domain

// RuleSet names the edge-derivation rules BuildGraph applies. It is written
// into exported graph documents so consumers can tell rule revisions apart.
const RuleSet = "stixgraph/v1"

// Graph is a directed graph of object IDs with labeled edges
type Graph struct {
	nodes    map[string]int
	nodeList []Node
	edges    map[edgeKey]struct{}
	edgeList []Edge

	// Skipped lists malformed objects BuildGraph passed over when
	// BuildOptions.SkipMalformed is set.
	Skipped []*MalformedObjectError
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]int),
		nodeList: make([]Node, 0),
		edges:    make(map[edgeKey]struct{}),
		edgeList: make([]Edge, 0),
	}
}

// AddNode adds a node for id. The first definition of an id wins; it returns
// false when the node already existed.
func (g *Graph) AddNode(id string, obj Object) bool {
	if _, exists := g.nodes[id]; exists {
		return false
	}
	g.nodes[id] = len(g.nodeList)
	g.nodeList = append(g.nodeList, Node{ID: id, Object: obj})
	return true
}

// AddEdge adds a labeled edge. Endpoints are not registered as nodes. It
// returns false when the same (source, target, label) edge already existed.
func (g *Graph) AddEdge(source, target string, edgeType EdgeType) bool {
	edge := NewEdge(source, target, edgeType)
	k := edge.key()
	if _, exists := g.edges[k]; exists {
		return false
	}
	g.edges[k] = struct{}{}
	g.edgeList = append(g.edgeList, *edge)
	return true
}

// HasNode reports whether id is a node
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node gets a node by id
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return g.nodeList[i], true
}

// HasEdge reports whether the labeled edge exists
func (g *Graph) HasEdge(source, target string, edgeType EdgeType) bool {
	_, ok := g.edges[edgeKey{source: source, target: target, label: edgeType}]
	return ok
}

// Nodes returns nodes in insertion order
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodeList))
	copy(out, g.nodeList)
	return out
}

// Edges returns edges in insertion order
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeList))
	copy(out, g.edgeList)
	return out
}

// NumNodes returns the node count
func (g *Graph) NumNodes() int {
	return len(g.nodeList)
}

// NumEdges returns the edge count
func (g *Graph) NumEdges() int {
	return len(g.edgeList)
}
