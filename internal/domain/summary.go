package domain

// Summary reports the size of a graph
type Summary struct {
	TotalNodes int `json:"total_nodes" yaml:"total_nodes"`
	TotalEdges int `json:"total_edges" yaml:"total_edges"`
}

// Summarize counts the nodes and edges of g
func Summarize(g *Graph) Summary {
	return Summary{
		TotalNodes: g.NumNodes(),
		TotalEdges: g.NumEdges(),
	}
}
