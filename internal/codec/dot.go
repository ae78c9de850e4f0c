package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"stixgraph/internal/domain"
)

// DOTCodec writes a Graphviz digraph
type DOTCodec struct{}

// NewDOTCodec creates a new DOT codec
func NewDOTCodec() *DOTCodec {
	return &DOTCodec{}
}

// Format returns the codec format identifier
func (c *DOTCodec) Format() string {
	return FormatDOT
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotID turns an object ID into a bare DOT identifier
func dotID(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

// Export writes node statements, a blank line, then edge statements.
// Marking definitions are left out of the node list.
func (c *DOTCodec) Export(g *domain.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph {\n")

	for _, node := range g.Nodes() {
		objType, ok := node.Object.LookupString(domain.FieldType)
		if !ok {
			return &domain.MissingFieldError{NodeID: node.ID, Field: domain.FieldType}
		}
		if objType == domain.TypeMarkingDefinition {
			continue
		}
		id, ok := node.Object.LookupString(domain.FieldID)
		if !ok {
			return &domain.MissingFieldError{NodeID: node.ID, Field: domain.FieldID}
		}
		name, ok := node.Object.LookupString(domain.FieldName)
		if !ok {
			return &domain.MissingFieldError{NodeID: node.ID, Field: domain.FieldName}
		}

		fmt.Fprintf(bw, "  %s [label=\"%s\"]\n", dotID(id), labelEscaper.Replace(name))
	}

	bw.WriteString("\n")

	for _, edge := range g.Edges() {
		fmt.Fprintf(bw, "  %s -> %s\n", dotID(edge.Source), dotID(edge.Target))
	}

	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write DOT: %w", err)
	}
	return nil
}
