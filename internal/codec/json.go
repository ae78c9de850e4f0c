package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"stixgraph/internal/domain"
)

// JSONCodec handles node-link JSON import/export
type JSONCodec struct {
	indent string
}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec(opts Options) *JSONCodec {
	return &JSONCodec{indent: opts.indent()}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return FormatJSON
}

// Parse imports a graph from a node-link JSON document
func (c *JSONCodec) Parse(r io.Reader) (*domain.Graph, error) {
	var doc GraphDocument
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return doc.ToGraph()
}

// Export exports the graph as a node-link JSON document
func (c *JSONCodec) Export(g *domain.Graph, w io.Writer) error {
	return encodeJSON(w, NewGraphDocument(g), c.indent)
}

func encodeJSON(w io.Writer, v any, indent string) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if indent != "" {
		encoder.SetIndent("", indent)
	}

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
