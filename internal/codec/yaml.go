package codec

import (
	"fmt"
	"io"

	"stixgraph/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles node-link YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return FormatYAML
}

// Parse imports a graph from a node-link YAML document
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Graph, error) {
	var doc GraphDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return doc.ToGraph()
}

// Export exports the graph as a node-link YAML document
func (c *YAMLCodec) Export(g *domain.Graph, w io.Writer) error {
	return encodeYAML(w, NewGraphDocument(g))
}

func encodeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
