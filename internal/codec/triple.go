package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"stixgraph/internal/domain"
)

// TripleCodec writes one sorted record per edge, as triples or quads
type TripleCodec struct {
	quads     bool
	namespace string
	separator string
}

// NewTripleCodec creates a codec writing source, label, target records
func NewTripleCodec(opts Options) *TripleCodec {
	return &TripleCodec{separator: opts.separator()}
}

// NewQuadCodec creates a codec writing namespace, source, label, target records
func NewQuadCodec(opts Options) *TripleCodec {
	return &TripleCodec{quads: true, namespace: opts.Namespace, separator: opts.separator()}
}

// Format returns the codec format identifier
func (c *TripleCodec) Format() string {
	if c.quads {
		return FormatQuads
	}
	return FormatTriples
}

// Export writes the graph's records, each terminated by a newline
func (c *TripleCodec) Export(g *domain.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if c.quads {
		for _, q := range g.Quads(c.namespace) {
			if err := c.writeRecord(bw, q.Fields()); err != nil {
				return err
			}
		}
	} else {
		for _, t := range g.Triples() {
			if err := c.writeRecord(bw, t.Fields()); err != nil {
				return err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Format(), err)
	}
	return nil
}

func (c *TripleCodec) writeRecord(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(strings.Join(fields, c.separator) + "\n"); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Format(), err)
	}
	return nil
}
