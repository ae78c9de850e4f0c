package codec

import (
	"encoding/csv"
	"fmt"
	"io"

	"stixgraph/internal/domain"
)

// AliasJSONCodec writes an alias map as a JSON object with sorted keys
type AliasJSONCodec struct {
	indent string
}

// NewAliasJSONCodec creates a new alias JSON codec
func NewAliasJSONCodec(opts Options) *AliasJSONCodec {
	return &AliasJSONCodec{indent: opts.indent()}
}

// Format returns the codec format identifier
func (c *AliasJSONCodec) Format() string {
	return FormatJSON
}

// ExportAliases writes m; encoding/json orders map keys
func (c *AliasJSONCodec) ExportAliases(m domain.AliasMap, w io.Writer) error {
	if m == nil {
		m = domain.AliasMap{}
	}
	return encodeJSON(w, map[string]string(m), c.indent)
}

// AliasCSVCodec writes an alias map as delimited rows sorted by alias
type AliasCSVCodec struct {
	comma rune
}

// NewAliasCSVCodec creates a codec using comma as the field delimiter
func NewAliasCSVCodec(comma rune) *AliasCSVCodec {
	return &AliasCSVCodec{comma: comma}
}

// Format returns the codec format identifier
func (c *AliasCSVCodec) Format() string {
	if c.comma == '\t' {
		return FormatTSV
	}
	return FormatCSV
}

// ExportAliases writes a header row then one row per alias
func (c *AliasCSVCodec) ExportAliases(m domain.AliasMap, w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = c.comma

	if err := cw.Write([]string{"alias", "identifier"}); err != nil {
		return fmt.Errorf("failed to write %s header: %w", c.Format(), err)
	}
	for _, alias := range m.Keys() {
		if err := cw.Write([]string{alias, m[alias]}); err != nil {
			return fmt.Errorf("failed to write %s row: %w", c.Format(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}
