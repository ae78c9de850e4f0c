package codec

import (
	"io"

	"stixgraph/internal/domain"
)

// ExportObjects writes objects as a JSON array
func ExportObjects(objects []domain.Object, w io.Writer, opts Options) error {
	if objects == nil {
		objects = []domain.Object{}
	}
	return encodeJSON(w, objects, opts.indent())
}
