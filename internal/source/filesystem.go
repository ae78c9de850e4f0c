package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"stixgraph/internal/ctxlog"
	"stixgraph/internal/domain"
	"stixgraph/internal/loader"
	"stixgraph/internal/query"
)

// FileSystemSource reads a STIX directory store on every query. The store
// lays objects out as <root>/<type>/<id>.json or, when versioned,
// <root>/<type>/<id>/<modified>.json; any other *.json file is read too and
// may hold a single object, an array or a bundle, and is never pruned.
type FileSystemSource struct {
	root string
}

// NewFileSystemSource creates a source rooted at dir
func NewFileSystemSource(dir string) *FileSystemSource {
	return &FileSystemSource{root: dir}
}

// Root returns the store directory
func (s *FileSystemSource) Root() string {
	return s.root
}

// Query walks the store in lexical order. Filters on type and id prune only
// entries the layout names: a first-level directory whose JSON entries are
// all named <dir>--*, and second-level entries named <type>--*. Other
// directories are always read and their objects matched one by one.
func (s *FileSystemSource) Query(ctx context.Context, filters []query.Filter) ([]domain.Object, error) {
	types := restrictionFor(filters, domain.FieldType)
	ids := restrictionFor(filters, domain.FieldID)
	logger := ctxlog.FromContext(ctx)

	objects := make([]domain.Object, 0)
	files := 0

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")

		if d.IsDir() {
			switch len(parts) {
			case 1:
				if types.allows(parts[0]) {
					return nil
				}
				layout, err := isTypeDir(path, parts[0])
				if err != nil {
					return err
				}
				if layout {
					return fs.SkipDir
				}
			case 2:
				if isIDEntry(parts[0], parts[1]) && !ids.allows(parts[1]) {
					return fs.SkipDir
				}
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		if len(parts) == 2 {
			id := strings.TrimSuffix(parts[1], filepath.Ext(parts[1]))
			if isIDEntry(parts[0], id) && !ids.allows(id) {
				return nil
			}
		}

		found, err := loader.LoadDocument(path)
		if err != nil {
			return &domain.SourceError{Location: path, Err: err}
		}
		files++

		for _, obj := range found {
			if query.MatchAll(filters, obj) {
				objects = append(objects, obj)
			}
		}
		return nil
	})
	if err != nil {
		var srcErr *domain.SourceError
		if errors.As(err, &srcErr) {
			return nil, err
		}
		return nil, &domain.SourceError{Location: s.root, Err: err}
	}

	logger.Debug("queried directory store", "location", s.root, "files", files, "objects", len(objects))
	return objects, nil
}

// Close is a no-op; nothing is held open between queries
func (s *FileSystemSource) Close() error {
	return nil
}

// isTypeDir reports whether every JSON entry of dir is named <typ>--*,
// so the directory only holds objects of that type
func isTypeDir(dir, typ string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() {
			if !strings.EqualFold(filepath.Ext(name), ".json") {
				continue
			}
			name = strings.TrimSuffix(name, filepath.Ext(name))
		}
		if !isIDEntry(typ, name) {
			return false, nil
		}
	}
	return true, nil
}

// isIDEntry reports whether name is an object id of type typ
func isIDEntry(typ, name string) bool {
	return strings.HasPrefix(name, typ+"--")
}

// restriction is the set of names a path segment may take; nil allows all
type restriction struct {
	allowed  map[string]bool
	excluded map[string]bool
}

func (r restriction) allows(name string) bool {
	if r.excluded[name] {
		return false
	}
	return r.allowed == nil || r.allowed[name]
}

// restrictionFor intersects the =, in and != predicates on field
func restrictionFor(filters []query.Filter, field string) restriction {
	var r restriction

	for _, f := range filters {
		if f.Field != field {
			continue
		}

		var values []string
		switch f.Operator {
		case query.OpEqual:
			values = []string{f.Value}
		case query.OpIn:
			values = f.Values()
		case query.OpNotEqual:
			if r.excluded == nil {
				r.excluded = make(map[string]bool)
			}
			r.excluded[f.Value] = true
			continue
		default:
			continue
		}

		set := make(map[string]bool, len(values))
		for _, v := range values {
			if r.allowed == nil || r.allowed[v] {
				set[v] = true
			}
		}
		r.allowed = set
	}

	return r
}
