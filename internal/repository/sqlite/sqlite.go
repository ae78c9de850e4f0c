package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"stixgraph/internal/domain"
	"stixgraph/internal/query"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Repository implements repository.ObjectRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	dsn := dbPath
	if dbPath != MemoryPath {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to :memory: is its own database
	if dbPath == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

// NewMemory creates a repository backed by a private in-memory database
func NewMemory() (*Repository, error) {
	return New(MemoryPath)
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS objects (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT,
		type TEXT,
		data TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_objects_id ON objects(id);
	CREATE INDEX IF NOT EXISTS idx_objects_type ON objects(type);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Insert appends objects in a single transaction
func (r *Repository) Insert(ctx context.Context, objects []domain.Object) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO objects (id, type, data) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, obj := range objects {
		data, err := marshalObject(obj)
		if err != nil {
			return fmt.Errorf("failed to marshal object %s: %w", obj.ID(), err)
		}

		// Absent id/type stay NULL so pushed-down predicates never match them
		id := lookupNull(obj, domain.FieldID)
		objType := lookupNull(obj, domain.FieldType)

		if _, err := stmt.ExecContext(ctx, id, objType, string(data)); err != nil {
			return fmt.Errorf("failed to insert object %s: %w", obj.ID(), err)
		}
	}

	return tx.Commit()
}

// Query returns the objects matching every filter, in insertion order
func (r *Repository) Query(ctx context.Context, filters []query.Filter) ([]domain.Object, error) {
	where, args := pushdown(filters)

	stmt := `SELECT data FROM objects`
	if where != "" {
		stmt += ` WHERE ` + where
	}
	stmt += ` ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query objects: %w", err)
	}
	defer rows.Close()

	objects := make([]domain.Object, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan object: %w", err)
		}

		obj, err := unmarshalObject(data)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal object data: %w", err)
		}

		if query.MatchAll(filters, obj) {
			objects = append(objects, obj)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating objects: %w", err)
	}

	return objects, nil
}

// Count returns the number of stored objects
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM objects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count objects: %w", err)
	}
	return n, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// indexedColumns maps the fields stored in their own column
var indexedColumns = map[string]string{
	domain.FieldID:   "id",
	domain.FieldType: "type",
}

// pushdown translates the filters SQL can answer into a WHERE clause.
// Filters it cannot express are left to query.MatchAll.
func pushdown(filters []query.Filter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	for _, f := range filters {
		column, ok := indexedColumns[f.Field]
		if !ok {
			continue
		}

		switch f.Operator {
		case query.OpEqual:
			clauses = append(clauses, column+" = ?")
			args = append(args, f.Value)
		case query.OpNotEqual:
			clauses = append(clauses, column+" != ?")
			args = append(args, f.Value)
		case query.OpIn:
			values := f.Values()
			if len(values) == 0 {
				continue
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
			clauses = append(clauses, column+" IN ("+placeholders+")")
			for _, v := range values {
				args = append(args, v)
			}
		}
	}

	return strings.Join(clauses, " AND "), args
}
