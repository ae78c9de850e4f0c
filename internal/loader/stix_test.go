package loader

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestParseObjects(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		objects, err := ParseObjects([]byte(`[{"id": "a", "type": "malware"}, {"id": "b", "type": "tool"}]`))
		if err != nil {
			t.Fatalf("ParseObjects() error = %v", err)
		}
		if len(objects) != 2 {
			t.Fatalf("expected 2 objects, got %d", len(objects))
		}
		if objects[0].ID() != "a" || objects[1].ID() != "b" {
			t.Errorf("unexpected order: %v", objects)
		}
	})

	t.Run("bundle", func(t *testing.T) {
		data := `{"type": "bundle", "id": "bundle--1", "objects": [{"id": "a", "type": "malware"}]}`
		objects, err := ParseObjects([]byte(data))
		if err != nil {
			t.Fatalf("ParseObjects() error = %v", err)
		}
		if len(objects) != 1 || objects[0].Type() != "malware" {
			t.Errorf("unexpected objects: %v", objects)
		}
	})

	t.Run("numbers keep their literal", func(t *testing.T) {
		objects, err := ParseObjects([]byte(`[{"id": "a", "x_mitre_version": 2.0}]`))
		if err != nil {
			t.Fatalf("ParseObjects() error = %v", err)
		}
		if got := objects[0]["x_mitre_version"]; got != json.Number("2.0") {
			t.Errorf("expected json.Number 2.0, got %#v", got)
		}
	})

	t.Run("empty bundle", func(t *testing.T) {
		objects, err := ParseObjects([]byte(`{"type": "bundle", "objects": []}`))
		if err != nil {
			t.Fatalf("ParseObjects() error = %v", err)
		}
		if objects == nil || len(objects) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", objects)
		}
	})

	errorCases := map[string]string{
		"empty":            "   ",
		"malformed":        `[{"id": "a"`,
		"scalar":           `42`,
		"single object":    `{"id": "a", "type": "malware"}`,
		"non-object entry": `[{"id": "a"}, 7]`,
		"null entry":       `[null]`,
		"objects not list": `{"objects": {"id": "a"}}`,
		"trailing data":    `[] []`,
	}
	for name, data := range errorCases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseObjects([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	objects, err := ParseDocument([]byte(`{"id": "malware--1", "type": "malware", "name": "Foo"}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(objects) != 1 || objects[0].GetString("name") != "Foo" {
		t.Errorf("unexpected objects: %v", objects)
	}

	objects, err = ParseDocument([]byte(`{"objects": [{"id": "a"}, {"id": "b"}]}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(objects) != 2 {
		t.Errorf("expected bundle contents, got %v", objects)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enterprise.json")
	if err := os.WriteFile(path, []byte(`[{"id": "a", "type": "malware"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	objects, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(objects) != 1 {
		t.Errorf("expected 1 object, got %d", len(objects))
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bundle.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type": "bundle", "objects": [{"id": "a", "type": "tool"}]}`))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		objects, err := Fetch(ctx, server.Client(), server.URL+"/bundle.json")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(objects) != 1 || objects[0].ID() != "a" {
			t.Errorf("unexpected objects: %v", objects)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := Fetch(ctx, server.Client(), server.URL+"/missing.json"); err == nil {
			t.Error("expected error for 404")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		if _, err := Fetch(ctx, server.Client(), server.URL+"/broken.json"); err == nil {
			t.Error("expected error for malformed body")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := Fetch(canceled, server.Client(), server.URL+"/bundle.json"); err == nil {
			t.Error("expected error for canceled context")
		}
	})
}
