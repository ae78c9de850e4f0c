package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	data := filepath.Join(dir, "objects.json")
	if err := os.WriteFile(cfg, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(data, []byte(`[{"id": "a", "type": "relationship", "source_ref": "x", "target_ref": "y", "relationship_type": "uses"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
	}{
		{"success", []string{"-config", cfg, "triples", data}, 0, "x\tuses\ty\n"},
		{"usage error", []string{"-config", cfg, "nope"}, 2, ""},
		{"source error", []string{"-config", cfg, "triples", filepath.Join(dir, "missing")}, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("run() = %d, want %d (stderr: %s)", code, tt.code, stderr.String())
			}
			if stdout.String() != tt.stdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.stdout)
			}
			if tt.code != 0 && stderr.Len() == 0 {
				t.Error("expected an error message on stderr")
			}
		})
	}
}
