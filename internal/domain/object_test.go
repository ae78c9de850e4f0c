package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decodeObject(t *testing.T, raw string) Object {
	t.Helper()
	var o Object
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("failed to decode object: %v", err)
	}
	return o
}

func TestObjectAccessors(t *testing.T) {
	o := decodeObject(t, `{
		"id": "intrusion-set--1",
		"type": "intrusion-set",
		"name": "Sandworm Team",
		"revoked": false,
		"x_mitre_deprecated": "true",
		"x_mitre_aliases": ["Sandworm Team", 7, "ELECTRUM"],
		"external_references": [
			{"source_name": "mitre-attack", "external_id": "G0034", "url": "https://attack.mitre.org/groups/G0034"},
			"not a map",
			{"source_name": "Wikipedia"}
		]
	}`)

	t.Run("id and type", func(t *testing.T) {
		if o.ID() != "intrusion-set--1" {
			t.Errorf("expected id 'intrusion-set--1', got %s", o.ID())
		}
		if o.Type() != "intrusion-set" {
			t.Errorf("expected type 'intrusion-set', got %s", o.Type())
		}
	})

	t.Run("lookup string distinguishes absent fields", func(t *testing.T) {
		if _, ok := o.LookupString("description"); ok {
			t.Error("expected absent field to report not ok")
		}
		if _, ok := o.LookupString("revoked"); ok {
			t.Error("expected non-string field to report not ok")
		}
		if name, ok := o.LookupString("name"); !ok || name != "Sandworm Team" {
			t.Errorf("expected name, got %q (%v)", name, ok)
		}
	})

	t.Run("IsTrue requires a boolean", func(t *testing.T) {
		if o.IsTrue("revoked") {
			t.Error("expected false for revoked=false")
		}
		if o.IsTrue("x_mitre_deprecated") {
			t.Error("expected false for string \"true\"")
		}
		if o.IsTrue("missing") {
			t.Error("expected false for missing field")
		}
	})

	t.Run("GetStrings keeps string entries", func(t *testing.T) {
		got := o.GetStrings("x_mitre_aliases")
		want := []string{"Sandworm Team", "ELECTRUM"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
		if o.GetStrings("name") != nil {
			t.Error("expected nil for non-list field")
		}
	})

	t.Run("ExternalReferences skips non-map entries", func(t *testing.T) {
		refs := o.ExternalReferences()
		if len(refs) != 2 {
			t.Fatalf("expected 2 references, got %d", len(refs))
		}
		if refs[0].ExternalID != "G0034" || refs[0].SourceName != "mitre-attack" {
			t.Errorf("unexpected first reference %+v", refs[0])
		}
		if refs[1].ExternalID != "" {
			t.Errorf("expected empty external id, got %q", refs[1].ExternalID)
		}
	})

	t.Run("nil object is safe", func(t *testing.T) {
		var empty Object
		if empty.ID() != "" || empty.Type() != "" {
			t.Error("expected empty id and type")
		}
		if empty.ExternalReferences() != nil {
			t.Error("expected no references")
		}
	})
}

func TestNodeAccessors(t *testing.T) {
	node := Node{ID: "malware--1", Object: Object{"type": "malware", "name": "Foo"}}
	if node.Type() != "malware" {
		t.Errorf("expected type 'malware', got %s", node.Type())
	}
	if node.Name() != "Foo" {
		t.Errorf("expected name 'Foo', got %s", node.Name())
	}

	bare := Node{ID: "x"}
	if bare.Type() != "" || bare.Name() != "" {
		t.Error("expected empty type and name for node without object")
	}
}
