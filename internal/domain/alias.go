package domain

import (
	"sort"
	"strings"
)

// External reference catalogs whose IDs become aliases
const (
	SourceCAPEC       = "capec"
	SourceMitreAttack = "mitre-attack"
)

// AliasOptions controls alias derivation
type AliasOptions struct {
	IncludeNames bool `yaml:"include_names"`
	Lowercase    bool `yaml:"lowercase"`
}

// DefaultAliasOptions includes names and folds keys to lowercase
func DefaultAliasOptions() AliasOptions {
	return AliasOptions{IncludeNames: true, Lowercase: true}
}

// AliasMap maps an alias to the ID of the object that owns it
type AliasMap map[string]string

// Keys returns the aliases in ascending order
func (m AliasMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// aliasTable is an insertion-ordered map; a key keeps the position of its
// first insertion when later writes overwrite its value.
type aliasTable struct {
	order  []string
	values map[string]string
}

func (t *aliasTable) set(alias, id string) {
	if _, exists := t.values[alias]; !exists {
		t.order = append(t.order, alias)
	}
	t.values[alias] = id
}

// BuildAliasMap derives names, aliases and catalog IDs for objects in input order.
// With Lowercase, keys are folded after all insertions; when two keys fold to
// the same alias, the one inserted later in key order wins.
func BuildAliasMap(objects []Object, opts AliasOptions) AliasMap {
	t := &aliasTable{values: make(map[string]string)}

	for _, o := range objects {
		id := o.ID()

		if opts.IncludeNames {
			if name, ok := o.LookupString(FieldName); ok {
				t.set(name, id)
			}
			for _, alias := range o.GetStrings(FieldAliases) {
				t.set(alias, id)
			}
		}

		for _, ref := range o.ExternalReferences() {
			if ref.SourceName != SourceCAPEC && ref.SourceName != SourceMitreAttack {
				continue
			}
			if ref.ExternalID != "" {
				t.set(ref.ExternalID, id)
			}
		}
	}

	m := make(AliasMap, len(t.values))
	for _, k := range t.order {
		key := k
		if opts.Lowercase {
			key = strings.ToLower(k)
		}
		m[key] = t.values[k]
	}
	return m
}
