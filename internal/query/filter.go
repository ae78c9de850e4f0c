package query

import (
	"fmt"
	"strings"
)

// Operator is a comparison supported by a Filter
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpIn           Operator = "in"
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpContains     Operator = "contains"
)

// ParseOperator converts a token to an Operator
func ParseOperator(s string) (Operator, bool) {
	switch op := Operator(s); op {
	case OpEqual, OpNotEqual, OpIn, OpGreater, OpLess, OpGreaterEqual, OpLessEqual, OpContains:
		return op, true
	}
	return "", false
}

// Filter is a single field predicate
type Filter struct {
	Field    string
	Operator Operator
	Value    string
}

// New creates a filter
func New(field string, op Operator, value string) Filter {
	return Filter{Field: field, Operator: op, Value: value}
}

func (f Filter) String() string {
	return fmt.Sprintf("%s %s %s", f.Field, f.Operator, f.Value)
}

// Values splits the value of an in predicate into its members
func (f Filter) Values() []string {
	parts := strings.Split(f.Value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Parse reads "<field> <op> <value>". The operator is the leftmost token that
// names a supported operator with at least one token on each side, so field
// and value may contain spaces.
func Parse(text string) (Filter, bool) {
	tokens := strings.Split(text, " ")

	for i := 1; i < len(tokens)-1; i++ {
		op, ok := ParseOperator(tokens[i])
		if !ok {
			continue
		}
		field := strings.Join(tokens[:i], " ")
		value := strings.Join(tokens[i+1:], " ")
		if field == "" || value == "" {
			continue
		}
		return New(field, op, value), true
	}

	return Filter{}, false
}

// ParseAll parses every text, returning the filters that parsed and the
// texts that did not.
func ParseAll(texts []string) (filters []Filter, ignored []string) {
	for _, text := range texts {
		if f, ok := Parse(text); ok {
			filters = append(filters, f)
		} else {
			ignored = append(ignored, text)
		}
	}
	return filters, ignored
}
