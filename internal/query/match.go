package query

import (
	"encoding/json"
	"strconv"
	"strings"

	"stixgraph/internal/domain"
)

// Match reports whether obj satisfies the filter. A field missing from obj
// never matches, whatever the operator.
func (f Filter) Match(obj domain.Object) bool {
	values := resolve(map[string]any(obj), strings.Split(f.Field, "."))
	for _, v := range values {
		if f.matchValue(v) {
			return true
		}
	}
	return false
}

// MatchAll reports whether obj satisfies every filter
func MatchAll(filters []Filter, obj domain.Object) bool {
	for _, f := range filters {
		if !f.Match(obj) {
			return false
		}
	}
	return true
}

// resolve walks a dotted path. Lists of maps along the way fan out, so one
// path can yield several candidate values.
func resolve(v any, path []string) []any {
	if len(path) == 0 {
		return []any{v}
	}

	switch node := v.(type) {
	case map[string]any:
		next, ok := node[path[0]]
		if !ok {
			return nil
		}
		return resolve(next, path[1:])
	case domain.Object:
		return resolve(map[string]any(node), path)
	case []any:
		var out []any
		for _, item := range node {
			if _, ok := item.(map[string]any); ok {
				out = append(out, resolve(item, path)...)
			}
		}
		return out
	}
	return nil
}

func (f Filter) matchValue(v any) bool {
	switch f.Operator {
	case OpEqual:
		s, ok := text(v)
		return ok && s == f.Value
	case OpNotEqual:
		s, ok := text(v)
		return ok && s != f.Value
	case OpIn:
		s, ok := text(v)
		if !ok {
			return false
		}
		for _, member := range f.Values() {
			if s == member {
				return true
			}
		}
		return false
	case OpContains:
		return contains(v, f.Value)
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		s, ok := text(v)
		if !ok {
			return false
		}
		c := compare(s, f.Value)
		switch f.Operator {
		case OpGreater:
			return c > 0
		case OpLess:
			return c < 0
		case OpGreaterEqual:
			return c >= 0
		default:
			return c <= 0
		}
	}
	return false
}

func contains(v any, want string) bool {
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s, ok := text(item); ok && s == want {
				return true
			}
		}
		return false
	case []string:
		for _, s := range val {
			if s == want {
				return true
			}
		}
		return false
	case string:
		return strings.Contains(val, want)
	}
	return false
}

// text renders scalars the way they appear in JSON; composites have no text form.
func text(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	}
	return "", false
}

// compare orders numerically when both sides are numbers, else lexicographically
func compare(a, b string) int {
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
