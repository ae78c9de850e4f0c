package domain

import "strings"

// LifecyclePolicy selects which retired objects FilterObjects drops
type LifecyclePolicy struct {
	IgnoreDeprecated bool `yaml:"ignore_deprecated"`
	IgnoreRevoked    bool `yaml:"ignore_revoked"`
}

// DefaultLifecyclePolicy drops both deprecated and revoked objects
func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{IgnoreDeprecated: true, IgnoreRevoked: true}
}

// IsDeprecated reports whether an ATT&CK or CAPEC object is marked deprecated
func IsDeprecated(o Object) bool {
	if o.IsTrue(FieldDeprecated) {
		return true
	}
	status, ok := o.LookupString(FieldCapecStatus)
	return ok && strings.ToLower(status) == "deprecated"
}

// IsRevoked reports whether revoked is exactly true
func IsRevoked(o Object) bool {
	return o.IsTrue(FieldRevoked)
}

// Allows reports whether o survives the policy
func (p LifecyclePolicy) Allows(o Object) bool {
	if p.IgnoreDeprecated && IsDeprecated(o) {
		return false
	}
	if p.IgnoreRevoked && IsRevoked(o) {
		return false
	}
	return true
}

// FilterObjects returns the objects the policy allows, in input order
func FilterObjects(objects []Object, p LifecyclePolicy) []Object {
	out := make([]Object, 0, len(objects))
	for _, o := range objects {
		if p.Allows(o) {
			out = append(out, o)
		}
	}
	return out
}
