package pipeline

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode/utf8"

	"go.uber.org/multierr"

	"orderflow/internal/pkg/errs"
)

// Require creates a pre-phase guard that fails with MissingPropertyError
// unless every resolved key is present and non-empty. Presence is checked
// through the predecessor chain, so a required property already carried by
// the current snapshot does not have to be restated in every change set.
// Computed keys that resolve to "" are skipped, which is how conditional
// requirements are expressed.
func Require(keys ...PropKey) Guard {
	return func(s *Snapshot) (*Snapshot, error) {
		var missing []string
		for _, key := range keys {
			name := key.Resolve(s)
			if name == "" {
				continue
			}
			if v, ok := s.Lookup(name); !ok || !truthy(v) {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return nil, errs.NewMissingPropertyError(missing...)
		}
		return s, nil
	}
}

// Freeze creates a pre-phase guard that fails with ImmutablePropertyError if
// the change set touches any resolved key, regardless of the value requested.
// It only applies to updates: a snapshot with no predecessor is being created
// and nothing is frozen yet. Computed keys receive the change set (with the
// predecessor reachable via Prev) and resolve to "" while the property is
// still mutable.
func Freeze(keys ...PropKey) Guard {
	return func(s *Snapshot) (*Snapshot, error) {
		if s.Prev() == nil {
			return s, nil
		}
		var frozen []string
		for _, key := range keys {
			name := key.Resolve(s)
			if name == "" {
				continue
			}
			if s.Has(name) {
				frozen = append(frozen, name)
			}
		}
		if len(frozen) > 0 {
			return nil, errs.NewImmutablePropertyError(frozen...)
		}
		return s, nil
	}
}

// Allow creates a pre-phase guard that fails with UnknownPropertyError if an
// update's change set carries any key outside the allow-list. Creation is
// exempt: the factory controls the initial shape.
func Allow(keys ...string) Guard {
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
	}
	return func(s *Snapshot) (*Snapshot, error) {
		if s.Prev() == nil {
			return s, nil
		}
		var unknown []string
		for _, k := range s.Keys() {
			if !allowed[k] {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			return nil, errs.NewUnknownPropertyError(unknown...)
		}
		return s, nil
	}
}

// ValidationSpec is a conjunction of independently togglable checks over one
// property. A check is skipped when its field is left at the zero value. The
// spec is only evaluated when the property is present and non-empty in the
// snapshot under validation.
type ValidationSpec struct {
	// Prop is the property the spec applies to.
	Prop string

	// IsValid is a custom predicate over the snapshot and the property value.
	IsValid func(s *Snapshot, v any) bool

	// Check is the error-typed variant of IsValid: a non-nil result fails the
	// spec and surfaces through the ValidationError cause chain, so domain
	// checks can report their own error types.
	Check func(s *Snapshot, v any) error

	// Values restricts the property to a closed set.
	Values []any

	// Pattern matches the property's string form.
	Pattern *regexp.Regexp

	// MaxLen caps the length of the property's string form.
	MaxLen int

	// MaxNum caps the property's numeric value.
	MaxNum float64

	// Type pins the property's dynamic type by reflect.Kind name.
	Type string
}

// Validate creates a post-phase guard evaluating every spec whose property is
// present in the merged snapshot. All enabled checks of a spec must pass. On
// any failure the guard fails with a ValidationError naming every invalid
// property; individual check errors are aggregated into the cause.
func Validate(specs ...ValidationSpec) Guard {
	return func(s *Snapshot) (*Snapshot, error) {
		var (
			invalid []string
			cause   error
		)
		for _, spec := range specs {
			v, ok := s.Get(spec.Prop)
			if !ok || !truthy(v) {
				continue
			}
			if err := spec.check(s, v); err != nil {
				invalid = append(invalid, spec.Prop)
				cause = multierr.Append(cause, err)
			}
		}
		if len(invalid) > 0 {
			return nil, errs.NewValidationError(invalid, cause)
		}
		return s, nil
	}
}

func (spec ValidationSpec) check(s *Snapshot, v any) error {
	if spec.IsValid != nil && !spec.IsValid(s, v) {
		return fmt.Errorf("%s failed its validity predicate", spec.Prop)
	}
	if spec.Check != nil {
		if err := spec.Check(s, v); err != nil {
			return err
		}
	}
	if spec.Values != nil && !containsValue(spec.Values, v) {
		return fmt.Errorf("%s is not one of the allowed values", spec.Prop)
	}
	if spec.Pattern != nil && !spec.Pattern.MatchString(fmt.Sprintf("%v", v)) {
		return fmt.Errorf("%s does not match %s", spec.Prop, spec.Pattern)
	}
	if spec.MaxLen > 0 && utf8.RuneCountInString(fmt.Sprintf("%v", v)) > spec.MaxLen {
		return fmt.Errorf("%s is longer than %d", spec.Prop, spec.MaxLen)
	}
	if spec.MaxNum > 0 {
		if num, ok := toFloat(v); !ok || num > spec.MaxNum {
			return fmt.Errorf("%s exceeds %v", spec.Prop, spec.MaxNum)
		}
	}
	if spec.Type != "" && kindName(v) != spec.Type {
		return fmt.Errorf("%s is %s, want %s", spec.Prop, kindName(v), spec.Type)
	}
	return nil
}

// UpdaterSpec declares a derived-property recomputation triggered when Prop
// appears among the proposed changes. Update receives the change set and the
// proposed value and returns the partial object to merge back.
type UpdaterSpec struct {
	Prop   string
	Update func(s *Snapshot, v any) map[string]any
}

// Derive creates a pre-phase guard running every spec whose trigger property
// is present and non-empty among the proposed changes. Returned partials are
// overlaid onto the change set; later specs win on key collision.
func Derive(specs ...UpdaterSpec) Guard {
	return func(s *Snapshot) (*Snapshot, error) {
		overlay := map[string]any{}
		for _, spec := range specs {
			v, ok := s.Get(spec.Prop)
			if !ok || !truthy(v) {
				continue
			}
			for k, derived := range spec.Update(s, v) {
				overlay[k] = derived
			}
		}
		if len(overlay) == 0 {
			return s, nil
		}
		return s.With(overlay), nil
	}
}

// Transform rewrites one property value; used by the Encrypt and Hash guards.
// The concrete implementation (cipher, digest) is injected by the caller.
type Transform func(v any) (any, error)

// Encrypt creates a pre-phase guard replacing each present key's value with
// the output of a reversible transform. Absent keys are left untouched.
func Encrypt(fn Transform, keys ...string) Guard {
	return applyTransform(fn, keys)
}

// Hash creates a pre-phase guard replacing each present key's value with the
// output of a one-way transform. Absent keys are left untouched.
func Hash(fn Transform, keys ...string) Guard {
	return applyTransform(fn, keys)
}

func applyTransform(fn Transform, keys []string) Guard {
	return func(s *Snapshot) (*Snapshot, error) {
		overlay := map[string]any{}
		for _, key := range keys {
			v, ok := s.Get(key)
			if !ok || !truthy(v) {
				continue
			}
			out, err := fn(v)
			if err != nil {
				return nil, err
			}
			overlay[key] = out
		}
		if len(overlay) == 0 {
			return s, nil
		}
		return s.With(overlay), nil
	}
}

func containsValue(values []any, v any) bool {
	for _, candidate := range values {
		if reflect.DeepEqual(candidate, v) {
			return true
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func kindName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).Kind().String()
}
