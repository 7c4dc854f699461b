package pipeline

// PropKey names a property a guard applies to. It is a closed variant: either
// a literal name, or a function computing the name from the snapshot under
// inspection. Computed keys enable conditional rules ("required only when
// completing"): resolving to the empty string means the rule does not apply
// to this snapshot.
type PropKey struct {
	name string
	fn   func(*Snapshot) string
}

// Key creates a literal property key.
func Key(name string) PropKey {
	return PropKey{name: name}
}

// KeyFunc creates a computed property key. The function receives the snapshot
// the guard is inspecting (a change set during the pre phase, with its
// predecessor reachable via Prev) and returns the property name, or "" when
// the rule is inactive.
func KeyFunc(fn func(*Snapshot) string) PropKey {
	return PropKey{fn: fn}
}

// Resolve evaluates the key against a snapshot. An empty result means the
// key yields no property right now and the guard skips it.
func (k PropKey) Resolve(s *Snapshot) string {
	if k.fn != nil {
		return k.fn(s)
	}
	return k.name
}
