package pipeline

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Phase identifies when a guard runs relative to the merge of a change set.
type Phase int

const (
	// PhaseUnknown is the zero value and is never a valid attachment target.
	PhaseUnknown Phase = iota

	// PhasePre runs guards over the proposed change set before it is merged
	// into the current snapshot.
	PhasePre

	// PhasePost runs guards over the merged result after the change set is
	// applied.
	PhasePost
)

// String returns the symbolic name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePre:
		return "pre"
	case PhasePost:
		return "post"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Validate checks that the phase is one of the two supported phases.
func (p Phase) Validate() error {
	if p != PhasePre && p != PhasePost {
		return errs.NewInvalidMixinPhaseError(p.String())
	}
	return nil
}

// Guard is a pure function over a snapshot (or a change set): it returns an
// augmented snapshot or an error. Guards must not block and must not mutate
// their input.
type Guard func(*Snapshot) (*Snapshot, error)

// Mixin is a named guard registered in a pipeline phase. The name is the
// guard's stable identity: attaching a second mixin under an existing name in
// the same phase is a no-op.
type Mixin struct {
	Name string
	Fn   Guard
}

// Pipeline holds the ordered guard configuration of one entity type and
// orchestrates its updates. The guard lists are static: built once when the
// entity type is defined, then shared by every update. Composition order
// within a phase is attachment order.
type Pipeline struct {
	pre      []Mixin
	post     []Mixin
	attached map[Phase]map[string]bool
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{
		attached: map[Phase]map[string]bool{
			PhasePre:  {},
			PhasePost: {},
		},
	}
}

// Attach registers a named guard in the given phase. Attaching is idempotent
// per (phase, name): if a mixin with this name already exists in the phase the
// pipeline is unchanged. Returns InvalidMixinPhaseError for any phase other
// than PhasePre or PhasePost.
func (p *Pipeline) Attach(phase Phase, name string, fn Guard) error {
	if err := phase.Validate(); err != nil {
		return err
	}
	if p.attached[phase][name] {
		return nil
	}
	p.attached[phase][name] = true

	mixin := Mixin{Name: name, Fn: fn}
	switch phase {
	case PhasePre:
		p.pre = append(p.pre, mixin)
	case PhasePost:
		p.post = append(p.post, mixin)
	}
	return nil
}

// Pre attaches a named guard to the pre phase and returns the pipeline for
// chaining during entity-type definition.
func (p *Pipeline) Pre(name string, fn Guard) *Pipeline {
	_ = p.Attach(PhasePre, name, fn)
	return p
}

// Post attaches a named guard to the post phase and returns the pipeline for
// chaining during entity-type definition.
func (p *Pipeline) Post(name string, fn Guard) *Pipeline {
	_ = p.Attach(PhasePost, name, fn)
	return p
}

// Mixins returns the mixins registered in a phase, in composition order.
func (p *Pipeline) Mixins(phase Phase) []Mixin {
	switch phase {
	case PhasePre:
		return append([]Mixin(nil), p.pre...)
	case PhasePost:
		return append([]Mixin(nil), p.post...)
	default:
		return nil
	}
}

// Process applies a change set to the current snapshot and returns the new
// snapshot:
//
//  1. The change set is tagged with the current snapshot as its predecessor.
//  2. Pre-phase guards compose left to right over the change set.
//  3. The (possibly transformed) changes are shallow-merged onto the current
//     snapshot; changes win on key collision.
//  4. Post-phase guards compose left to right over the merged result.
//
// A nil current snapshot means creation: update-only guards see no
// predecessor and skip their checks. Any guard error aborts the update; the
// current snapshot is untouched and nothing is returned.
func (p *Pipeline) Process(current *Snapshot, changes map[string]any) (*Snapshot, error) {
	chg := newChanges(changes, current)

	var err error
	for _, m := range p.pre {
		if chg, err = m.Fn(chg); err != nil {
			return nil, err
		}
	}

	merged := merge(current, chg)
	for _, m := range p.post {
		if merged, err = m.Fn(merged); err != nil {
			return nil, err
		}
	}

	return merged, nil
}

// merge shallow-merges the change set onto the current snapshot into a fresh
// snapshot whose predecessor is the current one.
func merge(current, changes *Snapshot) *Snapshot {
	if current == nil {
		return &Snapshot{values: copyValues(changes.values)}
	}

	values := copyValues(current.values)
	for k, v := range changes.values {
		values[k] = v
	}
	return &Snapshot{values: values, prev: current}
}
