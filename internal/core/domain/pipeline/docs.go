// Package pipeline implements the guarded update engine for immutable domain
// models. A model is represented as a Snapshot: an immutable key/value view of
// an entity at one version, carrying an out-of-band reference to the snapshot
// it was derived from.
//
// Every mutation goes through a Pipeline: an ordered, name-deduplicated set of
// guard functions partitioned into two phases. Pre-phase guards run over the
// proposed change set before it is merged into the current snapshot; post-phase
// guards run over the merged result. Any guard failure aborts the update before
// a new snapshot is produced, so the caller never observes partial application.
//
// The guard library covers the recurring rules of the domain:
//   - Require: properties that must be present and non-empty
//   - Freeze: properties that become immutable under a condition
//   - Allow: whitelisting of updatable properties
//   - Validate: post-merge validation specs (predicate, enum, pattern, type, ceilings)
//   - Derive: recomputation of derived properties when their trigger changes
//   - Encrypt / Hash: one-way or reversible transforms over sensitive properties
//
// Guard lists are static configuration owned by each entity type: the Pipeline
// is built once at definition time and shared by every update of that type.
// Snapshots stay pure data; no guard state is smuggled inside the value.
package pipeline
