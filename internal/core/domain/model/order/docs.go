// Package order implements the Order aggregate on top of the guard pipeline.
//
// The aggregate's business rules are expressed as a static pipeline
// configuration rather than imperative setters: required properties, freeze
// conditions tied to the previous status, the property allow-list, derived
// total recomputation, and post-merge validation including the status
// transition table. Every order mutation flows through that configuration,
// so an Order can only ever hold a snapshot the rules accepted.
package order
