// Package workflows drives the asynchronous, multi-party side of the order
// lifecycle. Every accepted status change maps to exactly one workflow step:
// an external call that eventually resolves by feeding a follow-up change set
// back through the update pipeline.
//
// Steps are explicit units of work executed by a background Runner. A step
// that needs another external call afterwards enqueues its continuation
// rather than chaining promises; a step that fails is logged with its own
// name, wrapped as WorkflowStepError, and surfaced — never retried and never
// swallowed. Retries, timeouts, and delivery guarantees for the outbound
// calls belong to the collaborator adapters.
package workflows
