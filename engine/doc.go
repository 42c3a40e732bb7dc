// Package engine implements the dialog execution engine: the single entry
// point where inbound turns become state-machine transitions and, on
// completion, atomic record commits.
//
// The engine owns the record stores and the session registry and consumes
// the declarative chains from package dialog. Per user, turns are processed
// strictly one at a time (each transition is atomic with respect to that
// user's session); turns for different users interleave freely, with store
// id allocation being the only shared atomic step. No error in this package
// is fatal to the process: validation failures self-loop, unknown record
// ids self-loop, and misrouted text resolves to idle guidance.
package engine
