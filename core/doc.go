// Package core provides the foundational domain types and interfaces used by
// PlanBot. It defines the core abstractions for:
//
//   - Records (Meeting and Task, committed atomically with sequential ids)
//   - Dialogs (kinds, states and the per-user DialogSession scratch space)
//   - Pluggable stores for committed records and active sessions
//   - The Outgoing message type returned for every inbound turn
//
// The package intentionally keeps implementation concerns (in-memory stores,
// the transition engine, transports) out of scope, exposing small interfaces
// to enable custom backends and isolated testing.
package core
