// Package store provides volatile in-memory implementations of the record
// stores. State is process-lifetime only; ids are sequential from 1,
// monotonically increasing and never reused (no deletion path exists).
package store
