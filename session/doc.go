// Package session provides the in-memory registry of active dialog
// sessions. One session exists per user at most; the registry owns the
// create/destroy lifecycle while the engine mutates session contents.
package session
