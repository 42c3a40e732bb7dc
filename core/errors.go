package core

import "fmt"

var (
	// ErrNotFound is returned when a referenced record id does not exist in
	// the underlying store. Recoverable: the dialog self-loops with guidance.
	ErrNotFound = fmt.Errorf("record not found")

	// ErrDialogActive is returned when a dialog entry point is hit while the
	// user already has a session in progress.
	ErrDialogActive = fmt.Errorf("another dialog is already active")

	// ErrNoActiveDialog signals a dialog transition for a user with no
	// session. Transports surface it as idle behavior, never as a failure.
	ErrNoActiveDialog = fmt.Errorf("no active dialog")
)
