package core

// MeetingStore persists committed Meeting records. Implementations must
// allocate ids as a single atomic step so concurrent commits from different
// users never observe duplicates.
type MeetingStore interface {
	// Insert assigns the next sequential id (starting at 1), stores the
	// record under it and returns the id.
	Insert(m Meeting) (int, error)
	// Get returns the record and an existence flag; absent ids are a normal
	// outcome, never a crash.
	Get(id int) (Meeting, bool)
	// ListAll returns all records in insertion order.
	ListAll() []Meeting
}

// TaskStore persists committed Task records.
type TaskStore interface {
	Insert(t Task) (int, error)
	Get(id int) (Task, bool)
	// MarkComplete flips the completion flag of the task to true. It returns
	// ErrNotFound for absent ids and succeeds without distinct feedback when
	// the task is already complete.
	MarkComplete(id int) error
	ListAll() []Task
}

// SessionRegistry tracks the active DialogSession per user. Lifecycle is
// explicit: Begin on dialog entry, End on commit or cancellation.
type SessionRegistry interface {
	// Begin creates a session for the user at the dialog's initial state. It
	// returns ErrDialogActive if the user already has one; at most one
	// session per user exists at any time.
	Begin(userID string, kind DialogKind, state DialogState) (*DialogSession, error)
	// Get returns the user's active session, if any.
	Get(userID string) (*DialogSession, bool)
	// End destroys the user's session, discarding all collected fields. It
	// is a no-op when no session exists.
	End(userID string)
}
