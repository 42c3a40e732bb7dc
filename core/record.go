package core

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates in prompts and summaries.
const DateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time without a date or zone.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String renders the time in 24-hour HH:MM form.
func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// TimeRange is the start/end pair collected for a meeting. Start is not
// required to precede End; see validate.TimeRange.
type TimeRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// String renders the range in HH:MM-HH:MM form.
func (r TimeRange) String() string { return r.Start.String() + "-" + r.End.String() }

// Meeting is a committed meeting record. It is immutable once inserted into
// a MeetingStore; the store assigns the sequential ID.
type Meeting struct {
	ID           int       `json:"id"`
	Date         time.Time `json:"date"`
	Time         TimeRange `json:"time"`
	Participants []string  `json:"participants"`
}

// Summary returns the human-readable confirmation line for the meeting.
func (m Meeting) Summary() string {
	return fmt.Sprintf("Meeting scheduled for %s at %s with %s. Meeting id: %d. You can refer to this meeting by its id.",
		m.Date.Format(DateLayout), m.Time, strings.Join(m.Participants, ", "), m.ID)
}

// Task is a committed task record. Only Completed may change after insert,
// and only via TaskStore.MarkComplete (false -> true).
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Assignee    string    `json:"assignee,omitempty"`
	Completed   bool      `json:"completed"`
}

// StatusTag returns the listing annotation for the task's completion flag.
func (t Task) StatusTag() string {
	if t.Completed {
		return "[DONE]"
	}
	return "[PENDING]"
}

// Summary returns the human-readable confirmation line for the task.
func (t Task) Summary() string {
	return fmt.Sprintf("Task added: %s, due %s. Task id: %d. Assignee: %s. You can refer to this task by its id.",
		t.Description, t.DueDate.Format(DateLayout), t.ID, t.Assignee)
}
