package core

import (
	"sync"
	"time"
)

// DialogKind identifies one of the guided multi-turn forms.
type DialogKind string

const (
	// KindPlanMeeting collects date, time range and participants for a Meeting.
	KindPlanMeeting DialogKind = "plan_meeting"
	// KindAddTask collects description, due date and assignee for a Task.
	KindAddTask DialogKind = "add_task"
	// KindCompleteTask collects a task id and flips its completion flag.
	KindCompleteTask DialogKind = "complete_task"
)

// DialogState identifies the field a dialog is currently waiting for.
type DialogState string

const (
	StateAwaitingDate         DialogState = "awaiting_date"
	StateAwaitingTimeRange    DialogState = "awaiting_time_range"
	StateAwaitingParticipants DialogState = "awaiting_participants"

	StateAwaitingDescription DialogState = "awaiting_description"
	StateAwaitingDueDate     DialogState = "awaiting_due_date"
	StateAwaitingAssignee    DialogState = "awaiting_assignee"

	StateAwaitingTaskID DialogState = "awaiting_task_id"
)

// Field names under which validated values are accumulated in a session.
const (
	FieldMeetingDate         = "meeting_date"
	FieldMeetingTime         = "meeting_time"
	FieldMeetingParticipants = "meeting_participants"
	FieldTaskDescription     = "task_description"
	FieldTaskDueDate         = "task_due_date"
	FieldTaskAssignee        = "task_assignee"
	FieldTaskID              = "task_id"
)

// DialogSession is the per-user scratch space for one in-progress dialog.
// It accumulates validated field values across turns and is destroyed on
// commit, cancellation or terminal failure. A user has at most one session
// at a time; the SessionRegistry enforces that invariant.
//
// Contract:
//   - Field mutations update the Updated timestamp
//   - Fields returns a defensive copy to avoid external mutation
//   - Clone performs deep copies for safe divergence.
type DialogSession struct {
	UserID  string                 `json:"user_id"`
	Kind    DialogKind             `json:"kind"`
	State   DialogState            `json:"state"`
	Fields  map[string]interface{} `json:"fields"`
	Created time.Time              `json:"created"`
	Updated time.Time              `json:"updated"`
	mu      sync.RWMutex
}

// NewDialogSession creates a session for the given user positioned at the
// dialog's initial state.
func NewDialogSession(userID string, kind DialogKind, state DialogState) *DialogSession {
	now := time.Now()
	return &DialogSession{UserID: userID, Kind: kind, State: state, Fields: map[string]interface{}{}, Created: now, Updated: now}
}

// Field returns the value and existence flag for a collected field.
func (s *DialogSession) Field(name string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.Fields[name]
	return v, ok
}

// SetField stores a validated value under the given field name updating the
// Updated timestamp.
func (s *DialogSession) SetField(name string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fields[name] = value
	s.Updated = time.Now()
}

// Advance moves the session to the next state in its dialog chain.
func (s *DialogSession) Advance(next DialogState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.State = next
	s.Updated = time.Now()
}

// CurrentState returns the state the session is waiting in.
func (s *DialogSession) CurrentState() DialogState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.State
}

// FieldMap returns a copy of all collected fields to prevent callers from
// mutating internal state.
func (s *DialogSession) FieldMap() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fields := make(map[string]interface{}, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	return fields
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *DialogSession) Clone() *DialogSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &DialogSession{UserID: s.UserID, Kind: s.Kind, State: s.State, Fields: make(map[string]interface{}, len(s.Fields)), Created: s.Created, Updated: s.Updated}
	for k, v := range s.Fields {
		clone.Fields[k] = v
	}
	return clone
}
