package store

import (
	"sync"

	"github.com/Ilya-36/planbot/core"
)

// InMemoryMeetingStore is a volatile MeetingStore keeping committed meetings
// in an insertion-ordered slice. It is safe for concurrent access; id
// allocation and insert happen under one lock so concurrent commits from
// different users never produce duplicate ids. Returned records carry copied
// participant slices to prevent external mutation of internal state.
type InMemoryMeetingStore struct {
	mu       sync.RWMutex
	meetings []core.Meeting
}

// NewInMemoryMeetingStore constructs an empty in-memory meeting store.
func NewInMemoryMeetingStore() *InMemoryMeetingStore {
	return &InMemoryMeetingStore{}
}

// Insert assigns the next sequential id and stores the meeting under it.
func (s *InMemoryMeetingStore) Insert(m core.Meeting) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = len(s.meetings) + 1
	m.Participants = cloneStrings(m.Participants)
	s.meetings = append(s.meetings, m)
	return m.ID, nil
}

// Get returns the meeting for the given id, if present.
func (s *InMemoryMeetingStore) Get(id int) (core.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 1 || id > len(s.meetings) {
		return core.Meeting{}, false
	}
	m := s.meetings[id-1]
	m.Participants = cloneStrings(m.Participants)
	return m, true
}

// ListAll returns all meetings in insertion order.
func (s *InMemoryMeetingStore) ListAll() []core.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Meeting, len(s.meetings))
	copy(out, s.meetings)
	for i := range out {
		out[i].Participants = cloneStrings(out[i].Participants)
	}
	return out
}

// InMemoryTaskStore is a volatile TaskStore with the same layout and
// concurrency contract as InMemoryMeetingStore.
type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks []core.Task
}

// NewInMemoryTaskStore constructs an empty in-memory task store.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{}
}

// Insert assigns the next sequential id and stores the task under it.
func (s *InMemoryTaskStore) Insert(t core.Task) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = len(s.tasks) + 1
	s.tasks = append(s.tasks, t)
	return t.ID, nil
}

// Get returns the task for the given id, if present.
func (s *InMemoryTaskStore) Get(id int) (core.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 1 || id > len(s.tasks) {
		return core.Task{}, false
	}
	return s.tasks[id-1], true
}

// MarkComplete flips the task's completion flag to true. Marking an already
// completed task succeeds again with no distinct outcome (idempotent).
func (s *InMemoryTaskStore) MarkComplete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 1 || id > len(s.tasks) {
		return core.ErrNotFound
	}
	s.tasks[id-1].Completed = true
	return nil
}

// ListAll returns all tasks in insertion order.
func (s *InMemoryTaskStore) ListAll() []core.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
