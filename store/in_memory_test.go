package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Ilya-36/planbot/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.MeetingStore = (*InMemoryMeetingStore)(nil)
	_ core.TaskStore    = (*InMemoryTaskStore)(nil)
)

func TestInMemoryMeetingStore_SequentialIDs(t *testing.T) {
	svc := NewInMemoryMeetingStore()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	id1, err := svc.Insert(core.Meeting{Date: date, Participants: []string{"alice", "bob"}})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	id2, _ := svc.Insert(core.Meeting{Date: date, Participants: []string{"carol"}})
	if id1 != 1 || id2 != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", id1, id2)
	}

	m, ok := svc.Get(1)
	if !ok || m.ID != 1 || len(m.Participants) != 2 {
		t.Fatalf("unexpected meeting: %+v", m)
	}
	// mutation safety (returned participants are a copy)
	m.Participants[0] = "mallory"
	m2, _ := svc.Get(1)
	if m2.Participants[0] != "alice" {
		t.Fatalf("expected copy isolation, got %q", m2.Participants[0])
	}

	if _, ok := svc.Get(99); ok {
		t.Error("absent id should not be found")
	}
}

func TestInMemoryTaskStore_MarkComplete(t *testing.T) {
	svc := NewInMemoryTaskStore()
	id, _ := svc.Insert(core.Task{Description: "write docs"})

	if err := svc.MarkComplete(id); err != nil {
		t.Fatalf("mark complete failed: %v", err)
	}
	task, _ := svc.Get(id)
	if !task.Completed {
		t.Fatal("task should be completed")
	}

	// idempotent: second call succeeds and the flag stays true
	if err := svc.MarkComplete(id); err != nil {
		t.Fatalf("second mark complete should succeed: %v", err)
	}
	task, _ = svc.Get(id)
	if !task.Completed {
		t.Fatal("flag should remain true")
	}

	if err := svc.MarkComplete(42); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(svc.ListAll()) != 1 {
		t.Fatal("failed mark must leave the store unchanged")
	}
}

func TestInMemoryTaskStore_ListAllOrder(t *testing.T) {
	svc := NewInMemoryTaskStore()
	for _, d := range []string{"first", "second", "third"} {
		if _, err := svc.Insert(core.Task{Description: d}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	all := svc.ListAll()
	if len(all) != 3 || all[0].Description != "first" || all[2].Description != "third" {
		t.Fatalf("expected insertion order, got %#v", all)
	}
	// returned slice is a copy
	all[0].Description = "changed"
	if got, _ := svc.Get(1); got.Description != "first" {
		t.Fatal("ListAll should copy records")
	}
}

func TestInMemoryTaskStore_ConcurrentInserts(t *testing.T) {
	svc := NewInMemoryTaskStore()
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Insert(core.Task{Description: "concurrent"}); err != nil {
				t.Errorf("insert error: %v", err)
			}
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, task := range svc.ListAll() {
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 unique ids, got %d", len(seen))
	}
}
