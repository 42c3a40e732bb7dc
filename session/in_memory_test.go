package session

import (
	"errors"
	"testing"

	"github.com/Ilya-36/planbot/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionRegistry = (*InMemoryRegistry)(nil)

func TestInMemoryRegistry_Lifecycle(t *testing.T) {
	reg := NewInMemoryRegistry()

	if _, ok := reg.Get("u1"); ok {
		t.Fatal("no session should exist before Begin")
	}

	sess, err := reg.Begin("u1", core.KindPlanMeeting, core.StateAwaitingDate)
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if sess.Kind != core.KindPlanMeeting || sess.CurrentState() != core.StateAwaitingDate {
		t.Fatalf("unexpected session: %+v", sess)
	}

	// at most one session per user
	if _, err := reg.Begin("u1", core.KindAddTask, core.StateAwaitingDescription); !errors.Is(err, core.ErrDialogActive) {
		t.Fatalf("expected ErrDialogActive, got %v", err)
	}

	// other users are unaffected
	if _, err := reg.Begin("u2", core.KindAddTask, core.StateAwaitingDescription); err != nil {
		t.Fatalf("second user should begin freely: %v", err)
	}

	reg.End("u1")
	if _, ok := reg.Get("u1"); ok {
		t.Fatal("session should be destroyed after End")
	}

	// End on an absent session is a no-op
	reg.End("u1")

	if _, err := reg.Begin("u1", core.KindCompleteTask, core.StateAwaitingTaskID); err != nil {
		t.Fatalf("begin after end failed: %v", err)
	}
}
