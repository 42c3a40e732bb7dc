package testutil

import (
	"testing"

	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/engine"
)

// RunDialog enters a dialog via its command and feeds the inputs in order,
// returning every reply. The last reply is the commit confirmation when the
// inputs complete the chain.
func RunDialog(e *engine.Engine, userID string, cmd core.Command, inputs ...string) []core.Outgoing {
	replies := []core.Outgoing{e.OnCommand(userID, cmd)}
	for _, in := range inputs {
		replies = append(replies, e.OnText(userID, in))
	}
	return replies
}

// SeedTasks commits n tasks through the full add_task dialog and returns
// nothing; ids are sequential from the store's current size.
func SeedTasks(t *testing.T, e *engine.Engine, userID string, descriptions ...string) {
	t.Helper()
	for _, desc := range descriptions {
		replies := RunDialog(e, userID, core.CommandAddTask, desc, "2024-06-01", "bob")
		last := replies[len(replies)-1].Text
		if last == "" {
			t.Fatalf("seeding task %q produced no confirmation", desc)
		}
	}
}
