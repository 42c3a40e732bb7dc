package engine_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/engine"
	"github.com/Ilya-36/planbot/internal/testutil"
)

func TestPlanMeeting_FullDialog(t *testing.T) {
	e := engine.New()

	replies := testutil.RunDialog(e, "alice", core.CommandPlanMeeting,
		"2024-03-15", "10:00-11:00", "alice, bob")

	require.Len(t, replies, 4)
	assert.Equal(t, "Enter the meeting date (YYYY-MM-DD):", replies[0].Text)
	assert.Equal(t, "Enter the meeting time range (HH:MM-HH:MM):", replies[1].Text)
	assert.Equal(t, "Enter the participants (comma-separated identifiers):", replies[2].Text)
	assert.Contains(t, replies[3].Text, "Meeting id: 1")
	assert.Contains(t, replies[3].Text, "2024-03-15")
	assert.Contains(t, replies[3].Text, "10:00-11:00")
	assert.Contains(t, replies[3].Text, "alice, bob")

	m, ok := e.Meetings().Get(1)
	require.True(t, ok)
	assert.Equal(t, []string{"alice", "bob"}, m.Participants)

	// a second independent dialog gets id 2
	replies = testutil.RunDialog(e, "bob", core.CommandPlanMeeting,
		"2024-03-16", "12:00-13:00", "bob")
	assert.Contains(t, replies[len(replies)-1].Text, "Meeting id: 2")
}

func TestPlanMeeting_InvalidDateSelfLoops(t *testing.T) {
	e := engine.New()
	e.OnCommand("alice", core.CommandPlanMeeting)

	out := e.OnText("alice", "15.03.2024")
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD. Please try again.", out.Text)

	// the session survived the failure and accepts a valid retry
	out = e.OnText("alice", "2024-03-15")
	assert.Equal(t, "Enter the meeting time range (HH:MM-HH:MM):", out.Text)
}

func TestAddTask_FullDialogAndList(t *testing.T) {
	e := engine.New()

	replies := testutil.RunDialog(e, "alice", core.CommandAddTask,
		"write release notes", "2024-04-01", "bob")
	last := replies[len(replies)-1].Text
	assert.Contains(t, last, "Task id: 1")
	assert.Contains(t, last, "write release notes")
	assert.Contains(t, last, "Assignee: bob")

	out := e.OnCommand("carol", core.CommandListTasks)
	assert.Contains(t, out.Text, "ID: 1 [PENDING] write release notes")
	assert.Contains(t, out.Text, "assignee: bob")
}

func TestAddTask_EmptyAssigneeAllowed(t *testing.T) {
	e := engine.New()
	replies := testutil.RunDialog(e, "alice", core.CommandAddTask,
		"pay invoices", "2024-04-02", "   ")
	assert.Contains(t, replies[len(replies)-1].Text, "Task id: 1")

	task, ok := e.Tasks().Get(1)
	require.True(t, ok)
	assert.Empty(t, task.Assignee)
}

func TestCompleteTask_UnknownIDSelfLoops(t *testing.T) {
	e := engine.New()
	testutil.SeedTasks(t, e, "alice", "only task")

	e.OnCommand("alice", core.CommandCompleteTask)
	out := e.OnText("alice", "42")
	assert.Equal(t, "Invalid task id. Please try again.", out.Text)

	// store unchanged, dialog still awaiting an id
	task, _ := e.Tasks().Get(1)
	assert.False(t, task.Completed)

	out = e.OnText("alice", "1")
	assert.Equal(t, "Task 1 marked as complete.", out.Text)
	task, _ = e.Tasks().Get(1)
	assert.True(t, task.Completed)
}

func TestCompleteTask_MalformedIDSelfLoops(t *testing.T) {
	e := engine.New()
	testutil.SeedTasks(t, e, "alice", "only task")

	e.OnCommand("alice", core.CommandCompleteTask)
	out := e.OnText("alice", "first one")
	assert.Equal(t, "Invalid task id. Provide a number. Please try again.", out.Text)

	out = e.OnText("alice", "1")
	assert.Equal(t, "Task 1 marked as complete.", out.Text)
}

func TestCompleteTask_Idempotent(t *testing.T) {
	e := engine.New()
	testutil.SeedTasks(t, e, "alice", "only task")

	testutil.RunDialog(e, "alice", core.CommandCompleteTask, "1")
	replies := testutil.RunDialog(e, "alice", core.CommandCompleteTask, "1")
	assert.Equal(t, "Task 1 marked as complete.", replies[len(replies)-1].Text)
}

func TestCancel_DestroysSession(t *testing.T) {
	e := engine.New()
	e.OnCommand("alice", core.CommandPlanMeeting)
	e.OnText("alice", "2024-03-15")

	out := e.OnCommand("alice", core.CommandCancel)
	assert.Equal(t, "Operation cancelled.", out.Text)

	// a subsequent message is not a continuation of the cancelled dialog
	out = e.OnText("alice", "10:00-11:00")
	assert.Equal(t, "No operation in progress. Send /help to see the available commands.", out.Text)

	// cancel with nothing active is a harmless no-op
	out = e.OnCommand("alice", core.CommandCancel)
	assert.Equal(t, "Nothing to cancel.", out.Text)
}

func TestEntryWhileDialogActiveIsRefused(t *testing.T) {
	e := engine.New()
	e.OnCommand("alice", core.CommandPlanMeeting)

	out := e.OnCommand("alice", core.CommandAddTask)
	assert.Equal(t, "You already have an operation in progress. Finish it or send /cancel first.", out.Text)

	// the original dialog is still where it was
	out = e.OnText("alice", "2024-03-15")
	assert.Equal(t, "Enter the meeting time range (HH:MM-HH:MM):", out.Text)
}

func TestListTasks_EmptyAndAnnotated(t *testing.T) {
	e := engine.New()

	out := e.OnCommand("alice", core.CommandListTasks)
	assert.Equal(t, "No tasks found.", out.Text)

	testutil.SeedTasks(t, e, "alice", "first", "second", "third")
	testutil.RunDialog(e, "alice", core.CommandCompleteTask, "2")

	out = e.OnCommand("alice", core.CommandListTasks)
	lines := strings.Split(out.Text, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Current tasks:", lines[0])
	assert.Contains(t, lines[1], "ID: 1 [PENDING] first")
	assert.Contains(t, lines[2], "ID: 2 [DONE] second")
	assert.Contains(t, lines[3], "ID: 3 [PENDING] third")
}

func TestStartHelpAndIdleText(t *testing.T) {
	e := engine.New()

	assert.Contains(t, e.OnCommand("alice", core.CommandStart).Text, "/plan_meeting")
	assert.Contains(t, e.OnCommand("alice", core.CommandHelp).Text, "/cancel - Cancel the current operation")
	assert.Equal(t, "No operation in progress. Send /help to see the available commands.",
		e.OnText("alice", "hello?").Text)
	assert.Equal(t, "Unknown command. Send /help to see the available commands.",
		e.OnCommand("alice", core.Command("selfdestruct")).Text)
}

func TestConcurrentCommits_UniqueIDs(t *testing.T) {
	e := engine.New()

	const users = 20
	wg := sync.WaitGroup{}
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", i)
			testutil.RunDialog(e, user, core.CommandPlanMeeting,
				"2024-03-15", "10:00-11:00", user)
		}(i)
	}
	wg.Wait()

	meetings := e.Meetings().ListAll()
	require.Len(t, meetings, users)
	seen := make(map[int]bool)
	for _, m := range meetings {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}
}
