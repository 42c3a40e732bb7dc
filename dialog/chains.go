package dialog

import (
	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/validate"
)

// PlanMeeting is the date -> time range -> participants chain committing a
// Meeting record.
var PlanMeeting = Chain{
	Kind: core.KindPlanMeeting,
	Steps: []Step{
		{
			State:  core.StateAwaitingDate,
			Field:  core.FieldMeetingDate,
			Prompt: "Enter the meeting date (YYYY-MM-DD):",
			Retry:  "Invalid date format. Use YYYY-MM-DD. Please try again.",
			Parse:  func(raw string) (interface{}, error) { return validate.Date(raw) },
		},
		{
			State:  core.StateAwaitingTimeRange,
			Field:  core.FieldMeetingTime,
			Prompt: "Enter the meeting time range (HH:MM-HH:MM):",
			Retry:  "Invalid time format. Use HH:MM-HH:MM. Please try again.",
			Parse:  func(raw string) (interface{}, error) { return validate.TimeRange(raw) },
		},
		{
			State:  core.StateAwaitingParticipants,
			Field:  core.FieldMeetingParticipants,
			Prompt: "Enter the participants (comma-separated identifiers):",
			Retry:  "Enter at least one participant identifier, separated by commas.",
			Parse:  func(raw string) (interface{}, error) { return validate.Participants(raw) },
		},
	},
}

// AddTask is the description -> due date -> assignee chain committing a
// Task record.
var AddTask = Chain{
	Kind: core.KindAddTask,
	Steps: []Step{
		{
			State:  core.StateAwaitingDescription,
			Field:  core.FieldTaskDescription,
			Prompt: "Enter the task description:",
			Retry:  "The description must not be empty. Please try again.",
			Parse:  func(raw string) (interface{}, error) { return validate.Text(raw) },
		},
		{
			State:  core.StateAwaitingDueDate,
			Field:  core.FieldTaskDueDate,
			Prompt: "Enter the due date (YYYY-MM-DD):",
			Retry:  "Invalid date format. Use YYYY-MM-DD. Please try again.",
			Parse:  func(raw string) (interface{}, error) { return validate.Date(raw) },
		},
		{
			State:  core.StateAwaitingAssignee,
			Field:  core.FieldTaskAssignee,
			Prompt: "Enter the assignee (optional, send an empty message to skip):",
			Retry:  "Enter an assignee name or an empty message.",
			Parse:  func(raw string) (interface{}, error) { return validate.OptionalText(raw) },
		},
	},
}

// CompleteTask is the single-step chain flipping a task's completion flag.
// The existence check against the task store is a business rule applied by
// the engine after format validation; its failure self-loops through the
// same retry mechanism.
var CompleteTask = Chain{
	Kind: core.KindCompleteTask,
	Steps: []Step{
		{
			State:  core.StateAwaitingTaskID,
			Field:  core.FieldTaskID,
			Prompt: "Enter the id of the task to mark as complete:",
			Retry:  "Invalid task id. Provide a number. Please try again.",
			Parse:  func(raw string) (interface{}, error) { return validate.ID(raw) },
		},
	},
}

// ForKind returns the chain for a dialog kind.
func ForKind(kind core.DialogKind) (Chain, bool) {
	switch kind {
	case core.KindPlanMeeting:
		return PlanMeeting, true
	case core.KindAddTask:
		return AddTask, true
	case core.KindCompleteTask:
		return CompleteTask, true
	default:
		return Chain{}, false
	}
}
