package core

// Outgoing is the single plain-text reply produced for one inbound turn. No
// structured payloads cross the transport boundary.
type Outgoing struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// Command is a dialog entry point or read-only query delivered by the
// transport, without the leading slash.
type Command string

const (
	CommandStart        Command = "start"
	CommandHelp         Command = "help"
	CommandPlanMeeting  Command = "plan_meeting"
	CommandAddTask      Command = "add_task"
	CommandCompleteTask Command = "complete_task"
	CommandListTasks    Command = "list_tasks"
	CommandCancel       Command = "cancel"
)

// ParseCommand maps a raw command name to a known Command. Unknown names
// return false; routing unknown commands is a transport concern.
func ParseCommand(name string) (Command, bool) {
	switch Command(name) {
	case CommandStart, CommandHelp, CommandPlanMeeting, CommandAddTask, CommandCompleteTask, CommandListTasks, CommandCancel:
		return Command(name), true
	default:
		return "", false
	}
}
