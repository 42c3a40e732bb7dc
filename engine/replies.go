package engine

// Every outbound surface of the engine is one of these plain-text replies or
// a record summary. Transports forward them verbatim.
const (
	replyStart = "Hi! I help you plan meetings and manage tasks. " +
		"Use /plan_meeting to schedule a meeting, /add_task to add a new task, " +
		"/complete_task to mark a task as done and /list_tasks to see all tasks. " +
		"Use /help to see every available command."

	replyHelp = "Available commands:\n" +
		"/start - Start the bot\n" +
		"/help - Show this help\n" +
		"/plan_meeting - Schedule a meeting\n" +
		"/add_task - Add a task\n" +
		"/list_tasks - List all tasks\n" +
		"/complete_task - Mark a task as complete\n" +
		"/cancel - Cancel the current operation"

	replyCancelled       = "Operation cancelled."
	replyNothingToCancel = "Nothing to cancel."
	replyDialogActive    = "You already have an operation in progress. Finish it or send /cancel first."
	replyIdle            = "No operation in progress. Send /help to see the available commands."
	replyUnknownCommand  = "Unknown command. Send /help to see the available commands."
	replyNoTasks         = "No tasks found."
	replyTaskNotFound    = "Invalid task id. Please try again."
	replyInternal        = "Something went wrong. The operation was cancelled; please start again."
)
