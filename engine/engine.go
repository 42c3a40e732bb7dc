package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/dialog"
	"github.com/Ilya-36/planbot/logging"
	"github.com/Ilya-36/planbot/session"
	"github.com/Ilya-36/planbot/store"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Committed record stores.
	Meetings core.MeetingStore
	Tasks    core.TaskStore
	// Active dialog sessions.
	Sessions core.SessionRegistry
	// Logging services.
	Logger logging.Logger
}

// Engine routes inbound turns to the active dialog, executes one transition
// per message and commits fully-collected records. Public methods are safe
// for concurrent use; turns for the same user are serialized.
type Engine struct {
	meetings core.MeetingStore
	tasks    core.TaskStore
	sessions core.SessionRegistry
	logger   logging.Logger

	userLocks map[string]*sync.Mutex
	mu        sync.Mutex
}

// New constructs an Engine with optional overrides. Defaults are in-memory
// stores and a NoOp logger, safe for local development and testing.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Meetings: store.NewInMemoryMeetingStore(),
		Tasks:    store.NewInMemoryTaskStore(),
		Sessions: session.NewInMemoryRegistry(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{
		meetings:  opts.Meetings,
		tasks:     opts.Tasks,
		sessions:  opts.Sessions,
		logger:    opts.Logger,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// Meetings exposes the meeting store for read-only collaborators.
func (e *Engine) Meetings() core.MeetingStore { return e.meetings }

// Tasks exposes the task store for read-only collaborators.
func (e *Engine) Tasks() core.TaskStore { return e.tasks }

// userLock returns the mutex serializing turns for one user.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.userLocks[userID] = l
	}
	return l
}

// OnCommand handles a dialog entry point or read-only query and returns
// exactly one outgoing message.
func (e *Engine) OnCommand(userID string, cmd core.Command) core.Outgoing {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	turnID := uuid.NewString()
	e.logger.Debug("command received user_id=%s turn_id=%s command=%s", userID, turnID, cmd)

	switch cmd {
	case core.CommandStart:
		return e.reply(userID, replyStart)
	case core.CommandHelp:
		return e.reply(userID, replyHelp)
	case core.CommandListTasks:
		return e.listTasks(userID)
	case core.CommandCancel:
		return e.cancel(userID, turnID)
	case core.CommandPlanMeeting:
		return e.enter(userID, turnID, core.KindPlanMeeting)
	case core.CommandAddTask:
		return e.enter(userID, turnID, core.KindAddTask)
	case core.CommandCompleteTask:
		return e.enter(userID, turnID, core.KindCompleteTask)
	default:
		return e.reply(userID, replyUnknownCommand)
	}
}

// OnText handles one turn of an in-progress dialog and returns exactly one
// outgoing message. Text arriving with no active dialog is answered with
// idle guidance, never treated as a failure.
func (e *Engine) OnText(userID, text string) core.Outgoing {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	turnID := uuid.NewString()

	sess, ok := e.sessions.Get(userID)
	if !ok {
		e.logger.Debug("text with no active dialog user_id=%s turn_id=%s", userID, turnID)
		return e.reply(userID, replyIdle)
	}

	chain, ok := dialog.ForKind(sess.Kind)
	if !ok {
		// A session of an unknown kind cannot make progress; drop it.
		e.logger.Error("session with unknown dialog kind user_id=%s kind=%s", userID, sess.Kind)
		e.sessions.End(userID)
		return e.reply(userID, replyInternal)
	}

	state := sess.CurrentState()
	outcome, err := chain.Transition(state, text)
	if err != nil {
		e.logger.Error("transition rejected user_id=%s turn_id=%s: %v", userID, turnID, err)
		e.sessions.End(userID)
		return e.reply(userID, replyInternal)
	}

	switch outcome.Kind {
	case dialog.OutcomeRetry:
		e.logger.Debug("dialog self-loop user_id=%s turn_id=%s dialog=%s state=%s", userID, turnID, sess.Kind, state)
		return e.reply(userID, outcome.Reply)
	case dialog.OutcomeAdvance:
		sess.SetField(outcome.Field, outcome.Value)
		sess.Advance(outcome.State)
		e.logger.Debug("dialog advanced user_id=%s turn_id=%s dialog=%s from=%s to=%s", userID, turnID, sess.Kind, state, outcome.State)
		return e.reply(userID, outcome.Reply)
	default:
		return e.commit(userID, turnID, sess, outcome)
	}
}

// enter starts a new dialog for the user, refusing when one is active so
// the one-session-per-user invariant holds under any transport routing.
func (e *Engine) enter(userID, turnID string, kind core.DialogKind) core.Outgoing {
	chain, _ := dialog.ForKind(kind)
	if _, err := e.sessions.Begin(userID, kind, chain.First().State); err != nil {
		if errors.Is(err, core.ErrDialogActive) {
			return e.reply(userID, replyDialogActive)
		}
		e.logger.Error("failed to begin dialog user_id=%s turn_id=%s: %v", userID, turnID, err)
		return e.reply(userID, replyInternal)
	}
	e.logger.Info("dialog started user_id=%s turn_id=%s dialog=%s", userID, turnID, kind)
	return e.reply(userID, chain.First().Prompt)
}

func (e *Engine) cancel(userID, turnID string) core.Outgoing {
	if _, ok := e.sessions.Get(userID); !ok {
		return e.reply(userID, replyNothingToCancel)
	}
	e.sessions.End(userID)
	e.logger.Info("dialog cancelled user_id=%s turn_id=%s", userID, turnID)
	return e.reply(userID, replyCancelled)
}

// commit assembles the record from all collected fields plus the final
// validated value and inserts it atomically; no partial record is ever
// visible to readers. The session is destroyed only on success.
func (e *Engine) commit(userID, turnID string, sess *core.DialogSession, outcome dialog.Outcome) core.Outgoing {
	start := time.Now()

	switch sess.Kind {
	case core.KindPlanMeeting:
		rawDate, _ := sess.Field(core.FieldMeetingDate)
		rawTime, _ := sess.Field(core.FieldMeetingTime)
		date, ok1 := rawDate.(time.Time)
		tr, ok2 := rawTime.(core.TimeRange)
		participants, ok3 := outcome.Value.([]string)
		if !ok1 || !ok2 || !ok3 {
			return e.abort(userID, turnID, "meeting fields incomplete at commit")
		}
		m := core.Meeting{Date: date, Time: tr, Participants: participants}
		id, err := e.meetings.Insert(m)
		if err != nil {
			return e.abort(userID, turnID, fmt.Sprintf("meeting insert failed: %v", err))
		}
		m.ID = id
		e.sessions.End(userID)
		e.logger.Info("meeting committed user_id=%s turn_id=%s meeting_id=%d duration=%s", userID, turnID, id, time.Since(start))
		return e.reply(userID, m.Summary())

	case core.KindAddTask:
		rawDesc, _ := sess.Field(core.FieldTaskDescription)
		rawDue, _ := sess.Field(core.FieldTaskDueDate)
		desc, ok1 := rawDesc.(string)
		due, ok2 := rawDue.(time.Time)
		assignee, ok3 := outcome.Value.(string)
		if !ok1 || !ok2 || !ok3 {
			return e.abort(userID, turnID, "task fields incomplete at commit")
		}
		task := core.Task{Description: desc, DueDate: due, Assignee: assignee}
		id, err := e.tasks.Insert(task)
		if err != nil {
			return e.abort(userID, turnID, fmt.Sprintf("task insert failed: %v", err))
		}
		task.ID = id
		e.sessions.End(userID)
		e.logger.Info("task committed user_id=%s turn_id=%s task_id=%d duration=%s", userID, turnID, id, time.Since(start))
		return e.reply(userID, task.Summary())

	case core.KindCompleteTask:
		id, ok := outcome.Value.(int)
		if !ok {
			return e.abort(userID, turnID, "task id missing at commit")
		}
		// Business rule beyond format validation: the id must exist. An
		// unknown id self-loops in the same state; the store is unchanged
		// and the user may retry.
		if err := e.tasks.MarkComplete(id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				e.logger.Debug("unknown task id user_id=%s turn_id=%s task_id=%d", userID, turnID, id)
				return e.reply(userID, replyTaskNotFound)
			}
			return e.abort(userID, turnID, fmt.Sprintf("mark complete failed: %v", err))
		}
		e.sessions.End(userID)
		e.logger.Info("task completed user_id=%s turn_id=%s task_id=%d", userID, turnID, id)
		return e.reply(userID, fmt.Sprintf("Task %d marked as complete.", id))

	default:
		return e.abort(userID, turnID, fmt.Sprintf("commit for unknown dialog kind %s", sess.Kind))
	}
}

// abort drops the session after an unrecoverable inconsistency. The process
// stays alive; the user starts over.
func (e *Engine) abort(userID, turnID, reason string) core.Outgoing {
	e.logger.Error("dialog aborted user_id=%s turn_id=%s: %s", userID, turnID, reason)
	e.sessions.End(userID)
	return e.reply(userID, replyInternal)
}

func (e *Engine) listTasks(userID string) core.Outgoing {
	tasks := e.tasks.ListAll()
	if len(tasks) == 0 {
		return e.reply(userID, replyNoTasks)
	}
	var b strings.Builder
	b.WriteString("Current tasks:\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "ID: %d %s %s, due: %s, assignee: %s\n", t.ID, t.StatusTag(), t.Description, t.DueDate.Format(core.DateLayout), t.Assignee)
	}
	return e.reply(userID, strings.TrimRight(b.String(), "\n"))
}

func (e *Engine) reply(userID, text string) core.Outgoing {
	return core.Outgoing{UserID: userID, Text: text}
}
