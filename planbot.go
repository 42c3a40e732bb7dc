// Package planbot provides a high-level façade over the dialog engine and
// its service abstractions (record stores, sessions & logging) enabling
// rapid construction of a guided-form assistant. Most applications interact
// with this package by:
//  1. Creating a PlanBot via New() (optionally overriding default in-memory services)
//  2. Connecting a transport that feeds HandleCommand / HandleText
//
// The façade delegates turn processing to engine.Engine while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a structured logger.
package planbot

import (
	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/engine"
	"github.com/Ilya-36/planbot/logging"
	"github.com/Ilya-36/planbot/session"
	"github.com/Ilya-36/planbot/store"
)

// Options configures the PlanBot instance.
type Options struct {
	// Stores (defaults to in-memory implementations if not provided)
	Meetings core.MeetingStore
	Tasks    core.TaskStore
	Sessions core.SessionRegistry

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// PlanBot is the high-level façade aggregating the dialog engine and its services.
type PlanBot struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new PlanBot instance with optional overrides. Any unset
// service is replaced by its in-memory default.
func New(optFns ...func(o *Options)) *PlanBot {
	opts := Options{
		Meetings: store.NewInMemoryMeetingStore(),
		Tasks:    store.NewInMemoryTaskStore(),
		Sessions: session.NewInMemoryRegistry(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	eng := engine.New(func(o *engine.Options) {
		o.Meetings = opts.Meetings
		o.Tasks = opts.Tasks
		o.Sessions = opts.Sessions
		o.Logger = opts.Logger
	})

	return &PlanBot{opts: opts, engine: eng}
}

// HandleText processes one turn of the user's active dialog.
func (b *PlanBot) HandleText(userID, text string) core.Outgoing {
	return b.engine.OnText(userID, text)
}

// HandleCommand processes a dialog entry point or read-only query.
func (b *PlanBot) HandleCommand(userID string, cmd core.Command) core.Outgoing {
	return b.engine.OnCommand(userID, cmd)
}

// Engine exposes the underlying engine for transports that need it directly.
func (b *PlanBot) Engine() *engine.Engine { return b.engine }
