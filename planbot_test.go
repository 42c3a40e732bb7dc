package planbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/store"
)

func TestNew_DefaultsAndOverrides(t *testing.T) {
	bot := New()
	out := bot.HandleCommand("u1", core.CommandStart)
	assert.Contains(t, out.Text, "/plan_meeting")

	// two bots are fully isolated instances
	other := New()
	bot.HandleCommand("u1", core.CommandAddTask)
	bot.HandleText("u1", "isolated task")
	bot.HandleText("u1", "2024-05-01")
	bot.HandleText("u1", "")
	assert.Len(t, bot.Engine().Tasks().ListAll(), 1)
	assert.Empty(t, other.Engine().Tasks().ListAll())

	// overriding a store wires it through to the engine
	tasks := store.NewInMemoryTaskStore()
	custom := New(func(o *Options) { o.Tasks = tasks })
	custom.HandleCommand("u2", core.CommandAddTask)
	custom.HandleText("u2", "custom store task")
	custom.HandleText("u2", "2024-05-02")
	custom.HandleText("u2", "carol")
	assert.Len(t, tasks.ListAll(), 1)
}
