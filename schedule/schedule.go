// Package schedule provides periodic tasks for bubbletea views. A task only
// reacts to ticks it armed itself, so stopping it releases the timer even
// when a tick is already in flight.
package schedule

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Now is the clock used to compute delays
var Now = time.Now

// TickMsg is delivered when a task fires
type TickMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// Task is a periodic job owned by one view
type Task struct {
	id       int
	tag      int
	running  bool
	schedule cron.Schedule
}

// Every returns a task firing d after each start or tick, truncated to
// the second
func Every(d time.Duration) *Task {
	return &Task{id: nextID(), schedule: cron.Every(d)}
}

// Cron returns a task following a standard five-field cron spec
func Cron(spec string) (*Task, error) {
	s, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}
	return &Task{id: nextID(), schedule: s}, nil
}

// ID identifies the task in TickMsg
func (t *Task) ID() int {
	return t.id
}

// Running reports whether the task is armed
func (t *Task) Running() bool {
	return t.running
}

// Start arms the task. Ticks armed before a restart are ignored.
func (t *Task) Start() tea.Cmd {
	t.tag++
	t.running = true
	return t.arm()
}

// Stop releases the task; pending ticks will be dropped
func (t *Task) Stop() {
	t.tag++
	t.running = false
}

// Handle reports whether msg is a live tick of this task and, if so,
// returns the command arming the next one.
func (t *Task) Handle(msg tea.Msg) (bool, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != t.id || tick.tag != t.tag || !t.running {
		return false, nil
	}
	return true, t.arm()
}

// Msg returns the tick the task is currently waiting for, stamped tm
func (t *Task) Msg(tm time.Time) TickMsg {
	return TickMsg{ID: t.id, tag: t.tag, Time: tm}
}

func (t *Task) arm() tea.Cmd {
	id, tag := t.id, t.tag
	now := Now()
	delay := t.schedule.Next(now).Sub(now)
	if delay < 0 {
		delay = 0
	}
	return tea.Tick(delay, func(tm time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag, Time: tm}
	})
}
