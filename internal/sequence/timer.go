package sequence

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

// Timer measures elapsed wall time from its creation.
type Timer struct {
	start time.Time
	now   func() time.Time
}

// StartTimer returns a running Timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now(), now: time.Now}
}

// Elapsed returns the time since the Timer started.
func (t *Timer) Elapsed() time.Duration { return t.now().Sub(t.start) }

// String renders the elapsed time for display.
func (t *Timer) String() string { return format.FormatExecutionDuration(t.Elapsed()) }
