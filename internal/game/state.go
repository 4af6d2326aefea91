package game

import (
	"sync/atomic"
	"time"

	"github.com/iburimskiy/wobble-overlay/internal/input"
)

// State is shared by the render loop, the cursor listener and the signal
// watcher. Only Cursor and the running flag are written after startup.
type State struct {
	Width, Height int
	Cursor        *input.Cursor

	start   time.Time
	running atomic.Bool
}

func NewState(width, height int) *State {
	s := &State{
		Width:  width,
		Height: height,
		Cursor: input.NewCursor(),
		start:  time.Now(),
	}
	s.running.Store(true)
	return s
}

// Elapsed is the monotonic time since the overlay started.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.start)
}

func (s *State) Running() bool {
	return s.running.Load()
}

// Stop clears the running flag. Safe to call from any goroutine.
func (s *State) Stop() {
	s.running.Store(false)
}
