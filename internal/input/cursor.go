package input

import (
	"errors"
	"fmt"
	"sync"
)

var ErrBadScreen = errors.New("screen size must be positive")

// Cursor is a single-slot cell holding the latest normalized cursor
// position. Writers overwrite, readers get whatever was stored last.
type Cursor struct {
	mu   sync.RWMutex
	x, y float32
}

// NewCursor returns a cell that starts at the centre of the screen.
func NewCursor() *Cursor {
	return &Cursor{x: 0.5, y: 0.5}
}

func (c *Cursor) Store(x, y float32) {
	c.mu.Lock()
	c.x, c.y = x, y
	c.mu.Unlock()
}

func (c *Cursor) Load() (float32, float32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.x, c.y
}

// Tracker converts raw screen coordinates into the normalized position kept
// in a Cursor. Y is flipped to match texture space.
type Tracker struct {
	width, height float64
	cursor        *Cursor
}

func NewTracker(width, height int, cursor *Cursor) (*Tracker, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tracker %dx%d: %w", width, height, ErrBadScreen)
	}
	return &Tracker{
		width:  float64(width),
		height: float64(height),
		cursor: cursor,
	}, nil
}

// Normalize returns (x/W, 1 - y/H). Values are not clamped.
func (t *Tracker) Normalize(x, y float64) (float32, float32) {
	return float32(x / t.width), float32(1 - y/t.height)
}

// OnMove is the move handler handed to a Listener.
func (t *Tracker) OnMove(x, y float64) {
	t.cursor.Store(t.Normalize(x, y))
}
