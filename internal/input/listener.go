package input

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

var (
	ErrNoPointer      = errors.New("listener has no pointer source or move handler")
	ErrBadInterval    = errors.New("listener poll interval must be positive")
	ErrAlreadyStarted = errors.New("listener already started")
)

// PointerFunc reports the current cursor position in screen pixels. It is
// called from the listener goroutine and must be safe for that.
type PointerFunc func() (x, y float64)

// MoveHandler receives every new cursor position.
type MoveHandler func(x, y float64)

// Listener polls a pointer source on its own goroutine and calls the move
// handler whenever the position changes. There is no queue: a handler that
// is slower than the poll interval simply sees fewer positions.
type Listener struct {
	pointer  PointerFunc
	onMove   MoveHandler
	interval time.Duration

	started atomic.Bool
	moves   atomic.Uint64
	done    chan struct{}
}

func NewListener(pointer PointerFunc, onMove MoveHandler, interval time.Duration) *Listener {
	return &Listener{
		pointer:  pointer,
		onMove:   onMove,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine. It runs until ctx is cancelled.
func (l *Listener) Start(ctx context.Context) error {
	if l.pointer == nil || l.onMove == nil {
		return ErrNoPointer
	}
	if l.interval <= 0 {
		return ErrBadInterval
	}
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	log.Debug("cursor listener started", "interval", l.interval)
	go l.run(ctx)
	return nil
}

// Done is closed once the polling goroutine has returned.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

// Moves returns how many positions were delivered so far.
func (l *Listener) Moves() uint64 {
	return l.moves.Load()
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var lastX, lastY float64
	seen := false
	poll := func() {
		x, y := l.pointer()
		if seen && x == lastX && y == lastY {
			return
		}
		lastX, lastY, seen = x, y, true
		l.moves.Add(1)
		l.onMove(x, y)
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			log.Debug("cursor listener stopped", "moves", l.moves.Load())
			return
		case <-ticker.C:
			poll()
		}
	}
}
