package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/iburimskiy/wobble-overlay/internal/capture"
	"github.com/iburimskiy/wobble-overlay/internal/config"
	"github.com/iburimskiy/wobble-overlay/internal/game"
	"github.com/iburimskiy/wobble-overlay/internal/input"
)

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "wobble",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	if os.Getenv("WOBBLE_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// cursorPosition is polled from the listener goroutine; ebiten's input
// queries are concurrent-safe.
func cursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func run(ctx context.Context) error {
	display, err := capture.Open(config.DisplayIndex)
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	width, height := display.Size()
	log.Info("capturing display", "index", display.Index(), "bounds", display.Bounds())

	state := game.NewState(width, height)

	tracker, err := input.NewTracker(width, height, state.Cursor)
	if err != nil {
		return fmt.Errorf("cursor tracker: %w", err)
	}
	listener := input.NewListener(cursorPosition, tracker.OnMove, config.ListenerPollInterval)
	if err := listener.Start(ctx); err != nil {
		return fmt.Errorf("start cursor listener: %w", err)
	}

	go func() {
		<-ctx.Done()
		state.Stop()
	}()

	g, err := game.New(state, display)
	if err != nil {
		return err
	}

	windowWidth, windowHeight := width, height
	if m := ebiten.Monitor(); m != nil {
		windowWidth, windowHeight = m.Size()
	}

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(config.TicksPerSecond)

	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: true})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run overlay: %w", err)
	}
	return nil
}

func main() {
	log.SetDefault(newLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		log.Error("overlay failed", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		os.Exit(1)
	}
}
