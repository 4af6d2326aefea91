package config

import "time"

const (
	WindowTitle = "Wobble Overlay"

	// Primary display only.
	DisplayIndex = 0

	// Frame pacing
	TicksPerSecond = 100

	// Wobble parameters
	WobbleFrequency = 10.0
	WobbleAmplitude = 0.02
	MouseFalloff    = 0.1
	MouseStrength   = 0.1

	// Cursor listener
	ListenerPollInterval = 2 * time.Millisecond

	// Status HUD
	HUDBackdrop = "rgba(8, 10, 16, 0.72)"
	HUDX        = 12
	HUDY        = 12
	HUDWidth    = 300
	HUDHeight   = 72
)

// FrameInterval is the nominal duration of one tick.
const FrameInterval = time.Second / TicksPerSecond
