package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	css "github.com/mazznoer/csscolorparser"

	"github.com/iburimskiy/wobble-overlay/internal/config"
)

type hudStats struct {
	fps, tps       float64
	uptime         time.Duration
	mouseX, mouseY float32
	captures       uint64
	failures       uint64
}

// hud is the F3 status panel.
type hud struct {
	visible  bool
	backdrop color.NRGBA
}

func newHUD() (*hud, error) {
	c, err := parseColor(config.HUDBackdrop)
	if err != nil {
		return nil, fmt.Errorf("hud backdrop %q: %w", config.HUDBackdrop, err)
	}
	return &hud{backdrop: c}, nil
}

func parseColor(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{
		R: uint8(255 * clamp01(c.R)),
		G: uint8(255 * clamp01(c.G)),
		B: uint8(255 * clamp01(c.B)),
		A: uint8(255 * clamp01(c.A)),
	}, nil
}

func (h *hud) lines(s hudStats) []string {
	out := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", s.fps, s.tps),
		fmt.Sprintf("Uptime %s", formatDuration(s.uptime)),
		fmt.Sprintf("Cursor %.3f, %.3f", s.mouseX, s.mouseY),
		fmt.Sprintf("Captures %d", s.captures),
	}
	if s.failures > 0 {
		out[3] += fmt.Sprintf("  failed %d", s.failures)
	}
	return out
}

func (h *hud) draw(screen *ebiten.Image, s hudStats) {
	vector.DrawFilledRect(screen, config.HUDX, config.HUDY, config.HUDWidth, config.HUDHeight, h.backdrop, false)
	for i, line := range h.lines(s) {
		ebitenutil.DebugPrintAt(screen, line, config.HUDX+8, config.HUDY+4+i*16)
	}
}
