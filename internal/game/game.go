package game

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/wobble-overlay/internal/wobble"
)

// controls reports the user's requests for the current tick.
type controls interface {
	QuitRequested() bool
	HUDToggled() bool
}

type keyboard struct{}

func (keyboard) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
}

func (keyboard) HUDToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// Game captures the desktop every tick and draws it back through the
// wobble shader.
type Game struct {
	state *State
	input controls

	frame   *frame
	texture *ebiten.Image
	shader  *ebiten.Shader
	hud     *hud

	draws uint64
}

// New allocates the screen-sized texture and compiles the shader. Both live
// for the whole run.
func New(state *State, src capturer) (*Game, error) {
	shader, err := ebiten.NewShader(wobble.Shader())
	if err != nil {
		return nil, fmt.Errorf("compile wobble shader: %w", err)
	}

	texture := ebiten.NewImageWithOptions(
		image.Rect(0, 0, state.Width, state.Height),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
	f, err := newFrame(src, texture, state.Width, state.Height)
	if err != nil {
		return nil, err
	}

	h, err := newHUD()
	if err != nil {
		return nil, err
	}

	log.Info("overlay ready", "width", state.Width, "height", state.Height)
	return &Game{
		state:   state,
		input:   keyboard{},
		frame:   f,
		texture: texture,
		shader:  shader,
		hud:     h,
	}, nil
}

func (g *Game) Update() error {
	if g.input.QuitRequested() {
		g.state.Stop()
	}
	if !g.state.Running() {
		log.Info("overlay stopping",
			"uptime", formatDuration(g.state.Elapsed()),
			"captures", g.frame.captures,
			"draws", g.draws)
		return ebiten.Termination
	}

	if g.input.HUDToggled() {
		g.hud.visible = !g.hud.visible
	}

	g.frame.step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.state.Running() {
		return
	}

	mx, my := g.state.Cursor.Load()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = g.texture
	op.Uniforms = wobble.Uniforms(g.state.Elapsed().Seconds(), wobble.V(float64(mx), float64(my)))
	screen.DrawRectShader(g.state.Width, g.state.Height, g.shader, op)
	g.draws++

	if g.hud.visible {
		g.hud.draw(screen, g.stats())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.state.Width, g.state.Height
}

func (g *Game) stats() hudStats {
	mx, my := g.state.Cursor.Load()
	return hudStats{
		fps:      ebiten.ActualFPS(),
		tps:      ebiten.ActualTPS(),
		uptime:   g.state.Elapsed(),
		mouseX:   mx,
		mouseY:   my,
		captures: g.frame.captures,
		failures: g.frame.failures,
	}
}
