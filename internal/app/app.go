//go:build ebiten

package app

import (
	"strings"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/logging"
	"sandfall/internal/render"
	"sandfall/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyP, CmdTogglePause},
	{ebiten.KeyDigit5, CmdTogglePause},
	{ebiten.KeyN, CmdStep},
	{ebiten.KeyDigit6, CmdStep},
	{ebiten.KeyRight, CmdNextSpecies},
	{ebiten.KeyLeft, CmdPrevSpecies},
	{ebiten.KeyUp, CmdGrowBrush},
	{ebiten.KeyDown, CmdShrinkBrush},
	{ebiten.KeyD, CmdCycleDNA},
	{ebiten.KeySpace, CmdReset},
	{ebiten.KeyT, CmdTerrain},
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Game adapts a sandbox to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep
	log     *logging.Logger

	scale int
}

// New constructs a Game for the provided sandbox.
func New(sim Sandbox, cfg *Config, log *logging.Logger) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		ctl:     NewController(sim, cfg.Seed, log),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		overlay: ui.NewOverlay(sim, scale),
		timer:   core.NewFixedStep(cfg.Period),
		log:     log,
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation on its own
// fixed period.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			g.ctl.Apply(kc.cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyStatus()
	}
	g.overlay.Update()

	sim := g.ctl.Sim()
	size := sim.Size()
	viewW := size.W * g.scale
	consumed := g.hud.Update(viewW)
	if !consumed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < viewW {
			x, y := ScreenToGrid(mx, my, g.scale, size)
			g.ctl.Paint(x, y)
		}
	}

	g.ctl.Advance(g.timer.Advance(time.Now()))
	return nil
}

func (g *Game) copyStatus() {
	sim := g.ctl.Sim()
	var b strings.Builder
	for _, line := range sim.StatusLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if p, ok := sim.(parameterProvider); ok {
		b.WriteByte('\n')
		b.WriteString(p.Parameters().String())
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		g.log.Warnf("copy to clipboard: %v", err)
		return
	}
	g.log.Debugf("copied status to clipboard")
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.ctl.Sim()
	g.painter.Blit(screen, sim, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Sim().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
