package app

import (
	"sandfall/internal/core"
	"sandfall/internal/logging"
)

// Command is a discrete user action.
type Command int

const (
	CmdNone Command = iota
	CmdTogglePause
	CmdStep
	CmdNextSpecies
	CmdPrevSpecies
	CmdGrowBrush
	CmdShrinkBrush
	CmdCycleDNA
	CmdReset
	CmdTerrain
)

// Sandbox is the simulation surface driven by the controller.
type Sandbox interface {
	core.Sim
	core.StatusProvider
	SelectNext()
	SelectPrev()
	CycleDNA()
	GrowBrush()
	ShrinkBrush()
	PlaceSelected(x, y int) int
	SeedTerrain(seed int64)
}

// Controller serializes user commands, brush strokes and timed generation
// steps onto a single sandbox.
type Controller struct {
	sim Sandbox
	log *logging.Logger

	seed        int64
	paused      bool
	pendingStep bool
}

// NewController wraps sim. A nil logger disables logging.
func NewController(sim Sandbox, seed int64, log *logging.Logger) *Controller {
	return &Controller{sim: sim, seed: seed, log: log}
}

// Sim returns the driven sandbox.
func (c *Controller) Sim() Sandbox { return c.sim }

// Paused reports whether timed steps are suspended.
func (c *Controller) Paused() bool { return c.paused }

// Apply executes cmd.
func (c *Controller) Apply(cmd Command) {
	switch cmd {
	case CmdTogglePause:
		c.paused = !c.paused
		c.log.Debugf("paused=%v", c.paused)
	case CmdStep:
		if c.paused {
			c.pendingStep = true
		}
	case CmdNextSpecies:
		c.sim.SelectNext()
	case CmdPrevSpecies:
		c.sim.SelectPrev()
	case CmdGrowBrush:
		c.sim.GrowBrush()
	case CmdShrinkBrush:
		c.sim.ShrinkBrush()
	case CmdCycleDNA:
		c.sim.CycleDNA()
	case CmdReset:
		c.sim.Reset(c.seed)
		c.pendingStep = false
		c.log.Infof("reset %s (seed %d)", c.sim.Name(), c.seed)
	case CmdTerrain:
		c.seed++
		c.sim.SeedTerrain(c.seed)
		c.log.Infof("terrain seeded (seed %d)", c.seed)
	}
}

// Paint stamps the selected species at grid coordinate (x, y).
func (c *Controller) Paint(x, y int) {
	c.sim.PlaceSelected(x, y)
}

// Advance runs the generations that are due. Timed steps are skipped while
// paused; a pending single step runs regardless. It returns the number of
// generations run.
func (c *Controller) Advance(due int) int {
	ran := 0
	if c.paused {
		due = 0
	}
	if c.pendingStep {
		c.pendingStep = false
		if due == 0 {
			due = 1
		}
	}
	for ; ran < due; ran++ {
		c.sim.Step()
	}
	return ran
}

// ScreenToGrid maps a screen pixel to a grid coordinate. The y axis is
// flipped so that grid row 0 is the bottom of the window. The result may lie
// outside the grid; placement clips per cell.
func ScreenToGrid(sx, sy, scale int, size core.Size) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	gx := floorDiv(sx, scale)
	gy := size.H - 1 - floorDiv(sy, scale)
	return gx, gy
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
