//go:build ebiten

package app

import (
	"fmt"

	"microcity/internal/render"
	"microcity/internal/sims/city"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// toolKeys maps the number row onto the most used tools.
var toolKeys = map[ebiten.Key]city.Tool{
	ebiten.Key1: city.ToolBulldozer,
	ebiten.Key2: city.ToolRoad,
	ebiten.Key3: city.ToolRail,
	ebiten.Key4: city.ToolWire,
	ebiten.Key5: city.ToolPark,
	ebiten.Key6: city.ToolResidential,
	ebiten.Key7: city.ToolCommercial,
	ebiten.Key8: city.ToolIndustrial,
	ebiten.Key9: city.ToolCoalPlant,
	ebiten.Key0: city.ToolFireStation,
}

// Game adapts the city simulation to the ebiten.Game interface.
type Game struct {
	sim     *city.City
	painter *render.GridPainter

	scale   int
	seed    uint64
	tool    city.Tool
	status  string
	message string
}

// New constructs a Game for the provided simulation.
func New(sim *city.City, scale int, seed uint64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   scale,
		seed:    seed,
		tool:    city.ToolRoad,
	}
	sim.OnMessage(func(m city.Message) { g.message = m.Text })
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed uint64) {
	g.seed = seed
	g.sim.NewGame(seed)
	g.message = ""
}

// Update handles per-frame input and advances the simulation one phase.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sim.Speed() == city.SpeedPaused {
			g.sim.SetSpeed(city.SpeedFast)
		} else {
			g.sim.SetSpeed(city.SpeedPaused)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	for key, tool := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.tool = tool
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := mx/g.scale, my/g.scale
		result := g.sim.DoTool(g.tool, x, y)
		g.status = fmt.Sprintf("tool %d at (%d,%d): %v", g.tool, x, y, result)
	}

	g.sim.Step()
	return nil
}

// Draw renders the current simulation state plus a one-line HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	stats := g.sim.GetStats()
	hud := fmt.Sprintf("%s  $%d  score %d  pop %d  %s",
		stats.Date, stats.Funds, stats.Score, stats.Population, g.message)
	if g.status != "" {
		hud += "  |  " + g.status
	}
	ebitenutil.DebugPrint(screen, hud)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
