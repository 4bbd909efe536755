//go:build ebiten

package app

import (
	"log"
	"time"

	"active-life/internal/core"
	"active-life/internal/life"
	"active-life/internal/render"
	"active-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	cfg     Config
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	editing  bool
	tickOnce bool
}

// New constructs a Game for the provided engine. The game starts in edit mode.
func New(engine *life.Engine, cfg Config, scale int) *Game {
	size := engine.Size()
	gp := render.NewGridPainter(size.W, size.H, render.AliveColor, render.DeadColor)
	gp.Sync(engine.Cells())
	engine.Subscribe(gp.Paint)
	return &Game{
		engine:  engine,
		cfg:     cfg,
		painter: gp,
		hud:     ui.NewHUD(cfg.Panel),
		scale:   scale,
		editing: true,
	}
}

// Reset clears the board and seeds it again using seed.
func (g *Game) Reset(seed int64) {
	g.engine.Clear()
	g.cfg.Seed = seed
	if err := life.Populate(g.engine, g.cfg.Reseeded(seed)); err != nil {
		log.Printf("reseed: %v", err)
	}
	g.tickOnce = false
}

// Update handles input and advances the simulation while running.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.editing && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.editing = false
	}
	if !g.editing && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.editing = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(time.Now().UnixNano())
	}

	if g.editing && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if cell, ok := render.CellAt(x, y, g.scale, g.engine.Size()); ok {
			if err := g.engine.Toggle(cell.Row, cell.Col); err != nil {
				log.Printf("toggle: %v", err)
			}
		}
	}

	switch {
	case g.tickOnce:
		g.engine.Step()
		g.tickOnce = false
	case !g.editing && g.engine.Idle():
		log.Printf("board settled at generation %d with %d live cells", g.engine.Generation(), g.engine.Population())
		g.editing = true
	case !g.editing:
		g.engine.Step()
	}
	return nil
}

// Draw renders the board and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.hud.Draw(screen, g.engine.Cols()*g.scale, g.stats())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) stats() []core.Stat {
	mode := "running"
	if g.editing {
		mode = "editing"
	}
	return append([]core.Stat{{Label: "mode", Value: mode}}, g.engine.Stats()...)
}
