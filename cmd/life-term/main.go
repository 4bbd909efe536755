// Command life-term runs the simulation in a terminal. Click cells to edit,
// Enter runs, p pauses, n single-steps, c clears, q quits.
package main

import (
	"flag"
	"log"
	"time"

	"active-life/internal/app"
	"active-life/internal/core"
	"active-life/internal/life"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = time.Second / 30

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := life.NewFromConfig(cfg.Life())
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.Clear()

	v := newView(screen, engine)
	engine.Subscribe(v.paint)
	v.redraw()

	run(screen, v, core.NewFixedStep(cfg.TPS))
	screen.Fini()

	log.Printf("stopped at generation %d with %d live cells", engine.Generation(), engine.Population())
}

// run owns the engine until the user quits: tcell events arrive over a
// channel and the ticker refreshes the screen, stepping whenever the fixed
// step allows it.
func run(screen tcell.Screen, v *view, fixed *core.FixedStep) {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			wasEditing := v.editing
			if v.handle(ev) {
				return
			}
			if wasEditing && !v.editing {
				fixed.Reset()
			}
		case <-ticker.C:
			if !v.editing && fixed.ShouldStep() {
				v.advance()
			}
			v.footer()
			screen.Show()
		}
	}
}
