package main

import (
	"testing"

	"active-life/internal/life"

	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T, rows, cols int) (*view, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols*2+10, rows+1)

	engine, err := life.New(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	v := newView(screen, engine)
	engine.Subscribe(v.paint)
	v.redraw()
	return v, screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func click(v *view, x, y int) {
	v.handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	v.handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestClickTogglesCell(t *testing.T) {
	v, screen := newTestView(t, 5, 5)
	_, aliveBG, _ := aliveStyle.Decompose()
	_, deadBG, _ := deadStyle.Decompose()

	click(v, 5, 2)
	if s, _ := v.engine.State(2, 2); s != 1 {
		t.Fatal("click at column 5 should toggle cell (2,2)")
	}
	if background(screen, 4, 2) != aliveBG || background(screen, 5, 2) != aliveBG {
		t.Fatal("toggled cell not painted alive")
	}

	v.handle(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	v.handle(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	v.handle(tcell.NewEventMouse(5, 2, tcell.ButtonNone, tcell.ModNone))
	if s, _ := v.engine.State(2, 2); s != 0 {
		t.Fatal("held button should toggle once")
	}
	if background(screen, 4, 2) != deadBG {
		t.Fatal("cell not repainted dead")
	}

	click(v, 40, 2)
	if v.engine.Population() != 0 {
		t.Fatal("click beside the board toggled a cell")
	}
}

func TestRunAndSettle(t *testing.T) {
	v, _ := newTestView(t, 6, 6)
	click(v, 2, 2)

	v.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if v.editing {
		t.Fatal("Enter should start running")
	}
	click(v, 4, 4)
	if v.engine.Population() != 1 {
		t.Fatal("clicks must be ignored while running")
	}

	v.advance()
	v.advance()
	if v.engine.Population() != 0 || !v.engine.Idle() {
		t.Fatal("lone cell should die and settle")
	}
	v.advance()
	if !v.editing || v.note == "" {
		t.Fatal("settled board should return to edit mode with a note")
	}
}

func TestKeys(t *testing.T) {
	v, _ := newTestView(t, 5, 5)
	click(v, 2, 1)
	click(v, 4, 1)
	click(v, 6, 1)

	v.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if v.engine.Generation() != 1 {
		t.Fatal("n should single-step")
	}
	v.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	v.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if !v.editing {
		t.Fatal("p should pause")
	}
	v.handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if v.engine.Population() != 0 {
		t.Fatal("c should clear the board")
	}
	if !v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
}
