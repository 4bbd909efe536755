package main

import (
	"fmt"
	"strings"

	"active-life/internal/life"
	"active-life/internal/render"

	"github.com/gdamore/tcell/v2"
)

var (
	aliveStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(0x5d, 0x6d, 0x7e))
	deadStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0xeb, 0xed, 0xef))
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// view draws the board two terminal columns per cell with a status footer.
type view struct {
	screen  tcell.Screen
	engine  *life.Engine
	editing bool
	pressed bool
	note    string
}

func newView(screen tcell.Screen, engine *life.Engine) *view {
	return &view{screen: screen, engine: engine, editing: true}
}

func (v *view) paint(f life.Flip) {
	style := deadStyle
	if f.State == 1 {
		style = aliveStyle
	}
	v.screen.SetContent(f.Col*2, f.Row, ' ', nil, style)
	v.screen.SetContent(f.Col*2+1, f.Row, ' ', nil, style)
}

func (v *view) redraw() {
	cols := v.engine.Cols()
	for i, s := range v.engine.Cells() {
		v.paint(life.Flip{Row: i / cols, Col: i % cols, State: s})
	}
	v.footer()
	v.screen.Show()
}

func (v *view) footer() {
	mode := "running"
	if v.editing {
		mode = "editing"
	}
	parts := []string{"mode " + mode}
	for _, s := range v.engine.Stats() {
		parts = append(parts, s.Label+" "+s.Value)
	}
	line := strings.Join(parts, "  ")
	if v.note != "" {
		line += "  " + v.note
	}
	w, _ := v.screen.Size()
	row := v.engine.Rows()
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		v.screen.SetContent(x, row, r, nil, textStyle)
	}
}

// advance steps once, or drops back to edit mode when nothing can change.
func (v *view) advance() {
	if v.engine.Idle() {
		v.editing = true
		v.note = fmt.Sprintf("settled at generation %d", v.engine.Generation())
		return
	}
	v.engine.Step()
}

// handle applies one terminal event and reports whether the user quit.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyEnter && v.editing:
			v.editing = false
			v.note = ""
		case ev.Rune() == 'p' && !v.editing:
			v.editing = true
		case ev.Rune() == 'n':
			v.engine.Step()
		case ev.Rune() == 'c':
			v.engine.Clear()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !v.pressed && v.editing {
			x, y := ev.Position()
			if cell, ok := render.CellAt(x/2, y, 1, v.engine.Size()); ok {
				_ = v.engine.Toggle(cell.Row, cell.Col)
			}
		}
		v.pressed = down
	case *tcell.EventResize:
		v.screen.Sync()
		v.redraw()
	}
	return false
}
