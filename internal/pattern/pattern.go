// Package pattern parses plaintext Life patterns and places them on a torus.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"active-life/internal/core"
)

var (
	// ErrSyntax reports a malformed plaintext pattern.
	ErrSyntax = errors.New("pattern: syntax error")
	// ErrUnknown reports a name that is neither a built-in nor a readable file.
	ErrUnknown = errors.New("pattern: unknown pattern")
)

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []core.Cell
}

// Parse reads the plaintext (.cells) format: lines starting with '!' are
// comments, 'O' or '*' marks a live cell and '.' a dead one.
func Parse(text string) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	row := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for col, r := range []rune(line) {
			switch r {
			case 'O', '*':
				p.Cells = append(p.Cells, core.Cell{Row: row, Col: col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w: line %d: unexpected %q", ErrSyntax, lineNo, r)
			}
		}
		if n := len([]rune(line)); n > p.Width {
			p.Width = n
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	p.Height = trimHeight(p.Cells, row)
	return p, nil
}

// trimHeight drops trailing blank rows from the reported height.
func trimHeight(cells []core.Cell, rows int) int {
	h := 0
	for _, c := range cells {
		if c.Row+1 > h {
			h = c.Row + 1
		}
	}
	if h == 0 {
		return rows
	}
	return h
}

// Centered places the pattern in the middle of a rows x cols torus. Patterns
// larger than the board wrap around.
func (p Pattern) Centered(rows, cols int) []core.Cell {
	top := (rows - p.Height) / 2
	left := (cols - p.Width) / 2
	return p.At(top, left, rows, cols)
}

// At places the pattern with its top-left corner at (row, col), wrapping onto
// a rows x cols torus.
func (p Pattern) At(row, col, rows, cols int) []core.Cell {
	cells := make([]core.Cell, 0, len(p.Cells))
	for _, c := range p.Cells {
		cells = append(cells, core.Cell{
			Row: core.Wrap(row+c.Row, rows),
			Col: core.Wrap(col+c.Col, cols),
		})
	}
	return cells
}

// Load resolves name as a built-in pattern first and as a file path second.
func Load(name string) (Pattern, error) {
	if p, ok := Builtin(name); ok {
		return p, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Pattern{}, fmt.Errorf("%w: %q (built-ins: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
		}
		return Pattern{}, err
	}
	p, err := Parse(string(data))
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// Builtin returns the named built-in pattern.
func Builtin(name string) (Pattern, bool) {
	src, ok := builtins[strings.ToLower(name)]
	if !ok {
		return Pattern{}, false
	}
	p, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("pattern: built-in %q: %v", name, err))
	}
	p.Name = strings.ToLower(name)
	return p, true
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtins = map[string]string{
	"block":      "OO\nOO\n",
	"blinker":    "OOO\n",
	"toad":       ".OOO\nOOO.\n",
	"beacon":     "OO..\nOO..\n..OO\n..OO\n",
	"glider":     ".O.\n..O\nOOO\n",
	"lwss":       ".O..O\nO....\nO...O\nOOOO.\n",
	"rpentomino": ".OO\nOO.\n.O.\n",
	"acorn":      ".O.....\n...O...\nOO..OOO\n",
	"diehard":    "......O.\nOO......\n.O...OOO\n",
}
