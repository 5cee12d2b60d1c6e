package apc

import (
	"errors"
	"fmt"
)

var (
	ErrPageOutOfRange = errors.New("page out of range")
	ErrColumnCount    = errors.New("wrong number of columns")
)

// GridCell is one column's one-of-N selector on one page
type GridCell struct {
	SelectedRow int  // manual choice
	MaxOptions  int  // valid rows, 0 = column disabled
	IsRandom    bool // RandomValue drives the output instead of SelectedRow
	RandomValue int  // re-rolled every beat while IsRandom
}

// Value is the effective selection regardless of mode
func (c GridCell) Value() int {
	if c.IsRandom {
		return c.RandomValue
	}
	return c.SelectedRow
}

// Disabled reports whether the column has no options
func (c GridCell) Disabled() bool {
	return c.MaxOptions <= 0
}

func (c *GridCell) disable() {
	c.MaxOptions = 0
	c.IsRandom = false
	c.SelectedRow = 0
	c.RandomValue = 0
}

// Grid is the page x column matrix of selectors. The zero value has every
// column disabled.
type Grid struct {
	cells [NumPages][GridCols]GridCell
}

func validPage(page int) bool {
	return page >= 0 && page < NumPages
}

// Cell returns a copy of one cell
func (g *Grid) Cell(page, col int) GridCell {
	if !validPage(page) || col < 0 || col >= GridCols {
		panic(fmt.Sprintf("apc: cell (%d,%d) out of range", page, col))
	}
	return g.cells[page][col]
}

// SetMaxOptions sets the option count for every column of a page.
// Counts are clamped to 0-8. On error nothing is changed.
func (g *Grid) SetMaxOptions(page int, counts []int) error {
	if !validPage(page) {
		return fmt.Errorf("set max options: %w: %d", ErrPageOutOfRange, page)
	}
	if len(counts) != GridCols {
		return fmt.Errorf("set max options: %w: got %d, want %d", ErrColumnCount, len(counts), GridCols)
	}

	for col, n := range counts {
		c := &g.cells[page][col]
		n = max(0, min(GridRows, n))
		if n == 0 {
			c.disable()
			continue
		}
		c.MaxOptions = n
		c.SelectedRow = min(c.SelectedRow, n-1)
		c.RandomValue = min(c.RandomValue, n-1)
	}
	return nil
}

// Press applies a pad press. The random row flips random mode, any other
// row selects it (clamped to the last valid option). Disabled columns
// ignore presses.
func (g *Grid) Press(page, row, col int) {
	if !validPage(page) || row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return
	}
	c := &g.cells[page][col]
	if c.Disabled() {
		return
	}

	if row == RandomRow {
		c.IsRandom = !c.IsRandom
		return
	}
	c.IsRandom = false
	c.SelectedRow = min(row, c.MaxOptions-1)
}

// Advance re-rolls every random cell for this beat
func (g *Grid) Advance(beat int) {
	for page := range g.cells {
		for col := range g.cells[page] {
			c := &g.cells[page][col]
			if c.Disabled() {
				c.disable()
				continue
			}
			if !c.IsRandom {
				continue
			}
			c.RandomValue = int(UniformRandom(beat, col) * float64(c.MaxOptions))
		}
	}
}

// ParamValues returns the effective value of each column on a page
func (g *Grid) ParamValues(page int) [GridCols]int {
	var out [GridCols]int
	for col, c := range g.cells[page] {
		out[col] = c.Value()
	}
	return out
}
