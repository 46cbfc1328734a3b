package adalight

import "fmt"

type Format int

const (
	// Grid strips are wired row-major, Rows x Cols.
	Grid Format = iota
	// Edges strips run clockwise around a screen: top left-to-right,
	// right top-to-bottom, bottom right-to-left, left bottom-to-top.
	Edges
)

// Layout describes how a strip is physically arranged. The off command
// only needs the total count, which a config file may express as a
// layout instead of a bare number.
type Layout struct {
	Format Format
	Rows   int
	Cols   int
	Top    int
	Bottom int
	Left   int
	Right  int
}

func GridLayout(rows, cols int) Layout {
	return Layout{Format: Grid, Rows: rows, Cols: cols}
}

func EdgesLayout(top, bottom, left, right int) Layout {
	return Layout{Format: Edges, Top: top, Bottom: bottom, Left: left, Right: right}
}

// Count returns the number of LEDs the layout addresses.
func (l Layout) Count() int {
	if l.Format == Grid {
		return l.Rows * l.Cols
	}
	return l.Top + l.Bottom + l.Left + l.Right
}

func (l Layout) Validate() error {
	switch l.Format {
	case Grid:
		if l.Rows < 1 || l.Cols < 1 {
			return fmt.Errorf("grid layout needs positive dimensions, got %dx%d", l.Rows, l.Cols)
		}
	case Edges:
		if l.Top < 0 || l.Bottom < 0 || l.Left < 0 || l.Right < 0 {
			return fmt.Errorf("edges layout has a negative edge count")
		}
		if l.Count() < 1 {
			return fmt.Errorf("edges layout addresses no leds")
		}
	default:
		return fmt.Errorf("unknown layout format %d", int(l.Format))
	}
	if l.Count() > MaxLeds {
		return fmt.Errorf("layout addresses %d leds, max is %d", l.Count(), MaxLeds)
	}
	return nil
}
