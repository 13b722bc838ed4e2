package puzzles

import (
	"strings"
)

// point is a grid position, with y increasing upward.
type point struct {
	x, y int
}

func (p point) add(o point) point {
	return point{x: p.x + o.x, y: p.y + o.y}
}

var (
	north = point{0, 1}
	south = point{0, -1}
	west  = point{-1, 0}
	east  = point{1, 0}
)

// left rotates a direction counter-clockwise.
func (p point) left() point {
	return point{x: -p.y, y: p.x}
}

// right rotates a direction clockwise.
func (p point) right() point {
	return point{x: p.y, y: -p.x}
}

// render draws the cells for which lit is true, top row first.
func render(cells []point, lit func(point) bool) string {
	if len(cells) == 0 {
		return ""
	}

	lo, hi := cells[0], cells[0]
	for _, p := range cells {
		lo.x = min(lo.x, p.x)
		lo.y = min(lo.y, p.y)
		hi.x = max(hi.x, p.x)
		hi.y = max(hi.y, p.y)
	}

	var rows []string
	for y := hi.y; y >= lo.y; y-- {
		var sb strings.Builder
		for x := lo.x; x <= hi.x; x++ {
			if lit(point{x, y}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}

	return strings.Join(rows, "\n")
}
