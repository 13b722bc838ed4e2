package puzzles

import (
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

const (
	SCAN_AREA   = 50
	SHIP_SIZE   = 100
	BEAM_STRAY  = 10     // Columns searched for the beam edge on a row.
	BEAM_ROWS   = 100000 // Rows searched for a square before giving up.
	SQUARE_SPAN = 10000  // Multiplier for the answer x coordinate.
)

// deploy sends a drone at (x, y) using a fresh copy of the program.
func deploy(m *intcode.Machine, x, y int) (pulled bool, err error) {
	output, err := m.Clone().Run(intcode.Word(x), intcode.Word(y))
	if err != nil {
		return
	}

	if len(output) == 0 {
		err = ErrNoOutput
		return
	}

	pulled = output[0] == 1
	return
}

// countBeam counts points affected by the beam in a size by size area.
func countBeam(m *intcode.Machine, size int) (total int, err error) {
	for y := range size {
		for x := range size {
			var pulled bool
			pulled, err = deploy(m, x, y)
			if err != nil {
				return
			}
			if pulled {
				total++
			}
		}
	}
	return
}

// findSquare finds the top-left corner of the square of the given size,
// closest to the emitter, that fits entirely in the beam.
//
// The square is found by following the left edge of the beam downward,
// and checking the opposite corner on the row size-1 above. Until the
// edge is first seen, rows are scanned out to twice their depth.
func findSquare(m *intcode.Machine, size int) (x, y int, err error) {
	tracking := false
	for bottom := size - 1; bottom < BEAM_ROWS; bottom++ {
		stray := BEAM_STRAY
		if !tracking {
			stray += 2 * bottom
		}

		found := false
		for dx := 0; dx <= stray; dx++ {
			var pulled bool
			pulled, err = deploy(m, x+dx, bottom)
			if err != nil {
				return
			}
			if pulled {
				x += dx
				found = true
				break
			}
		}
		if !found {
			continue
		}
		tracking = true

		top := bottom - (size - 1)
		var pulled bool
		pulled, err = deploy(m, x+size-1, top)
		if err != nil {
			return
		}
		if pulled {
			y = top
			return
		}
	}

	err = ErrNoAnswer
	return
}

func day19First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	total, err := countBeam(m, SCAN_AREA)
	if err != nil {
		return
	}

	answer = strconv.Itoa(total)
	return
}

func day19Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	x, y, err := findSquare(m, SHIP_SIZE)
	if err != nil {
		return
	}

	answer = strconv.Itoa(x*SQUARE_SPAN + y)
	return
}
