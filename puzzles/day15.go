package puzzles

import (
	"errors"
	"log"
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

const (
	MOVE_NORTH = intcode.Word(1)
	MOVE_SOUTH = intcode.Word(2)
	MOVE_WEST  = intcode.Word(3)
	MOVE_EAST  = intcode.Word(4)
)

const (
	STATUS_WALL   = intcode.Word(0)
	STATUS_MOVED  = intcode.Word(1)
	STATUS_OXYGEN = intcode.Word(2)
)

var droidMoves = []struct {
	command intcode.Word
	dir     point
}{
	{MOVE_NORTH, north},
	{MOVE_SOUTH, south},
	{MOVE_WEST, west},
	{MOVE_EAST, east},
}

// cell is what the droid found at a position.
type cell int

//go:generate go tool stringer -linecomment -type=cell
const (
	CELL_WALL   = cell(0) // wall
	CELL_OPEN   = cell(1) // open
	CELL_OXYGEN = cell(2) // oxygen
)

// explore maps the whole reachable area breadth first. Each frontier
// cell keeps its own clone of the droid, positioned on that cell.
func explore(m *intcode.Machine) (area map[point]cell, err error) {
	type droid struct {
		m   *intcode.Machine
		pos point
	}

	verbose := m.Verbose
	m = m.Clone()
	m.Start()

	area = map[point]cell{{}: CELL_OPEN}
	frontier := []droid{{m: m}}

	for len(frontier) > 0 {
		d := frontier[0]
		frontier = frontier[1:]

		for _, move := range droidMoves {
			next := d.pos.add(move.dir)
			if _, known := area[next]; known {
				continue
			}

			c := d.m.Clone()
			_, err = c.Send(move.command)
			if err != nil {
				return
			}

			status, ok := c.LastOutput()
			if !ok {
				err = ErrNoOutput
				return
			}
			c.TakeOutput()

			switch status {
			case STATUS_WALL:
				area[next] = CELL_WALL
			case STATUS_MOVED:
				area[next] = CELL_OPEN
				frontier = append(frontier, droid{m: c, pos: next})
			case STATUS_OXYGEN:
				area[next] = CELL_OXYGEN
				frontier = append(frontier, droid{m: c, pos: next})
			default:
				err = &ErrOutput{Output: []intcode.Word{status}, Err: errors.Join(ErrOutputCount, ErrStatus)}
				return
			}
			if verbose {
				log.Printf("droid: %v %v", next, area[next])
			}
		}
	}

	return
}

// distances finds the step count from origin to every open cell.
func distances(area map[point]cell, origin point) (dist map[point]int) {
	dist = map[point]int{origin: 0}
	queue := []point{origin}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, move := range droidMoves {
			next := p.add(move.dir)
			if kind, ok := area[next]; !ok || kind == CELL_WALL {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[p] + 1
			queue = append(queue, next)
		}
	}

	return
}

func findOxygen(area map[point]cell) (pos point, ok bool) {
	for pos, kind := range area {
		if kind == CELL_OXYGEN {
			return pos, true
		}
	}
	return
}

// survey explores the area and locates the oxygen system.
func survey(in *input.Input) (area map[point]cell, oxygen point, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	area, err = explore(m)
	if err != nil {
		return
	}

	oxygen, ok := findOxygen(area)
	if !ok {
		err = ErrNoAnswer
	}
	return
}

func day15First(in *input.Input) (answer string, err error) {
	area, oxygen, err := survey(in)
	if err != nil {
		return
	}

	answer = strconv.Itoa(distances(area, oxygen)[point{}])
	return
}

func day15Second(in *input.Input) (answer string, err error) {
	area, oxygen, err := survey(in)
	if err != nil {
		return
	}

	minutes := 0
	for _, dist := range distances(area, oxygen) {
		minutes = max(minutes, dist)
	}

	answer = strconv.Itoa(minutes)
	return
}
