package puzzles

import (
	"cmp"
	"log"
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

type tile intcode.Word

//go:generate go tool stringer -linecomment -type=tile
const (
	TILE_EMPTY  = tile(0) // empty
	TILE_WALL   = tile(1) // wall
	TILE_BLOCK  = tile(2) // block
	TILE_PADDLE = tile(3) // paddle
	TILE_BALL   = tile(4) // ball
)

// SCORE_X marks a score update in place of a tile position.
const SCORE_X = -1

// QUARTERS is the memory address of the coin count.
const QUARTERS = 0

// arcade tracks the cabinet screen.
type arcade struct {
	Verbose bool // If set, logs each tile drawn.
	Tiles   map[point]tile
	Score   intcode.Word
	Ball    int
	Paddle  int
}

func newArcade() *arcade {
	return &arcade{Tiles: map[point]tile{}}
}

// update draws (x, y, tile) triples from the cabinet output.
func (a *arcade) update(output []intcode.Word) (err error) {
	if len(output)%3 != 0 {
		err = &ErrOutput{Output: output, Err: ErrOutputCount}
		return
	}

	for n := 0; n < len(output); n += 3 {
		x, y, id := output[n], output[n+1], output[n+2]
		if x == SCORE_X && y == 0 {
			a.Score = id
			continue
		}

		t := tile(id)
		if a.Verbose {
			log.Printf("arcade: (%d, %d) %v", x, y, t)
		}
		a.Tiles[point{int(x), int(y)}] = t
		switch t {
		case TILE_BALL:
			a.Ball = int(x)
		case TILE_PADDLE:
			a.Paddle = int(x)
		}
	}

	return
}

// joystick moves the paddle toward the ball.
func (a *arcade) joystick() intcode.Word {
	return intcode.Word(cmp.Compare(a.Ball, a.Paddle))
}

func (a *arcade) count(t tile) (total int) {
	for _, id := range a.Tiles {
		if id == t {
			total++
		}
	}
	return
}

// play runs a started cabinet until the game ends.
func play(m *intcode.Machine) (a *arcade, err error) {
	a = newArcade()
	a.Verbose = m.Verbose

	halted, err := m.Resume()
	for err == nil {
		err = a.update(m.TakeOutput())
		if err != nil || halted {
			break
		}
		halted, err = m.Send(a.joystick())
	}

	return
}

func day13First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	output, err := m.Run()
	if err != nil {
		return
	}

	a := newArcade()
	a.Verbose = m.Verbose
	err = a.update(output)
	if err != nil {
		return
	}

	answer = strconv.Itoa(a.count(TILE_BLOCK))
	return
}

func day13Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	err = m.Write(QUARTERS, 2)
	if err != nil {
		return
	}

	m.Start()
	a, err := play(m)
	if err != nil {
		return
	}

	answer = strconv.FormatInt(a.Score, 10)
	return
}
