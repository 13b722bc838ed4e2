package puzzles

import (
	"errors"
	"maps"
	"slices"
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

const (
	PANEL_BLACK = intcode.Word(0)
	PANEL_WHITE = intcode.Word(1)
)

const (
	TURN_LEFT  = intcode.Word(0)
	TURN_RIGHT = intcode.Word(1)
)

// robot is the hull painting robot. Panels holds every panel painted.
type robot struct {
	Machine *intcode.Machine
	Panels  map[point]intcode.Word

	pos point
	dir point
}

func newRobot(m *intcode.Machine) *robot {
	return &robot{
		Machine: m,
		Panels:  map[point]intcode.Word{},
		dir:     north,
	}
}

// run feeds the camera view to the robot brain, then paints and moves
// as instructed until the brain halts.
func (r *robot) run() (err error) {
	r.Machine.Start()

	for !r.Machine.IsDone() {
		_, err = r.Machine.Send(r.Panels[r.pos])
		if err != nil {
			return
		}

		output := r.Machine.TakeOutput()
		if len(output) == 0 && r.Machine.IsDone() {
			return
		}
		if len(output) != 2 {
			err = &ErrOutput{Output: output, Err: ErrOutputCount}
			return
		}

		r.Panels[r.pos] = output[0]

		switch output[1] {
		case TURN_LEFT:
			r.dir = r.dir.left()
		case TURN_RIGHT:
			r.dir = r.dir.right()
		default:
			err = &ErrOutput{Output: output, Err: errors.Join(ErrOutputCount, ErrTurn)}
			return
		}

		r.pos = r.pos.add(r.dir)
	}

	return
}

func (r *robot) render() string {
	cells := slices.Collect(maps.Keys(r.Panels))
	return render(cells, func(p point) bool {
		return r.Panels[p] == PANEL_WHITE
	})
}

func day11First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	r := newRobot(m)
	err = r.run()
	if err != nil {
		return
	}

	answer = strconv.Itoa(len(r.Panels))
	return
}

func day11Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	r := newRobot(m)
	r.Panels[point{}] = PANEL_WHITE
	err = r.run()
	if err != nil {
		return
	}

	answer = "\n" + r.render()
	return
}
