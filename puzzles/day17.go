package puzzles

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

var (
	ErrRobotLost = errors.New(f("vacuum robot fell off the scaffold"))
	ErrNoRobot   = errors.New(f("no vacuum robot in view"))
	ErrRoutine   = errors.New(f("path does not fit the movement functions"))
)

// WAKE_ADDRESS is patched to 2 to wake the vacuum robot.
const WAKE_ADDRESS = 0

const (
	MAX_ROUTINE   = 20 // Characters in the main routine or a function, without the newline.
	MAX_FUNCTIONS = 3  // Movement functions, named A, B and C.
)

var robotFacing = map[rune]point{
	'^': north,
	'v': south,
	'<': west,
	'>': east,
}

// scaffold is a camera view. Rows are stored at y = -row, so the view
// keeps the y-up convention of point.
type scaffold struct {
	Cells  map[point]bool
	Robot  point
	Facing point // Zero if no robot is in view.
}

func parseScaffold(view string) (s *scaffold, err error) {
	s = &scaffold{Cells: map[point]bool{}}

	for row, line := range strings.Split(view, "\n") {
		for col, c := range line {
			p := point{col, -row}
			switch c {
			case '#':
				s.Cells[p] = true
			case '^', 'v', '<', '>':
				s.Cells[p] = true
				s.Robot = p
				s.Facing = robotFacing[c]
			case 'X':
				err = ErrRobotLost
				return
			}
		}
	}

	return
}

// alignment sums x*y over every scaffold intersection, with y counted in rows
// down from the top of the view.
func (s *scaffold) alignment() (total int) {
	for p := range s.Cells {
		if s.Cells[p.add(north)] && s.Cells[p.add(south)] &&
			s.Cells[p.add(west)] && s.Cells[p.add(east)] {
			total += p.x * -p.y
		}
	}
	return
}

// path walks the robot to the end of the scaffold, going straight across
// intersections, and returns its moves. Each move is a turn and a step count,
// such as "R,8". A leading move with no turn is only a step count.
func (s *scaffold) path() (moves []string, err error) {
	if s.Facing == (point{}) {
		err = ErrNoRobot
		return
	}

	pos, dir := s.Robot, s.Facing
	for {
		var turn string
		switch {
		case s.Cells[pos.add(dir)]:
		case s.Cells[pos.add(dir.left())]:
			dir = dir.left()
			turn = "L,"
		case s.Cells[pos.add(dir.right())]:
			dir = dir.right()
			turn = "R,"
		default:
			return
		}

		steps := 0
		for s.Cells[pos.add(dir)] {
			pos = pos.add(dir)
			steps++
		}
		moves = append(moves, turn+strconv.Itoa(steps))

		// A path has fewer moves than the scaffold has cells, unless it loops.
		if len(moves) > len(s.Cells) {
			err = errors.Join(ErrNoAnswer, ErrRoutine)
			return
		}
	}
}

// compress splits moves into a main routine of calls to at most
// MAX_FUNCTIONS movement functions, each no longer than MAX_ROUTINE.
func compress(moves []string) (routine string, functions []string, ok bool) {
	var calls []string
	var fns [][]string

	var solve func(rest []string) bool
	solve = func(rest []string) bool {
		if len(strings.Join(calls, ",")) > MAX_ROUTINE {
			return false
		}
		if len(rest) == 0 {
			return true
		}

		for n, fn := range fns {
			if len(fn) <= len(rest) && slices.Equal(fn, rest[:len(fn)]) {
				calls = append(calls, string(rune('A'+n)))
				if solve(rest[len(fn):]) {
					return true
				}
				calls = calls[:len(calls)-1]
			}
		}

		if len(fns) == MAX_FUNCTIONS {
			return false
		}

		for size := 1; size <= len(rest); size++ {
			fn := slices.Clip(rest[:size])
			if len(strings.Join(fn, ",")) > MAX_ROUTINE {
				break
			}
			fns = append(fns, fn)
			calls = append(calls, string(rune('A'+len(fns)-1)))
			if solve(rest[size:]) {
				return true
			}
			calls = calls[:len(calls)-1]
			fns = fns[:len(fns)-1]
		}

		return false
	}

	if len(moves) == 0 || !solve(moves) {
		return
	}

	routine = strings.Join(calls, ",")
	for _, fn := range fns {
		functions = append(functions, strings.Join(fn, ","))
	}
	ok = true
	return
}

// camera returns the view from the ASCII camera, leaving m untouched.
func camera(m *intcode.Machine) (view string, err error) {
	m = m.Clone()
	m.Start()

	_, err = m.Resume()
	if err != nil {
		return
	}

	view, ok := m.TakeASCIIOutput()
	if !ok {
		err = &ErrOutput{Output: m.TakeOutput(), Err: ErrOutputCount}
	}
	return
}

func surveyScaffold(m *intcode.Machine) (s *scaffold, err error) {
	view, err := camera(m)
	if err != nil {
		return
	}

	return parseScaffold(view)
}

func day17First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	s, err := surveyScaffold(m)
	if err != nil {
		return
	}

	answer = strconv.Itoa(s.alignment())
	return
}

func day17Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	s, err := surveyScaffold(m)
	if err != nil {
		return
	}

	moves, err := s.path()
	if err != nil {
		return
	}

	routine, functions, ok := compress(moves)
	if !ok {
		err = errors.Join(ErrNoAnswer, ErrRoutine)
		return
	}

	err = m.Write(WAKE_ADDRESS, 2)
	if err != nil {
		return
	}

	m.Start()
	_, err = m.Resume()
	if err != nil {
		return
	}

	// Unused functions are sent empty; the final "n" declines the video feed.
	lines := make([]string, 1+MAX_FUNCTIONS, 2+MAX_FUNCTIONS)
	lines[0] = routine
	copy(lines[1:], functions)
	lines = append(lines, "n")

	err = converse(m, lines)
	if err != nil {
		return
	}

	dust, err := report(m, ErrRobotLost)
	if err != nil {
		return
	}

	answer = strconv.FormatInt(dust, 10)
	return
}
