// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package puzzles

import (
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/input"
)

// Solver computes the answer to one part of a puzzle.
type Solver func(in *input.Input) (answer string, err error)

// Part selects puzzle parts.
type Part int

//go:generate go tool stringer -linecomment -type=Part
const (
	PART_FIRST  = Part(1 << 0)             // first
	PART_SECOND = Part(1 << 1)             // second
	PART_BOTH   = PART_FIRST | PART_SECOND // both
)

// ParsePart parses a part name: 'first', 'second' or 'both', or '1' and '2'.
func ParsePart(name string) (part Part, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first", "1":
		part = PART_FIRST
	case "second", "2":
		part = PART_SECOND
	case "both", "":
		part = PART_BOTH
	default:
		err = &ErrArgument{Arg: name, Err: ErrPartUnknown}
	}
	return
}

// Puzzle is one day of the calendar.
type Puzzle struct {
	Day    int
	Title  string
	First  Solver
	Second Solver // Nil if the day has no second part.
}

var puzzles = []Puzzle{
	{Day: 2, Title: "1202 Program Alarm", First: day02First, Second: day02Second},
	{Day: 5, Title: "Sunny with a Chance of Asteroids", First: day05First, Second: day05Second},
	{Day: 7, Title: "Amplification Circuit", First: day07First, Second: day07Second},
	{Day: 9, Title: "Sensor Boost", First: day09First, Second: day09Second},
	{Day: 11, Title: "Space Police", First: day11First, Second: day11Second},
	{Day: 13, Title: "Care Package", First: day13First, Second: day13Second},
	{Day: 15, Title: "Oxygen System", First: day15First, Second: day15Second},
	{Day: 17, Title: "Set and Forget", First: day17First, Second: day17Second},
	{Day: 19, Title: "Tractor Beam", First: day19First, Second: day19Second},
	{Day: 21, Title: "Springdroid Adventure", First: day21First, Second: day21Second},
	{Day: 23, Title: "Category Six", First: day23First, Second: day23Second},
	// The last star is awarded for the other 49.
	{Day: 25, Title: "Cryostasis", First: day25First},
}

// Lookup finds the puzzle for a day.
func Lookup(day int) (puzzle Puzzle, ok bool) {
	for _, puzzle = range puzzles {
		if puzzle.Day == day {
			ok = true
			return
		}
	}

	puzzle = Puzzle{}
	return
}

// Days yields every day with a puzzle, in order.
func Days() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, puzzle := range puzzles {
			if !yield(puzzle.Day) {
				return
			}
		}
	}
}

// Answer is the outcome of one puzzle part.
type Answer struct {
	Day   int
	Part  Part
	Value string
	Err   error
}

func (ans Answer) String() string {
	if ans.Err != nil {
		return ans.Err.Error()
	}
	return "Day " + strconv.Itoa(ans.Day) + ", " + ans.Part.String() + " part: " + ans.Value
}

// Solve runs the selected parts of a day's puzzle on in, in order.
func Solve(day int, part Part, in *input.Input) (answers []Answer, err error) {
	puzzle, ok := Lookup(day)
	if !ok {
		err = &ErrArgument{Arg: strconv.Itoa(day), Err: ErrDayUnknown}
		return
	}

	if part&PART_BOTH == 0 || part&^PART_BOTH != 0 {
		err = &ErrArgument{Arg: part.String(), Err: ErrPartUnknown}
		return
	}

	for _, sel := range []Part{PART_FIRST, PART_SECOND} {
		if part&sel == 0 {
			continue
		}

		solver := puzzle.First
		if sel == PART_SECOND {
			solver = puzzle.Second
		}
		if solver == nil {
			if part == sel {
				err = &ErrArgument{Arg: sel.String(), Err: ErrPartUnknown}
				return
			}
			continue
		}

		ans := Answer{Day: day, Part: sel}
		ans.Value, ans.Err = solver(in)
		if ans.Err != nil {
			ans.Err = ErrDay{Day: day, Part: sel, Err: ans.Err}
		}
		answers = append(answers, ans)
	}

	return
}
