package puzzles

import (
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

const (
	GRAVITY_TARGET = 19690720
	NOUN_VERB_MAX  = 99
)

// runNounVerb runs a copy of m with its noun and verb patched in, and
// returns the final value at address 0.
func runNounVerb(m *intcode.Machine, noun, verb intcode.Word) (result intcode.Word, err error) {
	m = m.Clone()

	err = m.Write(1, noun)
	if err != nil {
		return
	}
	err = m.Write(2, verb)
	if err != nil {
		return
	}

	_, err = m.Run()
	if err != nil {
		return
	}

	result, err = m.Read(0)
	return
}

func day02First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	result, err := runNounVerb(m, 12, 2)
	if err != nil {
		return
	}

	answer = strconv.FormatInt(result, 10)
	return
}

func day02Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	for noun := intcode.Word(0); noun <= NOUN_VERB_MAX; noun++ {
		for verb := intcode.Word(0); verb <= NOUN_VERB_MAX; verb++ {
			var result intcode.Word
			result, err = runNounVerb(m, noun, verb)
			if err != nil {
				return
			}
			if result == GRAVITY_TARGET {
				answer = strconv.FormatInt(100*noun+verb, 10)
				return
			}
		}
	}

	err = ErrNoAnswer
	return
}
