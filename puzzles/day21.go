package puzzles

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

var ErrDroidLost = errors.New(f("springdroid fell into space"))

// Jump if any of the next three tiles is a hole and the landing tile is
// ground.
var walkScript = []string{
	"OR A T",
	"AND B T",
	"AND C T",
	"NOT T J",
	"AND D J",
	"WALK",
}

// As walkScript, but only when the droid can step (E) or jump again (H)
// after landing.
var runScript = []string{
	"OR A T",
	"AND B T",
	"AND C T",
	"NOT T T",
	"OR E J",
	"OR H J",
	"AND T J",
	"AND D J",
	"RUN",
}

// springdroid loads a springscript program, ending in WALK or RUN, and
// returns the reported hull damage.
func springdroid(m *intcode.Machine, script []string) (answer string, err error) {
	m = m.Clone()
	m.Start()

	_, err = m.Resume()
	if err != nil {
		return
	}

	lines := make([]string, len(script))
	for n, line := range script {
		lines[n] = strings.TrimSpace(line)
	}

	err = converse(m, lines)
	if err != nil {
		return
	}

	// The droid reports its last moments as text.
	damage, err := report(m, ErrDroidLost)
	if err != nil {
		return
	}

	answer = strconv.FormatInt(damage, 10)
	return
}

func day21First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	return springdroid(m, walkScript)
}

func day21Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	return springdroid(m, runScript)
}
