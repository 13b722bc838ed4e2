package puzzles

import (
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

const (
	BOOST_TEST   = 1
	BOOST_SENSOR = 2
)

// boost runs the BOOST program in a mode. A correct machine outputs
// exactly one value; anything else lists the failing opcodes.
func boost(in *input.Input, mode intcode.Word) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	output, err := m.Run(mode)
	if err != nil {
		return
	}

	if len(output) != 1 {
		err = &ErrOutput{Output: output, Err: ErrOutputCount}
		return
	}

	answer = strconv.FormatInt(output[0], 10)
	return
}

func day09First(in *input.Input) (string, error) {
	return boost(in, BOOST_TEST)
}

func day09Second(in *input.Input) (string, error) {
	return boost(in, BOOST_SENSOR)
}
