package puzzles

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

const (
	SYSTEM_AIR_CONDITIONER  = 1
	SYSTEM_THERMAL_RADIATOR = 5
)

// diagnostic runs the test program for one ship system. Every output but
// the last is a test result, and must be zero.
func diagnostic(in *input.Input, system intcode.Word) (code intcode.Word, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	output, err := m.Run(system)
	if err != nil {
		return
	}

	if len(output) == 0 {
		err = ErrNoOutput
		return
	}

	for n, value := range output[:len(output)-1] {
		if value != 0 {
			err = &ErrOutput{Output: output[:n+1], Err: errors.Join(ErrOutputCount, ErrDiagnostic)}
			return
		}
	}

	code = output[len(output)-1]
	return
}

func day05First(in *input.Input) (answer string, err error) {
	code, err := diagnostic(in, SYSTEM_AIR_CONDITIONER)
	if err != nil {
		return
	}

	answer = strconv.FormatInt(code, 10)
	return
}

func day05Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	output, err := m.Run(SYSTEM_THERMAL_RADIATOR)
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
