package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

// Outputs 999, 1000 or 1001 for an input below, at or above 8.
const compareEight = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
	"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101," +
	"1000,1,20,4,20,1105,1,46,98,99"

func TestDay05(t *testing.T) {
	assert := assert.New(t)

	in := input.New(compareEight)

	answer, err := day05First(in)
	assert.NoError(err)
	assert.Equal("999", answer)

	answer, err = day05Second(in)
	assert.NoError(err)
	assert.Equal("999", answer)
}

func TestDay05_Diagnostic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program string
		answer  string
		err     error
	}){
		{"104,0,104,0,104,42,99", "42", nil},
		{"3,0,104,0,4,0,99", "1", nil},
		{"104,0,104,3,104,42,99", "", ErrOutputCount},
		{"104,0,104,3,104,42,99", "", ErrDiagnostic},
		{"99", "", ErrNoOutput},
	}

	for _, entry := range table {
		answer, err := day05First(input.New(entry.program))
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.program)
			continue
		}
		assert.NoError(err, entry.program)
		assert.Equal(entry.answer, answer, entry.program)
	}

	_, err := day05First(input.New("104,0,104,3,104,42,99"))
	var out *ErrOutput
	if assert.ErrorAs(err, &out) {
		assert.Equal([]intcode.Word{0, 3}, out.Output)
	}

	_, err = day05Second(input.New("104,0,104,42,99"))
	assert.ErrorIs(err, ErrOutputCount)
	assert.NotErrorIs(err, ErrDiagnostic)
}
