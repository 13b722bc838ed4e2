package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/input"
)

func TestDay09(t *testing.T) {
	assert := assert.New(t)

	answer, err := day09First(input.New("104,1125899906842624,99"))
	assert.NoError(err)
	assert.Equal("1125899906842624", answer)

	// Echoes the mode back through the relative base.
	in := input.New("109,10,203,0,204,0,99")

	answer, err = day09First(in)
	assert.NoError(err)
	assert.Equal("1", answer)

	answer, err = day09Second(in)
	assert.NoError(err)
	assert.Equal("2", answer)

	_, err = day09First(input.New("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"))
	assert.ErrorIs(err, ErrOutputCount)
}
