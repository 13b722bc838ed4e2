package puzzles

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

func TestArcade_Update(t *testing.T) {
	assert := assert.New(t)

	a := newArcade()
	assert.NoError(a.update([]intcode.Word{1, 2, 3, 6, 5, 4, -1, 0, 12345}))
	assert.Equal(TILE_PADDLE, a.Tiles[point{1, 2}])
	assert.Equal(TILE_BALL, a.Tiles[point{6, 5}])
	assert.Equal(intcode.Word(12345), a.Score)
	assert.Equal(6, a.Ball)
	assert.Equal(1, a.Paddle)
	assert.Equal(intcode.Word(1), a.joystick())
	assert.Len(a.Tiles, 2)

	a.Ball = 0
	assert.Equal(intcode.Word(-1), a.joystick())
	a.Ball = 1
	assert.Equal(intcode.Word(0), a.joystick())

	assert.ErrorIs(a.update([]intcode.Word{1, 2}), ErrOutputCount)
}

func TestDay13(t *testing.T) {
	assert := assert.New(t)

	// Draws two blocks and a wall.
	screen := "104,1,104,2,104,2,104,6,104,5,104,2,104,0,104,0,104,1,99"

	answer, err := day13First(input.New(screen))
	assert.NoError(err)
	assert.Equal("2", answer)

	// The game from TestPlay, behind a jump to 4 that still lands on 4
	// once a 2 is written to address 0.
	game := "1106,0,4,0," +
		"104,3,104,1,104,4,104,1,104,1,104,3,3,100,104,-1,104,0,4,100,99"

	answer, err = day13Second(input.New(game))
	assert.NoError(err)
	assert.Equal("1", answer)

	_, err = day13First(input.New(game))
	assert.ErrorIs(err, intcode.ErrInputUnderrun)

	_, err = day13First(input.New("104,1,99"))
	assert.ErrorIs(err, ErrOutputCount)
}

func TestPlay(t *testing.T) {
	assert := assert.New(t)

	// Draws a paddle at 1 and the ball at 3, then scores the joystick.
	game := "104,3,104,1,104,4,104,1,104,1,104,3,3,100,104,-1,104,0,4,100,99"

	m, err := input.New(game).Machine()
	assert.NoError(err)
	m.Start()

	a, err := play(m)
	assert.NoError(err)
	assert.True(m.IsDone())
	assert.Equal(3, a.Ball)
	assert.Equal(1, a.Paddle)
	assert.Equal(intcode.Word(1), a.Score)
	assert.Equal(0, a.count(TILE_BLOCK))
}

func TestArcade_Verbose(t *testing.T) {
	assert := assert.New(t)

	logged := &bytes.Buffer{}
	log.SetOutput(logged)
	defer log.SetOutput(os.Stderr)

	a := newArcade()
	a.Verbose = true
	assert.NoError(a.update([]intcode.Word{1, 2, 3, 6, 5, 4, 7, 0, 9}))
	assert.Contains(logged.String(), "arcade: (1, 2) paddle")
	assert.Contains(logged.String(), "arcade: (6, 5) ball")
	assert.Contains(logged.String(), "arcade: (7, 0) tile(9)")
}

func TestTile_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		tile tile
		name string
	}){
		{TILE_EMPTY, "empty"},
		{TILE_WALL, "wall"},
		{TILE_BLOCK, "block"},
		{TILE_PADDLE, "paddle"},
		{TILE_BALL, "ball"},
		{tile(-1), "tile(-1)"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.tile.String())
	}
}
