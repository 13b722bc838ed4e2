package script

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/intcode"
)

// Reads values and echoes them until it reads a zero.
const echoUntilZero = "3,100,1006,100,10,4,100,1105,1,0,99"

func newSession(t *testing.T, text string) *Session {
	t.Helper()

	program, err := intcode.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	return &Session{Machine: intcode.New(program)}
}

func TestSession_Send(t *testing.T) {
	assert := assert.New(t)

	s := newSession(t, echoUntilZero)
	printed := &bytes.Buffer{}
	s.Print = printed

	src := `
start()
first = send(5, 6)
echoed = output()
total = 0
for v in echoed:
    total += v
print("total", total)
last = send(0)
`
	globals, err := s.Run("send.star", src)
	assert.NoError(err)

	assert.Equal(starlark.False, globals["first"])
	assert.Equal(starlark.True, globals["last"])
	assert.Equal("[5, 6]", globals["echoed"].String())
	assert.Equal("11", globals["total"].String())
	assert.Equal("total 11\n", printed.String())
	assert.True(s.Machine.IsDone())
}

func TestSession_ASCII(t *testing.T) {
	assert := assert.New(t)

	s := newSession(t, echoUntilZero)

	src := `
start()
send_line("north")
text = ascii_output()
write(200, 7)
cell = read(200)
waiting = not done()
`
	globals, err := s.Run("ascii.star", src)
	assert.NoError(err)

	assert.Equal(starlark.String("north\n"), globals["text"])
	assert.Equal("7", globals["cell"].String())
	assert.Equal(starlark.True, globals["waiting"])
}

func TestSession_Errors(t *testing.T) {
	assert := assert.New(t)

	s := newSession(t, echoUntilZero)

	// send before start is a protocol error.
	_, err := s.Run("early.star", "send(1)\n")
	assert.Error(err)

	_, err = s.Run("type.star", "start()\nsend('x')\n")
	assert.ErrorIs(err, ErrNotInt)
	var builtin *ErrBuiltin
	if assert.ErrorAs(err, &builtin) {
		assert.Equal("send", builtin.Name)
		assert.Equal("string", builtin.Value)
	}

	_, err = s.Run("overflow.star", "read(1 << 70)\n")
	assert.ErrorIs(err, ErrNotInt)

	_, err = s.Run("keywords.star", "start()\nsend(value=1)\n")
	assert.ErrorIs(err, ErrKeywords)

	_, err = s.Run("limit.star", "write(1 << 40, 1)\n")
	assert.ErrorIs(err, intcode.ErrAddressRange)

	_, err = s.Run("syntax.star", "send(\n")
	assert.Error(err)
}
