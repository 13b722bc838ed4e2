package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_SendASCII(t *testing.T) {
	assert := assert.New(t)

	m := New(mustParse(t, echoUntilZero))
	m.Start()

	halted, err := m.SendASCII("hi\n")
	assert.NoError(err)
	assert.False(halted)

	text, ok := m.TakeASCIIOutput()
	assert.True(ok)
	assert.Equal("hi\n", text)

	halted, err = m.SendLine("ok")
	assert.NoError(err)
	assert.False(halted)
	text, ok = m.TakeASCIIOutput()
	assert.True(ok)
	assert.Equal("ok\n", text)
}

func TestMachine_SendASCII_StopsOnHalt(t *testing.T) {
	assert := assert.New(t)

	// Reads one value, echoes it, and halts.
	m := New(mustParse(t, "3,100,4,100,99"))
	m.Start()

	halted, err := m.SendASCII("abc")
	assert.NoError(err)
	assert.True(halted)

	text, ok := m.TakeASCIIOutput()
	assert.True(ok)
	assert.Equal("a", text)
}

func TestMachine_TakeASCIIOutput_NonASCII(t *testing.T) {
	assert := assert.New(t)

	m := New(mustParse(t, "104,72,104,1000,99"))
	m.Start()

	halted, err := m.Resume()
	assert.NoError(err)
	assert.True(halted)

	_, ok := m.TakeASCIIOutput()
	assert.False(ok)
	assert.Equal([]Word{72, 1000}, m.TakeOutput())
}
