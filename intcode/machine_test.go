package intcode

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// Reads values and echoes them until it reads a zero.
const echoUntilZero = "3,100,1006,100,10,4,100,1105,1,0,99"

// Outputs 999, 1000 or 1001 for an input below, at or above 8.
const compareEight = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
	"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101," +
	"1000,1,20,4,20,1105,1,46,98,99"

func mustParse(t *testing.T, text string) []Word {
	t.Helper()

	program, err := Parse(text)
	if err != nil {
		t.Fatalf("%v: %v", text, err)
	}
	return program
}

func TestMachine_Run(t *testing.T) {
	assert := assert.New(t)

	quine := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"

	table := [](struct {
		name    string
		program string
		input   []Word
		output  []Word
	}){
		{"quine", quine, nil, mustParse(t, quine)},
		{"mul_64bit", "1102,34915192,34915192,7,4,7,99,0", nil, []Word{1219070632396864}},
		{"out_large", "104,1125899906842624,99", nil, []Word{1125899906842624}},
		{"cmp_below", compareEight, []Word{7}, []Word{999}},
		{"cmp_equal", compareEight, []Word{8}, []Word{1000}},
		{"cmp_above", compareEight, []Word{9}, []Word{1001}},
		{"eq_pos", "3,9,8,9,10,9,4,9,99,-1,8", []Word{8}, []Word{1}},
		{"eq_pos_ne", "3,9,8,9,10,9,4,9,99,-1,8", []Word{5}, []Word{0}},
		{"lt_pos", "3,9,7,9,10,9,4,9,99,-1,8", []Word{5}, []Word{1}},
		{"eq_imm", "3,3,1108,-1,8,3,4,3,99", []Word{8}, []Word{1}},
		{"lt_imm", "3,3,1107,-1,8,3,4,3,99", []Word{9}, []Word{0}},
		{"jump_pos_zero", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", []Word{0}, []Word{0}},
		{"jump_pos_one", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", []Word{3}, []Word{1}},
		{"jump_imm_zero", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", []Word{0}, []Word{0}},
		{"jump_imm_one", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", []Word{-4}, []Word{1}},
		{"relative_read", "109,10,204,-10,99", nil, []Word{109}},
		{"relative_write", "109,20,203,0,204,0,99", []Word{-42}, []Word{-42}},
		{"echo", echoUntilZero, []Word{5, 6, 7, 0}, []Word{5, 6, 7}},
		{"halt", "99", nil, nil},
	}

	for _, entry := range table {
		m := New(mustParse(t, entry.program))
		output, err := m.Run(entry.input...)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, output, entry.name)
		assert.True(m.IsDone(), entry.name)
		assert.Equal(STATE_HALTED, m.State(), entry.name)
	}
}

func TestMachine_Run_Memory(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program string
		addr    Word
		value   Word
	}){
		{"1,9,10,3,2,3,11,0,99,30,40,50", 0, 3500},
		{"1,0,0,0,99", 0, 2},
		{"2,3,0,3,99", 3, 6},
		{"2,4,4,5,99,0", 5, 9801},
		{"1,1,1,4,99,5,6,0,99", 0, 30},
		{"1002,4,3,4,33", 4, 99},
		{"1101,100,-1,4,0", 4, 99},
	}

	for _, entry := range table {
		m := New(mustParse(t, entry.program))
		_, err := m.Run()
		assert.NoError(err, entry.program)
		assert.Equal(entry.value, m.Peek(entry.addr), entry.program)
	}
}

func TestMachine_Run_Resets(t *testing.T) {
	assert := assert.New(t)

	m := New(mustParse(t, compareEight))

	output, err := m.Run(7)
	assert.NoError(err)
	assert.Equal([]Word{999}, output)

	output, err = m.Run(9)
	assert.NoError(err)
	assert.Equal([]Word{1001}, output)
	assert.Equal(0, m.OutputLen())
}

func TestMachine_Growth(t *testing.T) {
	assert := assert.New(t)

	m := New([]Word{1101, 7, 8, 1000, 99})
	_, err := m.Run()
	assert.NoError(err)

	assert.Equal(1001, m.Memory.Len())
	assert.Equal(Word(15), m.Peek(1000))
	assert.Equal(Word(1101), m.Peek(0))
	assert.Equal(Word(99), m.Peek(4))
	for addr := Word(5); addr < 1000; addr++ {
		assert.Equal(Word(0), m.Peek(addr))
	}

	// Reads never grow the tape.
	assert.Equal(Word(0), m.Peek(5000))
	assert.Equal(1001, m.Len())
}

func TestMachine_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program string
		input   []Word
		is      []error
		ip      Word
	}){
		{"unknown_opcode", "1101,1,1,5,98,0", nil, []error{ErrDecode, ErrOpcode(0)}, 4},
		{"negative_opcode", "-1", nil, []error{ErrDecode}, 0},
		{"invalid_mode", "301,0,0,0,99", nil, []error{ErrDecode, ErrMode}, 0},
		{"immediate_write", "11101,1,1,0,99", nil, []error{ErrAddress, ErrImmediateWrite}, 0},
		{"immediate_input", "103,0,99", []Word{1}, []error{ErrAddress, ErrImmediateWrite}, 0},
		{"negative_read", "1,-1,0,0,99", nil, []error{ErrAddress, ErrNegativeAddress}, 0},
		{"negative_write", "109,-5,21101,1,1,0,99", nil, []error{ErrAddress, ErrNegativeAddress}, 2},
		{"negative_jump", "1105,1,-3", nil, []error{ErrAddress, ErrNegativeAddress}, -3},
		{"huge_write", "1101,1,1,4611686018427387904,99", nil, []error{ErrAddress, ErrAddressRange}, 0},
		{"limit_write", "1101,1,1,16777216,99", nil, []error{ErrAddress, ErrAddressRange}, 0},
		{"huge_relative_write", "109,1099511627776,21101,1,1,0,99", nil, []error{ErrAddress, ErrAddressRange}, 2},
		{"huge_input", "3,1099511627776,99", []Word{1}, []error{ErrAddress, ErrAddressRange}, 0},
		{"missing_input", "3,0,99", nil, []error{ErrInputUnderrun}, 0},
	}

	for _, entry := range table {
		m := New(mustParse(t, entry.program))
		_, err := m.Run(entry.input...)
		assert.Error(err, entry.name)
		for _, is := range entry.is {
			assert.ErrorIs(err, is, entry.name)
		}

		var rt *ErrRuntime
		if assert.True(errors.As(err, &rt), entry.name) {
			assert.Equal(entry.ip, rt.Ip, entry.name)
		}

		assert.Equal(STATE_FAULTED, m.State(), entry.name)

		// Faults are sticky.
		running, err2 := m.Step()
		assert.False(running, entry.name)
		assert.Equal(err, err2, entry.name)
		_, err2 = m.Run(entry.input...)
		assert.Equal(err, err2, entry.name)
	}
}

func TestMachine_Protocol(t *testing.T) {
	assert := assert.New(t)

	m := New(mustParse(t, echoUntilZero))

	_, err := m.Send(1)
	assert.ErrorIs(err, ErrProtocol)
	assert.ErrorIs(err, ErrNotStarted)

	_, err = m.Resume()
	assert.ErrorIs(err, ErrNotStarted)

	m.Start()
	assert.True(m.Started())

	_, err = m.Run(1, 0)
	assert.ErrorIs(err, ErrProtocol)
	assert.ErrorIs(err, ErrBatchWait)

	halted, err := m.Send(0)
	assert.NoError(err)
	assert.True(halted)

	_, err = m.Send(1)
	assert.ErrorIs(err, ErrProtocol)
	assert.ErrorIs(err, ErrHalted)

	// Protocol misuse does not fault the machine.
	assert.Equal(STATE_HALTED, m.State())
}

func TestMachine_Suspend(t *testing.T) {
	assert := assert.New(t)

	m := New(mustParse(t, echoUntilZero))
	m.Start()

	halted, err := m.Resume()
	assert.NoError(err)
	assert.False(halted)
	assert.True(m.IsWaiting())
	assert.Equal(STATE_AWAITING_INPUT, m.State())
	assert.Equal(Word(0), m.Ip)

	halted, err = m.Send(5)
	assert.NoError(err)
	assert.False(halted)
	assert.Equal(Word(0), m.Ip)
	value, ok := m.LastOutput()
	assert.True(ok)
	assert.Equal(Word(5), value)

	// Stepping while suspended does not advance.
	running, err := m.Step()
	assert.NoError(err)
	assert.False(running)
	assert.Equal(Word(0), m.Ip)

	m.Push(6)
	running, err = m.Step()
	assert.NoError(err)
	assert.True(running)
	assert.False(m.IsWaiting())
	assert.Equal(Word(2), m.Ip)

	halted, err = m.Send(0)
	assert.NoError(err)
	assert.True(halted)
	assert.Equal([]Word{5, 6}, m.TakeOutput())
	assert.Equal(0, m.OutputLen())
}

func TestMachine_Suspend_MatchesRun(t *testing.T) {
	assert := assert.New(t)

	inputs := []Word{5, 6, 7, 0}
	batch, err := New(mustParse(t, echoUntilZero)).Run(inputs...)
	assert.NoError(err)

	splits := [][]int{
		{4},
		{1, 3},
		{2, 2},
		{1, 1, 1, 1},
		{0, 3, 1},
	}

	for _, split := range splits {
		m := New(mustParse(t, echoUntilZero))
		m.Start()

		var output []Word
		var halted bool
		rest := inputs
		for _, size := range split {
			halted, err = m.Send(rest[:size]...)
			assert.NoError(err, split)
			output = append(output, m.TakeOutput()...)
			rest = rest[size:]
		}

		assert.True(halted, split)
		assert.Equal(batch, output, split)
	}
}

func TestMachine_Clone(t *testing.T) {
	assert := assert.New(t)

	m := New(mustParse(t, echoUntilZero))
	m.Start()
	_, err := m.Send(5)
	assert.NoError(err)

	c := m.Clone()

	ms, err := m.Snapshot()
	assert.NoError(err)
	cs, err := c.Snapshot()
	assert.NoError(err)
	if diff := cmp.Diff(ms, cs); diff != "" {
		t.Errorf("clone differs (-orig +clone):\n%s", diff)
	}

	_, err = c.Send(9)
	assert.NoError(err)
	assert.NoError(c.Write(0, 99))

	assert.Equal([]Word{5}, m.Output())
	assert.Equal([]Word{5, 9}, c.Output())
	assert.Equal(Word(3), m.Peek(0))
	assert.Equal(Word(99), c.Peek(0))
	assert.Equal(Word(5), m.Peek(100))
	assert.Equal(Word(9), c.Peek(100))
}

func TestMachine_WriteRead(t *testing.T) {
	assert := assert.New(t)

	m := New([]Word{1, 0, 0, 0, 99})
	assert.NoError(m.Write(0, 2))

	value, err := m.Read(0)
	assert.NoError(err)
	assert.Equal(Word(2), value)

	_, err = m.Run()
	assert.NoError(err)
	assert.Equal(Word(4), m.Peek(0))

	assert.ErrorIs(m.Write(-1, 0), ErrNegativeAddress)
	assert.ErrorIs(m.Write(MAX_ADDRESS, 0), ErrAddressRange)
	assert.Equal(5, m.Len())
	_, err = m.Read(-1)
	assert.ErrorIs(err, ErrAddress)
	assert.Equal(Word(0), m.Peek(-1))
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		state State
		name  string
	}){
		{STATE_RUNNING, "running"},
		{STATE_AWAITING_INPUT, "awaiting input"},
		{STATE_HALTED, "halted"},
		{STATE_FAULTED, "faulted"},
		{State(4), "State(4)"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.state.String())
	}
}
