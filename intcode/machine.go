// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING        = State(0) // running
	STATE_AWAITING_INPUT = State(1) // awaiting input
	STATE_HALTED         = State(2) // halted
	STATE_FAULTED        = State(3) // faulted
)

// Machine is the simulation context of a single intcode computer.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory       Memory // Program and data tape.
	Ip           Word   // Current instruction pointer.
	RelativeBase Word   // Base for relative mode parameters.
	Input        Queue  // Pending input values.

	output []Word

	halted       bool
	waitForInput bool
	awaiting     bool
	fault        error
}

// New creates a machine whose tape is a copy of program.
func New(program []Word) (m *Machine) {
	m = &Machine{
		Memory: Memory{Data: slices.Clone(program)},
	}

	return
}

// String returns the current register state as a string.
func (m *Machine) String() string {
	return fmt.Sprintf("ip: %d rb: %d in: %d out: %d mem: %d state: %v",
		m.Ip, m.RelativeBase, m.Input.Len(), len(m.output), m.Memory.Len(), m.State())
}

// State returns the execution state.
func (m *Machine) State() State {
	switch {
	case m.fault != nil:
		return STATE_FAULTED
	case m.halted:
		return STATE_HALTED
	case m.awaiting:
		return STATE_AWAITING_INPUT
	}
	return STATE_RUNNING
}

// Reset the machine registers and queues.
// - Zeros the instruction pointer and relative base.
// - Clears the halted state, input queue and output buffer.
// - Leaves memory, the wait-for-input mode and any fault in place.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("intcode: reset")
	}

	m.Ip = 0
	m.RelativeBase = 0
	m.halted = false
	m.awaiting = false
	m.Input.Reset()
	m.output = nil
}

// Clone returns a fully independent copy of the machine.
func (m *Machine) Clone() *Machine {
	return &Machine{
		Verbose:      m.Verbose,
		Memory:       m.Memory.Clone(),
		Ip:           m.Ip,
		RelativeBase: m.RelativeBase,
		Input:        m.Input.Clone(),
		output:       slices.Clone(m.output),
		halted:       m.halted,
		waitForInput: m.waitForInput,
		awaiting:     m.awaiting,
		fault:        m.fault,
	}
}

// param resolves the read value of parameter n.
func (m *Machine) param(in Instruction, n int) (value Word, err error) {
	raw, err := m.Memory.Read(m.Ip + 1 + Word(n))
	if err != nil {
		return
	}

	switch in.Modes[n] {
	case MODE_POSITION:
		value, err = m.Memory.Read(raw)
	case MODE_IMMEDIATE:
		value = raw
	case MODE_RELATIVE:
		value, err = m.Memory.Read(m.RelativeBase + raw)
	default:
		err = errors.Join(ErrDecode, ErrMode)
	}

	return
}

// address resolves the target address of write parameter n.
func (m *Machine) address(in Instruction, n int) (addr Word, err error) {
	raw, err := m.Memory.Read(m.Ip + 1 + Word(n))
	if err != nil {
		return
	}

	switch in.Modes[n] {
	case MODE_POSITION:
		addr = raw
	case MODE_RELATIVE:
		addr = m.RelativeBase + raw
	case MODE_IMMEDIATE:
		err = errors.Join(ErrAddress, ErrImmediateWrite)
	default:
		err = errors.Join(ErrDecode, ErrMode)
	}

	if err == nil {
		err = checkWrite(addr)
	}

	return
}

// Step executes at most one instruction.
//
// Step returns false with no error when the machine is halted, or when it is
// waiting for input and the input queue is empty. In the latter case the
// instruction pointer stays on the INPUT instruction.
//
// Any error faults the machine; later steps return the same error.
func (m *Machine) Step() (running bool, err error) {
	if m.fault != nil {
		err = m.fault
		return
	}

	if m.halted {
		return
	}

	ip := m.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
			m.fault = err
		}
	}()

	word, err := m.Memory.Read(m.Ip)
	if err != nil {
		return
	}

	in, err := Decode(word)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("%04d: %v", m.Ip, in)
	}

	next_ip := m.Ip + Word(in.Op.Width())

	switch in.Op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b, dst Word
		a, err = m.param(in, 0)
		if err != nil {
			return
		}
		b, err = m.param(in, 1)
		if err != nil {
			return
		}
		dst, err = m.address(in, 2)
		if err != nil {
			return
		}
		err = m.Memory.Write(dst, alu(in.Op, a, b))
		if err != nil {
			return
		}
	case OP_IN:
		var dst Word
		dst, err = m.address(in, 0)
		if err != nil {
			return
		}
		value, ok := m.Input.Pop()
		if !ok {
			if !m.waitForInput {
				err = ErrInputUnderrun
				return
			}
			if m.Verbose {
				log.Printf("intcode: awaiting input")
			}
			m.awaiting = true
			return
		}
		err = m.Memory.Write(dst, value)
		if err != nil {
			return
		}
	case OP_OUT:
		var a Word
		a, err = m.param(in, 0)
		if err != nil {
			return
		}
		m.output = append(m.output, a)
	case OP_JT, OP_JF:
		var a, b Word
		a, err = m.param(in, 0)
		if err != nil {
			return
		}
		if (a != 0) == (in.Op == OP_JT) {
			b, err = m.param(in, 1)
			if err != nil {
				return
			}
			next_ip = b
		}
	case OP_ARB:
		var a Word
		a, err = m.param(in, 0)
		if err != nil {
			return
		}
		m.RelativeBase += a
	case OP_HALT:
		if m.Verbose {
			log.Printf("intcode: halt")
		}
		m.halted = true
		m.awaiting = false
		return
	}

	m.Ip = next_ip
	m.awaiting = false
	running = true

	return
}

// alu computes the stored result of a three-parameter operation.
func alu(op Opcode, a Word, b Word) (value Word) {
	switch op {
	case OP_ADD:
		value = a + b
	case OP_MUL:
		value = a * b
	case OP_LT:
		if a < b {
			value = 1
		}
	case OP_EQ:
		if a == b {
			value = 1
		}
	}
	return
}

// resume steps until the machine halts, suspends or faults.
func (m *Machine) resume() (err error) {
	for {
		var running bool
		running, err = m.Step()
		if err != nil || !running {
			return
		}
	}
}

// Run executes the program to completion with all inputs supplied up front,
// and returns everything it output.
//
// Run resets the machine first. It is refused once Start has put the machine
// in wait-for-input mode.
func (m *Machine) Run(inputs ...Word) (output []Word, err error) {
	if m.waitForInput {
		err = errors.Join(ErrProtocol, ErrBatchWait)
		return
	}

	if m.fault != nil {
		err = m.fault
		return
	}

	m.Reset()
	m.Input.Push(inputs...)

	err = m.resume()
	if err != nil {
		return
	}

	output = m.TakeOutput()
	return
}

// Start resets the machine and enables wait-for-input mode.
// Memory, including any patches made with Write, is kept.
func (m *Machine) Start() {
	m.Reset()
	m.waitForInput = true
}

// Started returns true once Start has been called.
func (m *Machine) Started() bool {
	return m.waitForInput
}

// ready checks that the machine may be resumed.
func (m *Machine) ready() (err error) {
	switch {
	case m.fault != nil:
		err = m.fault
	case !m.waitForInput:
		err = errors.Join(ErrProtocol, ErrNotStarted)
	case m.halted:
		err = errors.Join(ErrProtocol, ErrHalted)
	}
	return
}

// Send queues values and runs until the machine halts or needs more input.
func (m *Machine) Send(values ...Word) (halted bool, err error) {
	err = m.ready()
	if err != nil {
		return
	}

	m.Input.Push(values...)

	return m.Resume()
}

// Resume runs until the machine halts or needs more input, without
// supplying any.
func (m *Machine) Resume() (halted bool, err error) {
	err = m.ready()
	if err != nil {
		return
	}

	err = m.resume()
	halted = m.halted

	return
}

// Push queues input values without running the machine.
func (m *Machine) Push(values ...Word) {
	m.Input.Push(values...)
}

// IsDone returns true once the machine has halted.
func (m *Machine) IsDone() bool {
	return m.halted
}

// IsWaiting returns true while the machine is suspended on an empty input queue.
func (m *Machine) IsWaiting() bool {
	return m.awaiting && m.fault == nil
}

// Output returns a copy of the buffered output, without draining it.
func (m *Machine) Output() []Word {
	return slices.Clone(m.output)
}

// OutputLen returns the number of buffered output values.
func (m *Machine) OutputLen() int {
	return len(m.output)
}

// LastOutput returns the most recent buffered output value.
func (m *Machine) LastOutput() (value Word, ok bool) {
	if len(m.output) == 0 {
		return
	}
	return m.output[len(m.output)-1], true
}

// TakeOutput drains and returns the buffered output.
func (m *Machine) TakeOutput() (output []Word) {
	output = m.output
	m.output = nil
	return
}

// Write patches a memory cell.
func (m *Machine) Write(addr Word, value Word) error {
	return m.Memory.Write(addr, value)
}

// Read returns a memory cell.
func (m *Machine) Read(addr Word) (Word, error) {
	return m.Memory.Read(addr)
}

// Len returns the number of allocated memory cells.
func (m *Machine) Len() int {
	return m.Memory.Len()
}

// Peek returns a memory cell, or zero for an invalid address.
func (m *Machine) Peek(addr Word) (value Word) {
	value, _ = m.Memory.Read(addr)
	return
}
