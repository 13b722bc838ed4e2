package intcode

import (
	"errors"
)

// Opcode is the operation selector in the two low decimal digits of an
// instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JT   = Opcode(5)  // jt
	OP_JF   = Opcode(6)  // jf
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

// opcodeInfo describes the fixed shape of each operation.
type opcodeInfo struct {
	params int
	write  int // index of the written parameter, or -1
}

var _opcode_info = map[Opcode]opcodeInfo{
	OP_ADD:  {3, 2},
	OP_MUL:  {3, 2},
	OP_IN:   {1, 0},
	OP_OUT:  {1, -1},
	OP_JT:   {2, -1},
	OP_JF:   {2, -1},
	OP_LT:   {3, 2},
	OP_EQ:   {3, 2},
	OP_ARB:  {1, -1},
	OP_HALT: {0, -1},
}

// Valid returns true for a known opcode.
func (op Opcode) Valid() bool {
	_, ok := _opcode_info[op]
	return ok
}

// Params returns the number of parameters following the instruction word.
func (op Opcode) Params() int {
	return _opcode_info[op].params
}

// Width returns the number of words the instruction occupies.
func (op Opcode) Width() int {
	return op.Params() + 1
}

// Writes returns the index of the parameter the operation stores into,
// or -1 if it stores nothing.
func (op Opcode) Writes() int {
	info, ok := _opcode_info[op]
	if !ok {
		return -1
	}
	return info.write
}

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

// MAX_PARAMS is the widest parameter list of any instruction.
const MAX_PARAMS = 3

// Instruction is a decoded instruction word.
type Instruction struct {
	Word  Word
	Op    Opcode
	Modes [MAX_PARAMS]Mode
}

func (in Instruction) String() (text string) {
	text = in.Op.String()
	for n := range in.Op.Params() {
		text += " " + in.Modes[n].String()
	}
	return
}

// Decode splits an instruction word into its opcode and parameter modes.
// Only the modes of parameters the opcode consumes are validated.
func Decode(word Word) (in Instruction, err error) {
	in.Word = word
	in.Op = Opcode(word % 100)
	if !in.Op.Valid() {
		err = errors.Join(ErrDecode, ErrOpcode(word))
		return
	}

	digits := word / 100
	for n := range in.Op.Params() {
		mode := Mode(digits % 10)
		digits /= 10
		switch mode {
		case MODE_POSITION, MODE_RELATIVE:
		case MODE_IMMEDIATE:
			if n == in.Op.Writes() {
				err = errors.Join(ErrAddress, ErrImmediateWrite)
				return
			}
		default:
			err = errors.Join(ErrDecode, ErrMode)
			return
		}
		in.Modes[n] = mode
	}

	return
}
