package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Error categories
	ErrDecode        = errors.New(f("decode"))
	ErrAddress       = errors.New(f("address"))
	ErrInputUnderrun = errors.New(f("missing input"))
	ErrProtocol      = errors.New(f("protocol"))

	// Decode details
	ErrMode = errors.New(f("invalid parameter mode"))

	// Address details
	ErrNegativeAddress = errors.New(f("negative address"))
	ErrImmediateWrite  = errors.New(f("write in immediate mode"))
	ErrAddressRange    = errors.New(f("address beyond memory limit"))

	// Protocol details
	ErrNotStarted = errors.New(f("machine not started"))
	ErrHalted     = errors.New(f("machine halted"))
	ErrBatchWait  = errors.New(f("cannot wait for input when using run"))

	// Loader errors
	ErrProgramEmpty = errors.New(f("program empty"))
	ErrSnapshot     = errors.New(f("invalid snapshot"))
)

// ErrOpcode is an instruction word with no known opcode.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("unknown opcode %v in word %v", Word(eo)%100, Word(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrRuntime records the instruction pointer of a failed step.
type ErrRuntime struct {
	Ip  Word
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %v %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrParse locates a malformed field in a program listing.
type ErrParse struct {
	Field int
	Text  string
	Err   error
}

func (err ErrParse) Error() string {
	return f("field %d '%v' %v", err.Field, err.Text, err.Err)
}

func (err ErrParse) Unwrap() error {
	return err.Err
}
