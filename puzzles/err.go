package puzzles

import (
	"errors"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrDayUnknown  = errors.New(f("no puzzle for day"))
	ErrPartUnknown = errors.New(f("unknown puzzle part"))
	ErrNoOutput    = errors.New(f("program produced no output"))
	ErrOutputCount = errors.New(f("program produced unexpected output"))
	ErrNoAnswer    = errors.New(f("no answer found"))
)

var (
	ErrDiagnostic    = errors.New(f("diagnostic test failed"))
	ErrTurn          = errors.New(f("invalid turn"))
	ErrStatus        = errors.New(f("invalid status"))
	ErrPacketAddress = errors.New(f("invalid packet address"))
)

// ErrArgument reports an unusable puzzle selection.
type ErrArgument struct {
	Arg string
	Err error
}

func (err *ErrArgument) Error() string {
	return f("%v: %q", err.Err, err.Arg)
}

func (err *ErrArgument) Unwrap() error {
	return err.Err
}

// ErrOutput reports program output the puzzle could not use.
type ErrOutput struct {
	Output []intcode.Word
	Err    error
}

func (err *ErrOutput) Error() string {
	return f("%v: %v", err.Err, err.Output)
}

func (err *ErrOutput) Unwrap() error {
	return err.Err
}

// ErrTranscript carries the console text of a failed ASCII session.
type ErrTranscript struct {
	Text string
	Err  error
}

func (err *ErrTranscript) Error() string {
	return f("%v:\n%v", err.Err, err.Text)
}

func (err *ErrTranscript) Unwrap() error {
	return err.Err
}

// ErrDay locates a failure in a puzzle part.
type ErrDay struct {
	Day  int
	Part Part
	Err  error
}

func (err ErrDay) Error() string {
	return f("day %d %v: %v", err.Day, err.Part, err.Err)
}

func (err ErrDay) Unwrap() error {
	return err.Err
}
