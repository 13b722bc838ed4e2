// Package input acquires and splits raw puzzle input.
package input

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrEmpty = errors.New(f("input empty"))
)

// ErrLine locates a malformed line.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}

// Input is the raw text of a puzzle input.
type Input struct {
	Raw     string
	Verbose bool // If set, machines created from the input trace execution.
}

// New wraps raw text.
func New(raw string) *Input {
	return &Input{Raw: raw}
}

// FromReader reads all of r.
func FromReader(r io.Reader) (in *Input, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	in = New(string(data))
	return
}

// Lines yields each non-empty line.
func (in *Input) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(in.Raw) {
			line = strings.TrimRight(line, "\r\n")
			if len(line) == 0 {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Ints parses one integer per non-empty line.
func (in *Input) Ints() (values []int64, err error) {
	lineno := 0
	for line := range in.Lines() {
		lineno++
		var value int64
		value, err = strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			err = ErrLine{LineNo: lineno, Line: line, Err: err}
			return
		}
		values = append(values, value)
	}

	return
}

// Program parses the input as an intcode program listing.
func (in *Input) Program() (program []intcode.Word, err error) {
	return intcode.Parse(in.Raw)
}

// Machine creates a machine from the input program listing.
func (in *Input) Machine() (m *intcode.Machine, err error) {
	program, err := in.Program()
	if err != nil {
		return
	}

	m = intcode.New(program)
	m.Verbose = in.Verbose
	return
}

// ReadUntilBlank reads lines from r until two consecutive blank lines or
// end of input, for pasting puzzle input into a terminal.
func ReadUntilBlank(r io.Reader) (in *Input, err error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	blank := false
	for scanner.Scan() {
		line := scanner.Text()
		sb.WriteString(line)
		sb.WriteByte('\n')

		if len(line) == 0 {
			if blank {
				break
			}
			blank = true
		} else {
			blank = false
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(strings.TrimSpace(sb.String())) == 0 {
		err = ErrEmpty
		return
	}

	in = New(sb.String())
	return
}
