package intcode

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Parse reads a program listing of comma-separated signed integers.
// Surrounding whitespace and line breaks are ignored.
func Parse(text string) (program []Word, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	for n, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		var value Word
		value, err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			err = ErrParse{Field: n, Text: field, Err: errors.Unwrap(err)}
			return
		}
		program = append(program, value)
	}

	return
}

// Load creates a machine from a program listing read from r.
func Load(r io.Reader) (m *Machine, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	program, err := Parse(string(data))
	if err != nil {
		return
	}

	m = New(program)
	return
}
