// Package terminal connects the ASCII input and output of an intcode machine
// to byte streams, for interactive play of text driven programs.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ezrec/intcode/intcode"
)

// Terminal reads lines from Input and writes machine output to Output.
// Output words in the ASCII range are written as characters, all others
// as decimal numbers on a line of their own.
type Terminal struct {
	Input   io.Reader
	Output  io.Writer
	Verbose bool // If set, logs each line sent to the machine.

	reader *bufio.Reader
}

// flush writes all buffered machine output.
func (term *Terminal) flush(m *intcode.Machine) (err error) {
	w := bufio.NewWriter(term.Output)
	for _, value := range m.TakeOutput() {
		if value >= 0 && value <= intcode.ASCII_MAX {
			err = w.WriteByte(byte(value))
		} else {
			_, err = fmt.Fprintf(w, "%d\n", value)
		}
		if err != nil {
			return
		}
	}

	return w.Flush()
}

// readLine returns the next input line with its newline, or io.EOF.
func (term *Terminal) readLine() (line string, err error) {
	if term.reader == nil {
		term.reader = bufio.NewReader(term.Input)
	}

	line, err = term.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && len(line) > 0 {
		line += "\n"
		err = nil
	}

	return
}

// Run drives the machine until it halts or the input is exhausted.
// The machine is started first unless it already is.
func (term *Terminal) Run(m *intcode.Machine) (halted bool, err error) {
	if !m.Started() {
		m.Start()
	}

	halted, err = m.Resume()
	for {
		if err != nil {
			return
		}

		err = term.flush(m)
		if err != nil || halted {
			return
		}

		var line string
		line, err = term.readLine()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if term.Verbose {
			log.Printf("terminal: send %q", line)
		}

		halted, err = m.SendASCII(line)
	}
}
