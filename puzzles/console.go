// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package puzzles

import (
	"strings"

	"github.com/ezrec/intcode/intcode"
)

// converse answers the prompts of a started machine with one line of text
// each, stopping early if it halts. Prompts are discarded; output after
// the last line is left buffered.
func converse(m *intcode.Machine, lines []string) (err error) {
	for _, line := range lines {
		if m.IsDone() {
			break
		}
		m.TakeOutput()
		_, err = m.SendLine(line)
		if err != nil {
			return
		}
	}

	return
}

// report returns the last output value. When that value is text, the
// device failed and the output is returned as a transcript of lost.
func report(m *intcode.Machine, lost error) (value intcode.Word, err error) {
	value, ok := m.LastOutput()
	if !ok {
		err = ErrNoOutput
		return
	}

	if value <= intcode.ASCII_MAX {
		err = &ErrTranscript{Text: transcript(m.TakeOutput()), Err: lost}
	}

	return
}

// transcript renders output values as text.
func transcript(output []intcode.Word) string {
	var sb strings.Builder
	for _, value := range output {
		sb.WriteByte(byte(value))
	}
	return sb.String()
}
