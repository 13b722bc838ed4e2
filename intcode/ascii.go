package intcode

import (
	"strings"
)

// ASCII_MAX is the largest output value treated as text.
const ASCII_MAX = 0x7f

// SendASCII sends each character code of text as a separate input,
// stopping early if the machine halts part way through.
func (m *Machine) SendASCII(text string) (halted bool, err error) {
	if len(text) == 0 {
		return m.Resume()
	}

	for _, r := range text {
		halted, err = m.Send(Word(r))
		if err != nil || halted {
			return
		}
	}

	return
}

// SendLine sends text followed by a newline.
func (m *Machine) SendLine(text string) (halted bool, err error) {
	return m.SendASCII(text + "\n")
}

// TakeASCIIOutput drains the output buffer as text. If any value is
// outside the ASCII range, ok is false and the output is left buffered.
func (m *Machine) TakeASCIIOutput() (text string, ok bool) {
	var sb strings.Builder
	for _, value := range m.output {
		if value < 0 || value > ASCII_MAX {
			return
		}
		sb.WriteByte(byte(value))
	}

	m.output = nil
	text = sb.String()
	ok = true
	return
}
