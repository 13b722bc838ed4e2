package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/script"
	"github.com/ezrec/intcode/terminal"
)

func loadMachine(program string, resume string) (m *intcode.Machine, err error) {
	if len(resume) != 0 {
		var data []byte
		data, err = os.ReadFile(resume)
		if err != nil {
			return
		}
		var snap *intcode.Snapshot
		snap, err = intcode.UnmarshalSnapshot(data)
		if err != nil {
			return
		}
		m = intcode.Restore(*snap)
		return
	}

	inf, err := os.Open(program)
	if err != nil {
		return
	}
	defer inf.Close()

	return intcode.Load(inf)
}

func saveMachine(m *intcode.Machine, path string) (err error) {
	snap, err := m.Snapshot()
	if err != nil {
		return
	}

	data, err := intcode.MarshalSnapshot(&snap)
	if err != nil {
		return
	}

	return os.WriteFile(path, data, 0o644)
}

func printOutput(output []intcode.Word) {
	for _, value := range output {
		fmt.Println(value)
	}
}

func main() {
	var inputs string
	var ascii bool
	var scriptPath string
	var save string
	var resume string
	var verbose bool

	flag.StringVar(&inputs, "i", "", "Comma separated input values")
	flag.BoolVar(&ascii, "ascii", false, "Run as an ASCII terminal on stdin and stdout")
	flag.StringVar(&scriptPath, "script", "", "Starlark .star file driving the machine")
	flag.StringVar(&save, "save", "", "Save the final machine state to a CBOR snapshot")
	flag.StringVar(&resume, "resume", "", "Resume from a CBOR snapshot instead of a program")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	program := flag.Arg(0)
	if flag.NArg() > 1 || (flag.NArg() == 0) == (len(resume) == 0) {
		log.Fatalf("%v: Expected one PROGRAM, or -resume", os.Args[0])
	}

	var values []intcode.Word
	if len(strings.TrimSpace(inputs)) != 0 {
		var err error
		values, err = intcode.Parse(inputs)
		if err != nil {
			log.Fatalf("-i: %v", err)
		}
	}

	if len(scriptPath) != 0 && len(values) != 0 {
		log.Fatalf("%v: -i cannot be used with -script", os.Args[0])
	}

	m, err := loadMachine(program, resume)
	if err != nil {
		log.Fatalf("%v%v: %v", program, resume, err)
	}
	m.Verbose = verbose

	switch {
	case len(scriptPath) != 0:
		sess := &script.Session{
			Verbose: verbose,
			Machine: m,
			Print:   os.Stdout,
		}
		_, err = sess.Run(scriptPath, nil)
		if err != nil {
			log.Fatalf("%v: %v", scriptPath, err)
		}
	case ascii:
		if !m.Started() {
			m.Start()
		}
		m.Push(values...)

		term := &terminal.Terminal{
			Input:   os.Stdin,
			Output:  os.Stdout,
			Verbose: verbose,
		}
		_, err = term.Run(m)
		if err != nil {
			log.Fatal(err)
		}
	case m.Started() || len(save) != 0:
		// Run suspendable, so the saved state can stop at an input it has
		// not been given yet.
		if !m.Started() {
			m.Start()
		}
		_, err = m.Send(values...)
		if err != nil {
			log.Fatal(err)
		}
		printOutput(m.TakeOutput())
	default:
		var output []intcode.Word
		output, err = m.Run(values...)
		if err != nil {
			log.Fatal(err)
		}
		printOutput(output)
	}

	if len(save) != 0 {
		err = saveMachine(m, save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
	}
}
