// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script drives an intcode machine from a Starlark program.
//
// The program sees these builtins, all bound to a single machine:
//
//	start()              enable suspend/resume mode and reset
//	send(*values)        queue values, run until suspended; returns halted
//	send_ascii(text)     send each character code; returns halted
//	send_line(text)      send_ascii(text + "\n")
//	resume()             run until suspended without input; returns halted
//	output()             drain output as a list of ints
//	ascii_output()       drain output as a string, or None if not ASCII
//	done()               true once halted
//	read(addr)           read a memory cell
//	write(addr, value)   patch a memory cell
package script

import (
	"errors"
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNotInt   = errors.New(f("not an integer"))
	ErrKeywords = errors.New(f("unexpected keyword arguments"))
)

// ErrBuiltin reports a bad argument to a builtin.
type ErrBuiltin struct {
	Name  string // Builtin name.
	Value string // Offending argument, if any.
	Err   error
}

func (err *ErrBuiltin) Error() string {
	if err.Value == "" {
		return f("%v: %v", err.Name, err.Err)
	}
	return f("%v: %v %v", err.Name, err.Value, err.Err)
}

func (err *ErrBuiltin) Unwrap() error {
	return err.Err
}

// Session binds a machine to Starlark builtins.
type Session struct {
	Verbose bool             // If set, logs each builtin call.
	Machine *intcode.Machine // Machine driven by the script.
	Print   io.Writer        // Destination of print(), or the log if nil.
}

// toWord converts a Starlark value to a machine word.
func toWord(fn string, v starlark.Value) (word intcode.Word, err error) {
	i, ok := v.(starlark.Int)
	if !ok {
		err = &ErrBuiltin{Name: fn, Value: v.Type(), Err: ErrNotInt}
		return
	}
	word, ok = i.Int64()
	if !ok {
		err = &ErrBuiltin{Name: fn, Value: i.String(), Err: ErrNotInt}
	}
	return
}

func toList(words []intcode.Word) *starlark.List {
	elems := make([]starlark.Value, len(words))
	for n, word := range words {
		elems[n] = starlark.MakeInt64(word)
	}
	return starlark.NewList(elems)
}

type builtinFn func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// builtins returns the predeclared names for a session.
func (s *Session) builtins() starlark.StringDict {
	m := s.Machine

	trace := func(fn builtinFn) builtinFn {
		return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if s.Verbose {
				log.Printf("script: %v%v", b.Name(), args)
			}
			return fn(thread, b, args, kwargs)
		}
	}

	halted := func(done bool, err error) (starlark.Value, error) {
		if err != nil {
			return nil, err
		}
		return starlark.Bool(done), nil
	}

	fns := map[string]builtinFn{
		"start": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			m.Start()
			return starlark.None, nil
		},
		"send": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) != 0 {
				return nil, &ErrBuiltin{Name: b.Name(), Err: ErrKeywords}
			}
			values := make([]intcode.Word, len(args))
			for n, arg := range args {
				word, err := toWord(b.Name(), arg)
				if err != nil {
					return nil, err
				}
				values[n] = word
			}
			return halted(m.Send(values...))
		},
		"send_ascii": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var text string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
				return nil, err
			}
			return halted(m.SendASCII(text))
		},
		"send_line": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var text string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
				return nil, err
			}
			return halted(m.SendLine(text))
		},
		"resume": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return halted(m.Resume())
		},
		"output": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return toList(m.TakeOutput()), nil
		},
		"ascii_output": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			text, ok := m.TakeASCIIOutput()
			if !ok {
				return starlark.None, nil
			}
			return starlark.String(text), nil
		},
		"done": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.Bool(m.IsDone()), nil
		},
		"read": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
				return nil, err
			}
			word, err := toWord(b.Name(), addr)
			if err != nil {
				return nil, err
			}
			value, err := m.Read(word)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt64(value), nil
		},
		"write": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr, value starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value); err != nil {
				return nil, err
			}
			a, err := toWord(b.Name(), addr)
			if err != nil {
				return nil, err
			}
			v, err := toWord(b.Name(), value)
			if err != nil {
				return nil, err
			}
			if err := m.Write(a, v); err != nil {
				return nil, err
			}
			return starlark.None, nil
		},
	}

	dict := starlark.StringDict{}
	for name, fn := range fns {
		dict[name] = starlark.NewBuiltin(name, trace(fn))
	}

	return dict
}

// Run executes a Starlark program against the session machine, and returns
// its global variables. src may be anything starlark.ExecFileOptions accepts.
func (s *Session) Run(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			if s.Print == nil {
				log.Printf("%v: %v", filename, msg)
				return
			}
			fmt.Fprintln(s.Print, msg)
		},
	}

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, s.builtins())
	return
}
