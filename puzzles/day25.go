// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package puzzles

import (
	"errors"
	"log"
	"slices"
	"strings"
	"unicode"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

var (
	ErrNoCheckpoint = errors.New(f("security checkpoint not found"))
	ErrNoPassword   = errors.New(f("no airlock password"))
)

// CHECKPOINT is the room guarding the pressure-sensitive floor.
const CHECKPOINT = "Security Checkpoint"

// Items that trap the droid without halting the game, so a trial take on a
// clone cannot reveal them.
var trapItems = []string{
	"giant electromagnet",
	"infinite loop",
}

var oppositeDoor = map[string]string{
	"north": "south",
	"south": "north",
	"east":  "west",
	"west":  "east",
}

// room is the last room described in a block of console text.
type room struct {
	Name  string
	Doors []string
	Items []string
}

func parseRoom(text string) (r room) {
	var list *[]string
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " =="):
			r = room{Name: strings.TrimSuffix(strings.TrimPrefix(line, "== "), " ==")}
			list = nil
		case line == "Doors here lead:":
			list = &r.Doors
		case line == "Items here:":
			list = &r.Items
		case strings.HasPrefix(line, "- ") && list != nil:
			*list = append(*list, strings.TrimPrefix(line, "- "))
		default:
			list = nil
		}
	}
	return
}

// airlockPassword finds the first number in text.
func airlockPassword(text string) (password string, ok bool) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return
	}
	return fields[0], true
}

// command sends one line to the console and returns the reply.
func command(m *intcode.Machine, line string) (text string, err error) {
	if m.Verbose {
		log.Printf("cryostasis: %v", line)
	}

	_, err = m.SendLine(line)
	if err != nil {
		return
	}

	text = transcript(m.TakeOutput())
	return
}

// safeItem returns true if taking item leaves the game running.
func safeItem(m *intcode.Machine, item string) bool {
	if slices.Contains(trapItems, item) {
		return false
	}

	trial := m.Clone()
	halted, err := trial.SendLine("take " + item)
	return err == nil && !halted
}

// cryoDroid explores the ship, carrying every safe item it finds.
type cryoDroid struct {
	m         *intcode.Machine
	Visited   map[string]bool
	Items     []string // Items held.
	Route     []string // Doors from the start to the checkpoint.
	FloorDoor string   // Door from the checkpoint to the floor.
}

// explore visits r and every room beyond it, then returns to r. path is the
// list of doors taken to reach r.
func (d *cryoDroid) explore(r room, path []string) (err error) {
	d.Visited[r.Name] = true

	for _, item := range r.Items {
		if !safeItem(d.m, item) {
			continue
		}
		_, err = command(d.m, "take "+item)
		if err != nil {
			return
		}
		d.Items = append(d.Items, item)
	}

	var back string
	if len(path) > 0 {
		back = oppositeDoor[path[len(path)-1]]
	}

	if r.Name == CHECKPOINT {
		d.Route = slices.Clone(path)
		for _, door := range r.Doors {
			if door != back {
				d.FloorDoor = door
			}
		}
		return
	}

	for _, door := range r.Doors {
		if door == back {
			continue
		}

		var text string
		text, err = command(d.m, door)
		if err != nil {
			return
		}

		next := parseRoom(text)
		if !d.Visited[next.Name] {
			err = d.explore(next, append(slices.Clip(path), door))
			if err != nil {
				return
			}
		}

		_, err = command(d.m, oppositeDoor[door])
		if err != nil {
			return
		}
	}

	return
}

// breach walks to the checkpoint and tries each subset of the held items on
// the floor until the droid is let through.
func (d *cryoDroid) breach() (password string, err error) {
	if d.FloorDoor == "" {
		err = ErrNoCheckpoint
		return
	}

	for _, door := range d.Route {
		_, err = command(d.m, door)
		if err != nil {
			return
		}
	}

	subsets := 1 << len(d.Items)
	for held := range subsets {
		trial := d.m.Clone()
		for n, item := range d.Items {
			if held&(1<<n) != 0 {
				continue
			}
			_, err = command(trial, "drop "+item)
			if err != nil {
				return
			}
		}

		var text string
		text, err = command(trial, d.FloorDoor)
		if err != nil {
			return
		}
		if !trial.IsDone() {
			continue
		}

		var ok bool
		password, ok = airlockPassword(text)
		if !ok {
			err = &ErrTranscript{Text: text, Err: ErrNoPassword}
		}
		return
	}

	err = ErrNoAnswer
	return
}

func day25First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	m.Start()
	_, err = m.Resume()
	if err != nil {
		return
	}

	d := &cryoDroid{m: m, Visited: map[string]bool{}}
	err = d.explore(parseRoom(transcript(m.TakeOutput())), nil)
	if err != nil {
		return
	}

	return d.breach()
}
