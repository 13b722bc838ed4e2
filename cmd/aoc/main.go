// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"slices"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/puzzles"
)

// loadInput reads the input for a day. With no path, the configured input
// file is used; if that is missing and stdin is allowed, the input is
// pasted on stdin.
func loadInput(conf *config.Config, day int, path string, stdin bool) (in *input.Input, err error) {
	if len(path) == 0 {
		path = conf.InputPath(day)
		in, err = readInput(path)
		if !errors.Is(err, fs.ErrNotExist) || !stdin {
			return
		}
		path = "-"
	}

	if path == "-" {
		fmt.Fprintf(os.Stderr, "Paste day %d input, then two blank lines:\n", day)
		return input.ReadUntilBlank(os.Stdin)
	}

	return readInput(path)
}

func readInput(path string) (in *input.Input, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return input.FromReader(inf)
}

func main() {
	var day int
	var part string
	var confPath string
	var verbose bool

	flag.IntVar(&day, "day", 0, "Day to solve (default: every day with an input)")
	flag.StringVar(&part, "part", "both", "Part to solve: first, second or both")
	flag.StringVar(&confPath, "config", config.FILENAME, "Configuration file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	path := flag.Arg(0)

	sel, err := puzzles.ParsePart(part)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	conf, err := config.Load(confPath)
	if errors.Is(err, fs.ErrNotExist) {
		conf = config.Default()
	} else if err != nil {
		log.Fatalf("%v: %v", confPath, err)
	}

	days := []int{day}
	if day == 0 {
		if len(path) != 0 {
			log.Fatalf("%v: an input requires -day", os.Args[0])
		}
		days = slices.Collect(puzzles.Days())
	}

	failed := false
	for _, day := range days {
		in, err := loadInput(conf, day, path, len(days) == 1)
		if err != nil {
			if len(days) > 1 && errors.Is(err, fs.ErrNotExist) {
				if verbose {
					log.Printf("day %d: no input, skipping", day)
				}
				continue
			}
			log.Fatalf("day %d: %v", day, err)
		}
		in.Verbose = verbose || conf.VerboseFor(day)

		answers, err := puzzles.Solve(day, sel, in)
		if err != nil {
			if len(days) > 1 && errors.Is(err, puzzles.ErrPartUnknown) {
				if verbose {
					log.Printf("day %d: %v, skipping", day, err)
				}
				continue
			}
			log.Fatalf("%v: %v", os.Args[0], err)
		}

		for _, ans := range answers {
			if ans.Err != nil {
				log.Print(ans.Err)
				failed = true
				continue
			}
			fmt.Println(ans)
		}
	}

	if failed {
		os.Exit(1)
	}
}
