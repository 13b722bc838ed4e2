// Package puzzles solves the intcode puzzles of Advent of Code 2019.
//
// Each puzzle drives machines only through the public intcode API. The
// available days are listed in a static table; see Lookup and Solve.
package puzzles
