// Package intcode implements the intcode machine used by the Advent of Code
// 2019 puzzles.
//
// A Machine is a stored-program computer with no registers beyond an
// instruction pointer (Ip) and a relative base. Programs and data share a
// single tape of signed 64-bit words that grows on demand: reads past the
// end see zero, writes past the end extend the tape with zero cells.
//
// Each instruction word carries its opcode in the two low decimal digits and
// one addressing mode digit per parameter above them (position, immediate or
// relative). Decode is a pure function of that word, see Decode.
//
// Machines are driven either in batch (Run, with every input supplied up
// front) or cooperatively (Start followed by Send/Resume), where an INPUT
// instruction with an empty queue suspends the machine until more input is
// sent. Clone produces a fully independent copy for branching exploration.
package intcode
