package intcode

import (
	"errors"
	"slices"
)

// Word is a single memory cell.
type Word = int64

// MAX_ADDRESS is the first address a write may not reach.
const MAX_ADDRESS = Word(1 << 24)

// Memory is the machine tape. Cells past the end read as zero.
type Memory struct {
	Data []Word
}

// Len returns the number of allocated cells.
func (mem *Memory) Len() int {
	return len(mem.Data)
}

// Read returns the value at addr.
func (mem *Memory) Read(addr Word) (value Word, err error) {
	if addr < 0 {
		err = errors.Join(ErrAddress, ErrNegativeAddress)
		return
	}

	if addr < Word(len(mem.Data)) {
		value = mem.Data[addr]
	}

	return
}

// Write stores value at addr, extending the tape with zero cells as needed.
func (mem *Memory) Write(addr Word, value Word) (err error) {
	err = checkWrite(addr)
	if err != nil {
		return
	}

	if addr >= Word(len(mem.Data)) {
		mem.grow(int(addr) + 1)
	}

	mem.Data[addr] = value

	return
}

// checkWrite validates a write target.
func checkWrite(addr Word) (err error) {
	switch {
	case addr < 0:
		err = errors.Join(ErrAddress, ErrNegativeAddress)
	case addr >= MAX_ADDRESS:
		err = errors.Join(ErrAddress, ErrAddressRange)
	}
	return
}

// grow extends the tape to size cells.
func (mem *Memory) grow(size int) {
	if size <= len(mem.Data) {
		return
	}

	old := len(mem.Data)
	mem.Data = slices.Grow(mem.Data, size-old)[:size]
	clear(mem.Data[old:])
}

// Clone returns an independent copy of the tape.
func (mem *Memory) Clone() Memory {
	return Memory{Data: slices.Clone(mem.Data)}
}
