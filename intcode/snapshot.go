package intcode

import (
	"errors"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot is the exportable state of a non-faulted machine.
type Snapshot struct {
	Memory       []Word `cbor:"memory"`
	Ip           Word   `cbor:"ip"`
	RelativeBase Word   `cbor:"rb"`
	Input        []Word `cbor:"input,omitempty"`
	Output       []Word `cbor:"output,omitempty"`
	Halted       bool   `cbor:"halted,omitempty"`
	WaitForInput bool   `cbor:"wait,omitempty"`
}

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("intcode: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// Snapshot captures the machine state. Faulted machines cannot be captured.
func (m *Machine) Snapshot() (snap Snapshot, err error) {
	if m.fault != nil {
		err = m.fault
		return
	}

	snap = Snapshot{
		Memory:       slices.Clone(m.Memory.Data),
		Ip:           m.Ip,
		RelativeBase: m.RelativeBase,
		Input:        slices.Clone(m.Input.Data),
		Output:       slices.Clone(m.output),
		Halted:       m.halted,
		WaitForInput: m.waitForInput,
	}
	return
}

// Restore creates a machine from a snapshot.
func Restore(snap Snapshot) (m *Machine) {
	m = &Machine{
		Memory:       Memory{Data: slices.Clone(snap.Memory)},
		Ip:           snap.Ip,
		RelativeBase: snap.RelativeBase,
		Input:        Queue{Data: slices.Clone(snap.Input)},
		output:       slices.Clone(snap.Output),
		halted:       snap.Halted,
		waitForInput: snap.WaitForInput,
	}
	return
}

// MarshalSnapshot serializes a Snapshot to CBOR bytes.
func MarshalSnapshot(snap *Snapshot) ([]byte, error) {
	return snapshotEncMode.Marshal(snap)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, errors.Join(ErrSnapshot, err)
	}
	return &snap, nil
}
