// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package puzzles

import (
	"errors"
	"log"
	"strconv"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

const (
	NETWORK_SIZE   = 50
	NAT_ADDRESS    = 255
	NO_PACKET      = -1
	NETWORK_ROUNDS = 1000000 // Rounds simulated before giving up.
)

// packet is an (x, y) pair addressed to a node.
type packet struct {
	Dest intcode.Word
	X, Y intcode.Word
}

// network is a set of nodes that exchange packets, one round at a time.
//
// In each round every node is resumed once; a node with an empty input
// queue first receives NO_PACKET. Packets sent to NAT_ADDRESS are held by
// the NAT, which keeps only the latest.
type network struct {
	Verbose bool

	Nodes []*intcode.Machine
	Nat   *packet // Latest packet held by the NAT.
	First *packet // First packet ever sent to the NAT.

	pending [][]intcode.Word
}

// newNetwork boots size copies of the node program, each given its address.
func newNetwork(m *intcode.Machine, size int) (n *network, err error) {
	n = &network{
		Verbose: m.Verbose,
		Nodes:   make([]*intcode.Machine, size),
		pending: make([][]intcode.Word, size),
	}

	for addr := range size {
		node := m.Clone()
		node.Start()
		_, err = node.Send(intcode.Word(addr))
		if err != nil {
			return
		}
		n.Nodes[addr] = node
	}

	_, err = n.deliver()
	return
}

// deliver routes every complete packet in the node outputs, and returns
// the number routed.
func (n *network) deliver() (count int, err error) {
	for addr, node := range n.Nodes {
		n.pending[addr] = append(n.pending[addr], node.TakeOutput()...)

		out := n.pending[addr]
		for len(out) >= 3 {
			p := packet{Dest: out[0], X: out[1], Y: out[2]}
			out = out[3:]
			count++

			if n.Verbose {
				log.Printf("network: %d -> %d (%d, %d)", addr, p.Dest, p.X, p.Y)
			}

			switch {
			case p.Dest == NAT_ADDRESS:
				if n.First == nil {
					n.First = &p
				}
				n.Nat = &p
			case p.Dest >= 0 && p.Dest < intcode.Word(len(n.Nodes)):
				n.Nodes[p.Dest].Push(p.X, p.Y)
			default:
				err = &ErrOutput{Output: []intcode.Word{p.Dest, p.X, p.Y}, Err: errors.Join(ErrOutputCount, ErrPacketAddress)}
				return
			}
		}
		n.pending[addr] = out
	}

	return
}

// round resumes every node once and routes the packets they send. The
// network is idle when no node had input waiting and none sent a packet.
func (n *network) round() (idle bool, err error) {
	idle = true
	for _, node := range n.Nodes {
		if node.IsDone() {
			continue
		}

		if node.Input.Empty() {
			node.Push(NO_PACKET)
		} else {
			idle = false
		}

		_, err = node.Resume()
		if err != nil {
			return
		}
	}

	count, err := n.deliver()
	if count > 0 {
		idle = false
	}

	return
}

func day23First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	n, err := newNetwork(m, NETWORK_SIZE)
	if err != nil {
		return
	}

	for range NETWORK_ROUNDS {
		if n.First != nil {
			answer = strconv.FormatInt(n.First.Y, 10)
			return
		}

		_, err = n.round()
		if err != nil {
			return
		}
	}

	err = ErrNoAnswer
	return
}

func day23Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	n, err := newNetwork(m, NETWORK_SIZE)
	if err != nil {
		return
	}

	var last *intcode.Word
	for range NETWORK_ROUNDS {
		var idle bool
		idle, err = n.round()
		if err != nil {
			return
		}

		if !idle || n.Nat == nil {
			continue
		}

		y := n.Nat.Y
		if last != nil && *last == y {
			answer = strconv.FormatInt(y, 10)
			return
		}
		last = &y

		n.Nodes[0].Push(n.Nat.X, n.Nat.Y)
	}

	err = ErrNoAnswer
	return
}
