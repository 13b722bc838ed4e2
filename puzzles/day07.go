package puzzles

import (
	"runtime"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/input"
	"github.com/ezrec/intcode/intcode"
)

// AMPLIFIERS is the number of amplifiers in series.
const AMPLIFIERS = 5

type phases [AMPLIFIERS]intcode.Word

var (
	chainPhases    = phases{0, 1, 2, 3, 4}
	feedbackPhases = phases{5, 6, 7, 8, 9}
)

// permutations lists every ordering of settings, using Heap's algorithm.
func permutations(settings phases) (perms []phases) {
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			perms = append(perms, settings)
			return
		}

		generate(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				settings[i], settings[k-1] = settings[k-1], settings[i]
			} else {
				settings[0], settings[k-1] = settings[k-1], settings[0]
			}
			generate(k - 1)
		}
	}

	generate(len(settings))
	return
}

// amplify runs one amplifier in batch mode.
func amplify(m *intcode.Machine, phase intcode.Word, signal intcode.Word) (out intcode.Word, err error) {
	output, err := m.Clone().Run(phase, signal)
	if err != nil {
		return
	}

	if len(output) == 0 {
		err = ErrNoOutput
		return
	}

	out = output[0]
	return
}

// runChain passes a zero signal through each amplifier in turn.
func runChain(m *intcode.Machine, settings phases) (signal intcode.Word, err error) {
	for _, phase := range settings {
		signal, err = amplify(m, phase, signal)
		if err != nil {
			return
		}
	}

	return
}

// runFeedback wires the last amplifier back to the first, and passes
// signals around the loop until the last amplifier halts.
func runFeedback(m *intcode.Machine, settings phases) (signal intcode.Word, err error) {
	var amps [AMPLIFIERS]*intcode.Machine
	for n, phase := range settings {
		amps[n] = m.Clone()
		amps[n].Start()
		_, err = amps[n].Send(phase)
		if err != nil {
			return
		}
	}

	for {
		for n, amp := range amps {
			var halted bool
			halted, err = amp.Send(signal)
			if err != nil {
				return
			}

			value, ok := amp.LastOutput()
			if !ok {
				err = ErrNoOutput
				return
			}
			amp.TakeOutput()
			signal = value

			if halted && n == len(amps)-1 {
				return
			}
		}
	}
}

// maxSignal evaluates every ordering of settings in parallel, each on
// its own clones of m, and returns the strongest signal.
func maxSignal(m *intcode.Machine, settings phases, run func(*intcode.Machine, phases) (intcode.Word, error)) (best intcode.Word, err error) {
	perms := permutations(settings)
	signals := make([]intcode.Word, len(perms))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n, perm := range perms {
		template := m.Clone()
		g.Go(func() (err error) {
			signals[n], err = run(template, perm)
			return
		})
	}

	err = g.Wait()
	if err != nil {
		return
	}

	best = slices.Max(signals)
	return
}

func day07First(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	best, err := maxSignal(m, chainPhases, runChain)
	if err != nil {
		return
	}

	answer = strconv.FormatInt(best, 10)
	return
}

func day07Second(in *input.Input) (answer string, err error) {
	m, err := in.Machine()
	if err != nil {
		return
	}

	best, err := maxSignal(m, feedbackPhases, runFeedback)
	if err != nil {
		return
	}

	answer = strconv.FormatInt(best, 10)
	return
}
