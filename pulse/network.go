package pulse

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Network holds module descriptions and their mutable state.
type Network struct {
	modules map[string]*Module
	order   []string
	logger  *zap.Logger

	on      map[string]bool
	memory  map[string]map[string]bool
	presses int
}

// Module returns the description of name.
func (n *Network) Module(name string) (Module, bool) {
	m, ok := n.modules[name]
	if !ok {
		return Module{}, false
	}
	return *m, true
}

// Names lists modules in declaration order, sinks last.
func (n *Network) Names() []string { return slices.Clone(n.order) }

// Presses returns the number of presses since the last Reset.
func (n *Network) Presses() int { return n.presses }

// Reset turns every flip-flop off and sets every conjunction memory low.
func (n *Network) Reset() {
	n.on = make(map[string]bool)
	n.memory = make(map[string]map[string]bool)
	for _, name := range n.order {
		m := n.modules[name]
		if m.Kind == Conjunction {
			mem := make(map[string]bool, len(m.Inputs))
			for _, in := range m.Inputs {
				mem[in] = false
			}
			n.memory[name] = mem
		}
	}
	n.presses = 0
}

// Press pushes the button once and runs the network until quiet.
func (n *Network) Press() Counts {
	n.presses++
	c := Counts{HighSent: make(map[string]int)}
	queue := []Pulse{{From: ButtonName, To: BroadcasterName}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.High {
			c.High++
		} else {
			c.Low++
		}
		queue = append(queue, n.deliver(p, &c)...)
	}
	n.logger.Debug("button pressed",
		zap.Int("press", n.presses),
		zap.Int64("low", c.Low),
		zap.Int64("high", c.High),
	)

	return c
}

// deliver applies p to its destination and returns the emitted pulses.
func (n *Network) deliver(p Pulse, c *Counts) []Pulse {
	m, ok := n.modules[p.To]
	if !ok {
		return nil
	}

	var high bool
	switch m.Kind {
	case Broadcast:
		high = p.High
	case FlipFlop:
		if p.High {
			return nil
		}
		n.on[m.Name] = !n.on[m.Name]
		high = n.on[m.Name]
	case Conjunction:
		mem := n.memory[m.Name]
		mem[p.From] = p.High
		high = false
		for _, v := range mem {
			if !v {
				high = true
				break
			}
		}
	default:
		return nil
	}

	if high {
		c.HighSent[m.Name]++
	}
	out := make([]Pulse, len(m.Outputs))
	for i, dst := range m.Outputs {
		out[i] = Pulse{From: m.Name, To: dst, High: high}
	}
	return out
}

// PressN presses the button times times from the current state and
// returns the summed counts.
func (n *Network) PressN(times int) Counts {
	total := Counts{HighSent: make(map[string]int)}
	for range times {
		c := n.Press()
		total.Low += c.Low
		total.High += c.High
		for k, v := range c.HighSent {
			total.HighSent[k] += v
		}
	}
	return total
}

// FirstHighPresses resets the network and presses until every watched
// module has emitted a high pulse, returning the press number of each
// first high. Repeated names are watched once. It fails with
// ErrBudgetExhausted after budget presses.
func (n *Network) FirstHighPresses(watch []string, budget int) (map[string]int, error) {
	distinct := make([]string, 0, len(watch))
	for _, w := range watch {
		if _, ok := n.modules[w]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModule, w)
		}
		if !slices.Contains(distinct, w) {
			distinct = append(distinct, w)
		}
	}
	watch = distinct
	n.Reset()

	first := make(map[string]int, len(watch))
	for len(first) < len(watch) {
		if n.presses >= budget {
			missing := make([]string, 0, len(watch))
			for _, w := range watch {
				if _, ok := first[w]; !ok {
					missing = append(missing, w)
				}
			}
			return first, fmt.Errorf("%w: %d presses, still waiting on %v", ErrBudgetExhausted, budget, missing)
		}
		c := n.Press()
		for _, w := range watch {
			if _, seen := first[w]; !seen && c.HighSent[w] > 0 {
				first[w] = n.presses
				n.logger.Debug("first high", zap.String("module", w), zap.Int("press", n.presses))
			}
		}
	}

	return first, nil
}

// PressesUntilLow estimates the first press on which target receives a
// low pulse, for targets fed by exactly one conjunction.
func (n *Network) PressesUntilLow(target string, budget int) (int64, error) {
	m, ok := n.modules[target]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModule, target)
	}
	if len(m.Inputs) != 1 || n.modules[m.Inputs[0]].Kind != Conjunction {
		return 0, fmt.Errorf("%w: %q has inputs %v", ErrUnsupportedTopology, target, m.Inputs)
	}
	hub := n.modules[m.Inputs[0]]

	first, err := n.FirstHighPresses(hub.Inputs, budget)
	if err != nil {
		return 0, err
	}
	periods := slices.Sorted(maps.Values(first))
	result := int64(1)
	for _, p := range periods {
		result = LCM(result, int64(p))
	}
	n.logger.Info("presses until low",
		zap.String("target", target),
		zap.String("hub", hub.Name),
		zap.Ints("periods", periods),
		zap.Int64("presses", result),
	)

	return result, nil
}
