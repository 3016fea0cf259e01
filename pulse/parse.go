package pulse

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Parse builds a Network from lines like "%a -> b, c". Names that only
// appear as outputs become Sink modules.
func Parse(lines []string, opts ...Option) (*Network, error) {
	n := &Network{
		modules: make(map[string]*Module),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m, err := parseModule(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if _, dup := n.modules[m.Name]; dup {
			return nil, fmt.Errorf("line %d: %w: duplicate module %q", i+1, ErrBadModule, m.Name)
		}
		n.modules[m.Name] = m
		n.order = append(n.order, m.Name)
	}
	if _, ok := n.modules[BroadcasterName]; !ok {
		return nil, ErrNoBroadcaster
	}

	for _, name := range n.order {
		for _, out := range n.modules[name].Outputs {
			dst, ok := n.modules[out]
			if !ok {
				dst = &Module{Name: out, Kind: Sink}
				n.modules[out] = dst
				n.order = append(n.order, out)
			}
			if !slices.Contains(dst.Inputs, name) {
				dst.Inputs = append(dst.Inputs, name)
			}
		}
	}
	n.Reset()

	return n, nil
}

func parseModule(line string) (*Module, error) {
	lhs, rhs, ok := strings.Cut(line, "->")
	if !ok {
		return nil, fmt.Errorf("%w: %q: missing ->", ErrBadModule, line)
	}
	lhs = strings.TrimSpace(lhs)

	m := &Module{}
	switch {
	case lhs == BroadcasterName:
		m.Kind = Broadcast
	case strings.HasPrefix(lhs, "%"):
		m.Kind = FlipFlop
		lhs = lhs[1:]
	case strings.HasPrefix(lhs, "&"):
		m.Kind = Conjunction
		lhs = lhs[1:]
	default:
		return nil, fmt.Errorf("%w: %q: unknown module type", ErrBadModule, line)
	}
	if lhs == "" {
		return nil, fmt.Errorf("%w: %q: empty name", ErrBadModule, line)
	}
	m.Name = lhs

	for _, out := range strings.Split(rhs, ",") {
		out = strings.TrimSpace(out)
		if out == "" {
			return nil, fmt.Errorf("%w: %q: empty output", ErrBadModule, line)
		}
		m.Outputs = append(m.Outputs, out)
	}

	return m, nil
}
