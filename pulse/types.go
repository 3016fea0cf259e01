package pulse

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors.
var (
	ErrBadModule           = errors.New("pulse: malformed module line")
	ErrNoBroadcaster       = errors.New("pulse: network has no broadcaster")
	ErrUnknownModule       = errors.New("pulse: unknown module")
	ErrUnsupportedTopology = errors.New("pulse: target is not fed by a single conjunction")
	ErrBudgetExhausted     = errors.New("pulse: press budget exhausted")
)

// BroadcasterName is the module the button sends its low pulse to.
const BroadcasterName = "broadcaster"

// ButtonName is the source of the initial pulse of every press.
const ButtonName = "button"

// Kind tags a module's behavior.
type Kind int

const (
	// Sink modules only appear as outputs; they swallow pulses.
	Sink Kind = iota
	Broadcast
	FlipFlop
	Conjunction
)

// String returns the input prefix of the kind.
func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "%"
	case Conjunction:
		return "&"
	default:
		return "sink"
	}
}

// Module describes one node of the network.
type Module struct {
	Name    string
	Kind    Kind
	Outputs []string
	Inputs  []string
}

// Pulse travels from one module to another.
type Pulse struct {
	From, To string
	High     bool
}

// Counts tallies one or more presses.
type Counts struct {
	Low, High int64
	// HighSent counts the high pulses each module emitted.
	HighSent map[string]int
}

// Product returns Low*High.
func (c Counts) Product() int64 { return c.Low * c.High }

// Option configures a Network.
type Option func(*Network)

// WithLogger attaches a logger. Every press is logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}
