package pulse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gridsearch/pulse"
)

const (
	loopNet = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`

	outputNet = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`

	// fa first emits high on press 2, fb on press 4.
	hubNet = `broadcaster -> x, y1
%x -> fa
%y1 -> y2
%y2 -> fb
&fa -> hub
&fb -> hub
&hub -> rx`
)

func mustParse(t *testing.T, src string, opts ...pulse.Option) *pulse.Network {
	t.Helper()
	n, err := pulse.Parse(strings.Split(src, "\n"), opts...)
	require.NoError(t, err)
	return n
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"no arrow":       {"broadcaster a", pulse.ErrBadModule},
		"unknown type":   {"broadcaster -> a\n*a -> b", pulse.ErrBadModule},
		"empty name":     {"broadcaster -> a\n% -> b", pulse.ErrBadModule},
		"empty output":   {"broadcaster -> a,", pulse.ErrBadModule},
		"duplicate":      {"broadcaster -> a\n%a -> b\n&a -> b", pulse.ErrBadModule},
		"no broadcaster": {"%a -> b", pulse.ErrNoBroadcaster},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pulse.Parse(strings.Split(tc.src, "\n"))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_Wiring(t *testing.T) {
	n := mustParse(t, outputNet)

	con, ok := n.Module("con")
	require.True(t, ok)
	assert.Equal(t, pulse.Conjunction, con.Kind)
	assert.Equal(t, []string{"a", "b"}, con.Inputs)

	out, ok := n.Module("output")
	require.True(t, ok)
	assert.Equal(t, pulse.Sink, out.Kind)
	assert.Equal(t, []string{"broadcaster", "a", "inv", "b", "con", "output"}, n.Names())

	_, ok = n.Module("nope")
	assert.False(t, ok)
}

type NetworkSuite struct {
	suite.Suite
}

func (s *NetworkSuite) TestSinglePress() {
	c := mustParse(s.T(), loopNet).Press()
	s.Equal(int64(8), c.Low)
	s.Equal(int64(4), c.High)
}

func (s *NetworkSuite) TestPressN() {
	s.Equal(int64(32000000), mustParse(s.T(), loopNet).PressN(1000).Product())
	s.Equal(int64(11687500), mustParse(s.T(), outputNet).PressN(1000).Product())
}

func (s *NetworkSuite) TestResetRestoresInitialState() {
	n := mustParse(s.T(), outputNet)
	first := n.PressN(3)
	n.Reset()
	s.Equal(0, n.Presses())
	s.Equal(first, n.PressN(3))
}

func (s *NetworkSuite) TestFirstHighPresses() {
	n := mustParse(s.T(), hubNet)
	got, err := n.FirstHighPresses([]string{"fa", "fb"}, 100)
	s.Require().NoError(err)
	s.Equal(map[string]int{"fa": 2, "fb": 4}, got)

	_, err = n.FirstHighPresses([]string{"ghost"}, 100)
	s.ErrorIs(err, pulse.ErrUnknownModule)

	partial, err := n.FirstHighPresses([]string{"fa", "fb"}, 3)
	s.ErrorIs(err, pulse.ErrBudgetExhausted)
	s.Equal(map[string]int{"fa": 2}, partial)
}

func (s *NetworkSuite) TestPressesUntilLow() {
	core, logs := observer.New(zap.InfoLevel)
	n := mustParse(s.T(), hubNet, pulse.WithLogger(zap.New(core)))

	got, err := n.PressesUntilLow("rx", 100)
	s.Require().NoError(err)
	s.Equal(int64(4), got)
	s.Equal(1, logs.FilterMessage("presses until low").Len())

	_, err = n.PressesUntilLow("hub", 100)
	s.ErrorIs(err, pulse.ErrUnsupportedTopology)

	_, err = n.PressesUntilLow("missing", 100)
	s.ErrorIs(err, pulse.ErrUnknownModule)

	_, err = n.PressesUntilLow("rx", 1)
	s.ErrorIs(err, pulse.ErrBudgetExhausted)
}

func (s *NetworkSuite) TestRepeatedOutputsFeedOnce() {
	n := mustParse(s.T(), "broadcaster -> x\n%x -> fa, fa\n&fa -> hub, hub\n&hub -> rx")

	hub, ok := n.Module("hub")
	s.Require().True(ok)
	s.Equal([]string{"fa"}, hub.Inputs)

	got, err := n.PressesUntilLow("rx", 100)
	s.Require().NoError(err)
	s.Equal(int64(2), got)

	first, err := n.FirstHighPresses([]string{"fa", "fa"}, 100)
	s.Require().NoError(err)
	s.Equal(map[string]int{"fa": 2}, first)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, 6, pulse.GCD(12, 18))
	assert.Equal(t, 6, pulse.GCD(-12, 18))
	assert.Equal(t, 36, pulse.LCM(12, 18))
	assert.Equal(t, uint8(0), pulse.LCM[uint8](0, 5))
	assert.Equal(t, int64(3739*3761*4001), pulse.LCM(int64(3739)*3761, 4001))
}
