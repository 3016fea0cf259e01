package pulse_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridsearch/pulse"
)

// BenchmarkPress measures a single press of the looping network.
func BenchmarkPress(b *testing.B) {
	n, err := pulse.Parse(strings.Split(loopNet, "\n"))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Press()
	}
}
