package walk

// StepFunc is a pure, deterministic transition from one state to the next.
type StepFunc[S any] func(S) S

// Walk applies step n times to start and returns the final state.
// n <= 0 returns start unchanged.
func Walk[S any](start S, step StepFunc[S], n int) S {
	s := start
	for i := 0; i < n; i++ {
		s = step(s)
	}
	return s
}

// Trace applies step n times and returns all n+1 visited states, starting
// with start. It is the brute-force reference for fast-forwarding walkers.
func Trace[S any](start S, step StepFunc[S], n int) []S {
	if n < 0 {
		n = 0
	}
	out := make([]S, 0, n+1)
	s := start
	out = append(out, s)
	for i := 0; i < n; i++ {
		s = step(s)
		out = append(out, s)
	}
	return out
}
