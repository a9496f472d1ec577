package dsp

// Cascade composes 1-5 Decimator stages into one logical decimate step.
// A Cascade does not own its stages — they are long-lived Decimators
// owned by a Channelizer and reused across bandwidth-mode changes so
// that filter state survives a setBw call.
type Cascade struct {
	stages  []*Decimator
	scratch [][]complex64
}

// NewCascade builds a cascade from 1 to 5 decimator stages, in order
// from the cascade's input rate to its output rate.
func NewCascade(stages ...*Decimator) *Cascade {
	if len(stages) < 1 || len(stages) > 5 {
		panic("dsp: cascade must have between 1 and 5 stages")
	}
	c := &Cascade{stages: stages}
	if len(stages) > 1 {
		c.scratch = make([][]complex64, len(stages)-1)
	}
	return c
}

// DecFact returns the overall decimation factor: the product of every
// stage's factor.
func (c *Cascade) DecFact() int {
	f := 1
	for _, s := range c.stages {
		f *= s.DecFact()
	}
	return f
}

// Decimate threads in through every stage in order and writes the final
// result into out, which is returned (possibly reallocated).
func (c *Cascade) Decimate(out, in []complex64) []complex64 {
	cur := in
	for i, s := range c.stages {
		if i == len(c.stages)-1 {
			return s.Decimate(out, cur)
		}
		c.scratch[i] = s.Decimate(c.scratch[i], cur)
		cur = c.scratch[i]
	}
	panic("dsp: unreachable")
}
