package intelligence

import "time"

// Clock is the only source of "now" for the engine, so a generation pass
// can be replayed exactly in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
