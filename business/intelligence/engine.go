package intelligence

// Engine runs generation passes over caller-owned snapshots. It holds no
// mutable state, so one Engine may serve concurrent callers.
type Engine struct {
	cfg   Config
	clock Clock
}

func NewEngine(cfg Config, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{
		cfg:   cfg,
		clock: clock,
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}
