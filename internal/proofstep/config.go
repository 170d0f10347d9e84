package proofstep

import "time"

// Config controls how the proof-step builder trades off search effort
// against how minimal the resulting proof is.
type Config struct {
	// KOpt is stored with the configuration and can be set from the shell.
	// Neither the builder nor the IP search reads it; whether the IP search
	// runs is decided by Greedy alone.
	KOpt int

	// IPTimeLimit bounds the wall-clock time the branch-and-bound search
	// may run before the builder falls back to its best-so-far answer, or
	// to a fully greedy pick if it found nothing yet.
	IPTimeLimit time.Duration

	// Greedy, when true, skips the IP search entirely and always takes the
	// first allowed Consequence for every Deduction the proof needs.
	Greedy bool

	// ResetAlways is stored with the configuration and can be set from the
	// shell. The solver loop (internal/engine) does not read it: every pass
	// runs the whole rule list in order, without restarting after a ban.
	ResetAlways bool

	// IgnoreFilled is stored with the configuration and can be set from the
	// shell. The solver loop and the rules do not read it.
	IgnoreFilled bool
}

// DefaultConfig returns the builder's default trade-off: a bounded IP
// search with a generous but finite time budget.
func DefaultConfig() Config {
	return Config{
		KOpt:        8,
		IPTimeLimit: 2 * time.Second,
		Greedy:      false,
		ResetAlways: false,
		IgnoreFilled: false,
	}
}

// Option mutates a Config; NewConfig applies a list of Options over
// DefaultConfig, in the functional-options style.
type Option func(*Config)

func WithKOpt(k int) Option                    { return func(c *Config) { c.KOpt = k } }
func WithIPTimeLimit(d time.Duration) Option    { return func(c *Config) { c.IPTimeLimit = d } }
func WithGreedy(greedy bool) Option             { return func(c *Config) { c.Greedy = greedy } }
func WithResetAlways(reset bool) Option         { return func(c *Config) { c.ResetAlways = reset } }
func WithIgnoreFilled(ignore bool) Option       { return func(c *Config) { c.IgnoreFilled = ignore } }

// NewConfig builds a Config from DefaultConfig plus any overrides.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
