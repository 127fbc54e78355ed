package game

// Built-in game modes. Classic plays toward the configured win target;
// endless ignores it and only ends when the board is stuck.
const (
	ModeClassic = "classic"
	ModeEndless = "endless"
)

func init() {
	RegisterMode(ModeClassic, "Fusegrid", func(opts Options) *Session {
		opts.Endless = false
		return NewSession(opts)
	})
	RegisterMode(ModeEndless, "Fusegrid (Endless)", func(opts Options) *Session {
		opts.Endless = true
		return NewSession(opts)
	})
}
