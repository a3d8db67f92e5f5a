package hookline

import "log/slog"

// Option configures a Router at construction time.
type Option func(*config)

// config collects option state so New can apply registration shorthands in
// their fixed order.
type config struct {
	hooks     hooks
	logger    *slog.Logger
	onEvent   []Handler
	onMessage []Handler
}

func defaultConfig() config {
	return config{logger: slog.Default()}
}

// WithLogger sets the logger used to report handler failures. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithOnEvent registers a catch-all handler at construction. Shorthand for
// calling Register("*", h) on the new router; catch-all shorthands are
// applied before WithOnMessage shorthands regardless of option order.
//
// Example:
//
//	r := hookline.New(hookline.WithOnEvent(hookline.HandlerFunc(audit)))
func WithOnEvent(h Handler) Option {
	return func(c *config) {
		c.onEvent = append(c.onEvent, h)
	}
}

// WithOnMessage registers a handler for the "im.message.*" pattern at
// construction. Shorthand for Register(hookline.MessagePattern, h).
//
// Example:
//
//	r := hookline.New(hookline.WithOnMessage(hookline.HandlerFunc(onMessage)))
func WithOnMessage(h Handler) Option {
	return func(c *config) {
		c.onMessage = append(c.onMessage, h)
	}
}
