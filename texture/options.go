package texture

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	// Bind-then-configure on unit 0 even where direct access exists
//	c, err := texture.NewContext(funcs, p,
//		texture.WithScratchUnit(0),
//		texture.WithDirectStateAccess(false))
type Option func(*options)

type options struct {
	scratch int
	dsa     bool
	logger  *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		scratch: -1, // last unit of the profile
		dsa:     true,
	}
}

// WithScratchUnit selects the texture unit the bind-then-configure
// protocol binds textures to. The default is the last unit.
func WithScratchUnit(unit int) Option {
	return func(o *options) {
		o.scratch = unit
	}
}

// WithDirectStateAccess enables or disables the direct access protocol.
// Enabling has no effect unless the profile has the capability and the
// driver implements gl.DirectStateAccess.
func WithDirectStateAccess(enabled bool) Option {
	return func(o *options) {
		o.dsa = enabled
	}
}

// WithLogger sets the logger used for this context instead of
// glhal.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
