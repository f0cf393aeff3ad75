package scene

import "log/slog"

// Option configures a World during creation.
//
// Example:
//
//	w := scene.NewWorld(scene.WithLogger(slog.Default()))
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: nil} // falls back to pga.Logger()
}

// WithLogger sets the logger the World reports propagation on.
// By default the World uses pga.Logger(), which discards everything
// until pga.SetLogger is called.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
