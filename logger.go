package glhal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record and reports every level as disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silent is shared by every caller that has not installed a logger.
var silent = slog.New(nopHandler{})

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes the log output of glhal, its drivers and the texture
// layer to l. Nil turns logging off again, which is also the initial
// state. It may be called while other goroutines are logging.
//
// Records carry a "pkg: event" message and key/value attributes:
//   - Debug: "texture: context created" (profile, directAccess, scratchUnit),
//     "texture: state applied" (texture, kind, mask), "driver: opened",
//     "softgl: error" (op, code)
//   - Info: "profile: detected" (version, renderer, profile),
//     "native: device opened"
//   - Warn: "glhal: contract violation" (op, msg), "glhal: driver error"
//     (op, code), "driver: open failed", "native: call failed" (name, err)
//
// A texture.Context built with texture.WithLogger uses its own logger
// instead.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
