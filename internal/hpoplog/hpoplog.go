// Package hpoplog provides the ambient structured logger used for
// non-fatal warnings raised deep in the propagation pipeline — the eop
// package's table out-of-range clamps (spec §7). It wraps
// a single process-wide *zap.SugaredLogger; the logger itself is safe for
// concurrent use from the per-satellite propagation goroutines (spec §5).
package hpoplog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once sync.Once
	log  *zap.SugaredLogger
)

func logger() *zap.SugaredLogger {
	once.Do(func() {
		z, err := zap.NewProduction()
		if err != nil {
			z = zap.NewNop()
		}
		log = z.Sugar()
	})
	return log
}

// SetLogger overrides the package logger, e.g. with a development config
// for CLI runs that want human-readable output.
func SetLogger(l *zap.SugaredLogger) {
	once.Do(func() {}) // keep a later first Warnf from replacing l
	log = l
}

// Warnf logs a formatted warning. Used by the eop package for EOP/SpW
// clamp-to-edge lookups — conditions the spec requires to be logged rather
// than silently defaulted to zero.
func Warnf(template string, args ...any) {
	logger().Warnf(template, args...)
}
