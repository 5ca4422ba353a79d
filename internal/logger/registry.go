package logger

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// named holds one configured logger per name. Re-requesting a name returns
// the same instance, so output handlers are never duplicated.
var (
	namedMu sync.Mutex
	named   = make(map[string]zerolog.Logger) //nolint:gochecknoglobals
)

// Named returns the logger for the given name, creating and memoizing it on
// first request. The name appears as the "logger" field on every line.
func Named(name string) zerolog.Logger {
	namedMu.Lock()
	defer namedMu.Unlock()

	if l, ok := named[name]; ok {
		return l
	}

	l := log.Logger.With().Str("logger", name).Logger()
	named[name] = l

	return l
}

// resetNamed drops all memoized loggers. Init calls it so reconfiguration
// rebuilds named loggers on top of the new output chain.
func resetNamed() {
	namedMu.Lock()
	defer namedMu.Unlock()

	named = make(map[string]zerolog.Logger)
}

// Flush is the process-exit hook for the logging subsystem. zerolog writes
// synchronously, so there is nothing buffered to drain; the hook exists so
// callers have a single teardown point should an async sink be added.
func Flush() {
	resetNamed()
}
