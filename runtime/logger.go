package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// Logger is the leveled logger scripts report to. A tracing.Trace satisfies
// it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger logs with tracing key 'nasl.script'.
func DefaultLogger() Logger {
	return tracing.Select("nasl.script")
}
