package numeric

import "log"

// Options gates the optional instrumentation a host embedding this
// package may enable. Passed once at construction time.
type Options struct {
	// LogFaults enables verbose logging of every fault a Logger-backed
	// FaultReporter observes.
	LogFaults bool
}

// Logger wraps a *log.Logger with a gate deciding whether a given
// class of message is actually emitted. The numeric core itself
// performs no I/O; Logger exists for a host (here, cmd/lumennum) that
// wants to opt into fault tracing without writing its own wrapper.
type Logger struct {
	*log.Logger
	logFaults bool
}

// NewLogger builds a Logger around dst, gated by opts.
func NewLogger(dst *log.Logger, opts Options) *Logger {
	return &Logger{Logger: dst, logFaults: opts.LogFaults}
}

// printf always emits.
func (lg *Logger) printf(format string, v ...any) {
	lg.Printf(format, v...)
}

// faultf emits only when LogFaults was set.
func (lg *Logger) faultf(format string, v ...any) {
	if lg.logFaults {
		lg.Printf(format, v...)
	}
}

// LoggingReporter decorates a FaultReporter with Logger tracing: every
// fault is logged (subject to Options.LogFaults) before being forwarded
// to the wrapped reporter, so the wrapped reporter's control-flow
// behaviour (panic, test recording, ...) is unchanged.
type LoggingReporter struct {
	Inner FaultReporter
	Log   *Logger
}

// Fault implements FaultReporter.
func (r *LoggingReporter) Fault(kind Kind, operand Number) {
	if r.Log != nil {
		if kind == NotIntLike {
			r.Log.faultf("fault: %s operand=%v", kind, operand)
		} else {
			r.Log.faultf("fault: %s", kind)
		}
	}
	r.Inner.Fault(kind, operand)
}
