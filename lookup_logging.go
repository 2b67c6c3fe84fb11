package kind

import "time"

// LookupEvent describes a cascading map read for logging.
type LookupEvent struct {
	Kind     string // path of the queried kind
	Resolved string // id that produced the value, empty on a miss
	Depth    int    // fallback distance of the resolved id
	Found    bool
	Duration time.Duration
}

// LookupLogger records cascading lookup events.
type LookupLogger interface {
	LogLookup(LookupEvent)
}

// LookupLoggerFunc adapts a function to LookupLogger.
type LookupLoggerFunc func(LookupEvent)

// LogLookup implements LookupLogger.
func (f LookupLoggerFunc) LogLookup(event LookupEvent) {
	if f != nil {
		f(event)
	}
}

type noopLookupLogger struct{}

func (noopLookupLogger) LogLookup(LookupEvent) {}
