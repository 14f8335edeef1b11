package runner

// Sink receives log lines from an Operation.
type Sink interface {
	Log(line string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line string)

// Log calls f(line).
func (f SinkFunc) Log(line string) {
	f(line)
}

// Discard drops every line.
var Discard Sink = SinkFunc(func(string) {})

// MultiSink delivers every line to each of sinks in order.
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(line string) {
		for _, s := range sinks {
			if s != nil {
				s.Log(line)
			}
		}
	})
}
