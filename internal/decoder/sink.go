package decoder

import "strings"

// Sink receives decoded text fragments in emission order. Diagnostic
// fragments are interleaved with data fragments in the same stream.
type Sink interface {
	Fragment(text string)
}

// BufferSink collects fragments for batch consumption.
type BufferSink struct {
	b strings.Builder
}

// Fragment implements Sink.
func (s *BufferSink) Fragment(text string) {
	s.b.WriteString(text)
}

// String returns everything emitted so far.
func (s *BufferSink) String() string {
	return s.b.String()
}

// CallbackSink forwards each fragment to a function, for streaming
// consumers that render output while the capture is still running.
type CallbackSink func(text string)

// Fragment implements Sink.
func (s CallbackSink) Fragment(text string) {
	s(text)
}
