package decoder

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/muurk/fwlog/internal/hexstream"
	"github.com/muurk/fwlog/internal/tables"
)

// idleSentinel is the byte value the firmware repeats on an idle link.
// Two consecutive sentinels are consumed without producing a record.
const idleSentinel = 0xff

// Session decodes one capture stream. All decode state lives here, so
// independent captures decode concurrently with independent sessions.
// A Session is not safe for concurrent use.
type Session struct {
	tables *tables.Tables
	sink   Sink
	reader *hexstream.Reader
	log    *zap.Logger

	// lastByte tracks the most recently consumed token value across
	// record borders for idle-sentinel suppression.
	lastByte byte

	// Two-record HCI opcode pairing.
	opHigh    byte
	opPending bool

	nested nestedState
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a diagnostic logger. Decoded output always goes
// to the sink; the logger only sees pipeline events such as resyncs.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a Session decoding into sink with the given tables.
func New(tbl *tables.Tables, sink Sink, opts ...Option) *Session {
	s := &Session{
		tables: tbl,
		sink:   sink,
		reader: hexstream.NewReader(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Feed supplies the next chunk of capture text and decodes every record
// that is now complete. Partial records at the chunk border are held
// back untouched, so splitting the input differently never changes the
// output.
func (s *Session) Feed(chunk []byte) error {
	if s.closed {
		return errClosed
	}
	s.reader.Feed(chunk)
	s.run()
	return nil
}

// Close marks the end of input, drains the remaining complete records
// and flushes a pending nested accumulator. Further Feed calls fail.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.reader.CloseInput()
	s.run()
	s.flushNested()
	return nil
}

// run decodes records until input is exhausted. Each record is
// consumed atomically: if its tokens are not all buffered yet the
// reader position is restored and decoding resumes on the next Feed.
func (s *Session) run() {
	for {
		s.reader.Mark()
		if err := s.step(); err != nil {
			if errors.Is(err, hexstream.ErrNeedMore) {
				s.reader.ResetToMark()
			}
			return
		}
	}
}

// step consumes one header/body record, or a lone idle sentinel.
func (s *Session) step() error {
	head, err := s.reader.Next()
	if err != nil {
		return err
	}
	if s.lastByte == idleSentinel && head == idleSentinel {
		s.lastByte = head
		return nil
	}

	body, err := s.reader.Next()
	if err != nil {
		return err
	}

	// No session state may change before both tokens are in hand;
	// run() rewinds to the record start on a short read.
	s.lastByte = head
	if head == idleSentinel && body == idleSentinel {
		s.lastByte = body
		return nil
	}
	s.lastByte = body

	s.dispatch(head, body)
	return nil
}

// Decode drains src completely and returns the decoded text. Read
// failures are wrapped as fatal source errors; malformed records never
// fail a run, they surface as diagnostic lines in the output.
func Decode(src io.Reader, tbl *tables.Tables, opts ...Option) (string, error) {
	var sink BufferSink
	s := New(tbl, &sink, opts...)
	buf := make([]byte, 32*1024)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if ferr := s.Feed(buf[:n]); ferr != nil {
				return sink.String(), ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return sink.String(), NewSourceError("", err)
		}
	}
	if err := s.Close(); err != nil {
		return sink.String(), err
	}
	return sink.String(), nil
}

// DecodeString decodes a complete capture held in memory.
func DecodeString(capture string, tbl *tables.Tables, opts ...Option) string {
	var sink BufferSink
	s := New(tbl, &sink, opts...)
	s.Feed([]byte(capture))
	s.Close()
	return sink.String()
}
