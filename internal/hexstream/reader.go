package hexstream

import (
	"errors"
	"io"
)

const (
	// TokenWidth is the textual width of one byte token: two hex
	// digits plus one separator character.
	TokenWidth = 3

	// TimestampWidth is the textual width of an injected timestamp
	// block ("2006-01-02 15:04:05.000000 ").
	TimestampWidth = 27
)

// ErrNeedMore is returned by Next when the buffered input does not yet
// contain a complete token window and the stream is still open.
var ErrNeedMore = errors.New("hexstream: need more input")

// Reader converts capture text into byte tokens. It buffers fed input,
// detects and extracts timestamp blocks, and supports the small rewinds
// the decoder needs to resynchronize after a bad record.
type Reader struct {
	buf       []byte
	pos       int
	mark      int
	marked    bool
	closed    bool
	timestamp string
}

// NewReader returns an empty Reader. Input is supplied with Feed.
func NewReader() *Reader {
	return &Reader{}
}

// Feed appends a chunk of capture text. Consumed input that can no
// longer be reached by a rewind is discarded at this point.
func (r *Reader) Feed(chunk []byte) {
	r.compact()
	r.buf = append(r.buf, chunk...)
}

// CloseInput marks the end of the stream. After the remaining complete
// tokens are drained, Next returns io.EOF.
func (r *Reader) CloseInput() {
	r.closed = true
}

// Next returns the next byte token. It returns ErrNeedMore when a
// complete window is not buffered yet, and io.EOF once the stream is
// closed and exhausted. Timestamp blocks are consumed transparently.
func (r *Reader) Next() (byte, error) {
	for {
		if r.pos+TokenWidth > len(r.buf) {
			if r.closed {
				r.pos = len(r.buf)
				return 0, io.EOF
			}
			return 0, ErrNeedMore
		}

		hi, okHi := hexVal(r.buf[r.pos])
		lo, okLo := hexVal(r.buf[r.pos+1])
		if okHi && okLo && isSeparator(r.buf[r.pos+2]) {
			r.pos += TokenWidth
			return hi<<4 | lo, nil
		}

		// Not a token: the window sits at the start of an injected
		// timestamp block. Capture the fixed-width block and resume
		// token scanning behind it.
		if r.pos+TimestampWidth > len(r.buf) {
			if r.closed {
				r.pos = len(r.buf)
				return 0, io.EOF
			}
			return 0, ErrNeedMore
		}
		r.timestamp = string(r.buf[r.pos : r.pos+TimestampWidth])
		r.pos += TimestampWidth
	}
}

// Mark records the current position so an in-progress record can be
// abandoned atomically when input runs out mid-record.
func (r *Reader) Mark() {
	r.mark = r.pos
	r.marked = true
}

// ResetToMark rewinds to the last Mark.
func (r *Reader) ResetToMark() {
	if r.marked {
		r.pos = r.mark
	}
}

// Rewind steps back exactly one token window. The width is fixed at one
// token regardless of how many bytes the failing record consumed; this
// matches the firmware tooling this decoder must stay output-compatible
// with.
func (r *Reader) Rewind() {
	if r.pos >= TokenWidth {
		r.pos -= TokenWidth
	}
}

// TakeTimestamp returns the most recently captured timestamp block and
// clears it, so a marker prefixes exactly one output line.
func (r *Reader) TakeTimestamp() string {
	ts := r.timestamp
	r.timestamp = ""
	return ts
}

// PendingTimestamp reports the captured-but-unconsumed timestamp block.
func (r *Reader) PendingTimestamp() string {
	return r.timestamp
}

// compact drops buffered input that is behind both the mark and the
// one-token rewind window.
func (r *Reader) compact() {
	keep := r.pos - TokenWidth
	if r.marked && r.mark < keep {
		keep = r.mark
	}
	if keep <= 0 {
		return
	}
	r.buf = append(r.buf[:0], r.buf[keep:]...)
	r.pos -= keep
	if r.marked {
		r.mark -= keep
	}
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}
