package hexstream

import (
	"errors"
	"io"
	"testing"
)

func drain(t *testing.T, r *Reader) []byte {
	t.Helper()
	var out []byte
	for {
		b, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		out = append(out, b)
	}
}

func TestNextTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{
			name:  "space separated",
			input: "81 03 0c ",
			want:  []byte{0x81, 0x03, 0x0c},
		},
		{
			name:  "mixed separators",
			input: "81\t03\n0c ",
			want:  []byte{0x81, 0x03, 0x0c},
		},
		{
			name:  "uppercase digits",
			input: "FF 7F ",
			want:  []byte{0xff, 0x7f},
		},
		{
			name:  "trailing partial token dropped at close",
			input: "81 03 0c",
			want:  []byte{0x81, 0x03},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader()
			r.Feed([]byte(tt.input))
			r.CloseInput()
			got := drain(t, r)
			if len(got) != len(tt.want) {
				t.Fatalf("tokens = % x, want % x", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("tokens = % x, want % x", got, tt.want)
				}
			}
		})
	}
}

func TestTimestampCapture(t *testing.T) {
	const stamp = "2024-03-01 12:34:56.789012 "
	r := NewReader()
	r.Feed([]byte("81 " + stamp + "03 0c "))
	r.CloseInput()

	b, err := r.Next()
	if err != nil || b != 0x81 {
		t.Fatalf("Next() = 0x%02x, %v", b, err)
	}
	if got := r.PendingTimestamp(); got != "" {
		t.Fatalf("timestamp before block = %q", got)
	}

	b, err = r.Next()
	if err != nil || b != 0x03 {
		t.Fatalf("Next() after block = 0x%02x, %v", b, err)
	}
	if got := r.TakeTimestamp(); got != stamp {
		t.Errorf("TakeTimestamp() = %q, want %q", got, stamp)
	}
	if got := r.TakeTimestamp(); got != "" {
		t.Errorf("second TakeTimestamp() = %q, want empty", got)
	}
}

func TestNeedMoreAcrossChunks(t *testing.T) {
	r := NewReader()
	r.Feed([]byte("81 0"))

	if b, err := r.Next(); err != nil || b != 0x81 {
		t.Fatalf("Next() = 0x%02x, %v", b, err)
	}
	if _, err := r.Next(); !errors.Is(err, ErrNeedMore) {
		t.Fatalf("Next() on partial window error = %v, want ErrNeedMore", err)
	}

	r.Feed([]byte("3 "))
	if b, err := r.Next(); err != nil || b != 0x03 {
		t.Fatalf("Next() after refill = 0x%02x, %v", b, err)
	}
}

func TestNeedMoreMidTimestamp(t *testing.T) {
	const stamp = "2024-03-01 12:34:56.789012 "
	r := NewReader()
	r.Feed([]byte(stamp[:10]))

	if _, err := r.Next(); !errors.Is(err, ErrNeedMore) {
		t.Fatalf("Next() mid-timestamp error = %v, want ErrNeedMore", err)
	}

	r.Feed([]byte(stamp[10:] + "0c "))
	b, err := r.Next()
	if err != nil || b != 0x0c {
		t.Fatalf("Next() = 0x%02x, %v", b, err)
	}
	if got := r.TakeTimestamp(); got != stamp {
		t.Errorf("TakeTimestamp() = %q, want %q", got, stamp)
	}
}

func TestMarkReset(t *testing.T) {
	r := NewReader()
	r.Feed([]byte("81 03 "))

	r.Mark()
	if b, err := r.Next(); err != nil || b != 0x81 {
		t.Fatalf("Next() = 0x%02x, %v", b, err)
	}
	if b, err := r.Next(); err != nil || b != 0x03 {
		t.Fatalf("Next() = 0x%02x, %v", b, err)
	}

	r.ResetToMark()
	if b, err := r.Next(); err != nil || b != 0x81 {
		t.Fatalf("Next() after reset = 0x%02x, %v", b, err)
	}
}

func TestRewindOneToken(t *testing.T) {
	r := NewReader()
	r.Feed([]byte("81 03 0c "))
	r.CloseInput()

	if b, _ := r.Next(); b != 0x81 {
		t.Fatal("setup read failed")
	}
	if b, _ := r.Next(); b != 0x03 {
		t.Fatal("setup read failed")
	}

	r.Rewind()
	if b, err := r.Next(); err != nil || b != 0x03 {
		t.Fatalf("Next() after rewind = 0x%02x, %v", b, err)
	}
}

func TestCompactPreservesRewindWindow(t *testing.T) {
	r := NewReader()
	r.Feed([]byte("81 03 0c 0d "))

	for i := 0; i < 3; i++ {
		if _, err := r.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}

	// Feeding triggers compaction; the one-token rewind window must
	// survive it.
	r.Feed([]byte("0e "))
	r.Rewind()
	if b, err := r.Next(); err != nil || b != 0x0c {
		t.Fatalf("Next() after compact+rewind = 0x%02x, %v", b, err)
	}

	want := []byte{0x0d, 0x0e}
	r.CloseInput()
	got := drain(t, r)
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("remaining tokens = % x, want % x", got, want)
		}
	}
}

func TestCompactPreservesMark(t *testing.T) {
	r := NewReader()
	r.Feed([]byte("81 03 0c "))

	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	r.Mark()
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	r.Feed([]byte("0d "))
	r.ResetToMark()
	if b, err := r.Next(); err != nil || b != 0x03 {
		t.Fatalf("Next() after compact+reset = 0x%02x, %v", b, err)
	}
}
