package decoder

import (
	"strings"
	"testing"

	"github.com/muurk/fwlog/internal/tables"
)

func decode(t *testing.T, capture string) string {
	t.Helper()
	return DecodeString(capture, tables.Load())
}

func TestDispatchCategories(t *testing.T) {
	tests := []struct {
		name    string
		capture string
		want    string
	}{
		{
			name:    "directional enum tx",
			capture: "03 01 ",
			want:    "\ntx:lmp_name_req ",
		},
		{
			name:    "directional enum rx",
			capture: "83 01 ",
			want:    "\nrx:lmp_name_req ",
		},
		{
			name:    "labelled enum",
			capture: "0c 00 ",
			want:    "\np_role:central ",
		},
		{
			name:    "pure data echoes inline",
			capture: "07 28 00 3f 00 40 ",
			want:    "\ntx_data:0x28 3f 40 ",
		},
		{
			name:    "hci opcode pairs across two records",
			capture: "01 0c 01 03 ",
			want:    "\ncmd_op:0x0c03 reset ",
		},
		{
			name:    "unmapped opcode echoes the value",
			capture: "01 fc 01 77 ",
			want:    "\ncmd_op:0xfc77 0xfc77 ",
		},
		{
			name:    "debug channel renders decimal message number",
			capture: "20 3f ",
			want:    "\ndbg63 ",
		},
		{
			name:    "le debug channel",
			capture: "29 05 ",
			want:    "\n[LE]MSG_LE_ADV5 ",
		},
		{
			name:    "queue full has no body text",
			capture: "10 00 ",
			want:    "\nq_full ",
		},
		{
			name:    "version message",
			capture: "11 3f ",
			want:    "\nversion: 0x3f ",
		},
		{
			name:    "bt clock message",
			capture: "12 9a ",
			want:    "\nbt_clock:: 0x9a ",
		},
		{
			name:    "directional verbatim with label",
			capture: "86 1b ",
			want:    "\nrx:le_len 0x1b ",
		},
		{
			name:    "hci event",
			capture: "02 0e ",
			want:    "\ncommand_complete ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decode(t, tt.capture); got != tt.want {
				t.Errorf("decoded = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdleSentinels(t *testing.T) {
	tests := []struct {
		name    string
		capture string
		want    string
	}{
		{
			name:    "sentinel pair between records",
			capture: "03 01 ff ff 0c 01 ",
			want:    "\ntx:lmp_name_req \np_role:peripheral ",
		},
		{
			name:    "run of sentinels",
			capture: "ff ff ff ff ff 0c 00 ",
			want:    "\np_role:central ",
		},
		{
			name:    "lone verify record is suppressed",
			capture: "7f 00 0c 00 ",
			want:    "\np_role:central ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decode(t, tt.capture); got != tt.want {
				t.Errorf("decoded = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimestampPrefixesOneLine(t *testing.T) {
	const stamp = "2024-03-01 12:34:56.789012 "
	got := decode(t, stamp+"03 01 03 02 ")
	want := "\n" + stamp + "tx:lmp_name_req \ntx:lmp_name_res "
	if got != want {
		t.Errorf("decoded = %q, want %q", got, want)
	}
}

func TestTimestampBetweenRecords(t *testing.T) {
	const stamp = "2024-03-01 12:34:56.789012 "
	got := decode(t, "03 01 "+stamp+"03 02 ")
	want := "\ntx:lmp_name_req \n" + stamp + "tx:lmp_name_res "
	if got != want {
		t.Errorf("decoded = %q, want %q", got, want)
	}
}

func TestResynchronization(t *testing.T) {
	tests := []struct {
		name    string
		capture string
		want    string
	}{
		{
			name: "enum miss rewinds one token",
			// 0x3f is not an LMP opcode; after the diagnostic the body
			// token is re-read as the next header. 0x3f is not a known
			// category either, so a second diagnostic follows and its
			// body token 0x0c becomes the header of a good record.
			capture: "03 3f 0c 00 ",
			want: "\nerror_log_body, log_type:lmp_pdu " +
				"\nparse_log_error, log_type:0x3f log_body:0x0c " +
				"\np_role:central ",
		},
		{
			name:    "unknown category does not lose following records",
			capture: "13 0c 00 03 01 ",
			want: "\nparse_log_error, log_type:0x13 log_body:0x0c " +
				"\np_role:central \ntx:lmp_name_req ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decode(t, tt.capture); got != tt.want {
				t.Errorf("decoded = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStreamingEquivalence(t *testing.T) {
	const stamp = "2024-03-01 12:34:56.789012 "
	capture := "ff ff 03 01 " + stamp +
		"01 0c 01 03 53 1e 00 00 00 f4 00 24 00 00 07 28 00 3f 0c 01 "

	var whole BufferSink
	s := New(tables.Load(), &whole)
	if err := s.Feed([]byte(capture)); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	for _, chunkSize := range []int{1, 2, 3, 7, 16} {
		var sink BufferSink
		s := New(tables.Load(), &sink)
		for i := 0; i < len(capture); i += chunkSize {
			end := i + chunkSize
			if end > len(capture) {
				end = len(capture)
			}
			if err := s.Feed([]byte(capture[i:end])); err != nil {
				t.Fatalf("Feed() error = %v", err)
			}
		}
		if err := s.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if sink.String() != whole.String() {
			t.Errorf("chunk size %d: decoded = %q, want %q",
				chunkSize, sink.String(), whole.String())
		}
	}
}

func TestCallbackSinkStreamsFragments(t *testing.T) {
	var got []string
	s := New(tables.Load(), CallbackSink(func(text string) {
		got = append(got, text)
	}))
	if err := s.Feed([]byte("03 01 0c 00 ")); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := []string{"\ntx:lmp_name_req ", "\np_role:central "}
	if len(got) != len(want) {
		t.Fatalf("fragments = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fragments = %q, want %q", got, want)
		}
	}
}

func TestFeedAfterClose(t *testing.T) {
	s := New(tables.Load(), &BufferSink{})
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Feed([]byte("03 01 ")); err == nil {
		t.Error("Feed() after Close should fail")
	}
}

func TestDecodeReader(t *testing.T) {
	got, err := Decode(strings.NewReader("0c 00 "), tables.Load())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := "\np_role:central "; got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}
