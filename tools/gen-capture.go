//go:build ignore

// gen-capture emits a synthetic firmware log capture for decoder testing.
//
// The output is the same ASCII hex byte-pair stream the radio firmware
// transmits: two tokens per record, 0xff idle padding between bursts,
// and optional host-side timestamps. Pipe it into the decoder or into
// 'fwlog serve --throttle' to exercise a live feed end to end.
//
// Usage:
//
//	go run tools/gen-capture.go [-records N] [-timestamps] [-seed N] > capture.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// record is one header/body token pair, possibly preceded by idle padding
type record struct {
	tokens []byte
}

func main() {
	records := flag.Int("records", 200, "number of records to emit")
	timestamps := flag.Bool("timestamps", false, "prefix bursts with host-side timestamps")
	seed := flag.Int64("seed", 1, "random seed (same seed, same capture)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	base := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

	for i := 0; i < *records; i++ {
		// Occasional idle padding between bursts
		if rng.Intn(8) == 0 {
			for j := rng.Intn(4) + 1; j > 0; j-- {
				emit(out, 0xff)
			}
		}

		if *timestamps && rng.Intn(10) == 0 {
			base = base.Add(time.Duration(rng.Intn(5000)) * time.Microsecond)
			fmt.Fprintf(out, "%s ", base.Format("2006-01-02 15:04:05.000000"))
		}

		for _, b := range pick(rng).tokens {
			emit(out, b)
		}
	}
	fmt.Fprintln(out)
}

// pick returns a random well-formed record
func pick(rng *rand.Rand) record {
	switch rng.Intn(8) {
	case 0:
		// HCI command opcode pair (reset) followed by an event
		return record{tokens: []byte{0x01, 0x0c, 0x01, 0x03, 0x82, 0x0e}}
	case 1:
		// LMP PDU, received direction
		return record{tokens: []byte{0x83, byte(rng.Intn(4) + 1)}}
	case 2:
		// Piconet role
		return record{tokens: []byte{0x0c, byte(rng.Intn(2))}}
	case 3:
		// ACL payload with a short pure-data tail
		n := rng.Intn(4) + 1
		tokens := []byte{0x07, byte(rng.Intn(256))}
		for j := 0; j < n; j++ {
			tokens = append(tokens, 0x00, byte(rng.Intn(256)))
		}
		return record{tokens: tokens}
	case 4:
		// 802.15.4 nested log: level, inner type, then the word bytes
		tokens := []byte{0x53, 0x0a} // info level, frame tx
		words := rng.Intn(4) + 1
		for j := 0; j < words; j++ {
			tokens = append(tokens, 0x00, byte(rng.Intn(256)))
		}
		return record{tokens: tokens}
	case 5:
		// Nested tick log
		return record{tokens: []byte{0x52, 0x1e, 0x00, 0x0f, 0x00, 0x42, 0x00, 0x40}}
	case 6:
		// Debug channel counter
		return record{tokens: []byte{0x20, byte(rng.Intn(100))}}
	default:
		// Suppressed verify record
		return record{tokens: []byte{0x7f, byte(rng.Intn(256))}}
	}
}

// emit writes one space-terminated hex token
func emit(out *bufio.Writer, b byte) {
	fmt.Fprintf(out, "%02x ", b)
}
