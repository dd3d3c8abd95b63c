package decoder

import "strings"

const (
	// minCaptureTokens is the smallest number of hex-pair tokens a blob
	// must contain before the heuristic will call it a capture.
	minCaptureTokens = 64
	// minCaptureRatio is the required share of hex-pair tokens among
	// all whitespace-separated fields. Timestamp blocks keep it below 1.
	minCaptureRatio = 0.7
)

// LooksLikeCapture reports whether a text blob plausibly is a firmware
// log capture, so callers can warn before decoding arbitrary files.
func LooksLikeCapture(data []byte) bool {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return false
	}
	hexTokens := 0
	for _, f := range fields {
		if len(f) == 2 && isHexDigit(f[0]) && isHexDigit(f[1]) {
			hexTokens++
		}
	}
	if hexTokens < minCaptureTokens {
		return false
	}
	return float64(hexTokens)/float64(len(fields)) >= minCaptureRatio
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	}
	return false
}
