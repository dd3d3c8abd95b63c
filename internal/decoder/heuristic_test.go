package decoder

import (
	"strings"
	"testing"
)

func TestLooksLikeCapture(t *testing.T) {
	hexRun := strings.Repeat("03 01 ", 40) // 80 hex tokens

	tests := []struct {
		name string
		data string
		want bool
	}{
		{
			name: "plain capture",
			data: hexRun,
			want: true,
		},
		{
			name: "capture with timestamps keeps the ratio",
			data: "2024-03-01 12:34:56.789012 " + hexRun,
			want: true,
		},
		{
			name: "too short",
			data: "03 01 0c 00 ",
			want: false,
		},
		{
			name: "prose",
			data: strings.Repeat("the quick brown fox jumps over the lazy dog ", 10),
			want: false,
		},
		{
			name: "hex drowned in text",
			data: hexRun + strings.Repeat("word ", 200),
			want: false,
		},
		{
			name: "empty",
			data: "",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeCapture([]byte(tt.data)); got != tt.want {
				t.Errorf("LooksLikeCapture() = %v, want %v", got, tt.want)
			}
		})
	}
}
