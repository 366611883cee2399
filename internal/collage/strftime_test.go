package collage

import (
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "default caption format", format: "%m-%d", want: "01-02"},
		{name: "iso date", format: "%Y-%m-%d", want: "2006-01-02"},
		{name: "full timestamp", format: "%Y:%m:%d %H:%M:%S", want: "2006:01:02 15:04:05"},
		{name: "month names", format: "%d %b %Y", want: "02 Jan 2006"},
		{name: "escaped percent", format: "100%%", want: "100%"},
		{name: "unknown directive kept", format: "%q-%d", want: "%q-02"},
		{name: "trailing percent", format: "%d%", want: "02%"},
		{name: "no directives", format: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Layout(tt.format); got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	taken := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	if got := FormatDate(taken, "%m-%d"); got != "03-09" {
		t.Errorf("FormatDate() = %q, want 03-09", got)
	}
	if got := FormatDate(taken, "%Y-%m-%d %H:%M"); got != "2024-03-09 14:05" {
		t.Errorf("FormatDate() = %q, want 2024-03-09 14:05", got)
	}
}
