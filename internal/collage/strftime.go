package collage

import (
	"strings"
	"time"
)

// strftimeTokens maps the strftime directives the date-format option
// supports to Go reference-time layouts.
var strftimeTokens = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'p': "PM",
}

// Layout converts a strftime-style format string to a Go time layout.
// Unknown directives are kept verbatim so a typo shows up in the output
// instead of silently disappearing.
func Layout(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			b.WriteByte(format[i])
			continue
		}
		i++
		if format[i] == '%' {
			b.WriteByte('%')
			continue
		}
		if layout, ok := strftimeTokens[format[i]]; ok {
			b.WriteString(layout)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(format[i])
	}
	return b.String()
}

// FormatDate renders t using a strftime-style format.
func FormatDate(t time.Time, format string) string {
	return t.Format(Layout(format))
}
