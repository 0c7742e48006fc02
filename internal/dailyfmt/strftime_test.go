package dailyfmt

import (
	"testing"
	"time"
)

func TestStrftimeDirectives(t *testing.T) {
	at := time.Date(2024, time.March, 5, 9, 4, 3, 0, time.Local)

	cases := map[string]string{
		"%Y/%m/%d":  "2024/03/05",
		"%e":        " 5",
		"%B %b":     "March Mar",
		"%A %a":     "Tuesday Tue",
		"%u %w":     "2 2",
		"%I%p":      "09AM",
		"%%":        "%",
		"%Q":        "%Q",
		"50%":       "50%",
		"无格式":       "无格式",
		"%H:%M:%S": "09:04:03",
	}
	for layout, want := range cases {
		if got := strftime(layout, at); got != want {
			t.Errorf("strftime(%q) = %q, want %q", layout, got, want)
		}
	}
}
