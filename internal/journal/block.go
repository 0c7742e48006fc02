package journal

import (
	"regexp"
	"strings"
)

// Unicode spaces count as separators, so "#\u3000Notes" is a heading.
var headingPattern = regexp.MustCompile(`^#{1,6}[\s\p{Zs}]+.+$`)

// Section is the half-open line range [Start, End) owned by a heading. Start
// is the heading line; End is the next heading or the line count.
type Section struct {
	Heading string
	Start   int
	End     int
}

// Heading is an ATX heading line found in a document.
type Heading struct {
	Index int
	Level int
	Text  string
}

// IsHeading reports whether line, once trimmed, is a markdown ATX heading.
func IsHeading(line string) bool {
	return headingPattern.MatchString(strings.TrimSpace(line))
}

// FindBlock locates the first line equal to heading (both trimmed) and the
// start of the following heading.
func FindBlock(lines []string, heading string) (Section, error) {
	want := strings.TrimSpace(heading)
	if want == "" {
		return Section{}, ErrBlockNotFound
	}

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == want {
			start = i
			break
		}
	}
	if start == -1 {
		return Section{}, ErrBlockNotFound
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if IsHeading(lines[i]) {
			end = i
			break
		}
	}

	return Section{Heading: want, Start: start, End: end}, nil
}

// Headings lists every heading line in order.
func Headings(lines []string) []Heading {
	var out []Heading
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !headingPattern.MatchString(trimmed) {
			continue
		}
		level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
		out = append(out, Heading{Index: i, Level: level, Text: trimmed})
	}
	return out
}
