package journal

import "strings"

// Document is a journal file split into lines. Each element keeps its own
// terminator so untouched lines are written back byte-for-byte.
type Document struct {
	Lines []string
	EOL   string
}

// ParseDocument splits data after every "\n". The first terminator seen
// decides the EOL used for inserted lines.
func ParseDocument(data []byte) Document {
	doc := Document{EOL: "\n"}
	if len(data) == 0 {
		return doc
	}

	text := string(data)
	if idx := strings.IndexByte(text, '\n'); idx > 0 && text[idx-1] == '\r' {
		doc.EOL = "\r\n"
	}

	lines := strings.SplitAfter(text, "\n")
	// SplitAfter leaves an empty element when the input ends with a newline.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	doc.Lines = lines
	return doc
}

// Bytes joins the lines back into file contents.
func (d Document) Bytes() []byte {
	var b strings.Builder
	for _, line := range d.Lines {
		b.WriteString(line)
	}
	return []byte(b.String())
}

// Insert places text lines at index, terminated with the document EOL.
func (d *Document) Insert(index int, text ...string) {
	if index < 0 || index > len(d.Lines) {
		index = len(d.Lines)
	}
	// A final line without terminator would otherwise absorb the insertion.
	if index == len(d.Lines) && index > 0 && !strings.HasSuffix(d.Lines[index-1], "\n") {
		d.Lines[index-1] += d.EOL
	}

	added := make([]string, 0, len(text))
	for _, line := range text {
		added = append(added, line+d.EOL)
	}

	lines := make([]string, 0, len(d.Lines)+len(added))
	lines = append(lines, d.Lines[:index]...)
	lines = append(lines, added...)
	lines = append(lines, d.Lines[index:]...)
	d.Lines = lines
}

// splitText normalizes newlines in user text and drops trailing blank lines.
func splitText(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	return strings.Split(text, "\n")
}
