package journal

import (
	"errors"
	"testing"
)

func TestFindBlockStopsAtNextHeading(t *testing.T) {
	doc := ParseDocument([]byte("# Day\n## Log\n- a\n- b\n### Sub\n- c\n"))

	section, err := FindBlock(doc.Lines, "## Log")
	if err != nil {
		t.Fatalf("FindBlock: %v", err)
	}
	if section.Start != 1 || section.End != 4 {
		t.Fatalf("section = %+v, want [1,4)", section)
	}
}

func TestFindBlockUsesFirstMatch(t *testing.T) {
	doc := ParseDocument([]byte("## Log\nfirst\n## Log\nsecond\n"))

	section, err := FindBlock(doc.Lines, "## Log")
	if err != nil {
		t.Fatalf("FindBlock: %v", err)
	}
	if section.Start != 0 || section.End != 2 {
		t.Fatalf("section = %+v, want [0,2)", section)
	}
}

func TestFindBlockMissing(t *testing.T) {
	doc := ParseDocument([]byte("## Log\n"))

	if _, err := FindBlock(doc.Lines, "## Other"); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("FindBlock error = %v, want ErrBlockNotFound", err)
	}
	if _, err := FindBlock(doc.Lines, "   "); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("FindBlock(blank) error = %v, want ErrBlockNotFound", err)
	}
}

func TestFindBlockMatchesNonHeadingLine(t *testing.T) {
	// Any exact line works as a block start; only the end needs a heading.
	doc := ParseDocument([]byte("Tasks:\n- a\n# Next\n"))

	section, err := FindBlock(doc.Lines, "Tasks:")
	if err != nil {
		t.Fatalf("FindBlock: %v", err)
	}
	if section.End != 2 {
		t.Fatalf("section end = %d, want 2", section.End)
	}
}

func TestHeadings(t *testing.T) {
	doc := ParseDocument([]byte("# Title\ntext\n  ### Log  \n#tag\n###### Six\n"))

	got := Headings(doc.Lines)
	if len(got) != 3 {
		t.Fatalf("Headings len = %d, want 3: %#v", len(got), got)
	}
	if got[1].Index != 2 || got[1].Level != 3 || got[1].Text != "### Log" {
		t.Fatalf("Headings[1] = %#v", got[1])
	}
	if got[2].Level != 6 {
		t.Fatalf("Headings[2].Level = %d, want 6", got[2].Level)
	}
}

func TestParseDocumentRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"no newline",
		"a\nb\n",
		"a\r\nb\r\n",
		"mixed\r\nlines\nend",
		"\n\n\n",
	}
	for _, input := range inputs {
		doc := ParseDocument([]byte(input))
		if got := string(doc.Bytes()); got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}

	if doc := ParseDocument([]byte("a\r\nb\n")); doc.EOL != "\r\n" {
		t.Fatalf("EOL = %q, want CRLF", doc.EOL)
	}
}

func TestFindBlockStopsAtUnicodeSpacedHeading(t *testing.T) {
	doc := ParseDocument([]byte("## Log\n- a\n#\u3000其他\n- b\n"))

	section, err := FindBlock(doc.Lines, "## Log")
	if err != nil {
		t.Fatalf("FindBlock: %v", err)
	}
	if section.End != 2 {
		t.Fatalf("section = %+v, want end 2", section)
	}
	if !IsHeading("#\u00a0Notes") {
		t.Fatalf("no-break space should separate a heading")
	}
	if IsHeading("#\u3000") {
		t.Fatalf("a heading needs text after the separator")
	}
}
