package extract_test

import (
	"strings"
	"testing"

	"keysmith/internal/extract"
)

func run(t *testing.T, input string) (string, int) {
	t.Helper()
	var out strings.Builder
	lines, err := extract.Copy(&out, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Copy returned error: %v", err)
	}
	return out.String(), lines
}

func TestCopySingleRegion(t *testing.T) {
	input := strings.Join([]string{
		`<svg xmlns="http://www.w3.org/2000/svg">`,
		`<g aria-label="A">`,
		`<path d="m 190,240 10,20" />`,
		`<path d="m 200,240 -10,20" />`,
		`</g>`,
		`</svg>`,
	}, "\n") + "\n"

	got, lines := run(t, input)
	want := "<path d=\"m 190,240 10,20\" />\n<path d=\"m 200,240 -10,20\" />\n"
	if got != want {
		t.Fatalf("unexpected extraction\nwant: %q\ngot:  %q", want, got)
	}
	if lines != 2 {
		t.Fatalf("expected 2 copied lines, got %d", lines)
	}
}

func TestCopyMarkerLineIncludedCloseLineExcluded(t *testing.T) {
	input := "<path d=\"m 0,0\"\n  z\" />\n</g>\n"
	got, _ := run(t, input)
	if strings.Contains(got, "</g>") {
		t.Fatalf("group-close line must not be copied: %q", got)
	}
	if !strings.HasPrefix(got, "<path") {
		t.Fatalf("path-start line must be copied: %q", got)
	}
	if !strings.Contains(got, "  z\" />\n") {
		t.Fatalf("interior line must be copied: %q", got)
	}
}

func TestCopyMultipleRegionsInOrder(t *testing.T) {
	input := strings.Join([]string{
		"prelude",
		"<path d=\"first\" />",
		"</g>",
		"interlude",
		"<path d=\"second\" />",
		"tail of second",
		"</g>",
		"postlude",
	}, "\n") + "\n"

	got, lines := run(t, input)
	want := "<path d=\"first\" />\n<path d=\"second\" />\ntail of second\n"
	if got != want {
		t.Fatalf("regions must concatenate in input order\nwant: %q\ngot:  %q", want, got)
	}
	if lines != 3 {
		t.Fatalf("expected 3 copied lines, got %d", lines)
	}
}

func TestCopyNoMarkersYieldsNothing(t *testing.T) {
	got, lines := run(t, "<svg>\n<rect width=\"10\" />\n</svg>\n")
	if got != "" || lines != 0 {
		t.Fatalf("expected empty output, got %q (%d lines)", got, lines)
	}
}

func TestCopyUnterminatedRegionRunsToEOF(t *testing.T) {
	input := "header\n<path d=\"open\"\nstill path data\nlast line no newline"
	got, lines := run(t, input)
	want := "<path d=\"open\"\nstill path data\nlast line no newline"
	if got != want {
		t.Fatalf("open region must copy through EOF\nwant: %q\ngot:  %q", want, got)
	}
	if lines != 3 {
		t.Fatalf("expected 3 copied lines, got %d", lines)
	}
}

func TestCopyLineWithBothMarkersNotCopied(t *testing.T) {
	// The close marker is evaluated after the start marker on the same
	// line, so the line is suppressed and copying ends.
	got, _ := run(t, "<path d=\"x\" /></g>\nafter\n")
	if got != "" {
		t.Fatalf("line carrying both markers must not be copied: %q", got)
	}
}

func TestCopyHandlesLongLines(t *testing.T) {
	long := "<path d=\"" + strings.Repeat("m 1,1 ", 40000) + "z\" />\n</g>\n"
	got, lines := run(t, "<g>\n"+long)
	if lines != 1 {
		t.Fatalf("expected 1 copied line, got %d", lines)
	}
	if len(got) != len(long)-len("</g>\n") {
		t.Fatalf("long path line truncated: got %d bytes", len(got))
	}
}
