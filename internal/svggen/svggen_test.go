package svggen_test

import (
	"strings"
	"testing"

	"keysmith/internal/keytable"
	"keysmith/internal/svggen"
)

func TestSingleLabelDocument(t *testing.T) {
	key := keytable.Key{Name: "A", X: 150, Y: 200, Width: 100, Labels: []string{"A"}}
	doc := svggen.Document(key, svggen.DefaultStyle())

	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 2200 500">`) {
		t.Fatalf("unexpected document prefix: %s", doc)
	}
	if !strings.HasSuffix(doc, "</svg>") {
		t.Fatalf("document not closed: %s", doc)
	}
	if got := strings.Count(doc, "<text"); got != 1 {
		t.Fatalf("expected 1 text element, got %d", got)
	}
	want := `<text x="200" y="250" font-family="Open Sans" font-size="30" fill="white" stroke="white" text-anchor="middle" dominant-baseline="middle">A</text>`
	if !strings.Contains(doc, want) {
		t.Fatalf("missing expected text element\nwant: %s\ngot:  %s", want, doc)
	}
}

func TestTwoLabelDocument(t *testing.T) {
	key := keytable.Key{Name: "Key1", X: 100, Y: 0, Width: 100, Labels: []string{"!", "1"}}
	doc := svggen.Document(key, svggen.DefaultStyle())

	if got := strings.Count(doc, "<text"); got != 2 {
		t.Fatalf("expected 2 text elements, got %d", got)
	}
	if !strings.Contains(doc, `<text x="150" y="35"`) {
		t.Fatalf("upper label misplaced: %s", doc)
	}
	if !strings.Contains(doc, `<text x="150" y="70"`) {
		t.Fatalf("lower label misplaced: %s", doc)
	}
	// Both labels share the horizontal center.
	if got := strings.Count(doc, `x="150"`); got != 2 {
		t.Fatalf("expected both labels centered at x=150, got %d matches", got)
	}
}

func TestFontSizeOverride(t *testing.T) {
	fire := keytable.Key{Name: "JoystickFire1", X: 1900, Y: 300, Width: 100, Labels: []string{"FIRE 1"}, FontSize: 25}
	doc := svggen.Document(fire, svggen.DefaultStyle())
	if !strings.Contains(doc, `font-size="25"`) {
		t.Fatalf("expected override size 25: %s", doc)
	}

	icon := keytable.Key{Name: "JoystickIcon", X: 2000, Y: 100, Width: 100, Labels: []string{"🕹"}, FontSize: 70}
	doc = svggen.Document(icon, svggen.DefaultStyle())
	if !strings.Contains(doc, `font-size="70"`) {
		t.Fatalf("expected override size 70: %s", doc)
	}
	if !strings.Contains(doc, `y="150"`) {
		t.Fatalf("single label should sit at y+50: %s", doc)
	}
}

func TestLabelsInsertedVerbatim(t *testing.T) {
	key := keytable.Key{Name: "Key6", X: 600, Y: 0, Width: 100, Labels: []string{"&amp;", "6"}}
	doc := svggen.Document(key, svggen.DefaultStyle())
	if !strings.Contains(doc, ">&amp;</text>") {
		t.Fatalf("pre-escaped entity must pass through untouched: %s", doc)
	}
}

func TestDocumentDeterministic(t *testing.T) {
	key := keytable.Key{Name: "Caret", X: 1200, Y: 0, Width: 100, Labels: []string{"£", "↑"}}
	style := svggen.DefaultStyle()
	if svggen.Document(key, style) != svggen.Document(key, style) {
		t.Fatal("document synthesis must be deterministic")
	}
}

func TestCustomStyle(t *testing.T) {
	key := keytable.Key{Name: "Escape", X: 0, Y: 0, Width: 100, Labels: []string{"ESC"}}
	style := svggen.Style{FontFamily: "DejaVu Sans", FontSize: 32, Fill: "black", Stroke: "none"}
	doc := svggen.Document(key, style)
	for _, want := range []string{`font-family="DejaVu Sans"`, `font-size="32"`, `fill="black"`, `stroke="none"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %s in %s", want, doc)
		}
	}
}
