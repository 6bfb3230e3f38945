package svggen

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"keysmith/internal/keytable"
)

// Vertical label offsets within a key's grid row. A lone label sits on
// the cap center line; a pair is stacked above and below it.
const (
	singleLabelOffset = 50
	upperLabelOffset  = 35
	lowerLabelOffset  = 70
)

// Style carries the text attributes shared by every label element.
type Style struct {
	FontFamily string
	FontSize   int
	Fill       string
	Stroke     string
}

// DefaultStyle returns the styling the downstream keyboard renderer
// expects: white Open Sans at 30 units.
func DefaultStyle() Style {
	return Style{
		FontFamily: "Open Sans",
		FontSize:   30,
		Fill:       "white",
		Stroke:     "white",
	}
}

// Document renders the complete SVG document for one key. The document
// spans the full layout grid so converted path coordinates line up with
// the key's position when composited.
func Document(key keytable.Key, style Style) string {
	size := style.FontSize
	if key.FontSize > 0 {
		size = key.FontSize
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`,
		keytable.GridWidth, keytable.GridHeight)

	x := key.LabelCenter()
	if len(key.Labels) == 1 {
		writeText(&b, style, x, key.Y+singleLabelOffset, size, key.Labels[0])
	} else {
		writeText(&b, style, x, key.Y+upperLabelOffset, size, key.Labels[0])
		writeText(&b, style, x, key.Y+lowerLabelOffset, size, key.Labels[1])
	}

	b.WriteString("</svg>")
	return b.String()
}

func writeText(b *strings.Builder, style Style, x, y, size int, label string) {
	// NFC keeps visually identical table edits from changing the glyphs
	// handed to the converter, which keeps re-runs byte-identical.
	label = norm.NFC.String(label)
	fmt.Fprintf(b,
		`<text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s" stroke="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`,
		x, y, style.FontFamily, size, style.Fill, style.Stroke, label)
}
