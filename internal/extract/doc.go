// Package extract isolates path geometry from a converted SVG document.
//
// The converter wraps the paths it emits in a group, so extraction is a
// line-oriented marker scan rather than an XML parse: copying switches
// on at a "<path" line and off at a "</g>" line. The scan assumes the
// markers never appear inside unrelated content such as attribute
// values; that has held for every converter release we have run.
package extract
