// Package svggen synthesizes the per-key SVG documents fed to the
// text-to-path converter.
//
// Synthesis is pure: given a key record and a style, the output is a
// deterministic string with a fixed viewBox and one <text> element per
// label. Labels are inserted verbatim; escaping is the key table's
// authoring contract, not this package's job.
package svggen
