// Package inkscape wraps the Inkscape CLI invocation that converts the
// synthesized label text into path geometry.
//
// The tool is treated as an opaque collaborator reached through a
// transfer file pair: the client writes the input document, runs the
// binary with a text-selecting object-to-path action list, and verifies
// that the converted document landed at the output path. Any tool that
// honors the same contract can be substituted through the binary and
// actions settings.
package inkscape
