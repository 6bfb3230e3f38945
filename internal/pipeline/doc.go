// Package pipeline drives label generation: for each key in the table
// it synthesizes an SVG document, hands it to the text-to-path
// converter through a per-key transfer file pair, extracts the path
// geometry into <assets>/keys/<name>.partial.svg, and records the
// result in the generation cache.
//
// Runs are strictly sequential and guarded by a file lock on the work
// directory; the transfer files make concurrent runs corrupting, so a
// second invocation refuses to start rather than interleave. A failing
// key is logged and counted but never halts the run; the aggregate
// failure is reported once the table has been walked.
package pipeline
