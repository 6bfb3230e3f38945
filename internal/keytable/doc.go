// Package keytable defines the static Amstrad CPC key layout used to
// generate keycap label assets.
//
// The table is fixed at startup and read-only for the duration of a run:
// every entry names one physical key, its position on the 2200x500 layout
// grid, and the one or two strings printed on the cap. Labels are stored
// pre-escaped, so markup-sensitive characters ("&amp;", "&lt;", "&gt;")
// must already be entities when they are added here; nothing downstream
// escapes them again.
package keytable
