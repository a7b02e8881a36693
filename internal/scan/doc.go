// Package scan provides the byte-class dispatch tables and the low-level
// scanners of the reader: whitespace and comment skipping, unescaped-quote
// search, identifier and digit-run scanning, and the newline index used
// for error positions.
//
// Every scanner has a word-at-a-time (8-byte) body and an authoritative
// scalar fallback returning identical results; UseScalar switches between
// them. The dispatch tables are built once at package init and shared by
// all parses.
package scan
