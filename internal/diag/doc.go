// Package diag is the diagnostic model (component H): a Diagnostic
// carries the offending token, an error kind, a formatted message, and
// an optional secondary token ("previously declared at ..."). A Sink
// collects diagnostics and, per spec.md §7's report-and-abort model,
// halts the pipeline on the first fatal one rather than attempting
// error recovery.
//
// Wrapping for diagnostics raised by lower layers (os, io) goes
// through github.com/juju/errors, whose Annotatef/Cause let a Sink
// unwrap back to the originating error without losing the added
// context — grounded on the error-wrapping idiom errors.go uses
// throughout the parser package it is adapted from.
package diag
