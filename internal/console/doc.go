// Package console binds the logging core to a terminal.
//
// It provides the colored renderer (level tags and message styles via the
// ui package, indentation by nesting depth, optional timestamps) and a
// stream-backed writer sink. The core calls the writer once per visible
// record and once per summary block; broken streams propagate their
// errors unmodified.
package console
