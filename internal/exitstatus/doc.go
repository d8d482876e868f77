// Package exitstatus derives the script exit code from observed severity.
//
// The tracker is independent of any scope tree or buffering decision:
// every emitted record is observed whether or not it was displayed. The
// tracked maximum is monotonic for the lifetime of the process and is
// read once, at process end, to decide the exit code.
package exitstatus
