// Package task implements the nested-scope logging engine.
//
// A Stack manages one rooted tree of scopes. Application code enters a
// scope, emits records into it, enters child scopes recursively, and
// exits scopes with a success or failure outcome. Every record is
// classified against the severity registry, unconditionally observed by
// the exit-status tracker and the warning counters, and then either
// displayed live or withheld in the scope's buffer.
//
// # Verbosity Escalation
//
// Each scope's effective threshold is the resolved depth-0 threshold plus
// depth times the escalation step. A message visible at the root under a
// given verbosity needs one more -v per level of nesting to stay visible,
// uniformly across severities: deeply nested DEBUG stays hidden even when
// DEBUG is enabled at depth 0.
//
// # Failure Flush Cascade
//
// When a scope exits with a failure, its entire buffer is force-displayed
// in original order, an ERROR record for the failure itself is emitted,
// and every still-open ancestor flushes its own buffer, immediate parent
// outward to the root, before the failure propagates to the caller.
// Records already shown live are never displayed twice.
//
// # Usage
//
// Scoped acquisition with guaranteed release:
//
//	stack, err := task.New(task.Config{Context: verbosity.Classify(), Verbosity: count})
//	err = stack.Do("Process csv file "+path, func(sc *task.Scope) error {
//	    sc.Infof("read %d rows", n)
//	    return sc.Summary(n, "Rows processed")
//	})
//
// Do runs the exit side effects (flush, counters, summaries) on every
// departure path, including panics.
//
// # Concurrency
//
// A Stack is confined to one logical thread of control. Workers running
// in parallel each own a stack; only the registry (frozen) and the exit
// tracker (atomic) are shared.
package task
