// Package level maintains the total order over log severities.
//
// Severities come in two flavors sharing one order: standard levels
// (DEBUG, INFO, WARNING, ERROR, CRITICAL) at the classic rank spacing,
// and semantic levels (REMARK, WINNING, UNKNOWN, LOSING, HEADING, OUTAGE)
// interleaved between them. Because every level lives in the same order,
// a verbosity threshold can admit or suppress any mix of them with a
// single rank comparison.
//
// # Build Phase
//
// Custom severities must be registered before the first scope is created:
//
//	reg := level.Standard()
//	audit, err := reg.Register("AUDIT", 35)
//
// Building a task stack freezes the registry. A frozen registry rejects
// further registration and is safe to share across worker stacks.
package level
