// Package schedule holds the operator's weekly target and resolves it to an
// absolute action time.
//
// Resolution does not skip a week when today's slot has already
// passed. A process relaunched after the host slept through the target gets a
// target in the past, and the monitor fires within the warning window instead
// of waiting for next week. Every launch resolves against the then-current
// clock; nothing is persisted.
package schedule
