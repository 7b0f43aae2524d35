// Package registry owns the mutable clock state behind the hybrid
// logical clock operations. It maps node identifiers to their last
// issued timestamp, serializes increment and merge per node, and lets
// callers inject the wall-clock source and drift budget.
package registry
