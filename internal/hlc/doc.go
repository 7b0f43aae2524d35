// Package hlc implements hybrid logical clock timestamps for ordering
// events across distributed nodes. A timestamp combines wall-clock time
// with a logical counter and a node identifier, giving a total causal
// order without requiring synchronized physical clocks.
package hlc
