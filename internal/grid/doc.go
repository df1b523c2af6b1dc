// Package grid holds the rectangular cell array a gridbelt program runs on,
// the builder that turns program text into it, the per-tick value snapshot,
// and a plain-text renderer for debugging.
package grid
