// Package progress compares the progress values of a slider's entries.
//
// Both functions are pure: they derive tie-break coloring and paint order
// from the current entry set on every render pass and store nothing.
package progress

import (
	"cmp"
	"slices"
)

// Valuer is anything carrying a progress percentage.
type Valuer interface {
	Progress() int
}

// Value is a bare progress percentage.
type Value int

// Progress implements Valuer.
func (v Value) Progress() int { return int(v) }

// AllEqual reports whether every entry has the same progress as the entry
// before it. Empty and single-entry sets are equal.
func AllEqual[T Valuer](entries []T) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].Progress() != entries[i-1].Progress() {
			return false
		}
	}
	return true
}

// RenderOrder returns entry indices sorted by progress, largest first.
// Entries with equal progress keep their original order.
func RenderOrder[T Valuer](entries []T) []int {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(entries[b].Progress(), entries[a].Progress())
	})
	return order
}

// ZIndices returns the z-index of every entry: its position in RenderOrder.
// The smallest bar gets the highest z-index so it paints on top.
func ZIndices[T Valuer](entries []T) []int {
	z := make([]int, len(entries))
	for pos, idx := range RenderOrder(entries) {
		z[idx] = pos
	}
	return z
}
