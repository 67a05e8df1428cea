package processor

import "math/bits"

// Positions in a global cycle are 1-based breadth-first slots of a
// binary tree: position 1 is the root, children of P sit at 2P and
// 2P+1. Levels are 1-indexed from the root.

// Level returns the tree level of position p.
func Level(p int) int {
	if p < 1 {
		return 0
	}
	return bits.Len(uint(p))
}

// LeftChild returns the left child position of p.
func LeftChild(p int) int {
	return 2 * p
}

// RightChild returns the right child position of p.
func RightChild(p int) int {
	return 2*p + 1
}

// Parent returns the parent position of p, or 0 for the root.
func Parent(p int) int {
	return p / 2
}

// CycleLevels returns the number of payout levels for a cycle of the
// given capacity. A 1,024-slot cycle pays across 10 levels.
func CycleLevels(capacity int) int {
	if capacity < 2 {
		return 0
	}
	return bits.Len(uint(capacity)) - 1
}
