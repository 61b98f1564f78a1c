package Trees

import "golang.org/x/exp/constraints"

// A node in the BST
// The zero value is meaningless.
type node[K, V any, S constraints.Unsigned] struct {
	k    K
	v    V
	l, r nodePtr[K, V, S]
	sz   S
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in BST. The value of this node has
// both node.l, node.r = itself, and sz=0. k, v are the zero values of K, V.
type nodePtr[K, V any, S constraints.Unsigned] *node[K, V, S]

// newNil returns a sentinel satisfying the nodePtr definition.
func newNil[K, V any, S constraints.Unsigned]() nodePtr[K, V, S] {
	z := new(node[K, V, S])
	z.l, z.r = z, z
	return z
}

// resize recomputes the size of n from its children. n must not be the nilPtr.
// Time: O(1); Space: O(1)
func resize[K, V any, S constraints.Unsigned](n nodePtr[K, V, S]) {
	n.sz = n.l.sz + n.r.sz + 1
}
