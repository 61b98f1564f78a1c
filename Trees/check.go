package Trees

// corrupt checks the subtree rooting at c recursively. lo and hi are the
// nearest ancestors c must be greater and less than, nilPtr when unbounded.
func (u *BST[K, V, S]) corrupt(c, lo, hi nodePtr[K, V, S]) bool {
	if c == u.nilPtr {
		return false
	}
	if lo != u.nilPtr && u.cmp(lo.k, c.k) >= 0 || hi != u.nilPtr && u.cmp(c.k, hi.k) >= 0 {
		return true
	}
	if c.sz != c.l.sz+c.r.sz+1 {
		return true
	}
	return u.corrupt(c.l, lo, c) || u.corrupt(c.r, c, hi)
}

// Corrupt [OrderedMap.Corrupt]. Recursive.
// Strict ordering between every node and its bounding ancestors also rules
// out repeated keys.
// Time: O(n)
func (u *BST[K, V, S]) Corrupt() bool {
	z := u.nilPtr
	if z.sz != 0 || z.l != z || z.r != z {
		return true
	}
	return u.corrupt(u.root, z, z)
}
