package Trees

import (
	"iter"
)

// DrainAscending [OrderedMap.DrainAscending]
// Time: f(): O(D) at each call to the returned function.
func (u *BST[K, V, S]) DrainAscending() func() (K, V, bool) {
	return u.DeleteMin
}

// DrainDescending [OrderedMap.DrainDescending]
// Time: f(): O(D) at each call to the returned function.
func (u *BST[K, V, S]) DrainDescending() func() (K, V, bool) {
	return u.DeleteMax
}

// inOrder returns a stack based iterator. left selects ascending order.
func (u *BST[K, V, S]) inOrder(left bool) func() (K, V, bool) {
	var st []nodePtr[K, V, S]
	push := func(cur nodePtr[K, V, S]) {
		for cur != u.nilPtr {
			st = append(st, cur)
			if left {
				cur = cur.l
			} else {
				cur = cur.r
			}
		}
	}
	push(u.root)
	return func() (K, V, bool) {
		if len(st) == 0 {
			return u.nilPtr.k, u.nilPtr.v, false
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if left {
			push(cur.r)
		} else {
			push(cur.l)
		}
		return cur.k, cur.v, true
	}
}

// InOrder [OrderedMap.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BST[K, V, S]) InOrder() func() (K, V, bool) {
	return u.inOrder(true)
}

// InOrderR [OrderedMap.InOrderR]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BST[K, V, S]) InOrderR() func() (K, V, bool) {
	return u.inOrder(false)
}

// All [OrderedMap.All]
func (u *BST[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		f := u.InOrder()
		for k, v, ok := f(); ok; k, v, ok = f() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Backward [OrderedMap.Backward]
func (u *BST[K, V, S]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		f := u.InOrderR()
		for k, v, ok := f(); ok; k, v, ok = f() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Range [OrderedMap.Range]
// Subtrees entirely outside [lo, hi] aren't visited.
// Time: O(D+m) for m yielded pairs. Space: O(D)
func (u *BST[K, V, S]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var st []nodePtr[K, V, S]
		for cur := u.root; cur != u.nilPtr || len(st) > 0; {
			if cur != u.nilPtr {
				if u.cmp(cur.k, lo) < 0 {
					cur = cur.r
				} else {
					st = append(st, cur)
					cur = cur.l
				}
				continue
			}
			cur, st = st[len(st)-1], st[:len(st)-1]
			if u.cmp(cur.k, hi) > 0 {
				return
			}
			if !yield(cur.k, cur.v) {
				return
			}
			cur = cur.r
		}
	}
}
