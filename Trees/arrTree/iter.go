package arrTree

import "iter"

// DrainAscending [Trees.OrderedMap.DrainAscending]
func (u *Tree[K, V, S]) DrainAscending() func() (K, V, bool) {
	return u.DeleteMin
}

// DrainDescending [Trees.OrderedMap.DrainDescending]
func (u *Tree[K, V, S]) DrainDescending() func() (K, V, bool) {
	return u.DeleteMax
}

// inOrder traversal with an explicit stack. left selects ascending order.
func (u *Tree[K, V, S]) inOrder(left bool) func() (K, V, bool) {
	var st []S
	push := func(curI S) {
		for curI != 0 {
			st = append(st, curI)
			if left {
				curI = u.ifs[curI].l
			} else {
				curI = u.ifs[curI].r
			}
		}
	}
	push(u.root)
	return func() (k K, v V, ok bool) {
		if len(st) == 0 {
			return
		}
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if left {
			push(u.ifs[curI].r)
		} else {
			push(u.ifs[curI].l)
		}
		p := u.getV(curI)
		return p.k, p.v, true
	}
}

// InOrder [Trees.OrderedMap.InOrder]
// Time: f(): amortized O(1). Space: O(D)
func (u *Tree[K, V, S]) InOrder() func() (K, V, bool) {
	return u.inOrder(true)
}

// InOrderR [Trees.OrderedMap.InOrderR]
// Time: f(): amortized O(1). Space: O(D)
func (u *Tree[K, V, S]) InOrderR() func() (K, V, bool) {
	return u.inOrder(false)
}

func seq[K, V any](f func() (K, V, bool)) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v, ok := f(); ok; k, v, ok = f() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// All [Trees.OrderedMap.All]
func (u *Tree[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seq(u.InOrder())(yield)
	}
}

// Backward [Trees.OrderedMap.Backward]
func (u *Tree[K, V, S]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seq(u.InOrderR())(yield)
	}
}

// Range [Trees.OrderedMap.Range]
// Time: O(D+m) for m yielded pairs. Space: O(D)
func (u *Tree[K, V, S]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var st []S
		for curI := u.root; curI != 0 || len(st) > 0; {
			if curI != 0 {
				if u.cmp(u.getV(curI).k, lo) < 0 {
					curI = u.ifs[curI].r
				} else {
					st = append(st, curI)
					curI = u.ifs[curI].l
				}
				continue
			}
			curI, st = st[len(st)-1], st[:len(st)-1]
			if p := u.getV(curI); u.cmp(p.k, hi) > 0 || !yield(p.k, p.v) {
				return
			}
			curI = u.ifs[curI].r
		}
	}
}
