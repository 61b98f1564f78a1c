package arrTree

import (
	"cmp"

	"github.com/g-m-twostay/go-bst/Trees"
	"golang.org/x/exp/constraints"
)

type pair[K, V any] struct {
	k K
	v V
}

// Tree is the arena version of Trees.BST. Nodes live in one slice and refer
// to their children by index, index 0 being the empty subtree. Removed nodes
// are put on a free list and their slots are reused by later insertions
// before the arena grows. All methods are iterative, except Print.
// S is the type of the indexes as well as the subtree sizes, so it bounds
// the number of slots; it's up to the user to pick a wide enough S.
type Tree[K, V any, S constraints.Unsigned] struct {
	base[S]
	vs []pair[K, V] //vs[i] corresponds to ifs[i+1]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp func(K, K) int
}

var _ Trees.OrderedMap[int, int] = (*Tree[int, int, uint])(nil)

// New returns an empty Tree ordering keys with cmp.Compare. hint is the
// number of slots allocated in advance.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *Tree[K, V, S] {
	return NewFunc[K, V, S](hint, cmp.Compare[K])
}

// NewFunc is New with a custom total order c.
func NewFunc[K, V any, S constraints.Unsigned](hint S, c func(K, K) int) *Tree[K, V, S] {
	return &Tree[K, V, S]{base[S]{ifs: make([]info[S], 1, uint(hint)+1)}, make([]pair[K, V], 0, hint), c}
}

func (u *Tree[K, V, S]) getV(i S) *pair[K, V] {
	return &u.vs[i-1]
}

// alloc a slot holding k, v as a single node subtree.
func (u *Tree[K, V, S]) alloc(k K, v V) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{0, 0, 1}
		*u.getV(i) = pair[K, V]{k, v}
		return i
	}
	u.ifs = append(u.ifs, info[S]{0, 0, 1})
	u.vs = append(u.vs, pair[K, V]{k, v})
	return S(len(u.vs))
}

// release a slot to the free list, dropping its contents.
func (u *Tree[K, V, S]) release(i S) {
	*u.getV(i) = pair[K, V]{}
	u.addFree(i)
}

// Clear [Trees.OrderedMap.Clear]. The arena keeps its capacity.
// Time: O(n)
func (u *Tree[K, V, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free = 0, 0
}

// Insert [Trees.OrderedMap.Insert]
// Time: O(D)
func (u *Tree[K, V, S]) Insert(k K, v V) bool {
	st, c := u.st[:0], 0
	for curI := u.root; curI != 0; {
		if c = u.cmp(k, u.getV(curI).k); c < 0 {
			st = append(st, curI)
			curI = u.ifs[curI].l
		} else if c > 0 {
			st = append(st, curI)
			curI = u.ifs[curI].r
		} else {
			u.getV(curI).v = v
			u.st = st
			return false
		}
	}
	n := u.alloc(k, v) //may move ifs, so links are set by index afterward.
	if len(st) == 0 {
		u.root = n
	} else if p := st[len(st)-1]; c < 0 {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	for _, i := range st {
		u.ifs[i].sz++
	}
	u.st = st
	return true
}

func (u *Tree[K, V, S]) find(k K) S {
	curI := u.root
	for curI != 0 {
		if c := u.cmp(k, u.getV(curI).k); c < 0 {
			curI = u.ifs[curI].l
		} else if c > 0 {
			curI = u.ifs[curI].r
		} else {
			break
		}
	}
	return curI
}

// Get [Trees.OrderedMap.Get]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Get(k K) (v V, ok bool) {
	if i := u.find(k); i != 0 {
		return u.getV(i).v, true
	}
	return
}

// Contains [Trees.OrderedMap.Contains]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Contains(k K) bool {
	return u.find(k) != 0
}

// Delete [Trees.OrderedMap.Delete]
// A node with two children is replaced by its in-order successor.
// Time: O(D)
func (u *Tree[K, V, S]) Delete(k K) bool {
	st := u.st[:0]
	for curI := &u.root; *curI != 0; {
		cur := &u.ifs[*curI]
		if c := u.cmp(k, u.getV(*curI).k); c < 0 {
			st = append(st, *curI)
			curI = &cur.l
		} else if c > 0 {
			st = append(st, *curI)
			curI = &cur.r
		} else {
			d := *curI
			if cur.l == 0 {
				*curI = cur.r
			} else if cur.r == 0 {
				*curI = cur.l
			} else {
				s := u.unlinkMin(&cur.r)
				u.ifs[s] = info[S]{cur.l, cur.r, cur.sz - 1}
				*curI = s
			}
			u.release(d)
			for _, i := range st {
				u.ifs[i].sz--
			}
			u.st = st
			return true
		}
	}
	u.st = st
	return false
}

// Min [Trees.OrderedMap.Min]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Min() (k K, v V, ok bool) {
	if curI := u.root; curI != 0 {
		for u.ifs[curI].l != 0 {
			curI = u.ifs[curI].l
		}
		p := u.getV(curI)
		return p.k, p.v, true
	}
	return
}

// Max [Trees.OrderedMap.Max]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Max() (k K, v V, ok bool) {
	if curI := u.root; curI != 0 {
		for u.ifs[curI].r != 0 {
			curI = u.ifs[curI].r
		}
		p := u.getV(curI)
		return p.k, p.v, true
	}
	return
}

// DeleteMin [Trees.OrderedMap.DeleteMin]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) DeleteMin() (k K, v V, ok bool) {
	if u.root != 0 {
		m := u.unlinkMin(&u.root)
		p := *u.getV(m)
		u.release(m)
		return p.k, p.v, true
	}
	return
}

// DeleteMax [Trees.OrderedMap.DeleteMax]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) DeleteMax() (k K, v V, ok bool) {
	if u.root != 0 {
		m := u.unlinkMax(&u.root)
		p := *u.getV(m)
		u.release(m)
		return p.k, p.v, true
	}
	return
}

// Floor [Trees.OrderedMap.Floor]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Floor(k K) (f K, ok bool) {
	for curI := u.root; curI != 0; {
		if c := u.cmp(k, u.getV(curI).k); c < 0 {
			curI = u.ifs[curI].l
		} else {
			f, ok = u.getV(curI).k, true
			if c == 0 {
				break
			}
			curI = u.ifs[curI].r
		}
	}
	return
}

// Ceiling [Trees.OrderedMap.Ceiling]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Ceiling(k K) (f K, ok bool) {
	for curI := u.root; curI != 0; {
		if c := u.cmp(k, u.getV(curI).k); c > 0 {
			curI = u.ifs[curI].r
		} else {
			f, ok = u.getV(curI).k, true
			if c == 0 {
				break
			}
			curI = u.ifs[curI].l
		}
	}
	return
}

// Rank [Trees.OrderedMap.Rank]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Rank(k K) uint {
	var ra S = 0
	for curI := u.root; curI != 0; {
		cur := u.ifs[curI]
		if c := u.cmp(k, u.getV(curI).k); c < 0 {
			curI = cur.l
		} else if c > 0 {
			ra += u.ifs[cur.l].sz + 1
			curI = cur.r
		} else {
			return uint(ra + u.ifs[cur.l].sz)
		}
	}
	return uint(ra)
}

// Select [Trees.OrderedMap.Select]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Select(i uint) (k K, v V, ok bool) {
	if i >= u.Size() {
		return
	}
	curI, t := u.root, S(i)
	for {
		if lsz := u.ifs[u.ifs[curI].l].sz; t < lsz {
			curI = u.ifs[curI].l
		} else if t > lsz {
			t -= lsz + 1
			curI = u.ifs[curI].r
		} else {
			p := u.getV(curI)
			return p.k, p.v, true
		}
	}
}

// Count [Trees.OrderedMap.Count]
// Time: O(D)
func (u *Tree[K, V, S]) Count(lo, hi K) uint {
	if u.cmp(lo, hi) > 0 {
		return 0
	}
	n := u.Rank(hi) - u.Rank(lo)
	if u.Contains(hi) {
		n++
	}
	return n
}
