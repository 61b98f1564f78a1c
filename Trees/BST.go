package Trees

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree mapping unique keys of type K to
// values of type V. Every node records the size of the subtree rooting at it,
// which gives Size in O(1) and Rank, Select, Count in O(D).
// S is the type of the variables used for storing the sizes of different
// subtrees, so the additional memory cost is size(S)*n. S should be a wide
// upperbound for the size of the tree; an overflowing S corrupts the tree.
// No balancing is done. The height D of the tree depends on the insertion
// order: D=O(log n) for random orders, D=n for sorted ones.
// Methods implemented recursively are noted, the recursion depth is D.
// The zero value isn't usable, create a BST with New or NewFunc.
type BST[K, V any, S constraints.Unsigned] struct {
	root   nodePtr[K, V, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[K, V, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp func(K, K) int
}

var _ OrderedMap[int, int] = (*BST[int, int, uint])(nil)

// New returns an empty BST ordering keys with cmp.Compare.
func New[K cmp.Ordered, V any, S constraints.Unsigned]() *BST[K, V, S] {
	return NewFunc[K, V, S](cmp.Compare[K])
}

// NewFunc returns an empty BST ordering keys with c. c must be a total order,
// otherwise the behavior of every method is undefined.
func NewFunc[K, V any, S constraints.Unsigned](c func(K, K) int) *BST[K, V, S] {
	z := newNil[K, V, S]()
	return &BST[K, V, S]{z, z, c}
}

// UnsortedError is the panic value of From when the keys aren't strictly increasing.
type UnsortedError[K any] struct {
	Index int //ks[Index-1] >= ks[Index]
	Prev  K
	Next  K
}

func (e UnsortedError[K]) Error() string {
	return fmt.Sprintf("keys not strictly increasing at %d: %v, %v", e.Index, e.Prev, e.Next)
}

// From builds a BST of minimal height from ks and vs, where vs[i] is the value of ks[i].
// ks must be strictly increasing and len(vs) must be len(ks); From panics
// with UnsortedError otherwise. This is faster than repeatedly calling Insert.
// Recursive.
// Time: O(n).
func From[K cmp.Ordered, V any, S constraints.Unsigned](ks []K, vs []V) *BST[K, V, S] {
	if len(ks) != len(vs) {
		panic(fmt.Sprintf("From: %d keys, %d values", len(ks), len(vs)))
	}
	for i := 1; i < len(ks); i++ {
		if ks[i-1] >= ks[i] {
			panic(UnsortedError[K]{i, ks[i-1], ks[i]})
		}
	}
	u := New[K, V, S]()
	var build func(lo, hi int) nodePtr[K, V, S]
	build = func(lo, hi int) nodePtr[K, V, S] {
		if lo < hi {
			mid := int(uint(lo+hi) >> 1)
			return &node[K, V, S]{ks[mid], vs[mid], build(lo, mid), build(mid+1, hi), S(hi - lo)}
		} else {
			return u.nilPtr
		}
	}
	u.root = build(0, len(ks))
	return u
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *BST[K, V, S]) Size() uint {
	return uint(u.root.sz)
}

// IsEmpty [OrderedMap.IsEmpty]
func (u *BST[K, V, S]) IsEmpty() bool {
	return u.root == u.nilPtr
}

// Clear [OrderedMap.Clear]. Nodes are left to the garbage collector.
// Time: O(1)
func (u *BST[K, V, S]) Clear() {
	u.root = u.nilPtr
}

// insert the pair k, v to the subtree rooting at cur recursively. cur is
// passed by reference. Returns true if a new node was created, false if
// the value of an existing node was overwritten. Sizes are recomputed on the
// way back up.
func (u *BST[K, V, S]) insert(curPtr *nodePtr[K, V, S], k K, v V) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[K, V, S]{k, v, u.nilPtr, u.nilPtr, 1}
		return true
	} else {
		inserted := false
		if c := u.cmp(k, cur.k); c < 0 {
			inserted = u.insert(&cur.l, k, v)
		} else if c > 0 {
			inserted = u.insert(&cur.r, k, v)
		} else {
			cur.v = v
			return false
		}
		resize(cur)
		return inserted
	}
}

// Insert [OrderedMap.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BST[K, V, S]) Insert(k K, v V) bool {
	return u.insert(&u.root, k, v)
}

// find the node with key k, returns nilPtr if there's none.
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) find(k K) nodePtr[K, V, S] {
	cur := u.root
	for cur != u.nilPtr {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	return cur
}

// Get [OrderedMap.Get]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Get(k K) (V, bool) {
	n := u.find(k)
	return n.v, n != u.nilPtr
}

// Contains [OrderedMap.Contains]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Contains(k K) bool {
	return u.find(k) != u.nilPtr
}

// min is the left most node of the subtree rooting at cur.
func (u *BST[K, V, S]) min(cur nodePtr[K, V, S]) nodePtr[K, V, S] {
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur
}

// max is the right most node of the subtree rooting at cur.
func (u *BST[K, V, S]) max(cur nodePtr[K, V, S]) nodePtr[K, V, S] {
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur
}

// Min [OrderedMap.Min]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Min() (K, V, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.k, cur.v, false
	} else {
		cur = u.min(cur)
		return cur.k, cur.v, true
	}
}

// Max [OrderedMap.Max]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Max() (K, V, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.k, cur.v, false
	} else {
		cur = u.max(cur)
		return cur.k, cur.v, true
	}
}

// floor returns the node holding the largest key <= k in the subtree rooting
// at cur, or nilPtr. Recursive.
func (u *BST[K, V, S]) floor(cur nodePtr[K, V, S], k K) nodePtr[K, V, S] {
	if cur == u.nilPtr {
		return cur
	}
	if c := u.cmp(k, cur.k); c == 0 {
		return cur
	} else if c < 0 {
		return u.floor(cur.l, k)
	} else if t := u.floor(cur.r, k); t != u.nilPtr {
		return t
	}
	return cur
}

// ceiling returns the node holding the smallest key >= k in the subtree
// rooting at cur, or nilPtr. Recursive.
func (u *BST[K, V, S]) ceiling(cur nodePtr[K, V, S], k K) nodePtr[K, V, S] {
	if cur == u.nilPtr {
		return cur
	}
	if c := u.cmp(k, cur.k); c == 0 {
		return cur
	} else if c > 0 {
		return u.ceiling(cur.r, k)
	} else if t := u.ceiling(cur.l, k); t != u.nilPtr {
		return t
	}
	return cur
}

// Floor [OrderedMap.Floor]. Recursive.
// Time: O(D)
func (u *BST[K, V, S]) Floor(k K) (K, bool) {
	n := u.floor(u.root, k)
	return n.k, n != u.nilPtr
}

// Ceiling [OrderedMap.Ceiling]. Recursive.
// Time: O(D)
func (u *BST[K, V, S]) Ceiling(k K) (K, bool) {
	n := u.ceiling(u.root, k)
	return n.k, n != u.nilPtr
}

// deleteMin unlinks the left most node of the non-empty subtree rooting at cur
// recursively and returns it. The unlinked node keeps its stale children.
func (u *BST[K, V, S]) deleteMin(curPtr *nodePtr[K, V, S]) nodePtr[K, V, S] {
	if cur := *curPtr; cur.l == u.nilPtr {
		*curPtr = cur.r
		return cur
	} else {
		m := u.deleteMin(&cur.l)
		resize(cur)
		return m
	}
}

// deleteMax is deleteMin for the right most node.
func (u *BST[K, V, S]) deleteMax(curPtr *nodePtr[K, V, S]) nodePtr[K, V, S] {
	if cur := *curPtr; cur.r == u.nilPtr {
		*curPtr = cur.l
		return cur
	} else {
		m := u.deleteMax(&cur.r)
		resize(cur)
		return m
	}
}

// DeleteMin [OrderedMap.DeleteMin]. Recursive.
// Time: O(D)
func (u *BST[K, V, S]) DeleteMin() (K, V, bool) {
	if u.root == u.nilPtr {
		return u.nilPtr.k, u.nilPtr.v, false
	}
	m := u.deleteMin(&u.root)
	return m.k, m.v, true
}

// DeleteMax [OrderedMap.DeleteMax]. Recursive.
// Time: O(D)
func (u *BST[K, V, S]) DeleteMax() (K, V, bool) {
	if u.root == u.nilPtr {
		return u.nilPtr.k, u.nilPtr.v, false
	}
	m := u.deleteMax(&u.root)
	return m.k, m.v, true
}

// remove the node with key k from the subtree rooting at cur recursively. cur
// is passed by reference. Returns false if the removal failed(k doesn't exist
// in u), otherwise true.
// A node with two children is replaced by its in-order successor: the
// successor is unlinked from the right subtree by deleteMin and takes the
// place of the removed node, adopting both of its subtrees.
func (u *BST[K, V, S]) remove(curPtr *nodePtr[K, V, S], k K) bool {
	if cur := *curPtr; cur == u.nilPtr {
		return false
	} else {
		deleted := true
		if c := u.cmp(k, cur.k); c < 0 {
			deleted = u.remove(&cur.l, k)
		} else if c > 0 {
			deleted = u.remove(&cur.r, k)
		} else if cur.l == u.nilPtr {
			*curPtr = cur.r
			return true
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
			return true
		} else {
			s := u.deleteMin(&cur.r)
			s.l, s.r = cur.l, cur.r
			*curPtr, cur = s, s
		}
		if deleted {
			resize(cur)
		}
		return deleted
	}
}

// Delete [OrderedMap.Delete]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BST[K, V, S]) Delete(k K) bool {
	return u.remove(&u.root, k)
}

// Rank [OrderedMap.Rank]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Rank(k K) uint {
	var ra S = 0
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += cur.l.sz + 1
			cur = cur.r
		} else {
			return uint(ra + cur.l.sz)
		}
	}
	return uint(ra)
}

// Select [OrderedMap.Select]
// Returns (k,v,true) if i<Size(), otherwise zero values and false.
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Select(i uint) (K, V, bool) {
	if i >= u.Size() {
		return u.nilPtr.k, u.nilPtr.v, false
	}
	cur, t := u.root, S(i)
	for {
		if t < cur.l.sz {
			cur = cur.l
		} else if t > cur.l.sz {
			t -= cur.l.sz + 1
			cur = cur.r
		} else {
			return cur.k, cur.v, true
		}
	}
}

// Count [OrderedMap.Count]
// Time: O(D)
func (u *BST[K, V, S]) Count(lo, hi K) uint {
	if u.cmp(lo, hi) > 0 {
		return 0
	}
	n := u.Rank(hi) - u.Rank(lo)
	if u.Contains(hi) {
		n++
	}
	return n
}

func (u *BST[K, V, S]) height(c nodePtr[K, V, S]) uint {
	if c == u.nilPtr {
		return 0
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

// Height [OrderedMap.Height]. Recursive.
// Time: O(n)
func (u *BST[K, V, S]) Height() uint {
	return u.height(u.root)
}
