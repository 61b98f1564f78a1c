package arrTree

import (
	"golang.org/x/exp/constraints"
)

// A node in the Tree
// The zero value is meaningful: ifs[0] is the 0 size loopback nil.
type info[S constraints.Unsigned] struct {
	l, r, sz S
}

type base[S constraints.Unsigned] struct {
	root, free S         //free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs        []info[S] //0 is loopback nil. all index is based on ifs
	st         []S       //reused buffer for descent paths
}

// adds a free index
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// gets a free index. Returns 0 when there's none.
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// unlinkMin detaches the left most node of the non-empty subtree *curI points
// to and returns its index. Sizes on the way down are decremented.
// curI must point into ifs or at root; nothing may grow ifs meanwhile.
func (u *base[S]) unlinkMin(curI *S) S {
	for u.ifs[*curI].l != 0 {
		u.ifs[*curI].sz--
		curI = &u.ifs[*curI].l
	}
	m := *curI
	*curI = u.ifs[m].r
	return m
}

// unlinkMax is unlinkMin for the right most node.
func (u *base[S]) unlinkMax(curI *S) S {
	for u.ifs[*curI].r != 0 {
		u.ifs[*curI].sz--
		curI = &u.ifs[*curI].r
	}
	m := *curI
	*curI = u.ifs[m].l
	return m
}

func (u *base[S]) Size() uint {
	return uint(u.ifs[u.root].sz)
}

func (u *base[S]) IsEmpty() bool {
	return u.root == 0
}

// Height of the tree, computed with an explicit stack of (index, depth).
// Time: O(n); Space: O(D)
func (u *base[S]) Height() uint {
	var h uint
	if u.root == 0 {
		return h
	}
	type frame struct {
		i S
		d uint
	}
	st := []frame{{u.root, 1}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, f.d)
		if l := u.ifs[f.i].l; l != 0 {
			st = append(st, frame{l, f.d + 1})
		}
		if r := u.ifs[f.i].r; r != 0 {
			st = append(st, frame{r, f.d + 1})
		}
	}
	return h
}

// Slots is the number of node slots in the arena, used or free.
func (u *base[S]) Slots() uint {
	return uint(len(u.ifs) - 1)
}

// freeLen is the length of the free list.
func (u *base[S]) freeLen() (n uint) {
	for a := u.free; a != 0 && n <= uint(len(u.ifs)); a = u.ifs[a].l {
		n++
	}
	return
}
