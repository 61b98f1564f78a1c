package arrTree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Corrupt [Trees.OrderedMap.Corrupt]
// Besides the ordering and size properties, every slot must be either
// reachable from the root or on the free list, never both.
// Time: O(n); Space: O(n)
func (u *Tree[K, V, S]) Corrupt() bool {
	if z := u.ifs[0]; z.l != 0 || z.r != 0 || z.sz != 0 || len(u.ifs) != len(u.vs)+1 {
		return true
	}
	seen := make([]bool, len(u.ifs))
	for a := u.free; a != 0; a = u.ifs[a].l {
		if int(a) >= len(u.ifs) || seen[a] {
			return true
		}
		seen[a] = true
	}
	type frame struct {
		i, lo, hi S //lo, hi are the bounding ancestors, 0 when unbounded.
	}
	reached := 0
	for st := []frame{{u.root, 0, 0}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.i == 0 {
			continue
		}
		if int(f.i) >= len(u.ifs) || seen[f.i] {
			return true
		}
		seen[f.i] = true
		reached++
		cur, k := u.ifs[f.i], u.getV(f.i).k
		if f.lo != 0 && u.cmp(u.getV(f.lo).k, k) >= 0 || f.hi != 0 && u.cmp(k, u.getV(f.hi).k) >= 0 {
			return true
		}
		if cur.sz != u.ifs[cur.l].sz+u.ifs[cur.r].sz+1 {
			return true
		}
		st = append(st, frame{cur.l, f.lo, f.i}, frame{cur.r, f.i, f.hi})
	}
	return uint(reached) != u.Size() || uint(reached)+u.freeLen() != u.Slots()
}

func (u *Tree[K, V, S]) walk(curI S, t treeprint.Tree) {
	cur := u.ifs[curI]
	if cur.l == 0 && cur.r == 0 {
		return
	}
	for _, ch := range [2]S{cur.l, cur.r} {
		if ch == 0 {
			t.AddNode("·")
		} else {
			p := u.getV(ch)
			u.walk(ch, t.AddMetaBranch(u.ifs[ch].sz, fmt.Sprintf("%v: %v", p.k, p.v)))
		}
	}
}

// String renders the shape of the tree like Trees.BST.String. Recursive.
func (u *Tree[K, V, S]) String() string {
	if u.root == 0 {
		return treeprint.NewWithRoot("<empty>").String()
	}
	p := u.getV(u.root)
	t := treeprint.NewWithRoot(fmt.Sprintf("[%v] %v: %v", u.ifs[u.root].sz, p.k, p.v))
	u.walk(u.root, t)
	return t.String()
}

// Print [Trees.OrderedMap.Print]
func (u *Tree[K, V, S]) Print(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}
