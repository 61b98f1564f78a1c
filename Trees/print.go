package Trees

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// absent is printed in place of a missing child whose sibling exists.
const absent = "·"

func (u *BST[K, V, S]) walk(c nodePtr[K, V, S], t treeprint.Tree) {
	if c.l == u.nilPtr && c.r == u.nilPtr {
		return
	}
	for _, ch := range [2]nodePtr[K, V, S]{c.l, c.r} {
		if ch == u.nilPtr {
			t.AddNode(absent)
		} else {
			u.walk(ch, t.AddMetaBranch(ch.sz, fmt.Sprintf("%v: %v", ch.k, ch.v)))
		}
	}
}

// String renders the shape of the tree, every node as "key: value" prefixed
// with its subtree size; the left child is listed before the right one.
// Recursive.
func (u *BST[K, V, S]) String() string {
	if u.root == u.nilPtr {
		return treeprint.NewWithRoot("<empty>").String()
	}
	t := treeprint.NewWithRoot(fmt.Sprintf("[%v] %v: %v", u.root.sz, u.root.k, u.root.v))
	u.walk(u.root, t)
	return t.String()
}

// Print [OrderedMap.Print]
func (u *BST[K, V, S]) Print(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}
