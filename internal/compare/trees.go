package compare

import (
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/Trees/arrTree"
)

// treeMap adapts a Trees.OrderedMap.
type treeMap struct {
	name string
	m    Trees.OrderedMap[int, int]
}

// NewBST is a Trees.BST with uint sizes.
func NewBST() Ordered {
	return &treeMap{"bst", Trees.New[int, int, uint]()}
}

// NewArena is an arrTree.Tree with uint32 indexes and room for hint keys.
func NewArena(hint int) Ordered {
	return &treeMap{"arena", arrTree.New[int, int, uint32](uint32(max(hint, 0)))}
}

func (t *treeMap) Name() string              { return t.name }
func (t *treeMap) Put(k, v int)              { t.m.Insert(k, v) }
func (t *treeMap) Get(k int) (int, bool)     { return t.m.Get(k) }
func (t *treeMap) Delete(k int) bool         { return t.m.Delete(k) }
func (t *treeMap) Len() int                  { return int(t.m.Size()) }
func (t *treeMap) Floor(k int) (int, bool)   { return t.m.Floor(k) }
func (t *treeMap) Ceiling(k int) (int, bool) { return t.m.Ceiling(k) }
func (t *treeMap) Keys() []int               { return Trees.Keys(t.m) }

func (t *treeMap) Min() (int, bool) {
	k, _, ok := t.m.Min()
	return k, ok
}

func (t *treeMap) Max() (int, bool) {
	k, _, ok := t.m.Max()
	return k, ok
}

func (t *treeMap) DeleteMin() (int, bool) {
	k, _, ok := t.m.DeleteMin()
	return k, ok
}
