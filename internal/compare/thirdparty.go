package compare

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

type kv struct {
	k, v int
}

func (a kv) Less(b llrb.Item) bool {
	return a.k < b.(kv).k
}

var _ llrb.Item = kv{}

// bTree adapts github.com/google/btree.
type bTree struct {
	t *btree.BTreeG[kv]
}

// NewBTree is a google/btree B-Tree of the given degree.
func NewBTree(degree int) Ordered {
	return &bTree{btree.NewG[kv](degree, func(a, b kv) bool { return a.k < b.k })}
}

func (b *bTree) Name() string { return "btree" }
func (b *bTree) Put(k, v int) { b.t.ReplaceOrInsert(kv{k, v}) }
func (b *bTree) Len() int     { return b.t.Len() }

func (b *bTree) Get(k int) (int, bool) {
	i, ok := b.t.Get(kv{k: k})
	return i.v, ok
}

func (b *bTree) Delete(k int) bool {
	_, ok := b.t.Delete(kv{k: k})
	return ok
}

func (b *bTree) Floor(k int) (f int, ok bool) {
	b.t.DescendLessOrEqual(kv{k: k}, func(i kv) bool {
		f, ok = i.k, true
		return false
	})
	return
}

func (b *bTree) Ceiling(k int) (c int, ok bool) {
	b.t.AscendGreaterOrEqual(kv{k: k}, func(i kv) bool {
		c, ok = i.k, true
		return false
	})
	return
}

func (b *bTree) Min() (int, bool) {
	i, ok := b.t.Min()
	return i.k, ok
}

func (b *bTree) Max() (int, bool) {
	i, ok := b.t.Max()
	return i.k, ok
}

func (b *bTree) DeleteMin() (int, bool) {
	i, ok := b.t.DeleteMin()
	return i.k, ok
}

func (b *bTree) Keys() []int {
	ks := make([]int, 0, b.t.Len())
	b.t.Ascend(func(i kv) bool {
		ks = append(ks, i.k)
		return true
	})
	return ks
}

// llrbTree adapts github.com/petar/GoLLRB.
type llrbTree struct {
	t *llrb.LLRB
}

// NewLLRB is a left-leaning red-black tree.
func NewLLRB() Ordered {
	return &llrbTree{llrb.New()}
}

func (l *llrbTree) Name() string { return "llrb" }
func (l *llrbTree) Put(k, v int) { l.t.ReplaceOrInsert(kv{k, v}) }
func (l *llrbTree) Len() int     { return l.t.Len() }

func (l *llrbTree) Get(k int) (int, bool) {
	if i := l.t.Get(kv{k: k}); i != nil {
		return i.(kv).v, true
	}
	return 0, false
}

func (l *llrbTree) Delete(k int) bool {
	return l.t.Delete(kv{k: k}) != nil
}

func (l *llrbTree) Floor(k int) (f int, ok bool) {
	l.t.DescendLessOrEqual(kv{k: k}, func(i llrb.Item) bool {
		f, ok = i.(kv).k, true
		return false
	})
	return
}

func (l *llrbTree) Ceiling(k int) (c int, ok bool) {
	l.t.AscendGreaterOrEqual(kv{k: k}, func(i llrb.Item) bool {
		c, ok = i.(kv).k, true
		return false
	})
	return
}

func (l *llrbTree) item(i llrb.Item) (int, bool) {
	if i == nil {
		return 0, false
	}
	return i.(kv).k, true
}

func (l *llrbTree) Min() (int, bool)       { return l.item(l.t.Min()) }
func (l *llrbTree) Max() (int, bool)       { return l.item(l.t.Max()) }
func (l *llrbTree) DeleteMin() (int, bool) { return l.item(l.t.DeleteMin()) }

func (l *llrbTree) Keys() []int {
	ks := make([]int, 0, l.t.Len())
	if m := l.t.Min(); m != nil {
		l.t.AscendGreaterOrEqual(m, func(i llrb.Item) bool {
			ks = append(ks, i.(kv).k)
			return true
		})
	}
	return ks
}

// godsTree adapts the red-black tree map of github.com/emirpasic/gods.
type godsTree struct {
	m *treemap.Map
}

// NewGods is a gods treemap with int keys.
func NewGods() Ordered {
	return &godsTree{treemap.NewWithIntComparator()}
}

func (g *godsTree) Name() string { return "gods" }
func (g *godsTree) Put(k, v int) { g.m.Put(k, v) }
func (g *godsTree) Len() int     { return g.m.Size() }

func (g *godsTree) Get(k int) (int, bool) {
	if v, ok := g.m.Get(k); ok {
		return v.(int), true
	}
	return 0, false
}

func (g *godsTree) Delete(k int) bool {
	if _, ok := g.m.Get(k); !ok {
		return false
	}
	g.m.Remove(k)
	return true
}

func key(k interface{}) (int, bool) {
	if k == nil {
		return 0, false
	}
	return k.(int), true
}

func (g *godsTree) Floor(k int) (int, bool) {
	f, _ := g.m.Floor(k)
	return key(f)
}

func (g *godsTree) Ceiling(k int) (int, bool) {
	c, _ := g.m.Ceiling(k)
	return key(c)
}

func (g *godsTree) Min() (int, bool) {
	k, _ := g.m.Min()
	return key(k)
}

func (g *godsTree) Max() (int, bool) {
	k, _ := g.m.Max()
	return key(k)
}

func (g *godsTree) DeleteMin() (int, bool) {
	k, _ := g.m.Min()
	if k == nil {
		return 0, false
	}
	g.m.Remove(k)
	return k.(int), true
}

func (g *godsTree) Keys() []int {
	ks := make([]int, 0, g.m.Size())
	for _, k := range g.m.Keys() {
		ks = append(ks, k.(int))
	}
	return ks
}
