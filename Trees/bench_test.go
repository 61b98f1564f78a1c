package Trees

import (
	"cmp"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

// keys returns bAddN random keys and their maximum.
func keys() ([]int, int) {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	return all, slices.Max(all)
}

func create(b *testing.B, all []int) *BST[int, int, uint32] {
	b.Helper()
	tree := New[int, int, uint32]()
	for i, k := range all {
		tree.Insert(k, i)
	}
	return tree
}

func BenchmarkAdd(b *testing.B) {
	all, _ := keys()
	b.ResetTimer()
	for range b.N {
		tree := New[int, int, uint32]()
		for i, k := range all {
			tree.Insert(k, i)
		}
	}
}

func BenchmarkFrom(b *testing.B) {
	all, _ := keys()
	slices.Sort(all)
	all = slices.Compact(all)
	vs := make([]int, len(all))
	b.ResetTimer()
	for range b.N {
		_ = From[int, int, uint32](all, vs)
	}
}

func BenchmarkDel(b *testing.B) {
	all, _ := keys()
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, all)
		b.StartTimer()
		for _, k := range all {
			tree.Delete(k)
		}
	}
}

func BenchmarkDrain(b *testing.B) {
	all, _ := keys()
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, all)
		b.StartTimer()
		f := tree.DrainAscending()
		for _, _, ok := f(); ok; _, _, ok = f() {
		}
	}
}

var sideEff bool

func BenchmarkQry(b *testing.B) {
	all, m := keys()
	tree := create(b, all)
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			sideEff = tree.Contains(k)
		}
		for range bAddN - bQryN {
			sideEff = tree.Contains(rg.Intn(m))
		}
	}
}

func BenchmarkFloor(b *testing.B) {
	all, m := keys()
	tree := create(b, all)
	b.ResetTimer()
	for range b.N {
		for range bAddN {
			_, sideEff = tree.Floor(rg.Intn(m))
		}
	}
}

func BenchmarkRank(b *testing.B) {
	all, _ := keys()
	tree := create(b, all)
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			sideEff = tree.Rank(k) < uint(bAddN)
		}
	}
}

// Baselines: the same insert and query loops on other map implementations.

func BenchmarkBTreeAdd(b *testing.B) {
	all, _ := keys()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, k := range all {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkBTreeQry(b *testing.B) {
	all, m := keys()
	tree := btree.NewOrderedG[int](32)
	for _, k := range all {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			sideEff = tree.Has(k)
		}
		for range bAddN - bQryN {
			sideEff = tree.Has(rg.Intn(m))
		}
	}
}

type item int

func (a item) Less(b llrb.Item) bool {
	return a < b.(item)
}

func BenchmarkLLRBAdd(b *testing.B) {
	all, _ := keys()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, k := range all {
			tree.ReplaceOrInsert(item(k))
		}
	}
}

func BenchmarkLLRBQry(b *testing.B) {
	all, m := keys()
	tree := llrb.New()
	for _, k := range all {
		tree.ReplaceOrInsert(item(k))
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			sideEff = tree.Has(item(k))
		}
		for range bAddN - bQryN {
			sideEff = tree.Has(item(rg.Intn(m)))
		}
	}
}

func BenchmarkGodsAdd(b *testing.B) {
	all, _ := keys()
	b.ResetTimer()
	for range b.N {
		tree := treemap.NewWith(func(a, b interface{}) int { return cmp.Compare(a.(int), b.(int)) })
		for i, k := range all {
			tree.Put(k, i)
		}
	}
}

func BenchmarkHaxMapQry(b *testing.B) {
	all, m := keys()
	hm := haxmap.New[int, int](uintptr(bAddN))
	for i, k := range all {
		hm.Set(k, i)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			_, sideEff = hm.Get(k)
		}
		for range bAddN - bQryN {
			_, sideEff = hm.Get(rg.Intn(m))
		}
	}
}

func BenchmarkHashMapQry(b *testing.B) {
	all, m := keys()
	hm := hashmap.New[int, int]()
	for i, k := range all {
		hm.Set(k, i)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			_, sideEff = hm.Get(k)
		}
		for range bAddN - bQryN {
			_, sideEff = hm.Get(rg.Intn(m))
		}
	}
}
