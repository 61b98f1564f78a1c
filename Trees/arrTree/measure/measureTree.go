// Command measure reports how the lookup cost of the arena tree changes as
// a growing share of its keys is deleted and their slots sit on the free
// list.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees/arrTree"
)

var (
	bAddN uint32 = 1000000
	bRmvN uint32 = bAddN
	bQryN uint32 = bRmvN
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

func create(b *testing.B, all []int) (*arrTree.Tree[int, struct{}, uint32], []int) {
	b.Helper()
	tree := arrTree.New[int, struct{}, uint32](bAddN)
	for range bAddN {
		a := _R.Int()
		tree.Insert(a, struct{}{})
		all = append(all, a)
	}
	return tree, all
}

var __r1 bool

func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var tree *arrTree.Tree[int, struct{}, uint32]
		tree, all = create(b, all[:0])
		m := slices.Max(all)
		b.StartTimer()
		for _, v := range all[:bRmvN] {
			tree.Delete(v)
		}
		for _, v := range all[bRmvN:] {
			__r1 = tree.Contains(v)
		}
		for range bQryN {
			__r1 = tree.Contains(_R.Intn(m))
		}
	}
}

const bNumSteps uint32 = 50

func main() {
	testing.Init()
	var cs []float64
	for i := uint32(1); i < bNumSteps; i++ {
		bRmvN = bAddN / bNumSteps * i
		bQryN = bRmvN
		br := testing.Benchmark(BenchmarkDelQry)
		c := float64(br.T.Milliseconds()) / float64(br.N)
		cs = append(cs, c)
		fmt.Printf("%d/%d deleted: %fms/op\n", i, bNumSteps, c)
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
}
