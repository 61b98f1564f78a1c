package Trees

import (
	"io"
	"iter"
)

// OrderedMap represents a map whose keys are kept in a binary search tree.
// Receivers that have a bool as the last return value indicate whether
// the other return values are defined. For example, calling Min on an empty
// map returns (k K, v V, false). In this case k and v are zero values and
// shouldn't be used.
// Absence is never an error: looking up, deleting, or extracting something
// that isn't there reports false and leaves the map untouched.
// Implementations aren't safe for concurrent use.
type OrderedMap[K, V any] interface {
	//Insert k with value v. Returns true if k was new, false if an existing
	//value was overwritten. Overwriting doesn't change the structure.
	Insert(k K, v V) bool
	//Get the value of k.
	Get(k K) (V, bool)
	//Contains k.
	Contains(k K) bool
	//Delete k. Returns false if k wasn't in the map.
	Delete(k K) bool
	//Min is the pair with the smallest key.
	Min() (K, V, bool)
	//Max is the pair with the largest key.
	Max() (K, V, bool)
	//DeleteMin removes and returns the pair with the smallest key.
	DeleteMin() (K, V, bool)
	//DeleteMax removes and returns the pair with the largest key.
	DeleteMax() (K, V, bool)
	//Floor is the largest key <= k.
	Floor(k K) (K, bool)
	//Ceiling is the smallest key >= k.
	Ceiling(k K) (K, bool)
	//Rank is the number of keys strictly less than k.
	Rank(k K) uint
	//Select the i-th smallest pair, starting from 0.
	//0<=i<Size().
	Select(i uint) (K, V, bool)
	//Count the keys in [lo, hi].
	Count(lo, hi K) uint
	//Range gives the pairs with keys in [lo, hi] in ascending order. Read only.
	Range(lo, hi K) iter.Seq2[K, V]
	//Size of the map.
	Size() uint
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//Height of the tree, 0 for an empty tree.
	Height() uint
	//Clear the map.
	Clear()
	//DrainAscending returns a closure f acting like an iterator that
	//removes the current minimum on every call: k, v, valid = f(). When
	//valid==false f is exhausted and the map is empty. The map may be
	//modified between calls; f always yields the minimum at the time of
	//the call.
	DrainAscending() func() (K, V, bool)
	//DrainDescending is DrainAscending using the maximum.
	DrainDescending() func() (K, V, bool)
	//InOrder returns a closure f giving the pairs in ascending order without
	//modifying the map. The map must not be modified during the iteration
	//of f.
	InOrder() func() (K, V, bool)
	//InOrderR is InOrder in descending order.
	InOrderR() func() (K, V, bool)
	//All pairs in ascending order. Read only.
	All() iter.Seq2[K, V]
	//Backward is All in descending order.
	Backward() iter.Seq2[K, V]
	//Print the shape of the tree to w.
	Print(w io.Writer) error
	//Corrupt returns whether the tree violates the ordering, size, or
	//uniqueness properties.
	Corrupt() bool
}

// Drain adapts the closure returned by DrainAscending or DrainDescending of m
// to a range-over-func sequence. Breaking out of the loop early leaves the
// remaining pairs in m.
func Drain[K, V any](m OrderedMap[K, V], ascending bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		next := m.DrainDescending
		if ascending {
			next = m.DrainAscending
		}
		f := next()
		for k, v, ok := f(); ok; k, v, ok = f() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys of m in ascending order.
func Keys[K, V any](m OrderedMap[K, V]) []K {
	ks := make([]K, 0, m.Size())
	for k := range m.All() {
		ks = append(ks, k)
	}
	return ks
}
