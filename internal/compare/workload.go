package compare

import (
	"fmt"
	"math/rand"
	"slices"
)

// Order of the keys in a Workload.
type Order string

const (
	Random     Order = "random"
	Ascending  Order = "ascending"
	Descending Order = "descending"
)

// ParseOrder accepts the names of the Order constants.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case Random, Ascending, Descending:
		return o, nil
	}
	return "", fmt.Errorf("unknown key order %q", s)
}

// Workload is N distinct even keys 0, 2, ..., 2(N-1) put in Order. Odd
// numbers are never keys, which makes every floor and ceiling query on them
// a strict one.
type Workload struct {
	N     int
	Order Order
	Seed  int64
}

// Keys in workload order. Sorted orders make an unbalanced tree a list.
func (w Workload) Keys() []int {
	var ks []int
	if w.Order == Random {
		ks = rand.New(rand.NewSource(w.Seed)).Perm(w.N)
	} else {
		ks = make([]int, w.N)
		for i := range ks {
			ks[i] = i
		}
		if w.Order == Descending {
			slices.Reverse(ks)
		}
	}
	for i := range ks {
		ks[i] *= 2
	}
	return ks
}
