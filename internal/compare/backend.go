// Package compare runs the same key workloads against the trees of this
// module and against third-party ordered and hash maps.
package compare

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownBackend is returned by Open for names not in Names.
var ErrUnknownBackend = errors.New("unknown backend")

// Backend is a map from int to int.
type Backend interface {
	Name() string
	Put(k, v int)
	Get(k int) (int, bool)
	Delete(k int) bool
	Len() int
}

// Ordered is a Backend that also answers ordered queries.
type Ordered interface {
	Backend
	Floor(k int) (int, bool)
	Ceiling(k int) (int, bool)
	Min() (int, bool)
	Max() (int, bool)
	DeleteMin() (int, bool)
	Keys() []int
}

var openers = map[string]func(hint int) Backend{
	"bst":     func(int) Backend { return NewBST() },
	"arena":   func(hint int) Backend { return NewArena(hint) },
	"btree":   func(int) Backend { return NewBTree(32) },
	"llrb":    func(int) Backend { return NewLLRB() },
	"gods":    func(int) Backend { return NewGods() },
	"haxmap":  func(hint int) Backend { return NewHaxMap(hint) },
	"hashmap": func(int) Backend { return NewHashMap() },
	"xsync":   func(int) Backend { return NewXSync() },
}

// Names of all backends, sorted.
func Names() []string {
	ns := make([]string, 0, len(openers))
	for n := range openers {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Open an empty backend by name. hint is the expected number of keys.
func Open(name string, hint int) (Backend, error) {
	o, ok := openers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return o(hint), nil
}
