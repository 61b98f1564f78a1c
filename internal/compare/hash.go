package compare

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/puzpuzpuz/xsync/v3"
)

// The hash maps are unordered baselines for the point operations.

type haxMap struct {
	m *haxmap.Map[int, int]
}

// NewHaxMap is a github.com/alphadose/haxmap map presized for hint keys.
func NewHaxMap(hint int) Backend {
	if hint > 0 {
		return &haxMap{haxmap.New[int, int](uintptr(hint))}
	}
	return &haxMap{haxmap.New[int, int]()}
}

func (h *haxMap) Name() string          { return "haxmap" }
func (h *haxMap) Put(k, v int)          { h.m.Set(k, v) }
func (h *haxMap) Get(k int) (int, bool) { return h.m.Get(k) }
func (h *haxMap) Len() int              { return int(h.m.Len()) }

func (h *haxMap) Delete(k int) bool {
	if _, ok := h.m.Get(k); !ok {
		return false
	}
	h.m.Del(k)
	return true
}

type cornelkMap struct {
	m *hashmap.Map[int, int]
}

// NewHashMap is a github.com/cornelk/hashmap map.
func NewHashMap() Backend {
	return &cornelkMap{hashmap.New[int, int]()}
}

func (h *cornelkMap) Name() string          { return "hashmap" }
func (h *cornelkMap) Put(k, v int)          { h.m.Set(k, v) }
func (h *cornelkMap) Get(k int) (int, bool) { return h.m.Get(k) }
func (h *cornelkMap) Delete(k int) bool     { return h.m.Del(k) }
func (h *cornelkMap) Len() int              { return h.m.Len() }

type xsyncMap struct {
	m *xsync.MapOf[int, int]
}

// NewXSync is a github.com/puzpuzpuz/xsync MapOf.
func NewXSync() Backend {
	return &xsyncMap{xsync.NewMapOf[int, int]()}
}

func (x *xsyncMap) Name() string          { return "xsync" }
func (x *xsyncMap) Put(k, v int)          { x.m.Store(k, v) }
func (x *xsyncMap) Get(k int) (int, bool) { return x.m.Load(k) }
func (x *xsyncMap) Len() int              { return x.m.Size() }

func (x *xsyncMap) Delete(k int) bool {
	_, ok := x.m.LoadAndDelete(k)
	return ok
}
