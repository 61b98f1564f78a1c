package Trees

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

// sample inserts (5,"a"), (2,"b"), (8,"c"), (1,"d"), (3,"e").
func sample() *BST[int, string, uint8] {
	tree := New[int, string, uint8]()
	tree.Insert(5, "a")
	tree.Insert(2, "b")
	tree.Insert(8, "c")
	tree.Insert(1, "d")
	tree.Insert(3, "e")
	return tree
}

func TestBST_Scenario(t *testing.T) {
	tree := sample()
	if tree.Size() != 5 {
		t.Errorf("tree size is %d, want %d", tree.Size(), 5)
	}
	if k, ok := tree.Floor(4); !ok || k != 3 {
		t.Errorf("floor(4) is %v %v, want 3", k, ok)
	}
	if k, ok := tree.Ceiling(4); !ok || k != 5 {
		t.Errorf("ceiling(4) is %v %v, want 5", k, ok)
	}
	if k, v, ok := tree.Min(); !ok || k != 1 || v != "d" {
		t.Errorf("min is %v %v %v, want 1 d", k, v, ok)
	}
	if k, v, ok := tree.Max(); !ok || k != 8 || v != "c" {
		t.Errorf("max is %v %v %v, want 8 c", k, v, ok)
	}

	asc := sample()
	var ks []int
	var vs []string
	f := asc.DrainAscending()
	for k, v, ok := f(); ok; k, v, ok = f() {
		ks = append(ks, k)
		vs = append(vs, v)
	}
	if !slices.Equal(ks, []int{1, 2, 3, 5, 8}) || !slices.Equal(vs, []string{"d", "b", "e", "a", "c"}) {
		t.Errorf("ascending drain gave %v %v", ks, vs)
	}
	if asc.Size() != 0 || !asc.IsEmpty() {
		t.Errorf("tree size after drain is %d, want 0", asc.Size())
	}

	if !tree.Delete(5) {
		t.Errorf("failed to delete key %v", 5)
	}
	if tree.Contains(5) {
		t.Errorf("tree still has key %v", 5)
	}
	if tree.Size() != 4 {
		t.Errorf("tree size is %d, want %d", tree.Size(), 4)
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestBST_Empty(t *testing.T) {
	tree := New[int, int, uint]()
	if tree.Size() != 0 || !tree.IsEmpty() || tree.Height() != 0 {
		t.Errorf("new tree isn't empty")
	}
	if _, ok := tree.Get(1); ok {
		t.Errorf("empty tree has key %v", 1)
	}
	if _, _, ok := tree.Min(); ok {
		t.Errorf("empty tree has a minimum")
	}
	if _, _, ok := tree.Max(); ok {
		t.Errorf("empty tree has a maximum")
	}
	if _, ok := tree.Floor(1); ok {
		t.Errorf("empty tree has a floor")
	}
	if _, ok := tree.Ceiling(1); ok {
		t.Errorf("empty tree has a ceiling")
	}
	if tree.Delete(1) {
		t.Errorf("empty tree deleted key %v", 1)
	}
	if _, _, ok := tree.DeleteMin(); ok {
		t.Errorf("empty tree deleted a minimum")
	}
	if _, _, ok := tree.DeleteMax(); ok {
		t.Errorf("empty tree deleted a maximum")
	}
	if _, _, ok := tree.Select(0); ok {
		t.Errorf("empty tree selected rank 0")
	}
	if _, _, ok := tree.InOrder()(); ok {
		t.Errorf("empty tree iterated")
	}
	if tree.Corrupt() {
		t.Errorf("empty tree is corrupt")
	}
}

func TestBST_Overwrite(t *testing.T) {
	tree := New[int, string, uint]()
	if !tree.Insert(1, "Hello") {
		t.Errorf("failed to insert key %v", 1)
	}
	if tree.Insert(1, "World") {
		t.Errorf("inserting an existing key created a node")
	}
	if v, ok := tree.Get(1); !ok || v != "World" {
		t.Errorf("value is %q, want %q", v, "World")
	}
	if tree.Size() != 1 || tree.root.sz != 1 {
		t.Errorf("tree size is %d, want %d", tree.Size(), 1)
	}
}

func TestBST_Flat(t *testing.T) {
	tree := New[int, int, uint]()
	for i := range 5 {
		tree.Insert(i, i+1)
		if v, _ := tree.Get(i); v != i+1 {
			t.Errorf("value of %d is %d, want %d", i, v, i+1)
		}
	}
	if tree.root.l != tree.nilPtr {
		t.Errorf("ascending inserts grew a left child")
	}
	if tree.Height() != 5 {
		t.Errorf("tree height is %d, want %d", tree.Height(), 5)
	}
}

func TestBST_DeleteMinMax(t *testing.T) {
	tree := New[int, int, uint]()
	for i := range 5 {
		tree.Insert(i, i+1)
	}
	for i := range 5 {
		if k, v, ok := tree.Max(); !ok || k != 4-i || v != 5-i {
			t.Errorf("max is %d %d, want %d %d", k, v, 4-i, 5-i)
		}
		if k, _, _ := tree.DeleteMax(); k != 4-i || tree.Contains(k) {
			t.Errorf("failed to delete max %d", 4-i)
		}
		if tree.Size() != uint(4-i) {
			t.Errorf("tree size is %d, want %d", tree.Size(), 4-i)
		}
	}
	for i := range 5 {
		tree.Insert(i, i+1)
	}
	for i := range 5 {
		if k, v, ok := tree.Min(); !ok || k != i || v != i+1 {
			t.Errorf("min is %d %d, want %d %d", k, v, i, i+1)
		}
		if k, _, _ := tree.DeleteMin(); k != i || tree.Contains(k) {
			t.Errorf("failed to delete min %d", i)
		}
		if tree.Size() != uint(4-i) {
			t.Errorf("tree size is %d, want %d", tree.Size(), 4-i)
		}
	}
}

func TestBST_Delete(t *testing.T) {
	tree := New[int, int, uint]()
	for i, k := range []int{5, 2, 1, 3, 6} {
		tree.Insert(k, i+1)
	}
	for i, k := range []int{1, 2, 3, 6, 5} {
		if !tree.Delete(k) {
			t.Errorf("failed to delete key %v", k)
		}
		if tree.Delete(k) {
			t.Errorf("can delete a second time key %v", k)
		}
		if tree.Contains(k) {
			t.Errorf("tree still has key %v", k)
		}
		if tree.Size() != uint(4-i) {
			t.Errorf("tree size is %d, want %d", tree.Size(), 4-i)
		}
		if tree.Corrupt() {
			t.Errorf("tree is corrupt after deleting %v", k)
		}
	}
}

func TestBST_DeleteTwoChildren(t *testing.T) {
	tree := New[int, string, uint]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 65} {
		tree.Insert(k, "")
	}
	tree.Delete(50)
	if tree.root.k != 60 {
		t.Errorf("root is %d, want successor %d", tree.root.k, 60)
	}
	if tree.root.r.l.k != 65 {
		t.Errorf("successor's right child wasn't promoted")
	}
	if tree.root.l.k != 30 || tree.root.sz != 7 || tree.root.r.sz != 3 {
		t.Errorf("wrong shape after deleting root: %v", tree)
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestBST_DrainDescending(t *testing.T) {
	tree := New[int, int, uint]()
	for i, k := range []int{5, 2, 1, 3, 6} {
		tree.Insert(k, i+1)
	}
	want := [][2]int{{6, 5}, {5, 1}, {3, 4}, {2, 2}, {1, 3}}
	f := tree.DrainDescending()
	for _, w := range want {
		if k, v, ok := f(); !ok || k != w[0] || v != w[1] {
			t.Errorf("drain gave %d %d, want %d %d", k, v, w[0], w[1])
		}
	}
	if _, _, ok := f(); ok {
		t.Errorf("drain isn't exhausted")
	}
	if !tree.IsEmpty() {
		t.Errorf("tree isn't empty after drain")
	}
}

func TestBST_DrainBreak(t *testing.T) {
	tree := sample()
	var ks []int
	for k := range Drain[int, string](tree, true) {
		if ks = append(ks, k); len(ks) == 2 {
			break
		}
	}
	if !slices.Equal(ks, []int{1, 2}) {
		t.Errorf("drain gave %v", ks)
	}
	if tree.Size() != 3 || tree.Contains(1) || tree.Contains(2) {
		t.Errorf("tree size is %d, want %d", tree.Size(), 3)
	}
}

func TestBST_FloorCeiling(t *testing.T) {
	tree := New[int, int, uint]()
	for i, k := range []int{5, 2, 1, 3, 10} {
		tree.Insert(k, i+1)
	}
	floors := map[int][2]int{0: {0, 0}, 1: {1, 1}, 2: {2, 1}, 4: {3, 1}, 8: {5, 1}, 11: {10, 1}}
	for q, w := range floors {
		if k, ok := tree.Floor(q); ok != (w[1] == 1) || ok && k != w[0] {
			t.Errorf("floor(%d) is %d %v, want %d", q, k, ok, w[0])
		}
	}
	ceils := map[int][2]int{0: {1, 1}, 3: {3, 1}, 4: {5, 1}, 6: {10, 1}, 10: {10, 1}, 11: {0, 0}}
	for q, w := range ceils {
		if k, ok := tree.Ceiling(q); ok != (w[1] == 1) || ok && k != w[0] {
			t.Errorf("ceiling(%d) is %d %v, want %d", q, k, ok, w[0])
		}
	}
}

func TestBST_RankSelect(t *testing.T) {
	tree := New[int, int, uint16]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		tree.Insert(b, -b)
		content[b] = struct{}{}
	}
	sorted := make([]int, 0, len(content))
	for k := range content {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	for i, k := range sorted {
		if r := tree.Rank(k); r != uint(i) {
			t.Errorf("rank of %d is %d, want %d", k, r, i)
		}
		if s, v, ok := tree.Select(uint(i)); !ok || s != k || v != -k {
			t.Errorf("select(%d) is %d, want %d", i, s, k)
		}
	}
	if _, _, ok := tree.Select(uint(len(sorted))); ok {
		t.Errorf("select out of range succeeded")
	}
	for range 100 {
		lo, hi := rg.Intn(tAddValRange), rg.Intn(tAddValRange)
		want := 0
		for _, k := range sorted {
			if lo <= k && k <= hi {
				want++
			}
		}
		if c := tree.Count(lo, hi); c != uint(want) {
			t.Errorf("count(%d, %d) is %d, want %d", lo, hi, c, want)
		}
		var got []int
		for k := range tree.Range(lo, hi) {
			got = append(got, k)
		}
		if len(got) != want || !slices.IsSorted(got) {
			t.Errorf("range(%d, %d) gave %d keys, want %d", lo, hi, len(got), want)
		}
	}
}

func TestBST_AddDel(t *testing.T) {
	tree := New[int, int, uint16]()
	content := make(map[int]int)
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
	}
	for i, b := range a {
		_, in := content[b]
		if c := tree.Insert(b, i); c == in {
			t.Errorf("insert of key %v reported %v", b, c)
		}
		content[b] = i
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.Delete(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		delete(content, a[i])
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k, v := range content {
		if w, ok := tree.Get(k); !ok || w != v {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

func TestBST_InOrder(t *testing.T) {
	tree := New[int, int, uint16]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		tree.Insert(b, b)
		content[b] = struct{}{}
	}
	var s []int
	f := tree.InOrder()
	for k, _, ok := f(); ok; k, _, ok = f() {
		s = append(s, k)
	}
	if int(tree.Size()) != len(s) || len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
	var r []int
	for k := range tree.Backward() {
		r = append(r, k)
	}
	if slices.Reverse(r); !slices.Equal(s, r) {
		t.Errorf("backward isn't the reverse of in-order")
	}
	if !slices.Equal(Keys[int, int](tree), s) {
		t.Errorf("keys aren't the in-order sequence")
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("read only iteration changed the size")
	}
}

func TestBST_NewFunc(t *testing.T) {
	tree := NewFunc[string, int, uint](func(a, b string) int {
		return strings.Compare(b, a)
	})
	for i, k := range []string{"b", "d", "a", "c"} {
		tree.Insert(k, i)
	}
	if k, _, _ := tree.Min(); k != "d" {
		t.Errorf("min is %q, want %q", k, "d")
	}
	if k, ok := tree.Floor("bb"); !ok || k != "c" {
		t.Errorf("floor is %q, want %q", k, "c")
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestFrom(t *testing.T) {
	ks := []int{1, 3, 5, 7, 9, 11, 13}
	vs := []string{"a", "b", "c", "d", "e", "f", "g"}
	tree := From[int, string, uint](ks, vs)
	if tree.Size() != 7 || tree.Height() != 3 || tree.Corrupt() {
		t.Errorf("bad tree, size %d height %d", tree.Size(), tree.Height())
	}
	if v, _ := tree.Get(9); v != "e" {
		t.Errorf("value of 9 is %q", v)
	}
	defer func() {
		if e, ok := recover().(UnsortedError[int]); !ok || e.Index != 2 {
			t.Errorf("recovered %v", e)
		}
	}()
	From[int, string, uint]([]int{1, 2, 2}, []string{"", "", ""})
}

func TestBST_Corrupt(t *testing.T) {
	tree := sample()
	tree.root.l.sz++
	if !tree.Corrupt() {
		t.Errorf("wrong size wasn't detected")
	}
	tree = sample()
	tree.root.l.r.k = 6
	if !tree.Corrupt() {
		t.Errorf("misplaced key wasn't detected")
	}
}

func TestBST_Print(t *testing.T) {
	s := sample().String()
	for _, want := range []string{"[5] 5: a", "2: b", "8: c", "1: d", "3: e"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q missing from\n%s", want, s)
		}
	}
	var sb strings.Builder
	if err := New[int, int, uint]().Print(&sb); err != nil || !strings.Contains(sb.String(), "<empty>") {
		t.Errorf("empty tree printed %q", sb.String())
	}
}

func TestBST_Clear(t *testing.T) {
	tree := sample()
	tree.Clear()
	if !tree.IsEmpty() || tree.Size() != 0 || tree.Height() != 0 || tree.Corrupt() {
		t.Errorf("clear left size %d", tree.Size())
	}
	if !tree.Insert(4, "f") || tree.Size() != 1 {
		t.Errorf("tree unusable after clear")
	}
	f := tree.InOrderR()
	if k, v, ok := f(); !ok || k != 4 || v != "f" {
		t.Errorf("in-order gave %v %v %v", k, v, ok)
	}
	if _, _, ok := f(); ok {
		t.Errorf("in-order didn't stop")
	}
}
