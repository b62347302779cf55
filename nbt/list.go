package nbt

// ElementKind returns a List's fixed element kind (End if never set).
// Any other kind logs a diagnostic and returns End.
func (t *Tag) ElementKind() Kind {
	if !t.checkKind(List, "ElementKind") {
		return End
	}
	return t.elemKind
}

// SetElementKind fixes a List's element kind. Per §4.B this only
// succeeds on an empty list; calling it on a non-empty list (with a
// different kind) is a non-fatal contract violation and logs a
// diagnostic without changing anything.
func (t *Tag) SetElementKind(k Kind) {
	if !t.checkKind(List, "SetElementKind") {
		return
	}
	if len(t.children) > 0 && t.elemKind != k {
		diagWarn("nbt: SetElementKind on non-empty list", "have", t.elemKind, "want", k)
		return
	}
	t.elemKind = k
}

// Get borrows the i'th element of a List. Out-of-range i, or a non-List
// receiver, logs a diagnostic and returns nil.
func (t *Tag) Get(i int) *Tag {
	if !t.checkKind(List, "Get") {
		return nil
	}
	if i < 0 || i >= len(t.children) {
		diagWarn("nbt: List.Get index out of range", "index", i, "len", len(t.children))
		return nil
	}
	return t.children[i]
}

// Insert parents child into the list at position i, clamped to
// [0, Len()] (so an out-of-range i simply appends, §9 "List insert
// beyond length"). child's kind must match the list's element-kind; if
// the list's element-kind is still unset (End, never populated), it is
// taken from child, mirroring the factory-construction rule in §4.B.
// A kind mismatch logs a diagnostic and leaves the list unchanged.
func (t *Tag) Insert(i int, child *Tag) {
	if !t.checkKind(List, "Insert") {
		return
	}
	if child == nil {
		diagWarn("nbt: List.Insert with nil child")
		return
	}
	if t.elemKind == End && len(t.children) == 0 {
		t.elemKind = child.Kind()
	}
	if child.Kind() != t.elemKind {
		diagWarn("nbt: List.Insert kind mismatch", "list_kind", t.elemKind, "child_kind", child.Kind())
		return
	}

	t.adopt(child)

	if i < 0 {
		i = 0
	}
	if i >= len(t.children) {
		t.children = append(t.children, child)
		return
	}
	t.children = append(t.children, nil)
	copy(t.children[i+1:], t.children[i:])
	t.children[i] = child
}

// DeleteAt removes and releases the i'th element. Out-of-range i is a
// no-op diagnostic. Named DeleteAt (not Delete) to avoid colliding with
// Compound's Delete(name string) on the shared *Tag receiver, the same
// reason Compound's accessor is GetChild rather than Get.
func (t *Tag) DeleteAt(i int) {
	if !t.checkKind(List, "DeleteAt") {
		return
	}
	if i < 0 || i >= len(t.children) {
		diagWarn("nbt: List.DeleteAt index out of range", "index", i, "len", len(t.children))
		return
	}
	child := t.children[i]
	t.children = append(t.children[:i], t.children[i+1:]...)
	child.Release()
}

// Reverse reverses the list's element order in place.
func (t *Tag) Reverse() {
	if !t.checkKind(List, "Reverse") {
		return
	}
	for i, j := 0, len(t.children)-1; i < j; i, j = i+1, j-1 {
		t.children[i], t.children[j] = t.children[j], t.children[i]
	}
}

// ListIterator walks a List's elements in order.
type ListIterator struct {
	list *Tag
	pos  int
}

// Iterator returns an iterator over a List's children, in order. The
// iterator reads the list's current children on each Next, so a
// mutation of the list during iteration is seen by it; per §3.1,
// iteration order is stable only between non-mutating calls.
func (t *Tag) Iterator() *ListIterator {
	if !t.checkKind(List, "Iterator") {
		return &ListIterator{}
	}
	return &ListIterator{list: t}
}

// Next returns the next child by shared reference, or nil, false at the
// end of the list.
func (it *ListIterator) Next() (*Tag, bool) {
	if it.list == nil || it.pos >= len(it.list.children) {
		return nil, false
	}
	child := it.list.children[it.pos]
	it.pos++
	return child, true
}
