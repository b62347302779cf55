package nbt

// GetChild returns the child named name, or nil if absent. Any other
// receiver kind logs a diagnostic and returns nil.
func (t *Tag) GetChild(name string) *Tag {
	if !t.checkKind(Compound, "GetChild") {
		return nil
	}
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.children[i]
}

// Set inserts or replaces the entry named name. If name already
// exists, the old value is released and the new value is appended at
// the end — the replaced key's relative insertion order is not
// preserved, matching §4.B's defined (if surprising) behavior. The new
// value is parented (retained) by t.
func (t *Tag) Set(name string, value *Tag) {
	if !t.checkKind(Compound, "Set") {
		return
	}
	if value == nil {
		diagWarn("nbt: Compound.Set with nil value", "name", name)
		return
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if i, ok := t.index[name]; ok {
		old := t.children[i]
		t.children = append(t.children[:i], t.children[i+1:]...)
		t.names = append(t.names[:i], t.names[i+1:]...)
		t.reindexFrom(i)
		old.Release()
	}

	t.adopt(value)
	t.index[name] = len(t.children)
	t.children = append(t.children, value)
	t.names = append(t.names, name)
}

// Delete removes and releases the entry named name, if present.
func (t *Tag) Delete(name string) {
	if !t.checkKind(Compound, "Delete") {
		return
	}
	i, ok := t.index[name]
	if !ok {
		return
	}
	old := t.children[i]
	t.children = append(t.children[:i], t.children[i+1:]...)
	t.names = append(t.names[:i], t.names[i+1:]...)
	delete(t.index, name)
	t.reindexFrom(i)
	old.Release()
}

// reindexFrom rebuilds the name->position index for positions at or
// after i, after a removal has shifted everything past it down by one.
func (t *Tag) reindexFrom(i int) {
	for j := i; j < len(t.names); j++ {
		t.index[t.names[j]] = j
	}
}

// FindChain walks through nested Compounds following names in order,
// returning nil at the first missing entry or the first non-Compound
// tag encountered before the chain is exhausted.
func (t *Tag) FindChain(names ...string) *Tag {
	cur := t
	for _, name := range names {
		if cur.Kind() != Compound {
			return nil
		}
		cur = cur.GetChild(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// CompoundIterator walks a Compound's (name, value) entries in
// insertion order.
type CompoundIterator struct {
	c   *Tag
	pos int
}

// EntryIterator returns an iterator over a Compound's entries, in insertion order.
func (t *Tag) EntryIterator() *CompoundIterator {
	if !t.checkKind(Compound, "EntryIterator") {
		return &CompoundIterator{}
	}
	return &CompoundIterator{c: t}
}

// Next returns the next (name, value) pair, or "", nil, false at the end.
func (it *CompoundIterator) Next() (string, *Tag, bool) {
	if it.c == nil || it.pos >= len(it.c.children) {
		return "", nil, false
	}
	name := it.c.names[it.pos]
	val := it.c.children[it.pos]
	it.pos++
	return name, val, true
}
