package nbt

// Tag is a tagged value with exactly one of the eleven kinds in §3.1.
// Once constructed, a Tag's Kind never changes.
//
// Ownership follows §3.1's floating-reference model: a freshly
// constructed Tag starts at refcount 0. The first Retain, or the first
// time it is parented into a List or Compound, takes ownership; the
// owner (or the tree it was parented into) is responsible for calling
// Release exactly once for every Retain and every parenting. Release
// at refcount 0 frees the tag and, for List/Compound, releases every
// child once (recursively).
//
// A Tag must not be used from multiple goroutines without external
// synchronization (§5: single-threaded per open handle).
type Tag struct {
	kind  Kind
	refs  int32
	freed bool

	i64 int64
	f32 float32
	f64 float64

	raw []byte // ByteArray payload, or String's UTF-8 bytes

	elemKind Kind
	children []*Tag

	names []string
	index map[string]int
}

func newTag(k Kind) *Tag {
	return &Tag{kind: k}
}

// NewByte constructs a floating-reference Byte tag.
func NewByte(v int8) *Tag { t := newTag(Byte); t.i64 = int64(v); return t }

// NewShort constructs a floating-reference Short tag.
func NewShort(v int16) *Tag { t := newTag(Short); t.i64 = int64(v); return t }

// NewInt constructs a floating-reference Int tag.
func NewInt(v int32) *Tag { t := newTag(Int); t.i64 = int64(v); return t }

// NewLong constructs a floating-reference Long tag.
func NewLong(v int64) *Tag { t := newTag(Long); t.i64 = v; return t }

// NewFloat constructs a floating-reference Float tag.
func NewFloat(v float32) *Tag { t := newTag(Float); t.f32 = v; return t }

// NewDouble constructs a floating-reference Double tag.
func NewDouble(v float64) *Tag { t := newTag(Double); t.f64 = v; return t }

// NewByteArray constructs a floating-reference ByteArray tag, copying b.
func NewByteArray(b []byte) *Tag {
	t := newTag(ByteArray)
	t.raw = append([]byte(nil), b...)
	return t
}

// NewString constructs a floating-reference String tag.
func NewString(s string) *Tag {
	t := newTag(String)
	t.raw = []byte(s)
	return t
}

// NewList constructs a floating-reference List tag. If children is
// non-empty, the list's element-kind is taken from the first child
// (§4.B "the multi-arg factory does this"); all children must share
// that kind or NewList panics, since this is invoked with a literal
// slice under the caller's control, not parsed wire data. Each child is
// parented (retained) by the new list. Pass no children to get an
// empty list whose element-kind defaults to End until SetElementKind
// or Insert fixes it.
func NewList(children ...*Tag) *Tag {
	t := newTag(List)
	t.elemKind = End
	if len(children) > 0 {
		t.elemKind = children[0].Kind()
	}
	for _, c := range children {
		if c.Kind() != t.elemKind {
			panic("nbt: NewList: children must share a single kind")
		}
		t.adopt(c)
		t.children = append(t.children, c)
	}
	return t
}

// NewCompound constructs a floating-reference Compound tag from name/value
// pairs. Each value is parented (retained) by the new compound. Duplicate
// names keep only the last occurrence, matching Set's replace semantics.
func NewCompound(pairs ...CompoundEntry) *Tag {
	t := newTag(Compound)
	t.index = make(map[string]int)
	for _, p := range pairs {
		t.Set(p.Name, p.Value)
	}
	return t
}

// CompoundEntry is a (name, value) pair used by NewCompound.
type CompoundEntry struct {
	Name  string
	Value *Tag
}

// E is shorthand for constructing a CompoundEntry.
func E(name string, value *Tag) CompoundEntry {
	return CompoundEntry{Name: name, Value: value}
}

// Kind returns t's kind. A nil Tag reports End and logs a diagnostic.
func (t *Tag) Kind() Kind {
	if t == nil {
		diagWarn("nbt: Kind called on nil Tag")
		return End
	}
	return t.kind
}

// Retain increments t's reference count, taking a share of ownership.
// Retaining a nil tag is a no-op.
func (t *Tag) Retain() *Tag {
	if t == nil {
		return nil
	}
	t.refs++
	return t
}

// Release decrements t's reference count. At zero, t is freed: its
// children (if any) are each released once, recursively. Releasing a
// nil tag, or a tag already freed, is a no-op diagnostic rather than a
// fatal error, matching §7's "contract violations... no-op return".
func (t *Tag) Release() {
	if t == nil {
		return
	}
	if t.freed {
		diagWarn("nbt: Release called on already-freed Tag", "kind", t.kind)
		return
	}
	t.refs--
	if t.refs > 0 {
		return
	}
	t.free()
}

func (t *Tag) free() {
	t.freed = true
	for _, c := range t.children {
		c.Release()
	}
	t.children = nil
	t.raw = nil
	t.names = nil
	t.index = nil
}

// adopt takes a share of ownership of child on behalf of t, mirroring
// the "parenting" step in §3.1: the first parenting (or Retain) claims
// the child's floating reference.
func (t *Tag) adopt(child *Tag) {
	child.Retain()
}

// refCount exposes the current reference count; used only by tests
// verifying the universal invariant in §8.4.
func (t *Tag) refCount() int32 {
	if t == nil {
		return 0
	}
	return t.refs
}

func (t *Tag) checkKind(want Kind, op string) bool {
	if t == nil {
		diagWarn("nbt: "+op+" called on nil Tag")
		return false
	}
	if t.kind != want {
		diagWarn("nbt: "+op+" called on wrong kind", "want", want, "got", t.kind)
		return false
	}
	return true
}

// GetInt64 reads the widened integer accessor (§4.B). Valid for Byte,
// Short, Int, Long; any other kind logs a diagnostic and returns 0.
func (t *Tag) GetInt64() int64 {
	if t == nil {
		diagWarn("nbt: GetInt64 called on nil Tag")
		return 0
	}
	if !t.kind.isInteger() {
		diagWarn("nbt: GetInt64 called on non-integer kind", "kind", t.kind)
		return 0
	}
	return t.i64
}

// SetInt64 writes the widened integer accessor. Setting into a smaller
// kind truncates by two's-complement wrap, matching §3.1. Any non-integer
// kind logs a diagnostic and is a no-op.
func (t *Tag) SetInt64(v int64) {
	if t == nil {
		diagWarn("nbt: SetInt64 called on nil Tag")
		return
	}
	switch t.kind {
	case Byte:
		t.i64 = int64(int8(v))
	case Short:
		t.i64 = int64(int16(v))
	case Int:
		t.i64 = int64(int32(v))
	case Long:
		t.i64 = v
	default:
		diagWarn("nbt: SetInt64 called on non-integer kind", "kind", t.kind)
	}
}

// GetFloat64 reads the widened float accessor. Valid for Float, Double;
// any other kind logs a diagnostic and returns 0.
func (t *Tag) GetFloat64() float64 {
	if t == nil {
		diagWarn("nbt: GetFloat64 called on nil Tag")
		return 0
	}
	switch t.kind {
	case Float:
		return float64(t.f32)
	case Double:
		return t.f64
	default:
		diagWarn("nbt: GetFloat64 called on non-float kind", "kind", t.kind)
		return 0
	}
}

// SetFloat64 writes the widened float accessor. Setting a Float
// truncates v to float32 precision. Any non-float kind logs a
// diagnostic and is a no-op.
func (t *Tag) SetFloat64(v float64) {
	if t == nil {
		diagWarn("nbt: SetFloat64 called on nil Tag")
		return
	}
	switch t.kind {
	case Float:
		t.f32 = float32(v)
	case Double:
		t.f64 = v
	default:
		diagWarn("nbt: SetFloat64 called on non-float kind", "kind", t.kind)
	}
}

// Len returns a ByteArray's byte count, or a List's or Compound's number
// of children; any other kind logs a diagnostic and returns 0.
func (t *Tag) Len() int {
	if t == nil {
		diagWarn("nbt: Len called on nil Tag")
		return 0
	}
	switch t.kind {
	case ByteArray:
		return len(t.raw)
	case List:
		return len(t.children)
	case Compound:
		return len(t.children)
	default:
		diagWarn("nbt: Len called on kind without a length", "kind", t.kind)
		return 0
	}
}

// ByteArrayData borrows the ByteArray's payload; the borrow is valid
// until the next mutation (§9 "Borrowed views"). Any other kind logs a
// diagnostic and returns nil.
func (t *Tag) ByteArrayData() []byte {
	if !t.checkKind(ByteArray, "ByteArrayData") {
		return nil
	}
	return t.raw
}

// SetByteArray replaces a ByteArray tag's payload, copying b.
func (t *Tag) SetByteArray(b []byte) {
	if !t.checkKind(ByteArray, "SetByteArray") {
		return
	}
	t.raw = append([]byte(nil), b...)
}

// StringValue borrows the String tag's value. Any other kind logs a
// diagnostic and returns "".
func (t *Tag) StringValue() string {
	if !t.checkKind(String, "StringValue") {
		return ""
	}
	return string(t.raw)
}

// SetString replaces a String tag's value.
func (t *Tag) SetString(s string) {
	if !t.checkKind(String, "SetString") {
		return
	}
	t.raw = []byte(s)
}
