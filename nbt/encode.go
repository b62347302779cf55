package nbt

import (
	"github.com/OCharnyshevich/anvilnbt/internal/endian"
)

// Write serializes a Document into a raw (unframed) NBT byte stream
// (§4.C "Writing"). Callers that want the always-gzip-framed on-disk
// form should use WriteFile instead.
func Write(doc *Document) []byte {
	buf := endian.NewBuffer(256)
	writeTagHeader(buf, Compound, doc.rootName)
	writeCompoundPayload(buf, doc.root)
	return buf.Finalize()
}

func writeTagHeader(buf *endian.Buffer, kind Kind, name string) {
	buf.AppendByte(byte(kind))
	writeName(buf, name)
}

func writeName(buf *endian.Buffer, name string) {
	nb := []byte(name)
	var lb [2]byte
	endian.PutUint16(lb[:], uint16(len(nb)))
	buf.Append(lb[:])
	buf.Append(nb)
}

func writePayload(buf *endian.Buffer, t *Tag) {
	switch t.kind {
	case Byte:
		buf.AppendByte(byte(int8(t.i64)))

	case Short:
		var b [2]byte
		endian.PutUint16(b[:], uint16(int16(t.i64)))
		buf.Append(b[:])

	case Int:
		var b [4]byte
		endian.PutUint32(b[:], uint32(int32(t.i64)))
		buf.Append(b[:])

	case Long:
		var b [8]byte
		endian.PutUint64(b[:], uint64(t.i64))
		buf.Append(b[:])

	case Float:
		var b [4]byte
		endian.PutUint32(b[:], uint32(float32ToInt32Bits(t.f32)))
		buf.Append(b[:])

	case Double:
		var b [8]byte
		endian.PutUint64(b[:], uint64(float64ToInt64Bits(t.f64)))
		buf.Append(b[:])

	case ByteArray:
		var b [4]byte
		endian.PutUint32(b[:], uint32(len(t.raw)))
		buf.Append(b[:])
		buf.Append(t.raw)

	case String:
		writeName(buf, string(t.raw))

	case List:
		writeListPayload(buf, t)

	case Compound:
		writeCompoundPayload(buf, t)
	}
}

// writeListPayload writes a List's payload: element-kind byte, i32
// length, then `length` payloads of element-kind with no per-element
// headers. A list whose element-kind was never set defaults to End on
// the wire, per §4.C "Writing".
func writeListPayload(buf *endian.Buffer, t *Tag) {
	elemKind := t.elemKind
	buf.AppendByte(byte(elemKind))

	var lb [4]byte
	endian.PutUint32(lb[:], uint32(len(t.children)))
	buf.Append(lb[:])

	for _, c := range t.children {
		writePayload(buf, c)
	}
}

// writeCompoundPayload writes a Compound's payload: a named tag per
// entry, terminated by a named End tag.
func writeCompoundPayload(buf *endian.Buffer, t *Tag) {
	for i, name := range t.names {
		child := t.children[i]
		writeTagHeader(buf, child.kind, name)
		writePayload(buf, child)
	}
	buf.AppendByte(byte(End))
}
