// Package endian provides the big-endian integer codec that every wire
// format in this module shares: the NBT tag payloads, the region sector
// index, and the region timestamp table are all big-endian.
//
// It is a thin façade over encoding/binary, in the style of
// arloliu/mebo's endian package, rather than a reimplementation: the
// fixed-width helpers (Uint16/Uint32/Uint64) just forward to
// binary.BigEndian. The one piece of genuine logic is the 24-bit sector
// offset used by the region location table, which encoding/binary has
// no native width for.
package endian

import "encoding/binary"

// Uint16 decodes a big-endian 16-bit unsigned integer from the first 2 bytes of b.
func Uint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// PutUint16 encodes v as big-endian into the first 2 bytes of b.
func PutUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// Uint32 decodes a big-endian 32-bit unsigned integer from the first 4 bytes of b.
func Uint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// PutUint32 encodes v as big-endian into the first 4 bytes of b.
func PutUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// Uint64 decodes a big-endian 64-bit unsigned integer from the first 8 bytes of b.
func Uint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// PutUint64 encodes v as big-endian into the first 8 bytes of b.
func PutUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// Uint24 decodes a big-endian 24-bit unsigned integer from the first 3 bytes of b.
// Used for the region location table's sector-offset field.
func Uint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// PutUint24 encodes the low 24 bits of v as big-endian into the first 3 bytes of b.
func PutUint24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// Buffer is a growable byte buffer with the append/finalize contract
// component A specifies: repeated Append calls accumulate bytes, and
// Finalize hands the caller ownership of the underlying slice. The NBT
// encoder builds its output with it.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer with size hinted by capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Append copies p onto the end of the buffer.
func (b *Buffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(v byte) {
	b.buf = append(b.buf, v)
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Finalize returns the accumulated bytes. The Buffer must not be reused afterward.
func (b *Buffer) Finalize() []byte {
	return b.buf
}
