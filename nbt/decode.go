package nbt

import (
	"fmt"

	"github.com/OCharnyshevich/anvilnbt/internal/compress"
	"github.com/OCharnyshevich/anvilnbt/internal/endian"
)

// Parse decodes bytes into a Document (§4.C). If bytes begins with the
// gzip magic (0x1F 0x8B) it is inflated first; otherwise it is decoded
// as a raw (unframed) NBT stream. The top-level tag must be a named
// Compound; its name becomes the document's root name.
func Parse(data []byte) (*Document, error) {
	if compress.LooksLikeGzip(data) {
		inflated, err := compress.Inflate(data, compress.Gzip)
		if err != nil {
			return nil, fmt.Errorf("nbt: parse: %w", ErrCorruptStream)
		}
		data = inflated
	}

	dec := &decoder{buf: data}
	kind, name, err := dec.tagHeader()
	if err != nil {
		return nil, err
	}
	if kind != Compound {
		return nil, fmt.Errorf("nbt: parse: root tag must be Compound, got %s: %w", kind, ErrMalformed)
	}

	root, err := dec.payload(Compound)
	if err != nil {
		root.Release()
		return nil, err
	}
	root.Retain()

	return &Document{rootName: name, root: root}, nil
}

type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) remaining() int { return len(d.buf) - d.pos }

func (d *decoder) need(n int) error {
	if d.remaining() < n {
		return fmt.Errorf("nbt: decode: need %d bytes, have %d: %w", n, d.remaining(), ErrTruncated)
	}
	return nil
}

func (d *decoder) readByte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if err := d.need(n); err != nil {
		return nil, err
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) readUint16() (uint16, error) {
	b, err := d.readBytes(2)
	if err != nil {
		return 0, err
	}
	return endian.Uint16(b), nil
}

func (d *decoder) readInt32() (int32, error) {
	b, err := d.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(endian.Uint32(b)), nil
}

func (d *decoder) readInt64() (int64, error) {
	b, err := d.readBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(endian.Uint64(b)), nil
}

// tagHeader reads a named-tag header: kind byte, then (for non-End
// kinds) a name. For kind == End the name is absent.
func (d *decoder) tagHeader() (Kind, string, error) {
	kb, err := d.readByte()
	if err != nil {
		return End, "", err
	}
	kind := Kind(kb)
	if kind == End {
		return End, "", nil
	}
	if !validKind(kind) {
		return End, "", fmt.Errorf("nbt: decode: tag kind byte %d: %w", kb, ErrUnknownKind)
	}

	nameLen, err := d.readUint16()
	if err != nil {
		return End, "", err
	}
	var name string
	if nameLen > 0 {
		nb, err := d.readBytes(int(nameLen))
		if err != nil {
			return End, "", err
		}
		name = string(nb)
	}
	return kind, name, nil
}

// payload decodes the payload of kind k (the part after any tag
// header), returning a floating-reference Tag.
func (d *decoder) payload(k Kind) (*Tag, error) {
	switch k {
	case Byte:
		v, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return NewByte(int8(v)), nil

	case Short:
		b, err := d.readBytes(2)
		if err != nil {
			return nil, err
		}
		return NewShort(int16(endian.Uint16(b))), nil

	case Int:
		v, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		return NewInt(v), nil

	case Long:
		v, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		return NewLong(v), nil

	case Float:
		v, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		return NewFloat(int32BitsToFloat32(v)), nil

	case Double:
		v, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		return NewDouble(int64BitsToFloat64(v)), nil

	case ByteArray:
		n, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: decode: negative ByteArray length %d: %w", n, ErrMalformed)
		}
		b, err := d.readBytes(int(n))
		if err != nil {
			return nil, err
		}
		return NewByteArray(b), nil

	case String:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}
		var s string
		if n > 0 {
			b, err := d.readBytes(int(n))
			if err != nil {
				return nil, err
			}
			s = string(b)
		}
		return NewString(s), nil

	case List:
		return d.listPayload()

	case Compound:
		return d.compoundPayload()

	default:
		return nil, fmt.Errorf("nbt: decode: tag kind %d: %w", k, ErrUnknownKind)
	}
}

func (d *decoder) listPayload() (*Tag, error) {
	elemKindByte, err := d.readByte()
	if err != nil {
		return nil, err
	}
	elemKind := Kind(elemKindByte)
	if !validKind(elemKind) {
		return nil, fmt.Errorf("nbt: decode: list element kind byte %d: %w", elemKindByte, ErrUnknownKind)
	}

	n, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("nbt: decode: negative List length %d: %w", n, ErrMalformed)
	}

	list := NewList()
	list.SetElementKind(elemKind)

	for i := int32(0); i < n; i++ {
		var child *Tag
		var err error
		if elemKind == Compound {
			child, err = d.compoundPayload()
		} else {
			child, err = d.payload(elemKind)
		}
		if err != nil {
			list.Release()
			return nil, err
		}
		list.Insert(list.Len(), child)
	}
	return list, nil
}

func (d *decoder) compoundPayload() (*Tag, error) {
	c := NewCompound()
	for {
		kind, name, err := d.tagHeader()
		if err != nil {
			c.Release()
			return nil, err
		}
		if kind == End {
			return c, nil
		}
		child, err := d.payload(kind)
		if err != nil {
			c.Release()
			return nil, err
		}
		c.Set(name, child)
	}
}
