package nbt

import "fmt"

// Kind identifies the payload type carried by a Tag. It matches the
// tag-type byte on the wire (§4.C) exactly, so Kind(b) for a byte read
// off the wire is always a valid conversion — callers must still check
// it against the known range before trusting it.
type Kind byte

// The eleven tag kinds this module understands. End is a stream-only
// sentinel (§3.1) and never appears as a standalone tag in a
// user-visible tree; tag-type bytes outside 0-10 are rejected by the
// codec as ErrUnknownKind rather than modeled here (this format
// predates the later IntArray/LongArray kinds some NBT dialects add).
const (
	End Kind = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	ByteArray
	String
	List
	Compound
)

// numKinds is the number of kinds this module knows how to decode (0-10 inclusive).
const numKinds = Compound + 1

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("TAG_Unknown(0x%02x)", byte(k))
	}
	return fmt.Sprintf("%s (0x%02x)", name, byte(k))
}

var kindNames = map[Kind]string{
	End:       "TAG_End",
	Byte:      "TAG_Byte",
	Short:     "TAG_Short",
	Int:       "TAG_Int",
	Long:      "TAG_Long",
	Float:     "TAG_Float",
	Double:    "TAG_Double",
	ByteArray: "TAG_Byte_Array",
	String:    "TAG_String",
	List:      "TAG_List",
	Compound:  "TAG_Compound",
}

// isInteger reports whether k is one of the integer kinds sharing the
// widened int64 accessor (§4.A / §4.B "integer accessor").
func (k Kind) isInteger() bool {
	switch k {
	case Byte, Short, Int, Long:
		return true
	default:
		return false
	}
}

// isFloat reports whether k is one of the float kinds sharing the
// widened float64 accessor.
func (k Kind) isFloat() bool {
	switch k {
	case Float, Double:
		return true
	default:
		return false
	}
}

func validKind(k Kind) bool {
	return k < numKinds
}
