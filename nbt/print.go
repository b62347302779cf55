package nbt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes t's compact textual form to sink: scalars literal,
// strings quoted, Lists as [v, v, ...], Compounds as {"k": v, ...}.
// This is for human inspection only (§4.B, §9's open question resolves
// the teacher's mixed stdout/sink bug by writing to sink exclusively)
// and is not part of any round-trip contract.
func Print(t *Tag, sink io.Writer) error {
	var b strings.Builder
	writeTag(&b, t)
	_, err := io.WriteString(sink, b.String())
	return err
}

func writeTag(b *strings.Builder, t *Tag) {
	if t == nil {
		b.WriteString("null")
		return
	}
	switch t.kind {
	case Byte, Short, Int, Long:
		b.WriteString(strconv.FormatInt(t.i64, 10))
	case Float:
		b.WriteString(strconv.FormatFloat(float64(t.f32), 'g', -1, 32))
	case Double:
		b.WriteString(strconv.FormatFloat(t.f64, 'g', -1, 64))
	case ByteArray:
		b.WriteString("[")
		for i, v := range t.raw {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(int(v)))
		}
		b.WriteString("]")
	case String:
		b.WriteString(strconv.Quote(string(t.raw)))
	case List:
		b.WriteString("[")
		for i, c := range t.children {
			if i > 0 {
				b.WriteString(", ")
			}
			writeTag(b, c)
		}
		b.WriteString("]")
	case Compound:
		b.WriteString("{")
		for i, name := range t.names {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%q: ", name)
			writeTag(b, t.children[i])
		}
		b.WriteString("}")
	default:
		b.WriteString("<end>")
	}
}
