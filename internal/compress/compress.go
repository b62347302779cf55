// Package compress wraps the gzip (RFC 1952) and zlib (RFC 1950) stream
// formats used by NBT document framing and region chunk payloads.
//
// It wires github.com/klauspost/compress instead of the standard
// library's compress/gzip and compress/zlib: same package shape
// (NewReader/NewWriter returning io.ReadCloser/io.WriteCloser), faster
// in practice, and already a direct dependency of both arloliu/mebo and
// distr1/distri in the retrieval pack this module was built against.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	kgzip "github.com/klauspost/compress/gzip"
	kzlib "github.com/klauspost/compress/zlib"
)

// Kind identifies which stream format frames a payload.
type Kind byte

const (
	// Gzip frames a payload with RFC 1952 (magic bytes 0x1F 0x8B).
	Gzip Kind = 1
	// Zlib frames a payload with RFC 1950.
	Zlib Kind = 2
	// Unknown is returned for any compression byte not in {Gzip, Zlib}.
	Unknown Kind = 0
)

func (k Kind) String() string {
	switch k {
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// ErrCorruptStream is returned by Inflate when the input is not a valid
// stream of the claimed kind.
var ErrCorruptStream = errors.New("compress: corrupt stream")

// ErrCompressionFailed is returned by Deflate when the underlying writer fails.
var ErrCompressionFailed = errors.New("compress: compression failed")

// GzipMagic are the two leading bytes that identify a gzip stream, used
// by the NBT codec to auto-detect gzip framing on read.
var GzipMagic = [2]byte{0x1F, 0x8B}

// LooksLikeGzip reports whether b begins with the gzip magic bytes.
func LooksLikeGzip(b []byte) bool {
	return len(b) >= 2 && b[0] == GzipMagic[0] && b[1] == GzipMagic[1]
}

// Inflate decompresses data that was framed with the given kind.
func Inflate(data []byte, kind Kind) ([]byte, error) {
	var r io.ReadCloser
	var err error

	switch kind {
	case Gzip:
		r, err = kgzip.NewReader(bytes.NewReader(data))
	case Zlib:
		r, err = kzlib.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("compress: inflate: %w: unsupported kind %d", ErrCorruptStream, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("compress: inflate: %w: %v", ErrCorruptStream, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: inflate: %w: %v", ErrCorruptStream, err)
	}
	return out, nil
}

// Deflate compresses data, framing it with the given kind.
func Deflate(data []byte, kind Kind) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch kind {
	case Gzip:
		w = kgzip.NewWriter(&buf)
	case Zlib:
		w = kzlib.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("compress: deflate: %w: unsupported kind %d", ErrCompressionFailed, kind)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("compress: deflate: %w: %v", ErrCompressionFailed, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: deflate: %w: %v", ErrCompressionFailed, err)
	}
	return buf.Bytes(), nil
}
