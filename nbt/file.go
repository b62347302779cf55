package nbt

import (
	"fmt"
	"io"

	"github.com/OCharnyshevich/anvilnbt/internal/compress"
	"github.com/google/renameio"
	"golang.org/x/exp/mmap"
)

// ReadFile memory-maps path and parses it as an NBT document (§4.C
// "File-level"). The mapping is released before ReadFile returns —
// Parse copies everything it needs into the resulting Document, so
// there is no dangling borrow into the map once this returns.
func ReadFile(path string) (*Document, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nbt: read file %s: %w", path, ErrIo)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("nbt: read file %s: %w", path, ErrIo)
	}

	return Parse(data)
}

// WriteFile serializes doc, gzip-frames it, and writes it atomically to
// path via a temp file + rename (§4.C "File-level", §4.A compression).
// The atomic replace is done with github.com/google/renameio, the same
// library distr1/distri uses for its own atomic config/package writes.
func WriteFile(path string, doc *Document) error {
	raw := Write(doc)
	framed, err := compress.Deflate(raw, compress.Gzip)
	if err != nil {
		return fmt.Errorf("nbt: write file %s: %w", path, ErrCompressionFailed)
	}
	if err := renameio.WriteFile(path, framed, 0o644); err != nil {
		return fmt.Errorf("nbt: write file %s: %w", path, ErrIo)
	}
	return nil
}
