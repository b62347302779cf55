package region

import (
	"fmt"

	"github.com/OCharnyshevich/anvilnbt/internal/compress"
	"github.com/OCharnyshevich/anvilnbt/nbt"
)

// ReadChunkDocument composes the read-side data flow in §2's overview:
// resolve the slot, inflate its compressed payload, and parse the
// result as an NBT document. Returns nil, nil if the slot is empty.
func (r *Region) ReadChunkDocument(x, z int) (*nbt.Document, error) {
	payload := r.Data(x, z)
	if payload == nil {
		return nil, nil
	}
	kind := r.CompressionKind(x, z)

	raw, err := compress.Inflate(payload, kind)
	if err != nil {
		return nil, fmt.Errorf("region: inflate chunk (%d,%d): %w", x, z, ErrCorruptStream)
	}

	doc, err := nbt.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("region: parse chunk (%d,%d): %w", x, z, err)
	}
	return doc, nil
}

// WriteChunkDocument composes the write-side data flow: serialize doc,
// deflate it with kind, and stage the result with SetChunk.
func (r *Region) WriteChunkDocument(x, z int, doc *nbt.Document, kind Compression, opts ...SetChunkOption) error {
	raw := nbt.Write(doc)
	compressed, err := compress.Deflate(raw, kind)
	if err != nil {
		return fmt.Errorf("region: deflate chunk (%d,%d): %w", x, z, ErrCompressionFailed)
	}
	return r.SetChunk(x, z, compressed, kind, opts...)
}
