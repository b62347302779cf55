package region

import (
	"fmt"

	"github.com/OCharnyshevich/anvilnbt/internal/endian"
	"github.com/google/renameio"
	"golang.org/x/exp/mmap"
)

// Flush commits pending writes (§4.D "Flush"). In write mode it
// snapshots the current slot state (overrides applied), re-lays every
// non-empty slot out from sector 2 in slot-index order — eliminating
// any overlap tolerated at Open — and atomically replaces the file via
// github.com/google/renameio. A full relayout never fragments (there is
// nothing to fit around but the slots being placed), so the "smallest
// fitting free run" allocator in §4.D step 2 degenerates to a simple
// bump allocator here; see DESIGN.md.
//
// In read-only mode, Flush does nothing but re-read the map, picking up
// any external changes to the file (§4.D "For read-only regions flush
// does nothing except re-read the map").
func (r *Region) Flush() error {
	if !r.writeMode {
		return r.reload()
	}

	type laidOut struct {
		idx         int
		timestamp   uint32
		compression Compression
		payload     []byte
		offset      uint32
		sectors     uint8
	}

	var entries []laidOut
	for idx := 0; idx < numSlots; idx++ {
		ts, kind, payload, present := r.effective(idx)
		if !present {
			continue
		}
		entries = append(entries, laidOut{idx: idx, timestamp: ts, compression: kind, payload: payload})
	}

	cursor := uint32(headerSectors)
	for i := range entries {
		e := &entries[i]
		total := 5 + len(e.payload)
		sectors := (total + sectorSize - 1) / sectorSize
		e.offset = cursor
		e.sectors = uint8(sectors)
		cursor += uint32(sectors)
	}

	locBuf := make([]byte, sectorSize)
	tsBuf := make([]byte, sectorSize)
	payloadArea := make([]byte, (cursor-headerSectors)*sectorSize)

	for _, e := range entries {
		off := e.idx * 4
		endian.PutUint24(locBuf[off:off+3], e.offset)
		locBuf[off+3] = byte(e.sectors)
		endian.PutUint32(tsBuf[off:off+4], e.timestamp)

		base := (e.offset - headerSectors) * sectorSize
		endian.PutUint32(payloadArea[base:base+4], uint32(len(e.payload)))
		payloadArea[base+4] = byte(e.compression)
		copy(payloadArea[base+5:], e.payload)
		// Remaining bytes up to the sector boundary are already zero.
	}

	full := make([]byte, 0, len(locBuf)+len(tsBuf)+len(payloadArea))
	full = append(full, locBuf...)
	full = append(full, tsBuf...)
	full = append(full, payloadArea...)

	if err := renameio.WriteFile(r.path, full, 0o644); err != nil {
		return fmt.Errorf("region: flush %s: %w", r.path, ErrIo)
	}

	return r.reload()
}

// reload closes and reopens the memory map, then rebuilds the in-memory
// slot table and clears pending overrides (§4.D step 8).
func (r *Region) reload() error {
	if r.handle != nil {
		r.handle.Close()
	}
	h, err := mmap.Open(r.path)
	if err != nil {
		return fmt.Errorf("region: reopen %s: %w", r.path, ErrIo)
	}
	r.handle = h
	r.size = int64(h.Len())
	r.overrides = make(map[int]*override)
	return r.loadSlots()
}
