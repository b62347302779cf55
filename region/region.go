// Package region implements the Anvil-style region container (§3.3,
// §4.D): a sparse, sector-addressed file holding up to 1024 per-chunk
// compressed NBT blobs behind a location index and a timestamp table.
package region

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/OCharnyshevich/anvilnbt/internal/compress"
	"github.com/OCharnyshevich/anvilnbt/internal/endian"
	"github.com/google/renameio"
	"golang.org/x/exp/mmap"
)

const (
	sectorSize    = 4096
	headerSectors = 2
	gridSize      = 32
	numSlots      = gridSize * gridSize
)

// Compression re-exports the two compression kinds the region format
// supports, so callers don't need to import the internal compress
// package directly.
type Compression = compress.Kind

const (
	CompressionGzip    = compress.Gzip
	CompressionZlib    = compress.Zlib
	CompressionUnknown = compress.Unknown
)

// slot is the in-memory representation of one of the 1024 addressable
// positions in a region (§3.3).
type slot struct {
	empty       bool
	offset      uint32 // sector offset
	sectorCount uint8
	timestamp   uint32
	compression Compression
	payload     []byte // compressed bytes, owned copy
}

// override is a staged pending write (§4.D "Writes"), consulted before
// the underlying slot by every accessor.
type override struct {
	clear       bool
	timestamp   uint32
	compression Compression
	payload     []byte
}

// Region represents a 32x32 grid of chunk slots (§3.3). A Region is
// owned by exactly one logical thread at a time (§5); synchronizing
// concurrent access across goroutines is the caller's responsibility.
type Region struct {
	path      string
	writeMode bool
	log       *slog.Logger

	handle *mmap.ReaderAt
	size   int64

	slots     [numSlots]slot
	overrides map[int]*override
}

// Option configures Open.
type Option func(*regionConfig)

type regionConfig struct {
	log *slog.Logger
}

// WithLogger sets the logger used for diagnostics (overlap tolerance
// warnings, invalid-slot contract violations). Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *regionConfig) { c.log = l }
}

// Open opens the region file at path (§4.D "Open"). In write mode, a
// missing file is created with two zeroed header sectors; in read-only
// mode a missing file is an error. The file is memory-mapped
// read-only — writes are always staged in memory and committed as a
// whole-file replace on Flush (see Flush), so there is no need for a
// writable mapping even in write mode.
func Open(path string, writeMode bool, opts ...Option) (*Region, error) {
	cfg := regionConfig{log: slog.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	if writeMode {
		if _, err := os.Stat(path); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("region: open %s: %w", path, ErrIo)
			}
			if err := createEmpty(path); err != nil {
				return nil, err
			}
		}
	}

	h, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("region: open %s: %w", path, ErrIo)
	}

	r := &Region{
		path:      path,
		writeMode: writeMode,
		log:       cfg.log,
		handle:    h,
		size:      int64(h.Len()),
		overrides: make(map[int]*override),
	}
	if err := r.loadSlots(); err != nil {
		h.Close()
		return nil, err
	}
	return r, nil
}

func createEmpty(path string) error {
	header := make([]byte, headerSectors*sectorSize)
	if err := renameio.WriteFile(path, header, 0o644); err != nil {
		return fmt.Errorf("region: create %s: %w", path, ErrIo)
	}
	return nil
}

// readAt reads len(p) bytes at off from the mapped file, zero-filling
// any portion beyond the file's actual length (§4.D step 2: "the index
// and timestamp tables are treated as zero-filled" for undersized files).
func (r *Region) readAt(p []byte, off int64) error {
	for i := range p {
		p[i] = 0
	}
	if off >= r.size {
		return nil
	}
	avail := p
	if off+int64(len(p)) > r.size {
		avail = p[:r.size-off]
	}
	if _, err := r.handle.ReadAt(avail, off); err != nil && err != io.EOF {
		return fmt.Errorf("region: read %s at %d: %w", r.path, off, ErrIo)
	}
	return nil
}

// loadSlots parses the location table, timestamp table, and every
// non-empty slot's header+payload from the currently mapped file.
func (r *Region) loadSlots() error {
	locBuf := make([]byte, sectorSize)
	if err := r.readAt(locBuf, 0); err != nil {
		return err
	}
	tsBuf := make([]byte, sectorSize)
	if err := r.readAt(tsBuf, sectorSize); err != nil {
		return err
	}

	used := make(map[uint32]int) // sector -> slot index, for overlap diagnostics

	for i := 0; i < numSlots; i++ {
		offset := endian.Uint24(locBuf[i*4 : i*4+3])
		sectorCount := locBuf[i*4+3]
		r.slots[i] = slot{empty: true}
		if offset == 0 && sectorCount == 0 {
			continue
		}

		timestamp := endian.Uint32(tsBuf[i*4 : i*4+4])

		for s := uint32(0); s < uint32(sectorCount); s++ {
			sec := offset + s
			if owner, ok := used[sec]; ok {
				r.log.Warn("region: overlapping sector claims", "sector", sec, "slot_a", owner, "slot_b", i)
			}
			used[sec] = i
		}

		header := make([]byte, 5)
		if err := r.readAt(header, int64(offset)*sectorSize); err != nil {
			return err
		}
		payloadLen := endian.Uint32(header[0:4])
		kind := Compression(header[4])
		if kind != CompressionGzip && kind != CompressionZlib {
			kind = CompressionUnknown
		}

		maxAvail := uint32(sectorCount)*sectorSize - 5
		if payloadLen > maxAvail {
			r.log.Warn("region: payload length exceeds claimed sectors, clamping", "slot", i, "declared", payloadLen, "max", maxAvail)
			payloadLen = maxAvail
		}

		payload := make([]byte, payloadLen)
		if err := r.readAt(payload, int64(offset)*sectorSize+5); err != nil {
			return err
		}

		r.slots[i] = slot{
			empty:       false,
			offset:      offset,
			sectorCount: sectorCount,
			timestamp:   timestamp,
			compression: kind,
			payload:     payload,
		}
	}
	return nil
}

func slotIndex(x, z int) (int, bool) {
	if x < 0 || x >= gridSize || z < 0 || z >= gridSize {
		return 0, false
	}
	return x + gridSize*z, true
}

func (r *Region) invalidSlot(op string, x, z int) {
	r.log.Warn("region: slot coordinates out of range", "op", op, "x", x, "z", z)
}

// effective returns the state of slot index idx after applying any staged
// override: (timestamp, compression, payload, present).
func (r *Region) effective(idx int) (uint32, Compression, []byte, bool) {
	if ov, ok := r.overrides[idx]; ok {
		if ov.clear {
			return 0, CompressionUnknown, nil, false
		}
		return ov.timestamp, ov.compression, ov.payload, true
	}
	s := r.slots[idx]
	if s.empty {
		return 0, CompressionUnknown, nil, false
	}
	return s.timestamp, s.compression, s.payload, true
}

// Timestamp returns the slot's application-defined epoch-seconds
// timestamp, or 0 if empty or out of range.
func (r *Region) Timestamp(x, z int) uint32 {
	idx, ok := slotIndex(x, z)
	if !ok {
		r.invalidSlot("Timestamp", x, z)
		return 0
	}
	ts, _, _, _ := r.effective(idx)
	return ts
}

// Length returns the slot's compressed payload length, or 0 if empty or out of range.
func (r *Region) Length(x, z int) uint32 {
	idx, ok := slotIndex(x, z)
	if !ok {
		r.invalidSlot("Length", x, z)
		return 0
	}
	_, _, payload, present := r.effective(idx)
	if !present {
		return 0
	}
	return uint32(len(payload))
}

// CompressionKind returns the slot's compression kind, or CompressionUnknown if empty.
func (r *Region) CompressionKind(x, z int) Compression {
	idx, ok := slotIndex(x, z)
	if !ok {
		r.invalidSlot("CompressionKind", x, z)
		return CompressionUnknown
	}
	_, kind, _, present := r.effective(idx)
	if !present {
		return CompressionUnknown
	}
	return kind
}

// Data returns a borrowed view of the slot's raw compressed payload
// bytes, or nil if the slot is empty. Callers layer the NBT codec with
// Inflate above this (§4.D note: "data returns the raw compressed
// bytes"). The returned slice is not a view into the memory map: it is
// the Region's own in-memory copy of the payload, the same slice on
// every call, and it remains valid past the next Flush/Close, which is
// a stronger guarantee than the spec requires, not a weaker one.
func (r *Region) Data(x, z int) []byte {
	idx, ok := slotIndex(x, z)
	if !ok {
		r.invalidSlot("Data", x, z)
		return nil
	}
	_, _, payload, present := r.effective(idx)
	if !present {
		return nil
	}
	return payload
}

// ContainsChunk is the legacy-compatible convenience predicate: a slot
// "contains a chunk" iff its timestamp is non-zero (§3.3), even though a
// slot with non-empty storage and a zero timestamp is permitted.
func (r *Region) ContainsChunk(x, z int) bool {
	return r.Timestamp(x, z) != 0
}

// SetChunkOption configures a staged SetChunk call.
type SetChunkOption func(*override)

// WithTimestamp overrides the timestamp SetChunk would otherwise supply
// (the current wall-clock time).
func WithTimestamp(ts uint32) SetChunkOption {
	return func(o *override) { o.timestamp = ts }
}

// SetChunk stages a pending write for slot (x,z) (§4.D "Writes"). The
// caller's payload must remain valid until the next Flush — this
// implementation copies it immediately, which is a safe superset of
// that contract. If WithTimestamp is not given, the current wall-clock
// time is used. Read-only regions reject this with ErrReadOnly.
func (r *Region) SetChunk(x, z int, payload []byte, kind Compression, opts ...SetChunkOption) error {
	if !r.writeMode {
		return fmt.Errorf("region: SetChunk %s: %w", r.path, ErrReadOnly)
	}
	idx, ok := slotIndex(x, z)
	if !ok {
		r.invalidSlot("SetChunk", x, z)
		return nil
	}

	ov := &override{
		timestamp:   uint32(time.Now().Unix()),
		compression: kind,
		payload:     append([]byte(nil), payload...),
	}
	for _, o := range opts {
		o(ov)
	}
	r.overrides[idx] = ov
	return nil
}

// ClearChunk stages slot (x,z) to be emptied on the next Flush.
// Read-only regions reject this with ErrReadOnly.
func (r *Region) ClearChunk(x, z int) error {
	if !r.writeMode {
		return fmt.Errorf("region: ClearChunk %s: %w", r.path, ErrReadOnly)
	}
	idx, ok := slotIndex(x, z)
	if !ok {
		r.invalidSlot("ClearChunk", x, z)
		return nil
	}
	r.overrides[idx] = &override{clear: true}
	return nil
}

// Close releases the memory mapping and discards any pending writes
// that were never flushed (§3.4 "Lifecycles").
func (r *Region) Close() error {
	r.overrides = make(map[int]*override)
	if r.handle == nil {
		return nil
	}
	err := r.handle.Close()
	r.handle = nil
	if err != nil {
		return fmt.Errorf("region: close %s: %w", r.path, ErrIo)
	}
	return nil
}
