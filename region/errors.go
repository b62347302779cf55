package region

import "errors"

// Error kinds surfaced by the region engine (§7). OverlappingSectors
// and InvalidSlot are contract-violation classes that are logged rather
// than returned (see Region's diagnostic logger); the rest propagate to
// the caller wrapped with fmt.Errorf, so use errors.Is to test for them.
var (
	ErrIo                = errors.New("region: io error")
	ErrCorruptStream     = errors.New("region: corrupt compressed stream")
	ErrCompressionFailed = errors.New("region: compression failed")
	ErrInvalidRegion     = errors.New("region: malformed region file")
	ErrReadOnly          = errors.New("region: write attempted on read-only region")
)
