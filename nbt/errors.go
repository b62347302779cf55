package nbt

import (
	"errors"
	"log/slog"
)

// Error kinds surfaced by the codec (§7). Codec and file-level
// operations return these (wrapped with fmt.Errorf, so callers should
// use errors.Is); tag accessors never return them — a wrong-kind
// accessor call is a programmer-contract violation (§7) reported on
// the diagnostic channel instead.
var (
	ErrIo                = errors.New("nbt: io error")
	ErrTruncated         = errors.New("nbt: truncated")
	ErrMalformed         = errors.New("nbt: malformed")
	ErrUnknownKind       = errors.New("nbt: unknown tag kind")
	ErrCorruptStream     = errors.New("nbt: corrupt compressed stream")
	ErrCompressionFailed = errors.New("nbt: compression failed")
)

// diagLogger is the process-wide logger that receives every diagnostic
// this package emits; Tags and Documents carry no logger of their own.
// Contract violations (§7: "reported on a diagnostic channel... no-op
// return rather than aborting") still need to go somewhere even for
// callers who never configured logging, so it starts as slog.Default().
var diagLogger = slog.Default()

// SetDiagnosticLogger replaces the process-wide logger used for
// programmer-contract-violation diagnostics (wrong-kind accessor calls,
// list element-kind mismatches, nil-tag method calls). Passing nil
// restores slog.Default().
func SetDiagnosticLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	diagLogger = l
}

func diagWarn(msg string, args ...any) {
	diagLogger.Warn(msg, args...)
}
