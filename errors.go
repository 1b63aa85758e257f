package compspec

import "errors"

// Resolution errors. Every failure reported by this package wraps exactly one
// of these sentinels, so callers can classify a failure with errors.Is while
// the wrapped message names the offending entry or token. A resolution stops
// at the first error; no partial tables are returned.
var (
	ErrSyntax                = errors.New("invalid specification syntax")
	ErrUnsupportedCompressor = errors.New("unsupported lossy compressor")
	ErrUnsupportedMode       = errors.New("unsupported compression method")
	ErrParameterCount        = errors.New("wrong number of lossy fields")
	ErrParameterType         = errors.New("parameter has wrong numeric type")
	ErrParameterRange        = errors.New("parameter out of range")
	ErrBackendName           = errors.New("unknown lossless backend")
	ErrLevelRange            = errors.New("compression level out of range")
	ErrDuplicateSlot         = errors.New("duplicate specification entry")
	ErrUnknownTargetName     = errors.New("entry targets unknown name")
)
