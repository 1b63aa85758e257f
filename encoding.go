package compspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scigolib/compspec/internal/grammar"
)

// Mode distinguishes lossless from lossy compression policies.
type Mode uint8

// Compression modes.
const (
	Lossless Mode = iota
	Lossy
)

// String returns the mode keyword as written in a specification.
func (m Mode) String() string {
	if m == Lossless {
		return "lossless"
	}
	return "lossy"
}

// Backend identifies a Blosc lossless codec.
type Backend uint8

// Lossless backends supported by the Blosc filter.
const (
	BloscLZ Backend = iota
	LZ4
	LZ4HC
	Snappy
	Zlib
	Zstd
)

var backendNames = [...]string{
	BloscLZ: "blosclz",
	LZ4:     "lz4",
	LZ4HC:   "lz4hc",
	Snappy:  "snappy",
	Zlib:    "zlib",
	Zstd:    "zstd",
}

// String returns the backend name as written in a specification.
func (b Backend) String() string {
	if int(b) < len(backendNames) {
		return backendNames[b]
	}
	return fmt.Sprintf("backend(%d)", uint8(b))
}

// Compressor identifies a lossy compressor family.
type Compressor uint8

// Lossy compressors with registered HDF5 filters.
const (
	ZFP Compressor = iota
	SZ
	SZ3
)

var compressorNames = [...]string{
	ZFP: "zfp",
	SZ:  "sz",
	SZ3: "sz3",
}

// String returns the compressor name as written in a specification.
func (c Compressor) String() string {
	if int(c) < len(compressorNames) {
		return compressorNames[c]
	}
	return fmt.Sprintf("compressor(%d)", uint8(c))
}

// Method identifies a compressor-specific lossy compression mode.
// Each method belongs to exactly one compressor.
type Method uint8

// Lossy compression methods.
const (
	ZFPAccuracy Method = iota
	ZFPRate
	ZFPPrecision
	SZAbs
	SZRel
	SZPwRel
	SZ3Abs
	SZ3Rel
	SZ3Norm2
	SZ3PSNR
)

var methodNames = [...]string{
	ZFPAccuracy:  "accuracy",
	ZFPRate:      "rate",
	ZFPPrecision: "precision",
	SZAbs:        "abs",
	SZRel:        "rel",
	SZPwRel:      "pw_rel",
	SZ3Abs:       "abs",
	SZ3Rel:       "rel",
	SZ3Norm2:     "norm2",
	SZ3PSNR:      "psnr",
}

// String returns the method name as written in a specification.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("method(%d)", uint8(m))
}

// Defaults applied when a lossless entry omits its backend or level.
const (
	DefaultBackend = LZ4
	DefaultLevel   = 9
)

// VariableEncoding is the resolved compression policy for one name.
// Only the fields selected by Mode are meaningful: Backend and Level for
// Lossless, Compressor, Method and Parameter for Lossy. Values are plain
// data and safe to share read-only across goroutines.
type VariableEncoding struct {
	Mode       Mode
	Backend    Backend
	Level      int
	Compressor Compressor
	Method     Method
	Parameter  float64
}

// LosslessEncoding builds a lossless policy for the given backend and level.
func LosslessEncoding(backend Backend, level int) (VariableEncoding, error) {
	enc := VariableEncoding{Mode: Lossless, Backend: backend, Level: level}
	if int(backend) >= len(backendNames) {
		return VariableEncoding{}, fmt.Errorf("%w: %d", ErrBackendName, backend)
	}
	if level < 1 || level > 9 {
		return VariableEncoding{}, fmt.Errorf("%w: level %d not in [1,9]", ErrLevelRange, level)
	}
	return enc, nil
}

// LossyEncoding builds a lossy policy for the given compressor, method and
// parameter. The method must belong to the compressor.
func LossyEncoding(compressor Compressor, method Method, parameter float64) (VariableEncoding, error) {
	if _, ok := lossyMethods[compressor]; !ok {
		return VariableEncoding{}, fmt.Errorf("%w: %d", ErrUnsupportedCompressor, compressor)
	}
	if _, ok := lossyMethods[compressor][method]; !ok {
		return VariableEncoding{}, fmt.Errorf("%w: %q is not a %s method", ErrUnsupportedMode, method, compressor)
	}
	return VariableEncoding{Mode: Lossy, Compressor: compressor, Method: method, Parameter: parameter}, nil
}

// String returns the policy in specification syntax, so that parsing the
// result yields an equal encoding.
func (e VariableEncoding) String() string {
	if e.Mode == Lossless {
		fields := []string{Lossless.String(), e.Backend.String(), strconv.Itoa(e.Level)}
		return strings.Join(fields, grammar.FieldSeparator)
	}
	fields := []string{Lossy.String(), e.Compressor.String(), e.Method.String(), formatParameter(e.Parameter)}
	return strings.Join(fields, grammar.FieldSeparator)
}

// Description returns a human-readable summary of the policy, suitable for
// attaching to dataset metadata.
func (e VariableEncoding) Description() string {
	if e.Mode == Lossless {
		return fmt.Sprintf("losslessly compressed with the Blosc filter (backend %q, compression level %d)",
			e.Backend, e.Level)
	}
	return fmt.Sprintf("lossy compressed with the %s filter (method %q, parameter %s)",
		e.Compressor, e.Method, formatParameter(e.Parameter))
}

func formatParameter(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
