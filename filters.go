package compspec

import (
	"fmt"
	"math"
)

// FilterID identifies a filter registered with the HDF5 filter registry.
type FilterID uint16

// Registered filter identifiers for the supported compressors.
const (
	FilterBlosc FilterID = 32001 // Blosc meta-compressor (all lossless backends).
	FilterZFP   FilterID = 32013 // ZFP floating-point compressor.
	FilterSZ    FilterID = 32017 // SZ error-bounded compressor.
	FilterSZ3   FilterID = 32024 // SZ3 error-bounded compressor.
)

// FilterDescriptor is the backend-agnostic output handed to storage
// adapters: a registered filter id plus its ordered numeric parameters.
// For lossless policies the parameters are (backend code, level); for
// lossy policies they are (mode code, parameter).
type FilterDescriptor struct {
	FilterID   FilterID
	Parameters []float64
}

// methodSpec is one row of the static per-compressor method table: the
// numeric mode code passed to the filter and the constraints the parameter
// must satisfy.
type methodSpec struct {
	code     uint32
	integral bool // parameter must be an integer value
	positive bool // parameter must be strictly positive
}

// lossyMethods maps each compressor's methods to their mode codes. The
// codes follow the conventions of the respective filter: ZFP mode numbers,
// SZ error-bound modes and the SZ3 error-bound enumeration. Built once and
// never mutated.
var lossyMethods = map[Compressor]map[Method]methodSpec{
	ZFP: {
		ZFPRate:      {code: 1},
		ZFPPrecision: {code: 2, integral: true},
		ZFPAccuracy:  {code: 3},
	},
	SZ: {
		SZAbs:   {code: 0},
		SZRel:   {code: 1},
		SZPwRel: {code: 10},
	},
	SZ3: {
		SZ3Abs:   {code: 0},
		SZ3Rel:   {code: 1},
		SZ3PSNR:  {code: 2, positive: true},
		SZ3Norm2: {code: 3},
	},
}

// Filter maps the encoding onto its concrete filter id and parameter tuple.
// It is a pure function of the receiver: equal encodings always yield equal
// descriptors. The method/compressor pairing and the parameter constraints
// are checked here, so hand-built encodings fail the same way parsed ones do.
func (e VariableEncoding) Filter() (FilterDescriptor, error) {
	if e.Mode == Lossless {
		return e.losslessFilter()
	}
	return e.lossyFilter()
}

func (e VariableEncoding) losslessFilter() (FilterDescriptor, error) {
	if int(e.Backend) >= len(backendNames) {
		return FilterDescriptor{}, fmt.Errorf("%w: %d", ErrBackendName, e.Backend)
	}
	if e.Level < 1 || e.Level > 9 {
		return FilterDescriptor{}, fmt.Errorf("%w: level %d not in [1,9]", ErrLevelRange, e.Level)
	}
	return FilterDescriptor{
		FilterID:   FilterBlosc,
		Parameters: []float64{float64(e.Backend), float64(e.Level)},
	}, nil
}

func (e VariableEncoding) lossyFilter() (FilterDescriptor, error) {
	var id FilterID
	switch e.Compressor {
	case ZFP:
		id = FilterZFP
	case SZ:
		id = FilterSZ
	case SZ3:
		id = FilterSZ3
	default:
		return FilterDescriptor{}, fmt.Errorf("%w: %d", ErrUnsupportedCompressor, e.Compressor)
	}

	spec, ok := lossyMethods[e.Compressor][e.Method]
	if !ok {
		return FilterDescriptor{}, fmt.Errorf("%w: %q is not a %s method", ErrUnsupportedMode, e.Method, e.Compressor)
	}
	if spec.integral && e.Parameter != math.Trunc(e.Parameter) {
		return FilterDescriptor{}, fmt.Errorf("%w: %s %s must be an integer, got %s",
			ErrParameterType, e.Compressor, e.Method, formatParameter(e.Parameter))
	}
	if spec.positive && e.Parameter <= 0 {
		return FilterDescriptor{}, fmt.Errorf("%w: %s %s must be strictly positive, got %s",
			ErrParameterRange, e.Compressor, e.Method, formatParameter(e.Parameter))
	}

	return FilterDescriptor{
		FilterID:   id,
		Parameters: []float64{float64(spec.code), e.Parameter},
	}, nil
}
