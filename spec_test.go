package compspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func losslessEnc(backend Backend, level int) VariableEncoding {
	return VariableEncoding{Mode: Lossless, Backend: backend, Level: level}
}

func lossyEnc(compressor Compressor, method Method, parameter float64) VariableEncoding {
	return VariableEncoding{Mode: Lossy, Compressor: compressor, Method: method, Parameter: parameter}
}

func TestParseSpecification(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Entry
	}{
		{
			name: "bare lossless applies defaults",
			text: "lossless",
			want: []Entry{{Target: "default", Encoding: losslessEnc(LZ4, 9)}},
		},
		{
			name: "lossless with backend keeps default level",
			text: "lossless,zstd",
			want: []Entry{{Target: "default", Encoding: losslessEnc(Zstd, 9)}},
		},
		{
			name: "lossless with backend and level",
			text: "lossless,snappy,7",
			want: []Entry{{Target: "default", Encoding: losslessEnc(Snappy, 7)}},
		},
		{
			name: "mode keyword is case-insensitive",
			text: "LOSSLESS",
			want: []Entry{{Target: "default", Encoding: losslessEnc(LZ4, 9)}},
		},
		{
			name: "lossy entry",
			text: "lossy,zfp,rate,4.0",
			want: []Entry{{Target: "default", Encoding: lossyEnc(ZFP, ZFPRate, 4.0)}},
		},
		{
			name: "compressor is case-insensitive",
			text: "lossy,ZFP,rate,4.0",
			want: []Entry{{Target: "default", Encoding: lossyEnc(ZFP, ZFPRate, 4.0)}},
		},
		{
			name: "scientific notation parameter",
			text: "lossy,sz,abs,1e-3",
			want: []Entry{{Target: "default", Encoding: lossyEnc(SZ, SZAbs, 0.001)}},
		},
		{
			name: "named entries keep input order",
			text: "var1:lossy,zfp,rate,4.0 var2:lossy,sz,abs,0.1",
			want: []Entry{
				{Target: "var1", Encoding: lossyEnc(ZFP, ZFPRate, 4.0)},
				{Target: "var2", Encoding: lossyEnc(SZ, SZAbs, 0.1)},
			},
		},
		{
			name: "explicit default target",
			text: "default:lossy,sz3,psnr,60",
			want: []Entry{{Target: "default", Encoding: lossyEnc(SZ3, SZ3PSNR, 60)}},
		},
		{
			name: "coordinates target",
			text: "coordinates:lossless,zlib,3",
			want: []Entry{{Target: "coordinates", Encoding: losslessEnc(Zlib, 3)}},
		},
		{
			name: "empty string has no entries",
			text: "",
			want: []Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecification(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, spec.Entries)
		})
	}
}

func TestParseSpecificationErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "unrecognized mode",
			text:    "fast,zfp,rate,4.0",
			wantErr: ErrSyntax,
		},
		{
			name:    "comma instead of colon",
			text:    "var1,lossless",
			wantErr: ErrSyntax,
		},
		{
			name:    "empty policy after name",
			text:    "var1:",
			wantErr: ErrSyntax,
		},
		{
			name:    "lossless with too many fields",
			text:    "lossless,lz4,9,extra",
			wantErr: ErrSyntax,
		},
		{
			name:    "unknown backend",
			text:    "lossless,foo,9",
			wantErr: ErrBackendName,
		},
		{
			name:    "empty backend field",
			text:    "lossless,",
			wantErr: ErrBackendName,
		},
		{
			name:    "level too high",
			text:    "lossless,lz4,10",
			wantErr: ErrLevelRange,
		},
		{
			name:    "level too low",
			text:    "lossless,lz4,0",
			wantErr: ErrLevelRange,
		},
		{
			name:    "non-integer level",
			text:    "lossless,lz4,high",
			wantErr: ErrParameterType,
		},
		{
			name:    "lossy missing parameter",
			text:    "lossy,zfp,rate",
			wantErr: ErrParameterCount,
		},
		{
			name:    "lossy missing method and parameter",
			text:    "lossy,zfp",
			wantErr: ErrParameterCount,
		},
		{
			name:    "lossy with extra field",
			text:    "lossy,zfp,rate,4.0,5.0",
			wantErr: ErrParameterCount,
		},
		{
			name:    "unknown compressor",
			text:    "lossy,lzma,rate,4.0",
			wantErr: ErrUnsupportedCompressor,
		},
		{
			name:    "method from another compressor",
			text:    "lossy,sz,rate,4.0",
			wantErr: ErrUnsupportedMode,
		},
		{
			name:    "psnr is not a zfp method",
			text:    "lossy,zfp,psnr,60",
			wantErr: ErrUnsupportedMode,
		},
		{
			name:    "non-numeric parameter",
			text:    "lossy,zfp,rate,fast",
			wantErr: ErrParameterType,
		},
		{
			name:    "second entry reports error too",
			text:    "var1:lossless var2:lossy,zfp,rate",
			wantErr: ErrParameterCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpecification(tt.text)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSpecificationString(t *testing.T) {
	spec, err := ParseSpecification("var1:lossy,zfp,rate,4.0 lossless,snappy,7")
	require.NoError(t, err)
	require.Equal(t, "var1:lossy,zfp,rate,4 default:lossless,snappy,7", spec.String())

	// Reparsing the rendered form yields the same entries.
	reparsed, err := ParseSpecification(spec.String())
	require.NoError(t, err)
	require.Equal(t, spec.Entries, reparsed.Entries)
}

func TestIsValidSpecification(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "valid lossless", text: "lossless", want: true},
		{name: "valid multivariate", text: "lossy,sz,pw_rel,0.0001 temperature:lossy,zfp,rate,4", want: true},
		{name: "garbage", text: "poijasduiohqwoir", want: false},
		{name: "duplicate default", text: "lossless default:lossless", want: false},
		{name: "duplicate variable", text: "a:lossless a:lossless", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidSpecification(tt.text))
		})
	}
}
