package compspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	text := FromMap(map[string]string{
		"temperature": "lossy,zfp,rate,4",
		"default":     "lossless",
		"vorticity":   "lossy,sz,abs,0.1",
	})

	// Names are emitted in sorted order for deterministic output.
	require.Equal(t, "default:lossless temperature:lossy,zfp,rate,4 vorticity:lossy,sz,abs,0.1", text)

	got, err := Resolve(text, []string{"temperature", "vorticity", "pressure"}, nil)
	require.NoError(t, err)
	require.Equal(t, FilterDescriptor{FilterID: FilterZFP, Parameters: []float64{1, 4}}, got["temperature"])
	require.Equal(t, FilterDescriptor{FilterID: FilterBlosc, Parameters: []float64{float64(LZ4), 9}}, got["pressure"])
}

func TestFromMapEmpty(t *testing.T) {
	require.Equal(t, "", FromMap(nil))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compression.yaml")
	content := "default: lossy,zfp,rate,4\nvorticity: lossy,sz,abs,0.1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	text, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "default:lossy,zfp,rate,4 vorticity:lossy,sz,abs,0.1", text)

	got, err := Resolve(text, []string{"temperature", "vorticity"}, nil)
	require.NoError(t, err)
	require.Equal(t, FilterDescriptor{FilterID: FilterZFP, Parameters: []float64{1, 4}}, got["temperature"])
	require.Equal(t, FilterDescriptor{FilterID: FilterSZ, Parameters: []float64{0, 0.1}}, got["vorticity"])
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a\n- mapping\n"), 0o600))
	_, err = LoadFile(path)
	require.Error(t, err)
}
