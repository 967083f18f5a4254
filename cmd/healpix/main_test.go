package main

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/healpix"
)

func runCLI(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr, func(k string) string { return env[k] })
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{
			name: "InfoDefaults",
			args: []string{"info"},
			want: "nside=64 order=6 scheme=NESTED pixels_per_face=4096 total_pixels=49152\n",
		},
		{
			name: "InfoFromEnv",
			env:  map[string]string{envNside: "16", envScheme: "ring"},
			args: []string{"info"},
			want: "nside=16 order=4 scheme=RING pixels_per_face=256 total_pixels=3072\n",
		},
		{
			name: "FlagsWinOverEnv",
			env:  map[string]string{envNside: "16", envScheme: "ring"},
			args: []string{"--nside", "4", "--scheme", "nested", "info"},
			want: "nside=4 order=2 scheme=NESTED pixels_per_face=16 total_pixels=192\n",
		},
		{
			name: "Ang2Pix",
			args: []string{"--nside", "1", "ang2pix", "--theta", "1.5707963267948966", "--phi", "0"},
			want: "4\n",
		},
		{
			name: "Pix2AngRing",
			args: []string{"--nside", "2", "--scheme", "ring", "pix2ang", "--pixel", "0"},
			want: "0.4111378623 0.7853981634\n",
		},
		{
			name: "RaDec2Pix",
			args: []string{"--nside", "1", "radec2pix", "--ra", "0", "--dec", "0"},
			want: "4\n",
		},
		{
			name: "Pix2RaDec",
			args: []string{"--nside", "1", "pix2radec", "--pixel", "4"},
			want: "0.0000000000 0.0000000000\n",
		},
		{
			name: "ConvertNestedToRing",
			args: []string{"--nside", "2", "convert", "--pixel", "0"},
			want: "13\n",
		},
		{
			name: "ConvertRingToNested",
			args: []string{"--nside", "2", "--scheme", "RING", "convert", "--pixel", "13"},
			want: "0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.env, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("InvalidNside", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "--nside", "10", "info")
		assert.ErrorIs(t, err, healpix.ErrInvalidFaceResolution)
	})

	t.Run("InvalidPixel", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "--nside", "1", "pix2ang", "--pixel", "12")
		assert.ErrorIs(t, err, healpix.ErrInvalidPixel)
	})

	t.Run("MissingCommand", func(t *testing.T) {
		_, _, err := runCLI(t, nil)
		assert.ErrorIs(t, err, errUsage)
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "frobnicate")
		assert.ErrorIs(t, err, errUsage)
	})

	t.Run("MissingFlag", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "ang2pix", "--theta", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--phi is required")
	})

	t.Run("NonFinite", func(t *testing.T) {
		for _, args := range [][]string{
			{"--scheme", "ring", "ang2pix", "--theta", "1", "--phi", "inf"},
			{"ang2pix", "--theta", "NaN", "--phi", "0"},
			{"--scheme", "ring", "radec2pix", "--ra", "-Inf", "--dec", "0"},
			{"radec2pix", "--ra", "0", "--dec", "nan"},
		} {
			stdout, _, err := runCLI(t, nil, args...)
			require.Error(t, err, "%v", args)
			assert.Contains(t, err.Error(), "finite")
			assert.Empty(t, stdout)
		}
	})

	t.Run("ExtraArgument", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "info", "extra")
		assert.Error(t, err)
	})

	t.Run("UnknownScheme", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "--scheme", "spiral", "info")
		assert.Error(t, err)
	})

	t.Run("BadEnv", func(t *testing.T) {
		_, _, err := runCLI(t, map[string]string{envNside: "lots"}, "info")
		assert.ErrorContains(t, err, envNside)
	})

	t.Run("BadLogFormat", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "--log-format", "xml", "info")
		assert.Error(t, err)
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		_, _, err := runCLI(t, nil, "--log-level", "loud", "info")
		assert.Error(t, err)
	})

	t.Run("Help", func(t *testing.T) {
		_, stderr, err := runCLI(t, nil, "--help")
		assert.ErrorIs(t, err, pflag.ErrHelp)
		assert.Contains(t, stderr, "--nside")
	})
}

func TestRunLogging(t *testing.T) {
	_, stderr, err := runCLI(t, nil, "--log-level", "debug", "--log-format", "json", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"grid descriptor created"`)

	_, stderr, err = runCLI(t, nil, "info")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
