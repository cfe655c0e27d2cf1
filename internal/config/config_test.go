package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvImpl, EnvNoSIMD, EnvMaxScratch} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := LoadDefaults()
	assert.Equal(t, "auto", cfg.Impl)
	assert.False(t, cfg.NoSIMD)
	assert.Equal(t, DefaultMaxScratch, cfg.MaxScratch)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvImpl, " AVX ")
	t.Setenv(EnvNoSIMD, "yes")
	t.Setenv(EnvMaxScratch, "4096")

	cfg := LoadFromEnv()
	assert.Equal(t, "avx", cfg.Impl)
	assert.True(t, cfg.NoSIMD)
	assert.Equal(t, 4096, cfg.MaxScratch)
}

func TestLoadFromEnvIgnoresMalformed(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxScratch, "lots")

	cfg := LoadFromEnv()
	assert.Equal(t, DefaultMaxScratch, cfg.MaxScratch)

	t.Setenv(EnvMaxScratch, "-3")
	cfg = LoadFromEnv()
	assert.Equal(t, DefaultMaxScratch, cfg.MaxScratch)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "stats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("impl: sse2\nno_simd: true\nmax_scratch: 100\n"), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sse2", cfg.Impl)
	assert.True(t, cfg.NoSIMD)
	assert.Equal(t, 100, cfg.MaxScratch)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "stats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("impl: sse2\nno_simd: true\n"), 0o600))
	t.Setenv(EnvImpl, "avx512")
	t.Setenv(EnvNoSIMD, "false")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "avx512", cfg.Impl)
	assert.False(t, cfg.NoSIMD)
}

func TestLoadFromFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, LoadDefaults(), cfg)
}

func TestLoadFromFileMalformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("impl: [unterminated\n"), 0o600))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty impl", cfg: Config{MaxScratch: 1}},
		{name: "mixed case", cfg: Config{Impl: "AVXFMA", MaxScratch: 1}},
		{name: "unknown impl", cfg: Config{Impl: "neon", MaxScratch: 1}, wantErr: "invalid impl"},
		{name: "zero scratch", cfg: Config{Impl: "auto"}, wantErr: "invalid max scratch"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
