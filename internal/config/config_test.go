package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(env(map[string]string{"CATALOG_FILE": "guides.yaml"}))
	require.NoError(t, err)
	assert.Equal(t, ":5000", c.Addr)
	assert.Equal(t, 5*time.Minute, c.CatalogTTL)
	assert.Equal(t, 5.0, c.RateLimit)
	assert.Equal(t, 10, c.RateBurst)
	assert.False(t, c.Accounts())
	assert.False(t, c.TLS())
}

func TestFromEnvOverrides(t *testing.T) {
	c, err := FromEnv(env(map[string]string{
		"ADDR":         ":8443",
		"TLS_CERT":     "cert.pem",
		"TLS_KEY":      "key.pem",
		"DATABASE_URL": "postgres://localhost/rails",
		"TOKEN_KEY":    "secret",
		"CATALOG_TTL":  "30s",
		"RATE_LIMIT":   "0.5",
		"RATE_BURST":   "3",
		"LOG_LEVEL":    "debug",
		"LOG_FORMAT":   "json",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":8443", c.Addr)
	assert.Equal(t, 30*time.Second, c.CatalogTTL)
	assert.Equal(t, 0.5, c.RateLimit)
	assert.Equal(t, 3, c.RateBurst)
	assert.True(t, c.Accounts())
	assert.True(t, c.TLS())
	assert.Equal(t, "json", c.LogFormat)
}

func TestFromEnvErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"no catalog source":    {},
		"half tls":             {"CATALOG_FILE": "g.yaml", "TLS_CERT": "c.pem"},
		"accounts without key": {"DATABASE_URL": "postgres://x"},
		"bad ttl":              {"CATALOG_FILE": "g.yaml", "CATALOG_TTL": "soon"},
		"bad rate":             {"CATALOG_FILE": "g.yaml", "RATE_LIMIT": "fast"},
		"bad burst":            {"CATALOG_FILE": "g.yaml", "RATE_BURST": "1.5"},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(m))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOG_FILE=from-dotenv.yaml\nRATE_BURST=7\n"), 0o600))
	t.Setenv("CATALOG_FILE", "")
	os.Unsetenv("CATALOG_FILE")
	t.Setenv("RATE_BURST", "")
	os.Unsetenv("RATE_BURST")

	c, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.yaml", c.CatalogFile)
	assert.Equal(t, 7, c.RateBurst)
}
