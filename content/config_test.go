package content

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(fstest.MapFS{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		ConfigFile: {Data: []byte(`
expires = "1m"
staticexpires = "24h"
basepath = "/v2/"
cachebytes = 1024

[headers]
X-Frame-Options = "DENY"
`)},
	}
	cfg, err := LoadConfig(fsys)
	require.NoError(t, err)
	assert.Equal(t, Duration(time.Minute), cfg.Expires)
	assert.Equal(t, Duration(24*time.Hour), cfg.StaticExpires)
	assert.Equal(t, "/v2", cfg.BasePath)
	assert.Equal(t, int64(1024), cfg.CacheBytes)
	assert.Equal(t, Duration(30*time.Second), cfg.CacheDuration, "unset values keep their defaults")
	assert.Equal(t, "DENY", cfg.Headers["X-Frame-Options"])
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":            `expires = `,
		"duration":          `expires = "soon"`,
		"base path":         `basepath = "v1"`,
		"root base":         `basepath = "/"`,
		"legacy base":       `basepath = "/docs"`,
		"legacy base slash": `basepath = "/docs/"`,
		"negative":          `cachebytes = -1`,
	}
	for name, body := range tests {
		_, err := LoadConfig(fstest.MapFS{ConfigFile: {Data: []byte(body)}})
		assert.Error(t, err, name)
	}
}
