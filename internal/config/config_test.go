package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StoreJSON, cfg.StoreDriver)
	assert.Equal(t, BlobDisk, cfg.BlobDriver)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 200, cfg.RateLimitPerMin)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{StoreDriver: StoreJSON, BlobDriver: BlobDisk, DataDir: "d", RateLimitPerMin: 1}
	}

	t.Run("ok", func(t *testing.T) {
		c := base()
		assert.NoError(t, c.Validate())
	})

	t.Run("postgres without url", func(t *testing.T) {
		c := base()
		c.StoreDriver = StorePostgres
		assert.Error(t, c.Validate())
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		c := base()
		c.BlobDriver = BlobS3
		assert.Error(t, c.Validate())
	})

	t.Run("unknown store", func(t *testing.T) {
		c := base()
		c.StoreDriver = "mongo"
		assert.Error(t, c.Validate())
	})

	t.Run("rate limit", func(t *testing.T) {
		c := base()
		c.RateLimitPerMin = 0
		assert.Error(t, c.Validate())
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
