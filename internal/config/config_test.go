package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Storage: StorageConfig{BasePath: "/some/path"},
		Engagement: EngagementConfig{
			WriteTimeout:        5 * time.Second,
			RateLimitPerVisitor: 5,
			RateLimitBurst:      10,
		},
		Search: SearchConfig{MaxResults: 25},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_EngagementLimits(t *testing.T) {
	cfg := validConfig()
	cfg.Engagement.RateLimitPerVisitor = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Engagement.RateLimitBurst = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_SearchMaxResults(t *testing.T) {
	cfg := validConfig()
	cfg.Search.MaxResults = 0
	assert.Error(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name        string
		path        string
		defaultPath string
		want        string
	}{
		{name: "empty uses default", path: "", defaultPath: "/default", want: "/default"},
		{name: "tilde expands to home", path: "~/data", defaultPath: "", want: filepath.Join(home, "data")},
		{name: "absolute is kept", path: "/var/showcase", defaultPath: "/default", want: "/var/showcase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.path, tt.defaultPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.BasePath = "/data"

	assert.Equal(t, filepath.Join("/data", "catalogs"), cfg.CatalogDBPath())
	assert.Equal(t, filepath.Join("/data", "engagement.db"), cfg.EngagementDBPath())
	assert.Equal(t, filepath.Join("/data", "search"), cfg.SearchIndexPath())
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("SHOWCASE_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "SHOWCASE_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "SHOWCASE_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "SHOWCASE_TEST_MISSING", "default"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nSHOWCASE_ENVFILE_KEY=hello\n"), 0o600))

	t.Cleanup(func() { os.Unsetenv("SHOWCASE_ENVFILE_KEY") })

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "hello", os.Getenv("SHOWCASE_ENVFILE_KEY"))
}
