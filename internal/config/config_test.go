package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so ambient values on the
// machine running the tests cannot leak in. Empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOGGING_LEVEL",
		"SERVER_HOST",
		"SERVER_PORT",
		"SERVER_SHUTDOWN_TIMEOUT",
		"HTTP_REQUEST_TIMEOUT",
		"DEVOPS_BASE_URL",
		"DEVOPS_ORGANIZATION",
		"DEVOPS_PROJECT",
		"DEVOPS_TEAM",
		"DEVOPS_API_VERSION",
		"DEVOPS_PROJECT_REVIEWER_SEARCH",
		"DEVOPS_PAT",
		"AZURE_DEVOPS_PAT",
	} {
		t.Setenv(key, "")
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVOPS_ORGANIZATION", "contoso")
	t.Setenv("DEVOPS_PROJECT", "payments")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "https://dev.azure.com", cfg.DevOps.BaseURL)
	assert.Equal(t, "contoso", cfg.DevOps.Organization)
	assert.Equal(t, "payments", cfg.DevOps.Project)
	assert.Equal(t, "7.1", cfg.DevOps.APIVersion)
	assert.True(t, cfg.DevOps.ProjectReviewerSearch)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVOPS_BASE_URL", "https://devops.internal.example")
	t.Setenv("DEVOPS_ORGANIZATION", "contoso")
	t.Setenv("DEVOPS_PROJECT", "payments")
	t.Setenv("DEVOPS_TEAM", "Platform Team")
	t.Setenv("DEVOPS_API_VERSION", "7.2")
	t.Setenv("DEVOPS_PROJECT_REVIEWER_SEARCH", "false")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "5s")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "https://devops.internal.example", cfg.DevOps.BaseURL)
	assert.Equal(t, "Platform Team", cfg.DevOps.Team)
	assert.Equal(t, "7.2", cfg.DevOps.APIVersion)
	assert.False(t, cfg.DevOps.ProjectReviewerSearch)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddr())
	assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
}

func TestNew_TokenNames(t *testing.T) {
	t.Run("legacy name accepted", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DEVOPS_ORGANIZATION", "contoso")
		t.Setenv("DEVOPS_PROJECT", "payments")
		t.Setenv("AZURE_DEVOPS_PAT", "legacy-token")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, "legacy-token", cfg.DevOps.PAT)
	})

	t.Run("primary name wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DEVOPS_ORGANIZATION", "contoso")
		t.Setenv("DEVOPS_PROJECT", "payments")
		t.Setenv("DEVOPS_PAT", "primary-token")
		t.Setenv("AZURE_DEVOPS_PAT", "legacy-token")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, "primary-token", cfg.DevOps.PAT)
	})

	t.Run("missing token is not a load error", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DEVOPS_ORGANIZATION", "contoso")
		t.Setenv("DEVOPS_PROJECT", "payments")

		cfg, err := New()

		require.NoError(t, err)
		assert.Empty(t, cfg.DevOps.PAT)
	})
}

func TestNew_ValidationCollectsEveryProblem(t *testing.T) {
	clearEnv(t)

	_, err := New()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "devops.organization is required")
	assert.Contains(t, err.Error(), "devops.project is required")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid - complete configuration",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid - missing base url",
			mutate:  func(c *Config) { c.DevOps.BaseURL = "" },
			wantErr: "devops.base_url is required",
		},
		{
			name:    "invalid - missing api version",
			mutate:  func(c *Config) { c.DevOps.APIVersion = "" },
			wantErr: "devops.api_version is required",
		},
		{
			name:    "invalid - zero request timeout",
			mutate:  func(c *Config) { c.HTTP.RequestTimeout = 0 },
			wantErr: "http.request_timeout must be positive",
		},
		{
			name:    "invalid - zero port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				DevOps: DevOpsConfig{
					BaseURL:      "https://dev.azure.com",
					Organization: "contoso",
					Project:      "payments",
					APIVersion:   "7.1",
				},
				Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
				HTTP:   HTTPConfig{RequestTimeout: 30 * time.Second},
			}
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
