// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// New loads configuration from environment using viper with typed defaults
// and validation. A local .env file seeds variables that are not already set.
func New() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 30*time.Second)

	v.SetDefault("devops.base_url", "https://dev.azure.com")
	v.SetDefault("devops.api_version", "7.1")
	v.SetDefault("devops.project_reviewer_search", true)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"devops.base_url",
		"devops.organization",
		"devops.project",
		"devops.team",
		"devops.api_version",
		"devops.project_reviewer_search",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// The original automation scripts read the token from AZURE_DEVOPS_PAT;
	// both names are accepted.
	_ = v.BindEnv("devops.pat", "DEVOPS_PAT", "AZURE_DEVOPS_PAT")
}
