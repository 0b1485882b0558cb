package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config holds application configuration.
type Config struct {
	DevOps  DevOpsConfig  `mapstructure:"devops"`
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate ensures required fields are present, collecting every problem
// instead of stopping at the first one. The personal access token is not
// checked here: its absence surfaces when a client is constructed.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.DevOps.BaseURL == "" {
		result = multierror.Append(result, errors.New("devops.base_url is required"))
	}
	if c.DevOps.Organization == "" {
		result = multierror.Append(result, errors.New("devops.organization is required"))
	}
	if c.DevOps.Project == "" {
		result = multierror.Append(result, errors.New("devops.project is required"))
	}
	if c.DevOps.APIVersion == "" {
		result = multierror.Append(result, errors.New("devops.api_version is required"))
	}
	if c.HTTP.RequestTimeout <= 0 {
		result = multierror.Append(result, errors.New("http.request_timeout must be positive"))
	}
	if c.Server.Port == 0 {
		result = multierror.Append(result, errors.New("server.port is required"))
	}

	return result.ErrorOrNil()
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DevOpsConfig describes the tracking service endpoint and credentials.
type DevOpsConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	Organization string `mapstructure:"organization"`
	Project      string `mapstructure:"project"`
	Team         string `mapstructure:"team"`
	PAT          string `mapstructure:"pat"`
	APIVersion   string `mapstructure:"api_version"`

	// ProjectReviewerSearch selects the project-wide reviewer search when
	// true; otherwise review queries fan out over every repository.
	ProjectReviewerSearch bool `mapstructure:"project_reviewer_search"`
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains outbound transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
