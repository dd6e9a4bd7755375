// Package config loads the weather MCP server configuration from flags,
// environment variables and an optional YAML file.
package config

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/fastertools/weather-mcp/internal/nws"
)

// EnvPrefix is prepended to every environment variable, e.g. WEATHER_SERVER_PORT
const EnvPrefix = "WEATHER"

// Transport selects how MCP sessions are carried
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// Config is the effective configuration of the process
type Config struct {
	NWS    NWSConfig    `mapstructure:"nws" yaml:"nws"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Trace  TraceConfig  `mapstructure:"trace" yaml:"trace"`
}

// NWSConfig configures the upstream client
type NWSConfig struct {
	BaseURL         string        `mapstructure:"base_url" yaml:"base_url"`
	UserAgent       string        `mapstructure:"user_agent" yaml:"user_agent"`
	Accept          string        `mapstructure:"accept" yaml:"accept"`
	Timeout         time.Duration `mapstructure:"timeout" yaml:"timeout"`
	FollowRedirects bool          `mapstructure:"follow_redirects" yaml:"follow_redirects"`
}

// ServerConfig configures the MCP transport
type ServerConfig struct {
	Transport Transport `mapstructure:"transport" yaml:"transport"`
	Host      string    `mapstructure:"host" yaml:"host"`
	Port      int       `mapstructure:"port" yaml:"port"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// TraceConfig toggles span export for outbound requests
type TraceConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// SetDefaults registers every key with its default so that environment
// variables are honoured by Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("nws.base_url", nws.DefaultBaseURL)
	v.SetDefault("nws.user_agent", nws.DefaultUserAgent)
	v.SetDefault("nws.accept", nws.DefaultAccept)
	v.SetDefault("nws.timeout", nws.DefaultTimeout)
	v.SetDefault("nws.follow_redirects", false)

	v.SetDefault("server.transport", string(TransportHTTP))
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("trace.enabled", false)
}

// BindEnv enables WEATHER_* environment overrides on v
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	u, err := url.Parse(c.NWS.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid nws.base_url %q: must be an absolute http(s) URL", c.NWS.BaseURL)
	}
	if c.NWS.Timeout <= 0 {
		return fmt.Errorf("invalid nws.timeout %s: must be positive", c.NWS.Timeout)
	}
	if c.NWS.UserAgent == "" {
		return fmt.Errorf("nws.user_agent cannot be empty")
	}

	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid server.transport %q (allowed: stdio, http)", c.Server.Transport)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be 1-65535", c.Server.Port)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q (allowed: text, json)", c.Log.Format)
	}

	return nil
}

// Address returns the host:port the HTTP transport listens on
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NewLogger builds a logger writing to w at the configured level and format
func (c LogConfig) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// NWSOptions maps the configuration onto client options
func (c NWSConfig) NWSOptions(log logrus.FieldLogger) nws.Options {
	return nws.Options{
		UserAgent:       c.UserAgent,
		Accept:          c.Accept,
		Timeout:         c.Timeout,
		FollowRedirects: c.FollowRedirects,
		Logger:          log,
	}
}
