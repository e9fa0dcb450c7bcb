package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Relay     RelayConfig     `yaml:"relay"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host" envconfig:"SERVER_HOST"`
	Port         int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
}

// ExtractorConfig holds extraction engine configuration.
type ExtractorConfig struct {
	BinPath    string        `yaml:"bin_path" envconfig:"EXTRACTOR_BIN"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"EXTRACTOR_TIMEOUT"`
	Quiet      bool          `yaml:"quiet" envconfig:"EXTRACTOR_QUIET"`
	NoWarnings bool          `yaml:"no_warnings" envconfig:"EXTRACTOR_NO_WARNINGS"`
	Format     string        `yaml:"format" envconfig:"EXTRACTOR_FORMAT"`
}

// RelayConfig holds streaming relay configuration.
type RelayConfig struct {
	UserAgent string `yaml:"user_agent" envconfig:"RELAY_USER_AGENT"`
	// HeaderTimeout bounds the wait for origin response headers. The body
	// itself has no overall deadline so arbitrarily large files can relay.
	HeaderTimeout time.Duration `yaml:"header_timeout" envconfig:"RELAY_HEADER_TIMEOUT"`
	ChunkSize     int           `yaml:"chunk_size" envconfig:"RELAY_CHUNK_SIZE"`
}

// Default returns the built-in configuration values. Defaults live here
// rather than in envconfig tags: a tag default would be re-applied on
// every Process call and overwrite values read from the config file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         5000,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 0,
		},
		Extractor: ExtractorConfig{
			BinPath:    "yt-dlp",
			Timeout:    2 * time.Minute,
			Quiet:      true,
			NoWarnings: true,
			Format:     "best",
		},
		Relay: RelayConfig{
			UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			HeaderTimeout: 30 * time.Second,
			ChunkSize:     4096,
		},
	}
}

// Load reads configuration from file and environment variables.
// Precedence, lowest to highest: built-in defaults, config file,
// environment variables.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	// Overlay values from the YAML file if provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Override with environment variables. Fields without a set env var
	// keep their current value.
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Extractor.BinPath == "" {
		return fmt.Errorf("EXTRACTOR_BIN is required")
	}
	if c.Relay.ChunkSize <= 0 {
		return fmt.Errorf("invalid relay chunk size: %d", c.Relay.ChunkSize)
	}
	return nil
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
