// SPDX-License-Identifier: MIT

// Package config assembles the service configuration from, in increasing
// precedence: built-in defaults, an optional YAML file, an optional .env file
// and the process environment. The result is validated before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/railnet/fare"
	"github.com/katalvlaran/railnet/planner"
)

// Environment variables read by Load.
const (
	EnvConfigFile  = "RAILNET_CONFIG"
	EnvPort        = "PORT"
	EnvGinMode     = "GIN_MODE"
	EnvNetworkFile = "RAILNET_NETWORK_FILE"
	EnvLogLevel    = "RAILNET_LOG_LEVEL"
	EnvLogFormat   = "RAILNET_LOG_FORMAT"
	EnvCORSOrigins = "RAILNET_CORS_ORIGINS"
)

// DefaultFile is the YAML file read when RAILNET_CONFIG is unset.
const DefaultFile = "config.yml"

// ErrInvalidConfig wraps every decoding, override or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full service configuration.
type Config struct {
	Server  Server      `yaml:"server"`
	CORS    CORS        `yaml:"cors"`
	Network Network     `yaml:"network"`
	Tariff  fare.Tariff `yaml:"tariff"`
	Cache   Cache       `yaml:"cache"`
	Log     Log         `yaml:"log"`
}

// Server configures the HTTP listener.
type Server struct {
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	Mode            string        `yaml:"mode" validate:"oneof=debug release test"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// Addr returns the listen address for Port.
func (s Server) Addr() string { return ":" + strconv.Itoa(s.Port) }

// CORS configures cross-origin access for the browser frontend.
type CORS struct {
	AllowOrigins []string      `yaml:"allow_origins" validate:"min=1,dive,required"`
	AllowMethods []string      `yaml:"allow_methods" validate:"min=1,dive,required"`
	AllowHeaders []string      `yaml:"allow_headers" validate:"dive,required"`
	MaxAge       time.Duration `yaml:"max_age" validate:"gte=0"`
}

// Network selects the dataset. An empty File means the embedded Jakarta network.
type Network struct {
	File string `yaml:"file"`
}

// Cache bounds the planner caches.
type Cache struct {
	RouteSize   int           `yaml:"route_size" validate:"gte=0"`
	AnalysisTTL time.Duration `yaml:"analysis_ttl" validate:"gte=0"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: Server{
			Port:            8080,
			Mode:            "release",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		CORS: CORS{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		},
		Tariff: fare.DefaultTariff(),
		Cache: Cache{
			RouteSize:   planner.DefaultRouteCacheSize,
			AnalysisTTL: planner.DefaultAnalysisTTL,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads an optional .env file, then LoadFile on RAILNET_CONFIG
// (default config.yml).
func Load() (*Config, error) {
	_ = godotenv.Load()

	return LoadFile(getEnv(EnvConfigFile, DefaultFile))
}

// LoadFile builds a Config from defaults, the YAML file at path (skipped
// when it does not exist), and environment overrides, then validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// decode overlays a YAML document on cfg; keys absent from the document keep
// their current values.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPort, v, err)
		}
		c.Server.Port = port
	}
	c.Server.Mode = getEnv(EnvGinMode, c.Server.Mode)
	c.Network.File = getEnv(EnvNetworkFile, c.Network.File)
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Log.Format = getEnv(EnvLogFormat, c.Log.Format)
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowOrigins = origins
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
