package config

import (
	"encoding/json"
	"os"

	"github.com/resumebase/visitcount/constants"
)

type Config struct {
	Store   StoreConfig    `json:"store"`
	HTTP    HTTPConfig     `json:"http"`
	Log     LogConfig      `json:"log"`
	Tracing *TracingConfig `json:"tracing,omitempty"`
}

type StoreConfig struct {
	// Driver is one of: dynamo, sqlite, postgres, memory.
	Driver string `json:"driver"`
	// Table is the key-value table name (dynamo).
	Table  string `json:"table"`
	Region string `json:"region,omitempty"`
	// DSN is the data source name for the sql drivers.
	DSN string `json:"dsn,omitempty"`
}

type HTTPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type TracingConfig struct {
	ServiceName string `json:"service_name,omitempty"`
	Exporter    string `json:"exporter,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	return &cfg, nil
}

// FromEnv builds a config from environment variables alone. The Lambda
// deployment has no config file; everything arrives through the environment.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	return cfg
}

// ApplyEnv overlays environment variables onto the config. Environment wins
// over the config file, matching how the original deployment was wired.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.EnvStoreDriver); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv(constants.EnvTableName); v != "" {
		c.Store.Table = v
	}
	if v := os.Getenv(constants.EnvAWSRegion); v != "" {
		c.Store.Region = v
	}
	if v := os.Getenv(constants.EnvDatabaseURL); v != "" {
		c.Store.DSN = v
	}
}

// ApplyDefaults fills in anything still unset.
func (c *Config) ApplyDefaults() {
	if c.Store.Driver == "" {
		c.Store.Driver = constants.DefaultDriver
	}
	if c.Store.Table == "" {
		c.Store.Table = constants.DefaultTableName
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultHTTPPort
	}
}
