package model

import "time"

// Config holds the complete application configuration
type Config struct {
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// CacheConfig controls the pipeline result cache. The resolution core itself
// never caches; this only memoizes identical order payloads at the caller
// layer.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ServerConfig controls the HTTP facade
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	RatePerSecond   float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst       int           `yaml:"rate_burst" mapstructure:"rate_burst"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// BatchConfig controls concurrent batch resolution
type BatchConfig struct {
	Concurrency int           `yaml:"concurrency" mapstructure:"concurrency"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.checking-central/cache at load time
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			RatePerSecond:   10,
			RateBurst:       20,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Batch: BatchConfig{
			Concurrency: 4,
			Timeout:     10 * time.Minute,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
