// Package config provides configuration management for the
// quickcalc CLI.
package config

// ServeConfig holds configuration for the HTTP API server.
type ServeConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// Config holds all CLI configuration options.
type Config struct {
	Precision    int         `koanf:"precision"`
	OutputFormat string      `koanf:"output"`
	Verbose      bool        `koanf:"verbose"`
	HistoryFile  string      `koanf:"history_file"`
	Serve        ServeConfig `koanf:"serve"`
}

// Defaults
const (
	DefaultPrecision   = 6
	DefaultOutput      = "auto"
	DefaultServeHost   = "localhost"
	DefaultServePort   = 8642
	DefaultHistoryFile = ".quickcalc_history"
)
