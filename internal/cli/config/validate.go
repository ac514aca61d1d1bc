package config

import "fmt"

// validOutputFormats lists the accepted values for --output.
var validOutputFormats = map[string]bool{
	"auto": true,
	"text": true,
	"json": true,
}

// Validate checks the configuration for values that would fail at
// first use, so problems surface before any command runs.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 15 {
		return fmt.Errorf("invalid precision %d: must be between 0 and 15", c.Precision)
	}
	if !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q: must be auto, text, or json", c.OutputFormat)
	}
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("invalid serve port %d: must be between 1 and 65535", c.Serve.Port)
	}
	return nil
}
