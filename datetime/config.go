package datetime

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// NoTimezone disables the default time zone, so zone-less inputs are read in
// local time.
const NoTimezone = "none"

var zoneRegexp = regexp.MustCompile(`^(Z|[+-]\d{2}:\d{2})$`)

// Config is the YAML form of an IsoFormatter configuration:
//
//	default_timezone: "+02:00"   # or "Z" (default), or "none"
type Config struct {
	DefaultTimezone string `yaml:"default_timezone,omitempty"`
}

// LoadConfig loads and parses a YAML formatter configuration from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read formatter config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse formatter config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional settings.
func applyDefaults(cfg *Config) {
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "Z"
	}
}

// Validate checks the zone designator.
func (c *Config) Validate() error {
	if c.DefaultTimezone == NoTimezone || zoneRegexp.MatchString(c.DefaultTimezone) {
		return nil
	}

	return fmt.Errorf("invalid default_timezone %q: want Z, ±HH:MM or %q", c.DefaultTimezone, NoTimezone)
}

// Formatter builds the IsoFormatter described by the configuration.
func (c *Config) Formatter() *IsoFormatter {
	f := NewIsoFormatter()
	if c.DefaultTimezone == NoTimezone {
		f.DefaultTimezone = ""
	} else if c.DefaultTimezone != "" {
		f.DefaultTimezone = c.DefaultTimezone
	}

	return f
}
