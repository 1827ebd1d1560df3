package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"easyip-setup/internal/easyip"
)

var (
	ErrUnknownFormat = errors.New("config: unknown file format")
	ErrNoSourceMac   = errors.New("config: source mac is not set")
	ErrNoSourceIP    = errors.New("config: source ip is not set")
)

// Config is the setup tool configuration
type Config struct {
	// Source identifies this tool in the requests it builds
	Source Source

	// Capture is the default capture file for decode and browse
	Capture string

	LogLevel string

	// StaleAfter hides cameras that have not replied for this long in the browser
	StaleAfter time.Duration

	// ReplayInterval paces replayed captures
	ReplayInterval time.Duration
}

// Source is the hardware and IPv4 address of the setup tool
type Source struct {
	MAC string `yaml:"mac" toml:"mac"`
	IP  string `yaml:"ip" toml:"ip"`
}

// fileConfig mirrors Config with durations as text
type fileConfig struct {
	Source         Source `yaml:"source" toml:"source"`
	Capture        string `yaml:"capture" toml:"capture"`
	LogLevel       string `yaml:"log_level" toml:"log_level"`
	StaleAfter     string `yaml:"stale_after" toml:"stale_after"`
	ReplayInterval string `yaml:"replay_interval" toml:"replay_interval"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		LogLevel:       log.InfoLevel.String(),
		StaleAfter:     5 * time.Minute,
		ReplayInterval: 100 * time.Millisecond,
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over Default()
func Load(path string) (Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".toml":
		return loadTOML(path)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

func loadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return raw.overlay(Default(), func(...string) bool { return true })
}

func loadTOML(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return raw.overlay(Default(), meta.IsDefined)
}

// overlay applies set values onto cfg. For YAML every non-empty value
// counts as set; TOML reports which keys the file defined.
func (raw fileConfig) overlay(cfg Config, defined func(...string) bool) (Config, error) {
	if v := strings.TrimSpace(raw.Source.MAC); v != "" && defined("source", "mac") {
		cfg.Source.MAC = v
	}
	if v := strings.TrimSpace(raw.Source.IP); v != "" && defined("source", "ip") {
		cfg.Source.IP = v
	}
	if v := strings.TrimSpace(raw.Capture); v != "" && defined("capture") {
		cfg.Capture = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" && defined("log_level") {
		if _, err := log.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.StaleAfter); v != "" && defined("stale_after") {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse stale_after: %w", err)
		}
		cfg.StaleAfter = d
	}
	if v := strings.TrimSpace(raw.ReplayInterval); v != "" && defined("replay_interval") {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse replay_interval: %w", err)
		}
		cfg.ReplayInterval = d
	}

	return cfg, nil
}

// SourceIdentity parses the configured source addresses
func (c Config) SourceIdentity() (easyip.MacAddress, easyip.IPv4Address, error) {
	if c.Source.MAC == "" {
		return easyip.MacAddress{}, easyip.IPv4Address{}, ErrNoSourceMac
	}
	if c.Source.IP == "" {
		return easyip.MacAddress{}, easyip.IPv4Address{}, ErrNoSourceIP
	}

	mac, err := easyip.ParseMacAddress(c.Source.MAC)
	if err != nil {
		return easyip.MacAddress{}, easyip.IPv4Address{}, fmt.Errorf("source mac: %w", err)
	}
	ip, err := easyip.ParseIPv4Address(c.Source.IP)
	if err != nil {
		return easyip.MacAddress{}, easyip.IPv4Address{}, fmt.Errorf("source ip: %w", err)
	}

	return mac, ip, nil
}

// Level returns the configured log level, falling back to info
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
