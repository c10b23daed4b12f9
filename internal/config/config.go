package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/recera/carousel/pkg/carousel"
)

// FileName is the config file looked up in the project directory
const FileName = "carousel.yaml"

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: CAROUSEL_DEV__PORT sets dev.port.
const EnvPrefix = "CAROUSEL_"

// Config represents carousel.yaml
type Config struct {
	// Gallery manifest, relative to the project directory
	Manifest string `yaml:"manifest" koanf:"manifest"`

	// Directory written by `carousel build`
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`

	// Package compiled to carousel.wasm
	WasmPackage string `yaml:"wasm_package" koanf:"wasm_package"`

	Controller ControllerConfig `yaml:"controller" koanf:"controller"`
	Dev        DevConfig        `yaml:"dev" koanf:"dev"`
}

// ControllerConfig tunes the in-page controller
type ControllerConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold" koanf:"swipe_threshold"`
	FadeTransition string  `yaml:"fade_transition" koanf:"fade_transition"`
	HiddenClass    string  `yaml:"hidden_class" koanf:"hidden_class"`
	Debug          bool    `yaml:"debug" koanf:"debug"`
}

// DevConfig contains development server configuration
type DevConfig struct {
	Host string `yaml:"host" koanf:"host"`
	Port int    `yaml:"port" koanf:"port"`

	// Quiet period before a burst of file events triggers a rebuild
	DebounceMS int `yaml:"debounce_ms" koanf:"debounce_ms"`

	LiveReload bool `yaml:"live_reload" koanf:"live_reload"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Manifest:    "gallery.yaml",
		OutputDir:   "dist",
		WasmPackage: "./cmd/carousel-wasm",
		Controller: ControllerConfig{
			SwipeThreshold: 40,
			FadeTransition: "opacity 0.25s ease",
			HiddenClass:    "hidden",
		},
		Dev: DevConfig{
			Host:       "localhost",
			Port:       8080,
			DebounceMS: 100,
			LiveReload: true,
		},
	}
}

// Load reads configuration from path, then overlays CAROUSEL_* environment
// variables. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps CAROUSEL_DEV__DEBOUNCE_MS to dev.debounce_ms
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Manifest == "" {
		return fmt.Errorf("manifest is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.WasmPackage == "" {
		return fmt.Errorf("wasm_package is required")
	}
	if c.Controller.SwipeThreshold < 0 {
		return fmt.Errorf("controller.swipe_threshold must be non-negative")
	}
	if c.Controller.HiddenClass != "" && strings.ContainsAny(c.Controller.HiddenClass, " \t\n") {
		return fmt.Errorf("controller.hidden_class %q must be a single class name", c.Controller.HiddenClass)
	}
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return fmt.Errorf("dev.port %d out of range", c.Dev.Port)
	}
	if c.Dev.DebounceMS < 0 {
		return fmt.Errorf("dev.debounce_ms must be non-negative")
	}
	return nil
}

// Addr returns the dev server listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Dev.Host, c.Dev.Port)
}

// Options converts the controller section for carousel.NewPage
func (c *Config) Options() *carousel.Options {
	return &carousel.Options{
		SwipeThreshold: c.Controller.SwipeThreshold,
		FadeTransition: c.Controller.FadeTransition,
		HiddenClass:    c.Controller.HiddenClass,
	}
}
