package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vk/plantgen/internal/generate"
	"github.com/vk/plantgen/internal/mapping"
	"github.com/vk/plantgen/internal/usda"
)

// Commands understood by App.Run.
const (
	CommandGenerate = "generate"
	CommandMissing  = "missing"
	CommandFetch    = "fetch"
)

// Commands lists the valid commands, the default first.
var Commands = []string{CommandGenerate, CommandMissing, CommandFetch}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command      string
	CatalogPaths []string // hcl/yaml files or directories; empty selects the built-in catalog

	OutDir       string
	MappingPath  string
	PublicPrefix string

	Tool    string
	Model   string
	Width   int
	Height  int
	Steps   int
	Timeout time.Duration

	Symbols     []string
	USDABaseURL string
	FetchOut    string
	FetchDelay  time.Duration

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in derived defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		cfg.Command = CommandGenerate
	}
	if !isCommand(cfg.Command) {
		return nil, fmt.Errorf("unknown command %q: must be one of %s", cfg.Command, strings.Join(Commands, ", "))
	}
	if cfg.OutDir == "" {
		return nil, errors.New("OutDir is a required configuration field and cannot be empty")
	}
	if cfg.MappingPath == "" {
		cfg.MappingPath = mapping.DefaultPath(cfg.OutDir)
	}
	if cfg.PublicPrefix == "" {
		cfg.PublicPrefix = mapping.DefaultPrefix
	}

	if cfg.Tool == "" {
		cfg.Tool = generate.DefaultCommand
	}
	if cfg.Model == "" {
		cfg.Model = generate.DefaultModel
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	if len(cfg.Symbols) == 0 {
		cfg.Symbols = usda.VirginiaWetlandSymbols
	}
	if cfg.USDABaseURL == "" {
		cfg.USDABaseURL = usda.DefaultBaseURL
	}
	if cfg.FetchOut == "" {
		cfg.FetchOut = DefaultFetchOut
	}
	if cfg.FetchDelay < 0 {
		return nil, fmt.Errorf("fetch delay cannot be negative, got %s", cfg.FetchDelay)
	}

	return &cfg, nil
}

// DefaultFetchOut is where the fetch command writes its catalog.
const DefaultFetchOut = "usda-plants.yaml"

// settings returns the generation parameters carried by the config.
func (c *Config) settings() generate.Settings {
	return generate.Settings{
		Model:   c.Model,
		Width:   c.Width,
		Height:  c.Height,
		Steps:   c.Steps,
		Timeout: c.Timeout,
	}
}

func isCommand(name string) bool {
	for _, c := range Commands {
		if c == name {
			return true
		}
	}
	return false
}
