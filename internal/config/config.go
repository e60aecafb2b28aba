package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
)

// EnvPrefix is the prefix for environment overrides, e.g. SWIPEPAGER_PAGER_DENSITY.
const EnvPrefix = "SWIPEPAGER"

// Config represents the application configuration
type Config struct {
	Version    int          `mapstructure:"version" toml:"version"`
	Pager      PagerConfig  `mapstructure:"pager" toml:"pager"`
	UISettings UISettings   `mapstructure:"ui" toml:"ui"`
	Pages      []PageConfig `mapstructure:"pages" toml:"pages,omitempty"`
}

// PagerConfig tunes the paging container
type PagerConfig struct {
	EdgeOffsetDp   float64 `mapstructure:"edge_offset_dp" toml:"edge_offset_dp"`
	Density        float64 `mapstructure:"density" toml:"density"` // terminal cells per dp
	FlingThreshold float64 `mapstructure:"fling_threshold" toml:"fling_threshold"`
	SettleMs       int     `mapstructure:"settle_ms" toml:"settle_ms"`
	FrameMs        int     `mapstructure:"frame_ms" toml:"frame_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowIndicator bool `mapstructure:"show_indicator" toml:"show_indicator"`
	RememberPage  bool `mapstructure:"remember_page" toml:"remember_page"`
	LastPage      int  `mapstructure:"last_page" toml:"last_page"`
}

// PageConfig describes one page. Body wins over File when both are set.
type PageConfig struct {
	Title  string `mapstructure:"title" toml:"title"`
	Body   string `mapstructure:"body" toml:"body,omitempty"`
	File   string `mapstructure:"file" toml:"file,omitempty"`
	Hidden bool   `mapstructure:"hidden" toml:"hidden,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "swipepager", "config.toml")
}

// NewConfigService creates a config service for path; an empty path means DefaultPath.
// bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string { return cs.filePath }

// Load reads the service's file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = cs.read("")
	}
	if err != nil {
		return nil, err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, PageCount: len(cfg.Pages)})
	}
	return cfg, nil
}

// Save writes config to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	return cs.read(path)
}

func (cs *configService) read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("pager.edge_offset_dp", d.Pager.EdgeOffsetDp)
	v.SetDefault("pager.density", d.Pager.Density)
	v.SetDefault("pager.fling_threshold", d.Pager.FlingThreshold)
	v.SetDefault("pager.settle_ms", d.Pager.SettleMs)
	v.SetDefault("pager.frame_ms", d.Pager.FrameMs)
	v.SetDefault("ui.show_indicator", d.UISettings.ShowIndicator)
	v.SetDefault("ui.remember_page", d.UISettings.RememberPage)
	v.SetDefault("ui.last_page", d.UISettings.LastPage)
}

// normalize replaces values that would break paging with the defaults
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Pager.Density <= 0 {
		c.Pager.Density = d.Pager.Density
	}
	if c.Pager.EdgeOffsetDp < 0 {
		c.Pager.EdgeOffsetDp = d.Pager.EdgeOffsetDp
	}
	if c.Pager.FlingThreshold <= 0 {
		c.Pager.FlingThreshold = d.Pager.FlingThreshold
	}
	if c.Pager.SettleMs < 0 {
		c.Pager.SettleMs = d.Pager.SettleMs
	}
	if c.Pager.FrameMs <= 0 {
		c.Pager.FrameMs = d.Pager.FrameMs
	}
	if c.UISettings.LastPage < 0 {
		c.UISettings.LastPage = 0
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Pager: PagerConfig{
			EdgeOffsetDp:   60,
			Density:        0.1,
			FlingThreshold: 50,
			SettleMs:       500,
			FrameMs:        16,
		},
		UISettings: UISettings{
			ShowIndicator: true,
			RememberPage:  true,
		},
	}
}

// LoadPages turns the configured pages into domain pages, reading File
// entries relative to baseDir.
func LoadPages(pages []PageConfig, baseDir string) ([]domain.Page, error) {
	out := make([]domain.Page, 0, len(pages))
	for i, p := range pages {
		page := domain.Page{Title: p.Title, Body: p.Body, Hidden: p.Hidden}
		if page.Body == "" && p.File != "" {
			path := p.File
			if !filepath.IsAbs(path) && baseDir != "" {
				path = filepath.Join(baseDir, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read page %d: %w", i, err)
			}
			page.Body = string(data)
			page.Source = path
		}
		if page.Title == "" {
			page.Title = defaultTitle(i, page.Source)
		}
		out = append(out, page)
	}
	return out, nil
}

// PagesFromFiles builds one page per file, titled by its base name
func PagesFromFiles(paths []string) ([]domain.Page, error) {
	cfgs := make([]PageConfig, 0, len(paths))
	for _, p := range paths {
		cfgs = append(cfgs, PageConfig{File: p})
	}
	return LoadPages(cfgs, "")
}

func defaultTitle(i int, source string) string {
	if source != "" {
		return filepath.Base(source)
	}
	return fmt.Sprintf("Page %d", i+1)
}
