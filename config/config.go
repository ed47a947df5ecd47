// Package config loads fontview settings from defaults, a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/fontview/audio"
	"github.com/lixenwraith/fontview/catalog"
	"github.com/lixenwraith/fontview/display"
	"github.com/lixenwraith/fontview/input"
)

// EnvPrefix prefixes every environment override, e.g. FONTVIEW_DISPLAY_COLS
const EnvPrefix = "FONTVIEW"

// Config holds application configuration
type Config struct {
	Assets  AssetsConfig  `mapstructure:"assets"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Display DisplayConfig `mapstructure:"display"`
	Input   InputConfig   `mapstructure:"input"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
	Frame   FrameConfig   `mapstructure:"frame"`
}

// AssetsConfig locates the tileset sheets
type AssetsConfig struct {
	Root     string `mapstructure:"root"`
	Manifest string `mapstructure:"manifest"` // empty: compiled-in manifest
	Fallback bool   `mapstructure:"fallback"`
}

// CatalogConfig selects the font table
type CatalogConfig struct {
	Table    string `mapstructure:"table"`
	Ordering string `mapstructure:"ordering"` // empty: the table's own ordering
}

// DisplayConfig sizes the logical terminal
type DisplayConfig struct {
	Cols int    `mapstructure:"cols"`
	Rows int    `mapstructure:"rows"`
	FG   string `mapstructure:"fg"`
	BG   string `mapstructure:"bg"`
	Mode string `mapstructure:"mode"` // auto, glyph or text
}

// InputConfig rebinds actions; an empty list keeps the default keys
type InputConfig struct {
	Next     []string `mapstructure:"next"`
	Previous []string `mapstructure:"previous"`
	Refresh  []string `mapstructure:"refresh"`
	Quit     []string `mapstructure:"quit"`

	// Same key again within this window is treated as auto-repeat; 0 disables
	RepeatWindow time.Duration `mapstructure:"repeat_window"`
}

// AudioConfig controls the page-turn click
type AudioConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Frequency float64       `mapstructure:"frequency"`
	Duration  time.Duration `mapstructure:"duration"`
}

// LogConfig enables the debug log file
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// FrameConfig sets the evaluation cycle period
type FrameConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

func setDefaults(v *viper.Viper) {
	def := display.DefaultOptions()
	click := audio.DefaultConfig()

	v.SetDefault("assets.root", "assets")
	v.SetDefault("assets.manifest", "")
	v.SetDefault("assets.fallback", true)
	v.SetDefault("catalog.table", "full")
	v.SetDefault("catalog.ordering", "")
	v.SetDefault("display.cols", def.Cols)
	v.SetDefault("display.rows", def.Rows)
	v.SetDefault("display.fg", "white")
	v.SetDefault("display.bg", "black")
	v.SetDefault("display.mode", def.Mode.String())
	v.SetDefault("input.next", []string{})
	v.SetDefault("input.previous", []string{})
	v.SetDefault("input.refresh", []string{})
	v.SetDefault("input.quit", []string{})
	v.SetDefault("input.repeat_window", 100*time.Millisecond)
	v.SetDefault("audio.enabled", click.Enabled)
	v.SetDefault("audio.frequency", click.Frequency)
	v.SetDefault("audio.duration", click.Duration)
	v.SetDefault("log.debug", false)
	v.SetDefault("frame.interval", 16*time.Millisecond)
}

// Load reads configuration from file and env; env var overrides use prefix FONTVIEW_
// path wins over FONTVIEW_CONFIG, which wins over $HOME/.config/fontview/config.toml
// An explicit file must exist, the default location is optional
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fontview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every value that the previewer would otherwise reject later
func (c Config) Validate() error {
	if _, _, err := c.CatalogEntries(); err != nil {
		return err
	}
	if _, err := c.DisplayOptions(); err != nil {
		return err
	}
	if _, err := input.BuildKeyTable(c.Bindings()); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if c.Input.RepeatWindow < 0 {
		return fmt.Errorf("input.repeat_window must not be negative, got %v", c.Input.RepeatWindow)
	}
	if c.Frame.Interval <= 0 {
		return fmt.Errorf("frame.interval must be positive, got %v", c.Frame.Interval)
	}
	return nil
}

// CatalogEntries returns the selected table and its ordering policy
func (c Config) CatalogEntries() ([]catalog.Descriptor, catalog.Ordering, error) {
	entries, order, err := catalog.Table(c.Catalog.Table)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog.table: %w", err)
	}
	if c.Catalog.Ordering != "" {
		order, err = catalog.ParseOrdering(c.Catalog.Ordering)
		if err != nil {
			return nil, 0, fmt.Errorf("catalog.ordering: %w", err)
		}
	}
	return entries, order, nil
}

// DisplayOptions converts the display section
func (c Config) DisplayOptions() (display.Options, error) {
	if c.Display.Cols <= 0 || c.Display.Rows <= 0 {
		return display.Options{}, fmt.Errorf("display grid must be positive, got %dx%d", c.Display.Cols, c.Display.Rows)
	}
	fg, err := display.ParseColor(c.Display.FG)
	if err != nil {
		return display.Options{}, fmt.Errorf("display.fg: %w", err)
	}
	bg, err := display.ParseColor(c.Display.BG)
	if err != nil {
		return display.Options{}, fmt.Errorf("display.bg: %w", err)
	}
	mode, err := display.ParseMode(c.Display.Mode)
	if err != nil {
		return display.Options{}, fmt.Errorf("display.mode: %w", err)
	}
	return display.Options{
		Cols:       c.Display.Cols,
		Rows:       c.Display.Rows,
		Foreground: fg,
		Background: bg,
		Mode:       mode,
	}, nil
}

// Bindings converts the input section, skipping unset actions
func (c Config) Bindings() input.Bindings {
	b := input.Bindings{}
	for name, keys := range map[string][]string{
		input.ActionNext.String():     c.Input.Next,
		input.ActionPrevious.String(): c.Input.Previous,
		input.ActionRefresh.String():  c.Input.Refresh,
		input.ActionQuit.String():     c.Input.Quit,
	} {
		if len(keys) > 0 {
			b[name] = keys
		}
	}
	return b
}

// Click converts the audio section
func (c Config) Click() audio.Config {
	return audio.Config{
		Enabled:   c.Audio.Enabled,
		Frequency: c.Audio.Frequency,
		Duration:  c.Audio.Duration,
	}
}
