package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/tnguyen21/funtab/internal/logging"
)

const DefaultConfigPath = "~/.config/funtab/funtab.yaml"

type Padding struct {
	Start  int `yaml:"start"`
	Top    int `yaml:"top"`
	End    int `yaml:"end"`
	Bottom int `yaml:"bottom"`
}

// Strip holds the tab strip settings. Colors take any form lipgloss.Color
// does: "#rgb" or "#rrggbb" hex, or an ANSI color number such as "12" or
// "208". Empty colors select the theme defaults.
type Strip struct {
	VisibleTabs       int     `yaml:"visible_tabs"`
	IndicatorHeight   int     `yaml:"indicator_height"`
	IndicatorColor    string  `yaml:"indicator_color"`
	SelectedTextColor string  `yaml:"selected_text_color"`
	DefaultTextColor  string  `yaml:"default_text_color"`
	Background        string  `yaml:"background"`
	Padding           Padding `yaml:"padding"`
}

// Page is one configured page. Text is used when File is empty.
type Page struct {
	Title string `yaml:"title"`
	File  string `yaml:"file"`
	Text  string `yaml:"text"`
}

type Config struct {
	Port           int    `yaml:"port"`
	HostKeyDir     string `yaml:"host_key_dir"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
	ReloadInterval int    `yaml:"reload_interval"`
	AnimationMS    int    `yaml:"animation_ms"`
	Strip          Strip  `yaml:"strip"`
	Pages          []Page `yaml:"pages"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Port:           2222,
		HostKeyDir:     filepath.Join(home, ".ssh"),
		LogLevel:       logging.DefaultLevel,
		ReloadInterval: 5,
		AnimationMS:    250,
		Strip: Strip{
			VisibleTabs:     4,
			IndicatorHeight: 1,
			Padding:         Padding{Start: 1, End: 1},
		},
	}
}

// Reload returns the page reload interval, or zero when reloading is off.
func (c Config) Reload() time.Duration {
	return time.Duration(c.ReloadInterval) * time.Second
}

// Animation returns the page transition duration.
func (c Config) Animation() time.Duration {
	return time.Duration(c.AnimationMS) * time.Millisecond
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Load reads the config at path over the defaults. A missing file yields the
// defaults. Relative page files are resolved against the config's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved := expandPath(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", resolved, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", resolved, err)
	}

	cfg.HostKeyDir = expandPath(cfg.HostKeyDir)
	cfg.LogFile = expandPath(cfg.LogFile)
	dir := filepath.Dir(resolved)
	for i, p := range cfg.Pages {
		if p.File == "" {
			continue
		}
		f := expandPath(p.File)
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		cfg.Pages[i].File = f
	}

	if err := validate(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", resolved, err)
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", cfg.Port)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.ReloadInterval < 0 {
		return fmt.Errorf("reload_interval must be >= 0")
	}
	if cfg.AnimationMS < 0 {
		return fmt.Errorf("animation_ms must be >= 0")
	}

	s := cfg.Strip
	if s.VisibleTabs < 1 {
		return fmt.Errorf("strip.visible_tabs must be >= 1")
	}
	if s.IndicatorHeight < 1 {
		return fmt.Errorf("strip.indicator_height must be >= 1")
	}
	p := s.Padding
	if p.Start < 0 || p.Top < 0 || p.End < 0 || p.Bottom < 0 {
		return fmt.Errorf("strip.padding must not be negative")
	}
	colors := []struct{ name, value string }{
		{"indicator_color", s.IndicatorColor},
		{"selected_text_color", s.SelectedTextColor},
		{"default_text_color", s.DefaultTextColor},
		{"background", s.Background},
	}
	for _, c := range colors {
		if c.value != "" && !validColor(c.value) {
			return fmt.Errorf("strip.%s %q is not a hex color or ANSI color number", c.name, c.value)
		}
	}

	for i, p := range cfg.Pages {
		if p.Title == "" {
			return fmt.Errorf("pages[%d]: title is required", i)
		}
		if p.File != "" && p.Text != "" {
			return fmt.Errorf("pages[%d]: set file or text, not both", i)
		}
	}

	return nil
}

// validColor reports whether lipgloss can render c. lipgloss hands color
// strings to termenv, which yields nil for anything it cannot parse.
func validColor(c string) bool {
	return termenv.TrueColor.Color(c) != nil
}
