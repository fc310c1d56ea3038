// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vibeos/vibe-os/internal/model"
)

const appName = "vibe-os"

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`
	Timer   TimerConfig   `yaml:"timer" mapstructure:"timer"`
	Audio   AudioConfig   `yaml:"audio" mapstructure:"audio"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // "sqlite", "file" or "memory"
	Path    string `yaml:"path,omitempty" mapstructure:"path"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode             bool   `yaml:"vim_mode" mapstructure:"vim_mode"`
	Theme               string `yaml:"theme,omitempty" mapstructure:"theme"`
	StartTab            string `yaml:"start_tab,omitempty" mapstructure:"start_tab"` // "tasks", "habits" or "focus"
	CalendarDefaultView string `yaml:"calendar_default_view,omitempty" mapstructure:"calendar_default_view"` // "compact" or "expanded"
}

// TimerConfig holds the countdown presets in minutes.
type TimerConfig struct {
	FocusMinutes      int `yaml:"focus_minutes" mapstructure:"focus_minutes"`
	ShortBreakMinutes int `yaml:"short_break_minutes" mapstructure:"short_break_minutes"`
	LongBreakMinutes  int `yaml:"long_break_minutes" mapstructure:"long_break_minutes"`
}

// AudioConfig controls music, sound effects and notifications.
type AudioConfig struct {
	Music         bool     `yaml:"music" mapstructure:"music"`
	Player        []string `yaml:"player" mapstructure:"player"`
	StreamURL     string   `yaml:"stream_url" mapstructure:"stream_url"`
	Sounds        bool     `yaml:"sounds" mapstructure:"sounds"`
	Notifications bool     `yaml:"notifications" mapstructure:"notifications"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file,omitempty" mapstructure:"file"`
}

// DefaultStreamURL is the lo-fi radio stream played by the music toggle.
const DefaultStreamURL = "https://stream.zeno.fm/0r0xa792kwzuv"

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: "sqlite"},
		UI: UIConfig{
			VimMode:             true,
			Theme:               model.DefaultTheme,
			StartTab:            "tasks",
			CalendarDefaultView: "compact",
		},
		Timer: TimerConfig{
			FocusMinutes:      25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
		},
		Audio: AudioConfig{
			Music:         true,
			Player:        []string{"mpv", "--no-video", "--really-quiet"},
			StreamURL:     DefaultStreamURL,
			Sounds:        true,
			Notifications: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// FocusDuration and friends convert the presets, ignoring non-positive values.
func (t TimerConfig) FocusDuration() time.Duration {
	return minutes(t.FocusMinutes, 25)
}

func (t TimerConfig) ShortBreakDuration() time.Duration {
	return minutes(t.ShortBreakMinutes, 5)
}

func (t TimerConfig) LongBreakDuration() time.Duration {
	return minutes(t.LongBreakMinutes, 15)
}

func minutes(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Minute
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DataDir returns the directory holding the database and log file.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/vibe-os/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// StorageDir returns the configured storage path or the data directory.
func (c *Config) StorageDir() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	return DataDir()
}

// Load reads the configuration file at path (the default path when empty)
// and applies VIBE_* environment overrides, e.g. VIBE_TIMER_FOCUS_MINUTES.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("VIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that are
// absent from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("ui.vim_mode", d.UI.VimMode)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.start_tab", d.UI.StartTab)
	v.SetDefault("ui.calendar_default_view", d.UI.CalendarDefaultView)
	v.SetDefault("timer.focus_minutes", d.Timer.FocusMinutes)
	v.SetDefault("timer.short_break_minutes", d.Timer.ShortBreakMinutes)
	v.SetDefault("timer.long_break_minutes", d.Timer.LongBreakMinutes)
	v.SetDefault("audio.music", d.Audio.Music)
	v.SetDefault("audio.player", d.Audio.Player)
	v.SetDefault("audio.stream_url", d.Audio.StreamURL)
	v.SetDefault("audio.sounds", d.Audio.Sounds)
	v.SetDefault("audio.notifications", d.Audio.Notifications)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Save writes the configuration to path (the default path when empty).
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
