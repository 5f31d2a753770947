package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrConfig = errors.New("config")

// Config carries everything a single invocation needs. It is loaded once
// and passed down explicitly; nothing reads configuration ad hoc.
type Config struct {
	// NotesDir is the task directory owned by the backing tool.
	NotesDir string
	// Tool is the backing tool executable name.
	Tool string
	// Picker is the external date-picker executable name.
	Picker string
	// DoneDir is the completed-task subdirectory name under NotesDir.
	DoneDir string
}

// wrenConfig mirrors the one key we read from the backing tool's config.
type wrenConfig struct {
	NotesDir string `json:"notes_dir"`
}

// settings is the wrapper's own optional config file. Every field has a
// working default; the file is only for overrides.
type settings struct {
	Tool    string `yaml:"tool"`
	Picker  string `yaml:"picker"`
	DoneDir string `yaml:"done_dir"`
}

// Load reads the backing tool's config and the wrapper's settings from
// their per-user paths. WREN_CONFIG and WRENW_CONFIG override the paths.
func Load() (Config, error) {
	wrenPath := os.Getenv("WREN_CONFIG")
	settingsPath := os.Getenv("WRENW_CONFIG")
	home, _ := os.UserHomeDir()
	if wrenPath == "" {
		if home == "" {
			return Config{}, fmt.Errorf("%w: cannot locate home directory", ErrConfig)
		}
		wrenPath = filepath.Join(home, ".config", "wren", "wren.json")
	}
	if settingsPath == "" && home != "" {
		settingsPath = filepath.Join(home, ".config", "wrenw", "config.yaml")
	}
	return LoadFiles(wrenPath, settingsPath)
}

// LoadFiles loads from explicit paths. The backing tool's config is
// required; the settings file is optional and may be "".
func LoadFiles(wrenPath, settingsPath string) (Config, error) {
	cfg := Config{Tool: "wren", Picker: "zenity", DoneDir: "done"}

	b, err := os.ReadFile(wrenPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: cannot read %s: %v", ErrConfig, wrenPath, err)
	}
	var wc wrenConfig
	if err := json.Unmarshal(b, &wc); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, wrenPath, err)
	}
	if strings.TrimSpace(wc.NotesDir) == "" {
		return Config{}, fmt.Errorf("%w: %s has no notes_dir", ErrConfig, wrenPath)
	}
	cfg.NotesDir = expandHome(strings.TrimSpace(wc.NotesDir))

	if settingsPath != "" {
		if err := loadSettings(settingsPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func loadSettings(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: cannot read %s: %v", ErrConfig, path, err)
	}
	var s settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	if strings.TrimSpace(s.Tool) != "" {
		cfg.Tool = strings.TrimSpace(s.Tool)
	}
	if strings.TrimSpace(s.Picker) != "" {
		cfg.Picker = strings.TrimSpace(s.Picker)
	}
	if strings.TrimSpace(s.DoneDir) != "" {
		cfg.DoneDir = strings.TrimSpace(s.DoneDir)
	}
	return nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || path == "~" {
		home, _ := os.UserHomeDir()
		if home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
