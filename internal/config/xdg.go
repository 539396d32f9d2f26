// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "ripasso", "config.toml")
}

// DefaultDataDir returns the default directory for dataset files.
func DefaultDataDir() string {
	return filepath.Join(XDGDataHome(), "ripasso", "datasets")
}

// WordsPath builds the word dataset path for a language inside dir.
func WordsPath(dir, lang string) string {
	return filepath.Join(dir, "words."+lang+".json")
}

// ConjugationsPath builds the conjugation dataset path for a language inside dir.
func ConjugationsPath(dir, lang string) string {
	return filepath.Join(dir, "conjugations."+lang+".json")
}
