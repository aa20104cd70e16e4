package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrSettingsCorrupted indicates the settings file exists but cannot be decoded.
var ErrSettingsCorrupted = errors.New("settings file corrupted")

// ErrUnknownTheme is returned by ParseTheme for names other than light and dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme is used when no preference has been saved.
	DefaultTheme = ThemeDark
)

// ParseTheme parses a case-insensitive theme name.
func ParseTheme(name string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(name))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q (want light or dark)", ErrUnknownTheme, name)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) String() string { return string(t) }

// Settings are user preferences that change at runtime, unlike Config.
type Settings struct {
	Theme Theme `json:"theme"`
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() Settings {
	return Settings{Theme: DefaultTheme}
}

// SettingsStore loads and saves Settings.
type SettingsStore interface {
	Load() (Settings, error)
	Save(Settings) error
}

// FileSettingsStore persists Settings as JSON.
type FileSettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewFileSettingsStore returns a store backed by filePath. An empty path
// selects settings.json in the configuration directory.
func NewFileSettingsStore(filePath string) (*FileSettingsStore, error) {
	if filePath == "" {
		var err error
		if filePath, err = DefaultSettingsPath(); err != nil {
			return nil, err
		}
	}
	return &FileSettingsStore{filePath: filePath}, nil
}

// FilePath returns the backing file path.
func (s *FileSettingsStore) FilePath() string { return s.filePath }

// Load reads the settings file. A missing file yields DefaultSettings;
// undecodable content or an unknown theme yields ErrSettingsCorrupted.
func (s *FileSettingsStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("reading settings file: %w", err)
	}

	settings := DefaultSettings()
	if unmarshalErr := json.Unmarshal(data, &settings); unmarshalErr != nil {
		return DefaultSettings(), fmt.Errorf("%w: %w", ErrSettingsCorrupted, unmarshalErr)
	}

	theme, err := ParseTheme(string(settings.Theme))
	if err != nil {
		return DefaultSettings(), fmt.Errorf("%w: %w", ErrSettingsCorrupted, err)
	}
	settings.Theme = theme
	return settings, nil
}

// Save writes the settings atomically via a temp file and rename.
func (s *FileSettingsStore) Save(settings Settings) error {
	if _, err := ParseTheme(string(settings.Theme)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(s.filePath), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating settings directory: %w", mkdirErr)
	}

	tmpPath := s.filePath + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing settings temp file: %w", writeErr)
	}

	if renameErr := os.Rename(tmpPath, s.filePath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming settings temp file: %w", renameErr)
	}
	return nil
}

// MemorySettingsStore keeps Settings in memory.
type MemorySettingsStore struct {
	mu       sync.Mutex
	settings Settings
	saves    int
}

// NewMemorySettingsStore returns a store holding initial.
func NewMemorySettingsStore(initial Settings) *MemorySettingsStore {
	return &MemorySettingsStore{settings: initial}
}

// Load returns the stored settings.
func (m *MemorySettingsStore) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

// Save replaces the stored settings.
func (m *MemorySettingsStore) Save(settings Settings) error {
	if _, err := ParseTheme(string(settings.Theme)); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemorySettingsStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
