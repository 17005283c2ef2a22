package service

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/timely-app/timely/internal/domain"
	"github.com/timely-app/timely/internal/storage"
)

// Setting keys in the settings table. One row per preference, matching the
// shape the web client keeps in its own local storage.
const (
	keyStartWeekMonday = "startWeekMonday"
	keyTimezone        = "timezone"
	keyTimeFormat      = "timeFormat"
	keyDateFormat      = "dateFormat"
	keyTheme           = "theme"
)

// SettingsService persists user preferences and hands the current snapshot
// to anything that needs it. The core never reads these ambiently; callers
// pass the values on as explicit parameters.
type SettingsService struct {
	mu      sync.RWMutex
	storage *storage.Storage
	current domain.Settings
}

func NewSettingsService(st *storage.Storage) *SettingsService {
	return &SettingsService{
		storage: st,
		current: domain.DefaultSettings(),
	}
}

// Load reads the stored preferences, keeping defaults for anything unset.
func (s *SettingsService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()

	if v, ok, err := s.storage.GetSetting(keyStartWeekMonday); err != nil {
		return fmt.Errorf("load settings: %w", err)
	} else if ok {
		settings.StartWeekMonday = v == "true"
	}
	if v, ok, _ := s.storage.GetSetting(keyTimezone); ok {
		settings.Timezone = v
	}
	if v, ok, _ := s.storage.GetSetting(keyTimeFormat); ok {
		settings.TimeFormat = domain.TimeFormat(v)
	}
	if v, ok, _ := s.storage.GetSetting(keyDateFormat); ok {
		settings.DateFormat = domain.DateFormat(v)
	}
	if v, ok, _ := s.storage.GetSetting(keyTheme); ok {
		settings.Theme = v
	}

	settings.Normalize()
	s.current = settings
	return nil
}

// Get returns the current settings snapshot.
func (s *SettingsService) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces the settings wholesale and persists each key.
func (s *SettingsService) Update(settings domain.Settings) error {
	settings.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	pairs := map[string]string{
		keyStartWeekMonday: strconv.FormatBool(settings.StartWeekMonday),
		keyTimezone:        settings.Timezone,
		keyTimeFormat:      string(settings.TimeFormat),
		keyDateFormat:      string(settings.DateFormat),
		keyTheme:           settings.Theme,
	}
	for key, value := range pairs {
		if err := s.storage.SetSetting(key, value); err != nil {
			return fmt.Errorf("save setting %s: %w", key, err)
		}
	}

	s.current = settings
	return nil
}
