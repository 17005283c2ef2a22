package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration, loaded from a YAML file. A missing
// file is not an error; defaults apply.
type Config struct {
	// ListenAddr is the HTTP listen address for the API.
	ListenAddr string `yaml:"listen_addr"`

	// DatabasePath is the SQLite file backing the event collection.
	DatabasePath string `yaml:"database_path"`

	// Timezone is the IANA zone reminders are evaluated in.
	Timezone string `yaml:"timezone"`

	// SummaryTime is the wall time ("HH:MM") of the daily schedule summary.
	SummaryTime string `yaml:"summary_time"`

	// ReminderLeadMinutes is how long before an event's start the reminder
	// sweep fires.
	ReminderLeadMinutes int `yaml:"reminder_lead_minutes"`

	location *time.Location
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// First run; keep defaults.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.normalize()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

func (c *Config) normalize() {
	if c.ListenAddr == "" {
		c.ListenAddr = "127.0.0.1:8080"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "./data/timely.db"
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.SummaryTime == "" {
		c.SummaryTime = "09:00"
	}
	if c.ReminderLeadMinutes <= 0 {
		c.ReminderLeadMinutes = 10
	}
}

// Location returns the resolved reminder timezone.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
