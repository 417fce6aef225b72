// Package config handles loading and validation of andon.yaml configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andon-systems/andon/pkg/types"
)

// Defaults mirrored from the plant's standing configuration.
const (
	DefaultTimezone        = "America/Mexico_City"
	DefaultRate            = 50
	DefaultRefreshInterval = "60s"
	DefaultStopCapMinutes  = 30
	DefaultFinishingDept   = "acabados"
)

// DefaultShifts is the plant shift table used when the config omits one.
func DefaultShifts() map[string]types.ShiftDef {
	return map[string]types.ShiftDef{
		"A":      {Start: "07:30", End: "17:06"},
		"A + TE": {Start: "07:30", End: "19:30"},
		"C":      {Start: "23:00", End: "07:30"},
		"C + TE": {Start: "19:30", End: "07:30"},
		"1":      {Start: "07:30", End: "15:30"},
		"2":      {Start: "15:30", End: "23:00"},
	}
}

// DefaultProgrammedKeywords flags statuses excused as programmed stops.
func DefaultProgrammedKeywords() []string {
	return []string{
		"comida", "break", "lunch", "meal", "descanso", "break time",
		"almuerzo", "cena", "coffee break", "rest", "clockout",
	}
}

// DefaultRunningKeywords flags statuses that mean the machine is producing.
func DefaultRunningKeywords() []string {
	return []string{"corriendo", "running", "producción", "production"}
}

// Load reads and parses an andon.yaml file, applying defaults and validating.
func Load(path string) (*types.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg types.AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *types.AppConfig) {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.DefaultRate <= 0 {
		cfg.DefaultRate = DefaultRate
	}
	if cfg.RefreshInterval == "" {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.ProgrammedStopCap <= 0 {
		cfg.ProgrammedStopCap = DefaultStopCapMinutes
	}
	if cfg.FinishingDepartment == "" {
		cfg.FinishingDepartment = DefaultFinishingDept
	}
	if len(cfg.Shifts) == 0 {
		cfg.Shifts = DefaultShifts()
	}
	if len(cfg.ProgrammedKeywords) == 0 {
		cfg.ProgrammedKeywords = DefaultProgrammedKeywords()
	}
	if len(cfg.RunningKeywords) == 0 {
		cfg.RunningKeywords = DefaultRunningKeywords()
	}
}

// Validate checks that the configuration is internally consistent.
func Validate(cfg *types.AppConfig) error {
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	if _, err := time.ParseDuration(cfg.RefreshInterval); err != nil {
		return fmt.Errorf("invalid refreshInterval %q: %w", cfg.RefreshInterval, err)
	}
	for code, def := range cfg.Shifts {
		if _, err := parseTimeOfDay(def.Start); err != nil {
			return fmt.Errorf("shift %q start: %w", code, err)
		}
		if _, err := parseTimeOfDay(def.End); err != nil {
			return fmt.Errorf("shift %q end: %w", code, err)
		}
	}
	for _, entry := range cfg.Taxonomy {
		if entry.Status == "" {
			return fmt.Errorf("taxonomy entry with empty status")
		}
		if entry.Class == "" {
			return fmt.Errorf("taxonomy entry %q has no class", entry.Status)
		}
	}
	if err := validateSource("production", cfg.Sources.Production); err != nil {
		return err
	}
	if err := validateSource("scrap", cfg.Sources.Scrap); err != nil {
		return err
	}
	if err := validateSource("statusLog", cfg.Sources.StatusLog); err != nil {
		return err
	}
	if err := validateSource("costs", cfg.Sources.Costs); err != nil {
		return err
	}
	return nil
}

func validateSource(name string, src types.SourceConfig) error {
	switch src.Kind {
	case types.SourceFile:
		if src.Path == "" {
			return fmt.Errorf("source %s: path is required for kind file", name)
		}
	case types.SourceHTTP:
		if src.URL == "" {
			return fmt.Errorf("source %s: url is required for kind http", name)
		}
	case "":
		return fmt.Errorf("source %s: kind is required", name)
	default:
		return fmt.Errorf("source %s: unknown kind %q", name, src.Kind)
	}
	return nil
}

func parseTimeOfDay(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}
