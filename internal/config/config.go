// Package config loads registrar configuration by layering defaults,
// an optional YAML file, environment variables, and CLI flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/registrar/internal/fixture"
)

// envPrefix is the prefix for environment overrides, e.g.
// REGISTRAR_DATABASE or REGISTRAR_SEED__STUDENTS (double underscore
// separates nesting levels so keys may themselves contain underscores).
const envPrefix = "REGISTRAR_"

// SeedCounts configures fixture generation sizes.
type SeedCounts struct {
	Departments      int `koanf:"departments"`
	Programs         int `koanf:"programs"`
	Committees       int `koanf:"committees"`
	Lecturers        int `koanf:"lecturers"`
	Courses          int `koanf:"courses"`
	Students         int `koanf:"students"`
	Enrollments      int `koanf:"enrollments"`
	Organizations    int `koanf:"organizations"`
	CommitteeMembers int `koanf:"committee_members"`
	TeamMembers      int `koanf:"team_members"`
	Projects         int `koanf:"projects"`
	Publications     int `koanf:"publications"`
	Staff            int `koanf:"staff"`
}

// Config is the resolved registrar configuration.
type Config struct {
	Database string     `koanf:"database"`
	LogLevel string     `koanf:"log_level"`
	Seed     SeedCounts `koanf:"seed"`
}

// Counts converts the configured seed sizes to fixture counts.
func (c *Config) Counts() fixture.Counts {
	return fixture.Counts{
		Departments:      c.Seed.Departments,
		Programs:         c.Seed.Programs,
		Committees:       c.Seed.Committees,
		Lecturers:        c.Seed.Lecturers,
		Courses:          c.Seed.Courses,
		Students:         c.Seed.Students,
		Enrollments:      c.Seed.Enrollments,
		Organizations:    c.Seed.Organizations,
		CommitteeMembers: c.Seed.CommitteeMembers,
		TeamMembers:      c.Seed.TeamMembers,
		Projects:         c.Seed.Projects,
		Publications:     c.Seed.Publications,
		Staff:            c.Seed.Staff,
	}
}

func defaults() map[string]any {
	counts := fixture.DefaultCounts()
	return map[string]any{
		"database":               "registrar.db",
		"log_level":              "info",
		"seed.departments":       counts.Departments,
		"seed.programs":          counts.Programs,
		"seed.committees":        counts.Committees,
		"seed.lecturers":         counts.Lecturers,
		"seed.courses":           counts.Courses,
		"seed.students":          counts.Students,
		"seed.enrollments":       counts.Enrollments,
		"seed.organizations":     counts.Organizations,
		"seed.committee_members": counts.CommitteeMembers,
		"seed.team_members":      counts.TeamMembers,
		"seed.projects":          counts.Projects,
		"seed.publications":      counts.Publications,
		"seed.staff":             counts.Staff,
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > registrar.yaml > registrar.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"registrar.yaml", "registrar.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves configuration. Layer order, later wins:
// defaults < config file < environment < flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set; flag names use
			// dashes, config keys use underscores.
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
