// internal/config/settings.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are read once at process start and never re-read during a run.
type Settings struct {
	Towers      int
	Units       int
	Paused      bool
	Interactive bool
	// Seed for the spawn PRNG; 0 seeds from the clock.
	Seed int64
	// MaxSteps stops a run after that many simulation steps; 0 means no limit.
	MaxSteps int
	// LogLevel is the zap level: Debug(-1), Info(0), Warn(1), Error(2).
	LogLevel      int
	LogTimeFormat string
	// ScenarioFile is an optional JSON scenario replacing the built-in one.
	ScenarioFile string
}

func DefaultSettings() Settings {
	return Settings{
		Towers: DefaultTowers,
		Units:  DefaultUnits,
	}
}

// LoadSettings layers, from lowest to highest precedence: defaults, the .env
// file in the working directory, TD_* environment variables, command-line
// flags.
func LoadSettings(args []string) (Settings, error) {
	return load(args, os.LookupEnv, EnvFile)
}

func load(args []string, lookup func(string) (string, bool), envFile string) (Settings, error) {
	s := DefaultSettings()

	fileVars, err := readEnvFile(envFile)
	if err != nil {
		return Settings{}, err
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := fileVars[EnvPrefix+key]
		return v, ok
	}
	if err := s.applyEnv(get); err != nil {
		return Settings{}, err
	}

	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	fs.IntVar(&s.Towers, "towers", s.Towers, "number of towers spawned at start")
	fs.IntVar(&s.Units, "units", s.Units, "number of units per spawn batch")
	fs.BoolVar(&s.Paused, "paused", s.Paused, "start paused")
	fs.BoolVar(&s.Interactive, "i", s.Interactive, "read one command from stdin between simulation steps")
	fs.BoolVar(&s.Interactive, "interactive", s.Interactive, "same as -i")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "PRNG seed (0 = now)")
	fs.IntVar(&s.MaxSteps, "max-steps", s.MaxSteps, "stop after N steps (0 = run until no units are left)")
	fs.IntVar(&s.LogLevel, "log-level", s.LogLevel, "global log level")
	fs.StringVar(&s.LogTimeFormat, "log-time-format", s.LogTimeFormat,
		"print time format for logger e.g. 2006-01-02T15:04:05Z07:00")
	fs.StringVar(&s.ScenarioFile, "scenario", s.ScenarioFile, "JSON scenario file")
	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects counts the simulation cannot honour.
func (s Settings) Validate() error {
	if s.Towers < 0 {
		return fmt.Errorf("%w: towers must be >= 0, got %d", ErrInvalidSettings, s.Towers)
	}
	if s.Units < 0 {
		return fmt.Errorf("%w: units must be >= 0, got %d", ErrInvalidSettings, s.Units)
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("%w: max-steps must be >= 0, got %d", ErrInvalidSettings, s.MaxSteps)
	}
	// Nothing could toggle pause off without input.
	if s.Paused && !s.Interactive {
		return fmt.Errorf("%w: paused start requires interactive mode", ErrInvalidSettings)
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return vars, nil
}

func (s *Settings) applyEnv(get func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"TOWERS", &s.Towers},
		{"UNITS", &s.Units},
		{"MAX_STEPS", &s.MaxSteps},
		{"LOG_LEVEL", &s.LogLevel},
	}
	for _, f := range ints {
		if v, ok := get(f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidSettings, EnvPrefix, f.key, v, err)
			}
			*f.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"PAUSED", &s.Paused},
		{"INTERACTIVE", &s.Interactive},
	}
	for _, f := range bools {
		if v, ok := get(f.key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidSettings, EnvPrefix, f.key, v, err)
			}
			*f.dst = b
		}
	}

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %v", ErrInvalidSettings, EnvPrefix, v, err)
		}
		s.Seed = seed
	}
	if v, ok := get("LOG_TIME_FORMAT"); ok {
		s.LogTimeFormat = v
	}
	if v, ok := get("SCENARIO"); ok {
		s.ScenarioFile = v
	}
	return nil
}
