package config

import (
	"errors"
	"math/rand/v2"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings configures one sampling-and-triangulation run.
type Settings struct {
	// Seed parameterizes package sampling's point generator. The value
	// actually used is always reflected back here, even when it was
	// chosen at random because no seed was configured.
	Seed uint64 `yaml:"seed"`

	// Number of points to sample. Defaults to 100, matching the
	// reference launcher's default_number.
	Number int `yaml:"number"`

	// OutputPath is where the rendered PNG is written. Defaults to
	// "./output.png", matching the reference application.
	OutputPath string `yaml:"output_path"`
}

func defaults() Settings {
	return Settings{
		Number:     100,
		OutputPath: "./output.png",
	}
}

// Option overrides a field of Settings after the file and environment
// have been applied, following the functional-options pattern used
// throughout this module.
type Option func(*Settings)

// WithSeed pins the sampling seed.
func WithSeed(seed uint64) Option {
	return func(s *Settings) { s.Seed = seed }
}

// WithNumber overrides the point count.
func WithNumber(n int) Option {
	return func(s *Settings) { s.Number = n }
}

// WithOutputPath overrides the PNG destination.
func WithOutputPath(path string) Option {
	return func(s *Settings) { s.OutputPath = path }
}

// Load resolves Settings from, in increasing precedence: built-in
// defaults, an optional YAML file at path (missing is not an error),
// TRI_SEED / TRI_NUMBER / TRI_OUTPUT_PATH environment variables, and
// opts. If the resolved seed is zero, one is drawn from the process's
// random source and reported back in the returned Settings.
func Load(path string, opts ...Option) (*Settings, error) {
	s := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
			// No config file is not an error; defaults and environment
			// variables still apply.
		default:
			return nil, err
		}
	}

	if v, ok := os.LookupEnv("TRI_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		s.Seed = seed
	}
	if v, ok := os.LookupEnv("TRI_NUMBER"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		s.Number = n
	}
	if v, ok := os.LookupEnv("TRI_OUTPUT_PATH"); ok {
		s.OutputPath = v
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.Number <= 0 {
		return nil, ErrInvalidNumber
	}
	if s.OutputPath == "" {
		return nil, ErrInvalidOutputPath
	}
	if s.Seed == 0 {
		s.Seed = rand.Uint64()
	}

	return &s, nil
}
