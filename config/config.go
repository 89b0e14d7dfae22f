package config

import (
	"errors"
	"strings"

	"github.com/namsral/flag"

	"github.com/domino14/jumble_solver/internal/solver"
)

// ErrMissingDictionary is returned by Validate when no dictionary was given.
var ErrMissingDictionary = errors.New("a dictionary file is required")

type Config struct {
	DictionaryPath string
	Letters        string
	TrainingPaths  []string

	Threshold    float64
	CacheDir     string
	CacheDisable bool
	Unique       bool
	MaxLetters   int

	LogLevel   string
	ListenAddr string
}

// Load loads the configs from the given arguments. Every flag can also be
// set with a JUMBLE_-prefixed environment variable, e.g. JUMBLE_THRESHOLD.
//
// Positional arguments are, in order: the dictionary, the jumble letters,
// and any number of training files.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("jumble", "JUMBLE", flag.ContinueOnError)

	var training string
	fs.StringVar(&c.DictionaryPath, "dictionary", "", "dictionary file, one or more words per line")
	fs.StringVar(&training, "training", "", "comma-separated list of training corpus files")
	fs.Float64Var(&c.Threshold, "threshold", solver.DefaultThreshold,
		"stop the trained search once no pending ordering is this likely")
	fs.StringVar(&c.CacheDir, "cache-dir", "", "directory for index caches (default: next to the dictionary)")
	fs.BoolVar(&c.CacheDisable, "no-cache", false, "always index the dictionary from scratch")
	fs.BoolVar(&c.Unique, "unique", false, "print each word only once")
	fs.IntVar(&c.MaxLetters, "max-letters", 0, "reject jumbles longer than this (0 for no limit)")
	fs.StringVar(&c.LogLevel, "log-level", "warn", "log level")
	fs.StringVar(&c.ListenAddr, "listen", ":8180", "address the jumble server listens on")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if training != "" {
		c.TrainingPaths = strings.Split(training, ",")
	}

	rest := fs.Args()
	if len(rest) > 0 {
		c.DictionaryPath = rest[0]
	}
	if len(rest) > 1 {
		c.Letters = rest[1]
	}
	if len(rest) > 2 {
		c.TrainingPaths = append(c.TrainingPaths, rest[2:]...)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DictionaryPath == "" {
		return ErrMissingDictionary
	}
	if c.Threshold < 0 {
		return errors.New("threshold must not be negative")
	}
	return nil
}
