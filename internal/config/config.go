// ABOUTME: Settings loading: optional .scriptterm.yaml merged onto built-in defaults
// ABOUTME: YAML via gopkg.in/yaml.v3; unknown keys and invalid values are startup errors

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/log"
	"github.com/mauromedda/scriptterm/internal/tools"
	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds the merged configuration.
type Settings struct {
	LogLevel   string                      `yaml:"log_level,omitempty"`
	Color      string                      `yaml:"color,omitempty"`
	Recognizer RecognizerSettings          `yaml:"recognizer,omitempty"`
	Categories map[string]CategorySettings `yaml:"categories,omitempty"`
	Search     SearchSettings              `yaml:"search,omitempty"`
}

// RecognizerSettings selects the recognition strategy and its thresholds.
// A zero threshold keeps the default.
type RecognizerSettings struct {
	Pipeline          string  `yaml:"pipeline,omitempty"`
	MinConfidence     float64 `yaml:"min_confidence,omitempty"`
	ConfirmConfidence float64 `yaml:"confirm_confidence,omitempty"`
}

// CategorySettings overrides the directory or interpreter of a built-in category.
type CategorySettings struct {
	Dir         string `yaml:"dir,omitempty"`
	Interpreter string `yaml:"interpreter,omitempty"`
}

// SearchSettings tunes the search command. Zero means unlimited.
type SearchSettings struct {
	MaxMatchesPerFile int `yaml:"max_matches_per_file,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		LogLevel: "warn",
		Color:    ColorAuto,
		Recognizer: RecognizerSettings{
			Pipeline:          string(intent.StrategyAuto),
			MinConfidence:     intent.DefaultMinConfidence,
			ConfirmConfidence: intent.DefaultConfirmConfidence,
		},
	}
}

// Load reads the settings file of root, if any, merges it onto the defaults
// and validates the result.
func Load(root string) (*Settings, error) {
	path := ProjectConfigFile(root)
	file, err := loadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	merged := merge(Defaults(), file)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. An empty file yields zero Settings.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays the non-zero values of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	if over.Color != "" {
		result.Color = over.Color
	}
	if over.Recognizer.Pipeline != "" {
		result.Recognizer.Pipeline = over.Recognizer.Pipeline
	}
	if over.Recognizer.MinConfidence != 0 {
		result.Recognizer.MinConfidence = over.Recognizer.MinConfidence
	}
	if over.Recognizer.ConfirmConfidence != 0 {
		result.Recognizer.ConfirmConfidence = over.Recognizer.ConfirmConfidence
	}
	if over.Search.MaxMatchesPerFile != 0 {
		result.Search.MaxMatchesPerFile = over.Search.MaxMatchesPerFile
	}

	if len(over.Categories) > 0 {
		cats := maps.Clone(result.Categories)
		if cats == nil {
			cats = make(map[string]CategorySettings, len(over.Categories))
		}
		for name, c := range over.Categories {
			cur := cats[name]
			if c.Dir != "" {
				cur.Dir = c.Dir
			}
			if c.Interpreter != "" {
				cur.Interpreter = c.Interpreter
			}
			cats[name] = cur
		}
		result.Categories = cats
	}
	return &result
}

// Validate checks every value against what the rest of the program accepts.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color: %q is not one of auto, always, never", s.Color))
	}
	if _, err := intent.ParseStrategy(s.Recognizer.Pipeline); err != nil {
		errs = append(errs, fmt.Errorf("recognizer.pipeline: %w", err))
	}
	if err := s.Thresholds().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("recognizer: %w", err))
	}
	if s.Search.MaxMatchesPerFile < 0 {
		errs = append(errs, errors.New("search.max_matches_per_file: must not be negative"))
	}

	known := make(map[string]bool)
	for _, c := range tools.DefaultCategories() {
		known[c.Name] = true
	}
	for _, name := range slices.Sorted(maps.Keys(s.Categories)) {
		if !known[name] {
			errs = append(errs, fmt.Errorf("categories.%s: %w", name, tools.ErrUnknownCategory))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	// Directory checks need the category list.
	if _, err := tools.NewWorkspace(".", s.WorkspaceCategories()); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	return nil
}

// Strategy returns the configured recognizer strategy.
func (s *Settings) Strategy() intent.Strategy {
	st, _ := intent.ParseStrategy(s.Recognizer.Pipeline)
	return st
}

// Thresholds returns the configured confidence thresholds.
func (s *Settings) Thresholds() intent.Thresholds {
	return intent.Thresholds{Min: s.Recognizer.MinConfidence, Confirm: s.Recognizer.ConfirmConfidence}
}

// WorkspaceCategories returns the built-in categories with directory
// overrides applied.
func (s *Settings) WorkspaceCategories() []tools.Category {
	cats := tools.DefaultCategories()
	for i, c := range cats {
		if o, ok := s.Categories[c.Name]; ok && o.Dir != "" {
			cats[i].Dir = o.Dir
		}
	}
	return cats
}

// Interpreters returns the interpreter overrides by category name.
func (s *Settings) Interpreters() map[string]string {
	out := make(map[string]string)
	for name, c := range s.Categories {
		if c.Interpreter != "" {
			out[name] = c.Interpreter
		}
	}
	return out
}

// UseColor decides whether output is styled, given whether stdout is a terminal.
func (s *Settings) UseColor(stdoutIsTerminal bool) bool {
	switch s.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return stdoutIsTerminal
	}
}
