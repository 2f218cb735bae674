// ABOUTME: Recognizer: turns one line of text into an Intent using a strategy chosen once.
// ABOUTME: Heuristic and enhanced recognizers share thresholds, reserved words and extraction.

package intent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/scriptterm/internal/log"
	"github.com/mauromedda/scriptterm/internal/nlp"
)

// Default thresholds.
const (
	DefaultMinConfidence     = 0.3
	DefaultConfirmConfidence = 0.5
)

// Strategy names a recognition path.
type Strategy string

const (
	StrategyAuto      Strategy = "auto"
	StrategyEnhanced  Strategy = "enhanced"
	StrategyHeuristic Strategy = "heuristic"
)

// ParseStrategy validates a strategy name. Empty means auto.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyEnhanced, StrategyHeuristic:
		return st, nil
	default:
		return StrategyAuto, fmt.Errorf("unknown recognizer strategy %q", s)
	}
}

// Thresholds bound acceptance of a winning score.
type Thresholds struct {
	Min     float64 // below this the input is treated as conversation
	Confirm float64 // at or above this the match is high confidence
}

// DefaultThresholds returns 0.3 / 0.5.
func DefaultThresholds() Thresholds {
	return Thresholds{Min: DefaultMinConfidence, Confirm: DefaultConfirmConfidence}
}

// Validate requires 0 <= Min <= Confirm <= 1.
func (t Thresholds) Validate() error {
	if t.Min < 0 || t.Confirm > 1 || t.Min > t.Confirm {
		return fmt.Errorf("invalid thresholds: need 0 <= min (%v) <= confirm (%v) <= 1", t.Min, t.Confirm)
	}
	return nil
}

// Tentative reports whether an accepted intent scored below the confirmation
// threshold. Reserved words and empty input are never tentative.
func (t Thresholds) Tentative(in Intent) bool {
	c := in.Confidence()
	return in.Type() != Unknown && in.Type() != AIChat && c >= t.Min && c < t.Confirm
}

// Recognizer classifies one line of user input.
type Recognizer interface {
	Recognize(text string) Intent
	Strategy() Strategy
	Thresholds() Thresholds
}

// Config configures New.
type Config struct {
	Strategy   Strategy
	Thresholds Thresholds
	Catalog    *Catalog          // nil uses DefaultCatalog
	Pipeline   nlp.Pipeline      // required for the enhanced strategy
	FileTypes  map[string]string // nil uses DefaultFileTypes
}

// ErrPipelineUnavailable is returned when the enhanced strategy is requested
// but the pipeline is missing or fails its probe.
var ErrPipelineUnavailable = errors.New("linguistic pipeline unavailable")

// reserved words bypass scoring.
var reserved = map[string]Type{"help": Help, "exit": Exit, "quit": Exit}

// NewRecognizer builds a recognizer. With StrategyAuto the enhanced path is used when
// the pipeline passes its probe, otherwise the heuristic path.
func NewRecognizer(cfg Config) (Recognizer, error) {
	if cfg.Catalog == nil {
		cfg.Catalog = DefaultCatalog()
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = DefaultThresholds()
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyAuto
	}

	b := base{
		catalog:    cfg.Catalog,
		thresholds: cfg.Thresholds,
		extractor:  newExtractor(cfg.Catalog, cfg.FileTypes),
	}

	switch cfg.Strategy {
	case StrategyHeuristic:
		return newHeuristic(b), nil
	case StrategyEnhanced, StrategyAuto:
		err := nlp.Probe(cfg.Pipeline)
		if err == nil {
			log.Debug("recognizer: enhanced strategy")
			return &EnhancedRecognizer{base: b, scorer: newEnhancedScorer(cfg.Catalog, cfg.Pipeline)}, nil
		}
		if cfg.Strategy == StrategyEnhanced {
			return nil, fmt.Errorf("%w: %v", ErrPipelineUnavailable, err)
		}
		log.Info("linguistic pipeline unavailable (%v); using heuristic recognition", err)
		return newHeuristic(b), nil
	default:
		return nil, fmt.Errorf("unknown recognizer strategy %q", cfg.Strategy)
	}
}

// base holds what both strategies share.
type base struct {
	catalog    *Catalog
	thresholds Thresholds
	extractor  *extractor
}

func (b base) Thresholds() Thresholds { return b.thresholds }

func (b base) recognize(text string, sc scorer) Intent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return New(Unknown, 0, "", nil, text)
	}
	if t, ok := reserved[strings.ToLower(trimmed)]; ok {
		return New(t, 1, "", nil, text)
	}

	top := best(sc.score(trimmed))
	typ := top.Type
	if top.Value < b.thresholds.Min {
		typ = AIChat
	}
	target, params := b.extractor.extract(typ, trimmed)
	in := New(typ, top.Value, target, params, text)
	log.Debug("recognized %s from %s (%d signals)", in, top.Type, len(top.Signals))
	return in
}

// HeuristicRecognizer scores with keyword, regex and context rules only.
type HeuristicRecognizer struct {
	base
	scorer heuristicScorer
}

// newHeuristic builds a heuristic recognizer from shared state.
func newHeuristic(b base) *HeuristicRecognizer {
	return &HeuristicRecognizer{base: b, scorer: heuristicScorer{catalog: b.catalog}}
}

func (r *HeuristicRecognizer) Recognize(text string) Intent { return r.recognize(text, r.scorer) }
func (r *HeuristicRecognizer) Strategy() Strategy           { return StrategyHeuristic }

// EnhancedRecognizer scores against a linguistic analysis of the input.
type EnhancedRecognizer struct {
	base
	scorer *enhancedScorer
}

func (r *EnhancedRecognizer) Recognize(text string) Intent { return r.recognize(text, r.scorer) }
func (r *EnhancedRecognizer) Strategy() Strategy           { return StrategyEnhanced }
