package risk

import (
	"fmt"
)

const (
	ActionCompleteRest = "Take a complete rest day today"
)

// Engine scores TrainingSignals against an immutable threshold table.
// It holds no mutable state, so a single Engine can be shared between goroutines.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid risk config: %w", err)
	}
	return &Engine{
		cfg: cfg,
	}, nil
}

func DefaultEngine() *Engine {
	return &Engine{
		cfg: DefaultConfig(),
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Assess runs every detector, then scores and classifies the collected factors.
func (e *Engine) Assess(signals TrainingSignals) Assessment {
	factors := e.detect(signals)
	score := e.score(factors)
	level := e.classify(score)

	return Assessment{
		OverallRisk:      level,
		RiskScore:        score,
		Factors:          factors,
		ShouldReduceLoad: level == LevelHigh || level == LevelCritical,
		SuggestedActions: e.suggestedActions(factors, level),
	}
}

func (e *Engine) detect(signals TrainingSignals) []RiskFactor {
	factors := make([]RiskFactor, 0, len(detectors))
	for _, d := range detectors {
		if f, ok := d(signals, e.cfg); ok {
			factors = append(factors, f)
		}
	}
	return factors
}

func (e *Engine) score(factors []RiskFactor) int {
	score := 0
	for _, f := range factors {
		score += e.cfg.Points.For(f.Severity)
	}
	if len(factors) >= e.cfg.CompoundMinFactors {
		score += e.cfg.CompoundBonus
	}

	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

func (e *Engine) classify(score int) Level {
	switch {
	case score >= e.cfg.Levels.Critical:
		return LevelCritical
	case score >= e.cfg.Levels.High:
		return LevelHigh
	case score >= e.cfg.Levels.Moderate:
		return LevelModerate
	default:
		return LevelLow
	}
}

func (e *Engine) suggestedActions(factors []RiskFactor, level Level) []string {
	actions := make([]string, 0, len(factors)+2)
	seen := make(map[string]struct{}, len(factors)+2)
	add := func(action string) {
		if _, ok := seen[action]; ok {
			return
		}
		seen[action] = struct{}{}
		actions = append(actions, action)
	}

	for _, f := range factors {
		add(f.Recommendation)
	}

	switch level {
	case LevelCritical:
		add(ActionCompleteRest)
		add("Reduce your weekly training volume by 40-50% until the risk factors resolve")
	case LevelHigh:
		add("Reduce your weekly training volume by 20-30% this week")
	case LevelModerate:
		add("Monitor how you feel closely and back off if soreness, fatigue or pain increase")
	}

	return actions
}

// WarningsFrom is a view over an assessment: only high severity factors raise a warning.
func WarningsFrom(a Assessment) Warnings {
	warnings := make([]string, 0)
	for _, f := range a.Factors {
		if f.Severity == SeverityHigh {
			warnings = append(warnings, f.Description)
		}
	}
	return Warnings{
		HasWarning: len(warnings) > 0,
		Warnings:   warnings,
	}
}
