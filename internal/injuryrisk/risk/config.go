package risk

import (
	"fmt"

	"go.uber.org/multierr"
)

// SpikeThresholds are week-over-week percent increases.
type SpikeThresholds struct {
	ModeratePct float64 `toml:"moderate_pct"`
	HighPct     float64 `toml:"high_pct"`
}

// FloorThresholds flag a metric that falls strictly below a value.
type FloorThresholds struct {
	ModerateBelow float64 `toml:"moderate_below"`
	HighBelow     float64 `toml:"high_below"`
}

// CeilingThresholds flag a metric that rises strictly above a value.
type CeilingThresholds struct {
	ModerateAbove float64 `toml:"moderate_above"`
	HighAbove     float64 `toml:"high_above"`
}

type StreakThresholds struct {
	ModerateDays int `toml:"moderate_days"`
	HighDays     int `toml:"high_days"`
}

type SeverityPoints struct {
	Low      int `toml:"low"`
	Moderate int `toml:"moderate"`
	High     int `toml:"high"`
}

// For panics on an unknown severity: detectors only ever emit known ones.
func (p SeverityPoints) For(s Severity) int {
	switch s {
	case SeverityLow:
		return p.Low
	case SeverityModerate:
		return p.Moderate
	case SeverityHigh:
		return p.High
	default:
		panic(fmt.Sprintf("risk: unknown severity %q", s))
	}
}

// LevelCutoffs are inclusive lower bounds of the risk score for each level.
type LevelCutoffs struct {
	Moderate int `toml:"moderate"`
	High     int `toml:"high"`
	Critical int `toml:"critical"`
}

// Config is the whole threshold table of the engine.
type Config struct {
	TrainingLoadSpike SpikeThresholds   `toml:"training_load_spike"`
	MileageSpike      SpikeThresholds   `toml:"mileage_spike"`
	LowRecovery       FloorThresholds   `toml:"low_recovery"`
	PoorSleep         FloorThresholds   `toml:"poor_sleep"`
	HighStress        CeilingThresholds `toml:"high_stress"`
	HighSoreness      CeilingThresholds `toml:"high_soreness"`
	NoRestDays        StreakThresholds  `toml:"no_rest_days"`

	Points             SeverityPoints `toml:"points"`
	CompoundBonus      int            `toml:"compound_bonus"`
	CompoundMinFactors int            `toml:"compound_min_factors"`
	Levels             LevelCutoffs   `toml:"levels"`

	// TargetWeeklyIncreasePct is quoted in spike recommendations.
	TargetWeeklyIncreasePct int `toml:"target_weekly_increase_pct"`
}

func DefaultConfig() Config {
	return Config{
		TrainingLoadSpike: SpikeThresholds{ModeratePct: 30, HighPct: 50},
		MileageSpike:      SpikeThresholds{ModeratePct: 30, HighPct: 50},
		LowRecovery:       FloorThresholds{ModerateBelow: 50, HighBelow: 40},
		PoorSleep:         FloorThresholds{ModerateBelow: 6.5, HighBelow: 5.5},
		HighStress:        CeilingThresholds{ModerateAbove: 70, HighAbove: 80},
		HighSoreness:      CeilingThresholds{ModerateAbove: 70, HighAbove: 80},
		NoRestDays:        StreakThresholds{ModerateDays: 6, HighDays: 8},

		Points:             SeverityPoints{Low: 5, Moderate: 12, High: 25},
		CompoundBonus:      15,
		CompoundMinFactors: 3,
		Levels:             LevelCutoffs{Moderate: 25, High: 50, Critical: 70},

		TargetWeeklyIncreasePct: 10,
	}
}

func (c Config) Validate() error {
	var err error

	checkSpike := func(name string, t SpikeThresholds) {
		if t.ModeratePct <= 0 || t.HighPct < t.ModeratePct {
			err = multierr.Append(err, fmt.Errorf("%s: need 0 < moderate_pct <= high_pct, got %v / %v", name, t.ModeratePct, t.HighPct))
		}
	}
	checkFloor := func(name string, t FloorThresholds) {
		if t.HighBelow > t.ModerateBelow {
			err = multierr.Append(err, fmt.Errorf("%s: high_below (%v) must not exceed moderate_below (%v)", name, t.HighBelow, t.ModerateBelow))
		}
	}
	checkCeiling := func(name string, t CeilingThresholds) {
		if t.HighAbove < t.ModerateAbove {
			err = multierr.Append(err, fmt.Errorf("%s: high_above (%v) must not be below moderate_above (%v)", name, t.HighAbove, t.ModerateAbove))
		}
	}

	checkSpike("training_load_spike", c.TrainingLoadSpike)
	checkSpike("mileage_spike", c.MileageSpike)
	checkFloor("low_recovery", c.LowRecovery)
	checkFloor("poor_sleep", c.PoorSleep)
	checkCeiling("high_stress", c.HighStress)
	checkCeiling("high_soreness", c.HighSoreness)

	if c.NoRestDays.ModerateDays < 1 || c.NoRestDays.HighDays < c.NoRestDays.ModerateDays {
		err = multierr.Append(err, fmt.Errorf("no_rest_days: need 1 <= moderate_days <= high_days, got %d / %d",
			c.NoRestDays.ModerateDays, c.NoRestDays.HighDays))
	}

	p := c.Points
	if p.Low < 0 || p.Moderate < p.Low || p.High < p.Moderate {
		err = multierr.Append(err, fmt.Errorf("points: need 0 <= low <= moderate <= high, got %d / %d / %d", p.Low, p.Moderate, p.High))
	}
	if c.CompoundBonus < 0 {
		err = multierr.Append(err, fmt.Errorf("compound_bonus must not be negative, got %d", c.CompoundBonus))
	}
	if c.CompoundMinFactors < 2 {
		err = multierr.Append(err, fmt.Errorf("compound_min_factors must be at least 2, got %d", c.CompoundMinFactors))
	}

	l := c.Levels
	if l.Moderate <= 0 || l.High <= l.Moderate || l.Critical <= l.High || l.Critical > 100 {
		err = multierr.Append(err, fmt.Errorf("levels: need 0 < moderate < high < critical <= 100, got %d / %d / %d", l.Moderate, l.High, l.Critical))
	}

	return err
}

// ThresholdRow is a single, human readable line of the threshold table.
type ThresholdRow struct {
	Name     string `json:"name"`
	Moderate string `json:"moderate"`
	High     string `json:"high"`
}

func (c Config) Rows() []ThresholdRow {
	return []ThresholdRow{
		{Name: FactorTrainingLoadSpike.String(), Moderate: fmt.Sprintf(">= %g%%", c.TrainingLoadSpike.ModeratePct), High: fmt.Sprintf(">= %g%%", c.TrainingLoadSpike.HighPct)},
		{Name: FactorMileageSpike.String(), Moderate: fmt.Sprintf(">= %g%%", c.MileageSpike.ModeratePct), High: fmt.Sprintf(">= %g%%", c.MileageSpike.HighPct)},
		{Name: FactorLowRecovery.String(), Moderate: fmt.Sprintf("< %g", c.LowRecovery.ModerateBelow), High: fmt.Sprintf("< %g", c.LowRecovery.HighBelow)},
		{Name: FactorPoorSleep.String(), Moderate: fmt.Sprintf("< %gh", c.PoorSleep.ModerateBelow), High: fmt.Sprintf("< %gh", c.PoorSleep.HighBelow)},
		{Name: FactorHighStress.String(), Moderate: fmt.Sprintf("> %g", c.HighStress.ModerateAbove), High: fmt.Sprintf("> %g", c.HighStress.HighAbove)},
		{Name: FactorHighSoreness.String(), Moderate: fmt.Sprintf("> %g", c.HighSoreness.ModerateAbove), High: fmt.Sprintf("> %g", c.HighSoreness.HighAbove)},
		{Name: FactorNoRestDays.String(), Moderate: fmt.Sprintf(">= %d days", c.NoRestDays.ModerateDays), High: fmt.Sprintf(">= %d days", c.NoRestDays.HighDays)},
		{Name: "points", Moderate: fmt.Sprintf("%d", c.Points.Moderate), High: fmt.Sprintf("%d", c.Points.High)},
		{Name: "compound_bonus", Moderate: fmt.Sprintf("+%d at %d+ factors", c.CompoundBonus, c.CompoundMinFactors), High: "-"},
		{Name: "levels", Moderate: fmt.Sprintf(">= %d", c.Levels.Moderate), High: fmt.Sprintf(">= %d (critical >= %d)", c.Levels.High, c.Levels.Critical)},
	}
}
