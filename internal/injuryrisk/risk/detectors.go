package risk

import (
	"fmt"
)

// detector inspects the signals for a single condition. It reports false when
// the condition is not met or when the metrics it needs are absent.
type detector func(s TrainingSignals, cfg Config) (RiskFactor, bool)

// detectors run in this exact order, which is also the order of Assessment.Factors.
var detectors = []detector{
	detectTrainingLoadSpike,
	detectMileageSpike,
	detectLowRecovery,
	detectPoorSleep,
	detectHighStress,
	detectHighSoreness,
	detectNoRestDays,
}

// PercentChange returns (current - previous) / previous * 100.
// ok is false when previous is not positive.
func PercentChange(current, previous float64) (_ float64, ok bool) {
	if previous <= 0 {
		return 0, false
	}
	return (current - previous) / previous * 100, true
}

func spikeSeverity(pct float64, t SpikeThresholds) (Severity, bool) {
	switch {
	case pct >= t.HighPct:
		return SeverityHigh, true
	case pct >= t.ModeratePct:
		return SeverityModerate, true
	default:
		return "", false
	}
}

func floorSeverity(v float64, t FloorThresholds) (Severity, bool) {
	switch {
	case v < t.HighBelow:
		return SeverityHigh, true
	case v < t.ModerateBelow:
		return SeverityModerate, true
	default:
		return "", false
	}
}

func ceilingSeverity(v float64, t CeilingThresholds) (Severity, bool) {
	switch {
	case v > t.HighAbove:
		return SeverityHigh, true
	case v > t.ModerateAbove:
		return SeverityModerate, true
	default:
		return "", false
	}
}

func detectTrainingLoadSpike(s TrainingSignals, cfg Config) (RiskFactor, bool) {
	if s.CurrentWeekVolume == nil || s.PreviousWeekVolume == nil {
		return RiskFactor{}, false
	}
	pct, ok := PercentChange(*s.CurrentWeekVolume, *s.PreviousWeekVolume)
	if !ok {
		return RiskFactor{}, false
	}
	severity, ok := spikeSeverity(pct, cfg.TrainingLoadSpike)
	if !ok {
		return RiskFactor{}, false
	}

	return RiskFactor{
		Type:     FactorTrainingLoadSpike,
		Severity: severity,
		Value:    pct,
		Description: fmt.Sprintf(
			"Training volume increased by %.0f%% compared to last week (%.0f vs %.0f)",
			pct, *s.CurrentWeekVolume, *s.PreviousWeekVolume,
		),
		Recommendation: fmt.Sprintf(
			"Limit week-over-week training volume increases to about %d%%",
			cfg.TargetWeeklyIncreasePct,
		),
	}, true
}

func detectMileageSpike(s TrainingSignals, cfg Config) (RiskFactor, bool) {
	if s.CurrentMileage == nil || s.PreviousMileage == nil {
		return RiskFactor{}, false
	}
	pct, ok := PercentChange(*s.CurrentMileage, *s.PreviousMileage)
	if !ok {
		return RiskFactor{}, false
	}
	severity, ok := spikeSeverity(pct, cfg.MileageSpike)
	if !ok {
		return RiskFactor{}, false
	}

	return RiskFactor{
		Type:     FactorMileageSpike,
		Severity: severity,
		Value:    pct,
		Description: fmt.Sprintf(
			"Running mileage increased by %.0f%% compared to last week (%.1f km vs %.1f km)",
			pct, *s.CurrentMileage/1000, *s.PreviousMileage/1000,
		),
		Recommendation: fmt.Sprintf(
			"Increase running mileage by no more than %d%% per week",
			cfg.TargetWeeklyIncreasePct,
		),
	}, true
}

func detectLowRecovery(s TrainingSignals, cfg Config) (RiskFactor, bool) {
	if s.AvgRecoveryScore == nil {
		return RiskFactor{}, false
	}
	v := *s.AvgRecoveryScore
	severity, ok := floorSeverity(v, cfg.LowRecovery)
	if !ok {
		return RiskFactor{}, false
	}

	return RiskFactor{
		Type:           FactorLowRecovery,
		Severity:       severity,
		Value:          v,
		Description:    fmt.Sprintf("Average recovery score is low (%.0f/100)", v),
		Recommendation: "Prioritize rest and active recovery until your recovery score rebounds",
	}, true
}

func detectPoorSleep(s TrainingSignals, cfg Config) (RiskFactor, bool) {
	if s.AvgSleepHours == nil {
		return RiskFactor{}, false
	}
	v := *s.AvgSleepHours
	severity, ok := floorSeverity(v, cfg.PoorSleep)
	if !ok {
		return RiskFactor{}, false
	}

	return RiskFactor{
		Type:           FactorPoorSleep,
		Severity:       severity,
		Value:          v,
		Description:    fmt.Sprintf("Averaging only %.1f hours of sleep per night", v),
		Recommendation: "Improve sleep duration and quality, aim for 7 to 9 hours per night",
	}, true
}

func detectHighStress(s TrainingSignals, cfg Config) (RiskFactor, bool) {
	if s.AvgStressScore == nil {
		return RiskFactor{}, false
	}
	v := *s.AvgStressScore
	severity, ok := ceilingSeverity(v, cfg.HighStress)
	if !ok {
		return RiskFactor{}, false
	}

	return RiskFactor{
		Type:           FactorHighStress,
		Severity:       severity,
		Value:          v,
		Description:    fmt.Sprintf("Stress levels are elevated (%.0f/100)", v),
		Recommendation: "Lower training intensity on high-stress days and add relaxation or breathing work",
	}, true
}

func detectHighSoreness(s TrainingSignals, cfg Config) (RiskFactor, bool) {
	if s.AvgSorenessScore == nil {
		return RiskFactor{}, false
	}
	v := *s.AvgSorenessScore
	severity, ok := ceilingSeverity(v, cfg.HighSoreness)
	if !ok {
		return RiskFactor{}, false
	}

	return RiskFactor{
		Type:           FactorHighSoreness,
		Severity:       severity,
		Value:          v,
		Description:    fmt.Sprintf("Muscle soreness is high (%.0f/100)", v),
		Recommendation: "Use recovery modalities such as mobility work, foam rolling, massage or easy cardio",
	}, true
}

func detectNoRestDays(s TrainingSignals, cfg Config) (RiskFactor, bool) {
	if s.ConsecutiveTrainingDays == nil {
		return RiskFactor{}, false
	}
	days := *s.ConsecutiveTrainingDays

	var severity Severity
	switch {
	case days >= cfg.NoRestDays.HighDays:
		severity = SeverityHigh
	case days >= cfg.NoRestDays.ModerateDays:
		severity = SeverityModerate
	default:
		return RiskFactor{}, false
	}

	return RiskFactor{
		Type:           FactorNoRestDays,
		Severity:       severity,
		Value:          float64(days),
		Description:    fmt.Sprintf("%d consecutive training days without a rest day", days),
		Recommendation: "Take a rest day to let your body recover",
	}, true
}
