package risk

// TrainingSignals is a snapshot of rolling-window metrics for a single user.
// Every field is optional: a nil field means there is no evidence for it
// and the corresponding detector is skipped.
//   - volume is the sum of kilos * reps over strength sets
//   - mileage is in meters
//   - recovery, stress and soreness are on a 0-100 scale, sleep is in hours
type TrainingSignals struct {
	CurrentWeekVolume  *float64 `json:"currentWeekVolume,omitempty"`
	PreviousWeekVolume *float64 `json:"previousWeekVolume,omitempty"`

	CurrentMileage  *float64 `json:"currentMileage,omitempty"`
	PreviousMileage *float64 `json:"previousMileage,omitempty"`
	CurrentRunCount *int     `json:"currentRunCount,omitempty"`

	AvgRecoveryScore *float64 `json:"avgRecoveryScore,omitempty"`
	AvgSleepHours    *float64 `json:"avgSleepHours,omitempty"`
	AvgStressScore   *float64 `json:"avgStressScore,omitempty"`
	AvgSorenessScore *float64 `json:"avgSorenessScore,omitempty"`

	ConsecutiveTrainingDays *int `json:"consecutiveTrainingDays,omitempty"`
}

func (s TrainingSignals) IsEmpty() bool {
	return s.CurrentWeekVolume == nil && s.PreviousWeekVolume == nil &&
		s.CurrentMileage == nil && s.PreviousMileage == nil && s.CurrentRunCount == nil &&
		s.AvgRecoveryScore == nil && s.AvgSleepHours == nil &&
		s.AvgStressScore == nil && s.AvgSorenessScore == nil &&
		s.ConsecutiveTrainingDays == nil
}

func Float(v float64) *float64 {
	return &v
}

func Int(v int) *int {
	return &v
}

// Severity can be one of:
//   - low (reserved, no detector emits it yet)
//   - moderate
//   - high
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityModerate, SeverityHigh:
		return true
	default:
		return false
	}
}

// Level is the overall, categorical risk of an assessment.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

func (l Level) String() string {
	return string(l)
}

type FactorType string

const (
	FactorTrainingLoadSpike FactorType = "training_load_spike"
	FactorMileageSpike      FactorType = "mileage_spike"
	FactorLowRecovery       FactorType = "low_recovery"
	FactorPoorSleep         FactorType = "poor_sleep"
	FactorHighStress        FactorType = "high_stress"
	FactorHighSoreness      FactorType = "high_soreness"
	FactorNoRestDays        FactorType = "no_rest_days"
)

func (ft FactorType) String() string {
	return string(ft)
}

type RiskFactor struct {
	Type           FactorType `json:"type"`
	Severity       Severity   `json:"severity"`
	Value          float64    `json:"value"`
	Description    string     `json:"description"`
	Recommendation string     `json:"recommendation"`
}

// Assessment is the structured result of a single risk evaluation.
// It is never mutated after Assess returns it.
type Assessment struct {
	OverallRisk      Level        `json:"overallRisk"`
	RiskScore        int          `json:"riskScore"`
	Factors          []RiskFactor `json:"factors"`
	ShouldReduceLoad bool         `json:"shouldReduceLoad"`
	SuggestedActions []string     `json:"suggestedActions"`
}

type Warnings struct {
	HasWarning bool     `json:"hasWarning"`
	Warnings   []string `json:"warnings"`
}
