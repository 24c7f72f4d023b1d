package signals

import (
	"time"
)

// StrengthSet is a single logged set from the exercise log.
type StrengthSet struct {
	Kilos     int       `json:"kilos"`
	Reps      int       `json:"reps"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s StrengthSet) Volume() float64 {
	return float64(s.Kilos * s.Reps)
}

type Run struct {
	Distance  float64   `json:"distance"`
	Unit      Unit      `json:"unit"`
	StartedAt time.Time `json:"startedAt"`
}

// ReadinessCheckin is a self reported daily readiness entry.
// Any metric may be missing.
type ReadinessCheckin struct {
	RecoveryScore *float64  `json:"recoveryScore,omitempty"`
	SleepHours    *float64  `json:"sleepHours,omitempty"`
	StressScore   *float64  `json:"stressScore,omitempty"`
	SorenessScore *float64  `json:"sorenessScore,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
