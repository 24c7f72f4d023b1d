package signals

import (
	"errors"
	"fmt"
)

const metersPerMile = 1609.344

var (
	ErrUnknownUnit      = errors.New("unknown distance unit")
	ErrNegativeDistance = errors.New("negative distance")
)

// Unit is the distance unit a run was logged in.
type Unit string

const (
	UnitMeters     Unit = "m"
	UnitKilometers Unit = "km"
	UnitMiles      Unit = "mi"
)

// knownUnits lists the units ToMeters accepts.
var knownUnits = []string{string(UnitMeters), string(UnitKilometers), string(UnitMiles)}

// ToMeters normalizes a logged distance to meters.
func ToMeters(distance float64, unit Unit) (float64, error) {
	if distance < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeDistance, distance)
	}

	switch unit {
	case UnitMeters:
		return distance, nil
	case UnitKilometers:
		return distance * 1000, nil
	case UnitMiles:
		return distance * metersPerMile, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}
