package hos

import "github.com/srb321/drivewise-reports/internal/dutylog"

// Default thresholds: 11 driving hours per day in the USA, 13 in Canada, a
// 50-mile odometer jump before a finding turns Critical, and 10 minutes as
// the shortest driving stretch worth flagging as stationary.
const (
	DefaultOdometerCriticalDelta     = 50.0
	DefaultStationaryMinimumMinutes  = 10
	DefaultUSADrivingLimitMinutes    = 660
	DefaultCanadaDrivingLimitMinutes = 780
)

// Ruleset holds every tunable threshold the checks consult. Keeping them in
// one value means rule tuning is data, not control-flow edits.
type Ruleset struct {
	OdometerCriticalDelta     float64
	StationaryMinimumMinutes  int
	USADrivingLimitMinutes    int
	CanadaDrivingLimitMinutes int
}

// DefaultRuleset returns the published duty-hour thresholds.
func DefaultRuleset() Ruleset {
	return Ruleset{
		OdometerCriticalDelta:     DefaultOdometerCriticalDelta,
		StationaryMinimumMinutes:  DefaultStationaryMinimumMinutes,
		USADrivingLimitMinutes:    DefaultUSADrivingLimitMinutes,
		CanadaDrivingLimitMinutes: DefaultCanadaDrivingLimitMinutes,
	}
}

// DrivingLimitMinutes returns the daily driving allowance for a jurisdiction.
// Unknown jurisdictions fall back to the US limit.
func (r Ruleset) DrivingLimitMinutes(country dutylog.Country) int {
	if country.Normalize() == dutylog.CountryCanada {
		return r.CanadaDrivingLimitMinutes
	}
	return r.USADrivingLimitMinutes
}

// withDefaults fills any unset threshold so a zero-value Ruleset behaves
// like DefaultRuleset.
func (r Ruleset) withDefaults() Ruleset {
	if r.OdometerCriticalDelta <= 0 {
		r.OdometerCriticalDelta = DefaultOdometerCriticalDelta
	}
	if r.StationaryMinimumMinutes <= 0 {
		r.StationaryMinimumMinutes = DefaultStationaryMinimumMinutes
	}
	if r.USADrivingLimitMinutes <= 0 {
		r.USADrivingLimitMinutes = DefaultUSADrivingLimitMinutes
	}
	if r.CanadaDrivingLimitMinutes <= 0 {
		r.CanadaDrivingLimitMinutes = DefaultCanadaDrivingLimitMinutes
	}
	return r
}
