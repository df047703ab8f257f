package orbital

import (
	"math"
	"time"
)

// Simulation constants. These drive deliberately simplified models; do not
// replace them with real ephemeris math, the display (and the tests) expect
// these values.
const (
	synodicPeriodDays = 29.53 // lunar phase cycle
	lunarOrbitDays    = 27.3
	moonDistanceKm    = 384400

	issAltitudeKm  = 408
	issVelocityMph = 17500
)

// MoonPosition is a simulated lunar position and phase.
type MoonPosition struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Distance     float64 `json:"distance"`
	Phase        float64 `json:"phase"`
	Illumination float64 `json:"illumination"`
	Timestamp    int64   `json:"timestamp"`
}

// ISSPosition is a station position with the fixed display constants for
// altitude and velocity.
type ISSPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Velocity  float64 `json:"velocity"`
	Timestamp int64   `json:"timestamp"`
}

// SimulatedMoonPosition derives phase, illumination and a rough position
// from wall-clock time modulo the lunar periods.
func SimulatedMoonPosition(now time.Time) MoonPosition {
	days := float64(now.UnixMilli()) / (1000 * 60 * 60 * 24)

	phase := math.Mod(days, synodicPeriodDays) / synodicPeriodDays
	illumination := math.Abs(math.Cos(phase*2*math.Pi)) * 100

	daysSincePerigee := math.Mod(days, lunarOrbitDays)
	angleFromEarth := (daysSincePerigee / lunarOrbitDays) * 2 * math.Pi

	hours := float64(now.UnixMilli()) / (1000 * 60 * 60)

	return MoonPosition{
		Latitude:     math.Sin(angleFromEarth) * 28.5,
		Longitude:    math.Mod(hours, 360) - 180,
		Distance:     moonDistanceKm,
		Phase:        phase,
		Illumination: illumination,
		Timestamp:    now.UnixMilli(),
	}
}

// SimulatedISSPosition derives a deterministic pseudo-position from
// wall-clock time, used when the live fetch is unavailable so the display
// keeps a continuously moving value. One simulated orbit takes ~31 seconds.
func SimulatedISSPosition(now time.Time) ISSPosition {
	ms := float64(now.UnixMilli())
	angle := math.Mod(ms/5000, 2*math.Pi)

	return ISSPosition{
		Latitude:  math.Sin(angle) * issInclinationDeg,
		Longitude: math.Mod(ms/100, 360) - 180,
		Altitude:  issAltitudeKm,
		Velocity:  issVelocityMph,
		Timestamp: now.Unix(),
	}
}
