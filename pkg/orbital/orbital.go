// Package orbital holds the pure coordinate and date transforms behind the
// orbital date selector and the live-position displays. Every function is
// stateless: identical inputs always yield identical outputs.
package orbital

import "math"

// DaysPerYear is the day-index range of the orbit circle (0..364).
const DaysPerYear = 365

const fullCircle = 2 * math.Pi

// DayOfYearToAngle maps a day index (0-364) to the angle of that day on the
// orbit circle. Day 0 sits at -π/2 so January 1st renders at the top.
func DayOfYearToAngle(day int) float64 {
	return (float64(day)/DaysPerYear)*fullCircle - math.Pi/2
}

// AngleToDayOfYear maps an angle back to a day index (0-364). Angles are
// normalized first, so a full revolution maps to the same day as angle 0.
func AngleToDayOfYear(angle float64) int {
	adjusted := math.Mod(angle+math.Pi/2, fullCircle)
	if adjusted < 0 {
		adjusted += fullCircle
	}
	// Epsilon keeps the floor from slipping a day on near-exact multiples
	day := int(math.Floor(adjusted/fullCircle*DaysPerYear + 1e-9))
	if day >= DaysPerYear {
		day -= DaysPerYear
	}
	return day
}

// Cartesian is a point in the 3D display projection.
type Cartesian struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LatLonToCartesian projects latitude/longitude in degrees onto a sphere of
// the given radius. Out-of-range input is not rejected; it produces a
// mathematically defined but visually meaningless point.
func LatLonToCartesian(lat, lon, radius float64) Cartesian {
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180

	return Cartesian{
		X: radius * math.Cos(latRad) * math.Cos(lonRad),
		Y: radius * math.Cos(latRad) * math.Sin(lonRad),
		Z: radius * math.Sin(latRad),
	}
}

// LatLonToOrbitView flattens latitude/longitude onto the 2D circular orbit
// view used by the tracker widget.
func LatLonToOrbitView(lat, lon, radius float64) (x, y float64) {
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180

	x = math.Cos(latRad) * math.Cos(lonRad) * radius
	y = math.Cos(latRad) * math.Sin(lonRad) * radius
	return x, y
}

// issInclinationDeg is the station's orbital inclination.
const issInclinationDeg = 51.6

// OrbitalPosition places a ground-track latitude/longitude on the 2D orbit
// ring of the tracker visualization, tilted by the station inclination.
func OrbitalPosition(lat, lon float64) (x, y float64) {
	inclination := issInclinationDeg * math.Pi / 180
	angle := lon * math.Pi / 180

	const radius = 96.0
	x = math.Cos(angle) * radius
	y = math.Sin(angle)*radius*math.Cos(inclination) + (lat/90)*20
	return x, y
}
