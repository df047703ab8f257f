package orbital

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOfYearToAngle_JanuaryFirstAtTop(t *testing.T) {
	// Day 0 renders at the top of the circle
	assert.InDelta(t, -math.Pi/2, DayOfYearToAngle(0), 1e-9)
}

func TestAngleDayRoundTrip(t *testing.T) {
	for day := 0; day < DaysPerYear; day++ {
		angle := DayOfYearToAngle(day)
		assert.Equal(t, day, AngleToDayOfYear(angle), "day %d", day)
	}
}

func TestAngleToDayOfYear_FullRevolution(t *testing.T) {
	base := DayOfYearToAngle(42)

	assert.Equal(t, 42, AngleToDayOfYear(base+2*math.Pi))
	assert.Equal(t, 42, AngleToDayOfYear(base-2*math.Pi))
}

func TestAngleToDayOfYear_NormalizesNegativeAngles(t *testing.T) {
	// -π/2 and 3π/2 are the same direction
	assert.Equal(t, AngleToDayOfYear(3*math.Pi/2), AngleToDayOfYear(-math.Pi/2))
}

func TestLatLonToCartesian(t *testing.T) {
	origin := LatLonToCartesian(0, 0, 1)
	assert.InDelta(t, 1, origin.X, 1e-9)
	assert.InDelta(t, 0, origin.Y, 1e-9)
	assert.InDelta(t, 0, origin.Z, 1e-9)

	northPole := LatLonToCartesian(90, 0, 2)
	assert.InDelta(t, 0, northPole.X, 1e-9)
	assert.InDelta(t, 0, northPole.Y, 1e-9)
	assert.InDelta(t, 2, northPole.Z, 1e-9)

	east := LatLonToCartesian(0, 90, 1)
	assert.InDelta(t, 0, east.X, 1e-9)
	assert.InDelta(t, 1, east.Y, 1e-9)
}

func TestLatLonToCartesian_RadiusScales(t *testing.T) {
	small := LatLonToCartesian(45, 45, 1)
	large := LatLonToCartesian(45, 45, 100)

	assert.InDelta(t, small.X*100, large.X, 1e-6)
	assert.InDelta(t, small.Y*100, large.Y, 1e-6)
	assert.InDelta(t, small.Z*100, large.Z, 1e-6)
}

func TestSimulatedMoonPosition_Deterministic(t *testing.T) {
	now := time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)

	a := SimulatedMoonPosition(now)
	b := SimulatedMoonPosition(now)
	assert.Equal(t, a, b)
}

func TestSimulatedMoonPosition_Ranges(t *testing.T) {
	for _, ts := range []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		moon := SimulatedMoonPosition(ts)

		assert.GreaterOrEqual(t, moon.Phase, 0.0)
		assert.Less(t, moon.Phase, 1.0)
		assert.GreaterOrEqual(t, moon.Illumination, 0.0)
		assert.LessOrEqual(t, moon.Illumination, 100.0)
		assert.LessOrEqual(t, math.Abs(moon.Latitude), 28.5)
		assert.GreaterOrEqual(t, moon.Longitude, -180.0)
		assert.LessOrEqual(t, moon.Longitude, 180.0)
		assert.Equal(t, float64(moonDistanceKm), moon.Distance)
	}
}

func TestSimulatedISSPosition_Deterministic(t *testing.T) {
	now := time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)

	a := SimulatedISSPosition(now)
	b := SimulatedISSPosition(now)
	assert.Equal(t, a, b)

	// Latitude stays within the orbital inclination band
	assert.LessOrEqual(t, math.Abs(a.Latitude), issInclinationDeg)
	assert.Equal(t, float64(issAltitudeKm), a.Altitude)
	assert.Equal(t, float64(issVelocityMph), a.Velocity)
	assert.Equal(t, now.Unix(), a.Timestamp)
}

func TestSimulatedISSPosition_Moves(t *testing.T) {
	base := time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)

	a := SimulatedISSPosition(base)
	b := SimulatedISSPosition(base.Add(7 * time.Second))
	assert.NotEqual(t, a.Latitude, b.Latitude)
}

func TestOrbitalPosition_OnRing(t *testing.T) {
	x, y := OrbitalPosition(0, 0)
	assert.InDelta(t, 96, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}
