package services

import (
	"context"
	"testing"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestTrackPosition_CorruptCacheFallsBackToSimulation(t *testing.T) {
	withTestRedis(t)

	// Poison the cache with coordinates that don't parse
	var corrupt ISSProxyResponse
	corrupt.ISSPosition.Latitude = "not-a-number"
	corrupt.ISSPosition.Longitude = "-56.78"
	corrupt.Timestamp = time.Now().Unix()
	corrupt.Message = "success"
	assert.NoError(t, database.CacheSet("iss:position", &corrupt, time.Minute))

	svc := NewISSService("http://127.0.0.1:1")
	position, live := svc.TrackPosition(context.Background())

	assert.False(t, live, "unparseable coordinates must not pass as live")
	assert.GreaterOrEqual(t, position.Longitude, -180.0)
	assert.Less(t, position.Longitude, 180.0)
	assert.InDelta(t, 0, position.Latitude, 51.6)
}

func TestFetchPosition_SecondFetchServedFromCache(t *testing.T) {
	withTestRedis(t)

	cached := &ISSProxyResponse{Timestamp: 42, Message: "success"}
	cached.ISSPosition.Latitude = "12.34"
	cached.ISSPosition.Longitude = "-56.78"
	assert.NoError(t, database.CacheSet("iss:position", cached, time.Minute))

	// The upstream is unreachable, so only the cache can answer
	svc := NewISSService("http://127.0.0.1:1")
	position, err := svc.FetchPosition(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "12.34", position.ISSPosition.Latitude)
	assert.Equal(t, int64(42), position.Timestamp)
}
