package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/database"
	"github.com/Saijayaranjan/among-the-space/pkg/logger"
	"github.com/Saijayaranjan/among-the-space/pkg/orbital"
	"github.com/goccy/go-json"
)

// Display constants attached to live positions. The upstream feed is only
// trusted for coordinates.
const (
	issDisplayAltitudeKm   = 408
	issDisplayVelocityKmph = 27600

	issCacheTTL = 5 * time.Second
)

// ISSProxyResponse is the same-origin proxy contract: coordinates as
// strings, a Unix timestamp and a status marker.
type ISSProxyResponse struct {
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

// upstream wheretheiss.at shape
type issUpstream struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ISSService proxies the live-tracking feed so browsers never cross the
// origin boundary themselves.
type ISSService struct {
	client *http.Client
	apiURL string
}

func NewISSService(apiURL string) *ISSService {
	return &ISSService{
		client: &http.Client{Timeout: 10 * time.Second},
		apiURL: apiURL,
	}
}

// FetchPosition returns the current station coordinates in the proxy shape.
// The error is explicit so the handler can emit the zeroed error shape; it
// is never propagated as a panic or a crash.
func (s *ISSService) FetchPosition(ctx context.Context) (*ISSProxyResponse, error) {
	const cacheKey = "iss:position"

	var cached ISSProxyResponse
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		return &cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var upstream issUpstream
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, err
	}

	position := &ISSProxyResponse{
		Timestamp: time.Now().Unix(),
		Message:   "success",
	}
	position.ISSPosition.Latitude = strconv.FormatFloat(upstream.Latitude, 'f', -1, 64)
	position.ISSPosition.Longitude = strconv.FormatFloat(upstream.Longitude, 'f', -1, 64)

	if err := database.CacheSet(cacheKey, position, issCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache ISS position")
	}

	return position, nil
}

// ErrorResponse is the zeroed proxy shape served on upstream failure.
func (s *ISSService) ErrorResponse() *ISSProxyResponse {
	position := &ISSProxyResponse{
		Timestamp: time.Now().Unix(),
		Message:   "error",
	}
	position.ISSPosition.Latitude = "0"
	position.ISSPosition.Longitude = "0"
	return position
}

// TrackPosition returns a typed position for the tracker widget: the live
// coordinates when the feed answers, otherwise the deterministic simulated
// orbit so the display keeps moving. The second return says whether the
// value is live.
func (s *ISSService) TrackPosition(ctx context.Context) (orbital.ISSPosition, bool) {
	proxy, err := s.FetchPosition(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Live ISS fetch failed, serving simulated position")
		return orbital.SimulatedISSPosition(time.Now()), false
	}

	lat, latErr := strconv.ParseFloat(proxy.ISSPosition.Latitude, 64)
	lon, lonErr := strconv.ParseFloat(proxy.ISSPosition.Longitude, 64)
	if latErr != nil || lonErr != nil {
		// A corrupt cache entry must not render as 0,0 over the Atlantic
		logger.Warn().Str("lat", proxy.ISSPosition.Latitude).Str("lon", proxy.ISSPosition.Longitude).Msg("Unparseable ISS coordinates, serving simulated position")
		return orbital.SimulatedISSPosition(time.Now()), false
	}

	return orbital.ISSPosition{
		Latitude:  lat,
		Longitude: lon,
		Altitude:  issDisplayAltitudeKm,
		Velocity:  issDisplayVelocityKmph,
		Timestamp: proxy.Timestamp,
	}, true
}
