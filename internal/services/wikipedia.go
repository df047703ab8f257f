package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/database"
	"github.com/Saijayaranjan/among-the-space/internal/models"
	"github.com/Saijayaranjan/among-the-space/pkg/logger"
	"github.com/Saijayaranjan/among-the-space/pkg/utils"
	"github.com/goccy/go-json"
)

// Relevance vocabulary for the keyword filter. Intentionally permissive
// substring matching: false positives are preferred over dropping a real
// space event. Changing entries changes which events surface.
var spaceKeywords = []string{
	// Space agencies and organizations
	"nasa", "esa", "spacex", "roscosmos", "jaxa", "isro", "cnsa", "csa",

	// General space terms
	"space", "satellite", "astronaut", "cosmonaut", "taikonaut", "rocket", "spacecraft", "shuttle",

	// Missions and programs
	"apollo", "gemini", "mercury", "voyager", "cassini", "hubble", "james webb", "kepler", "spitzer",
	"mars rover", "curiosity", "perseverance", "opportunity", "spirit", "viking", "pioneer",
	"new horizons", "juno", "galileo", "rosetta", "parker solar probe",

	// Celestial bodies and locations
	"mars", "moon", "venus", "jupiter", "saturn", "uranus", "neptune", "pluto",
	"planet", "solar", "lunar", "orbital", "mission", "launch", "deep space",

	// Space infrastructure
	"telescope", "probe", "station", "iss", "mir", "skylab", "tiangong", "space station",
	"discovery", "challenger", "endeavour", "atlantis", "columbia", "soyuz", "falcon",
	"dragon", "crew dragon", "starship", "ariane",

	// Astronomical phenomena
	"galaxy", "universe", "cosmic", "stellar", "interstellar", "nebula", "supernova",
	"comet", "asteroid", "meteorite", "eclipse", "transit", "aurora", "black hole",
	"exoplanet", "constellation",

	// Space activities
	"spacewalk", "eva", "docking", "landing", "re-entry", "orbit", "zero gravity",
	"microgravity", "space exploration", "space program", "space race", "space technology",

	// Launch sites
	"cape canaveral", "kennedy space center", "baikonur", "kourou", "vandenberg",
	"plesetsk", "jiuquan", "xichang", "tanegashima",
}

// IsSpaceRelated reports whether the text mentions any keyword from the
// curated vocabulary, case-insensitively.
func IsSpaceRelated(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range spaceKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Upstream feed shapes (only the fields we read).

type wikiPage struct {
	Title     string `json:"title"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	OriginalImage *struct {
		Source string `json:"source"`
	} `json:"originalimage"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

type wikiEvent struct {
	Text  string     `json:"text"`
	Year  int        `json:"year"`
	Pages []wikiPage `json:"pages"`
}

type wikiOnThisDay struct {
	Events []wikiEvent `json:"events"`
}

// EventsSource marks which path produced a result set.
type EventsSource string

const (
	EventsSourceLive     EventsSource = "live"
	EventsSourceCache    EventsSource = "cache"
	EventsSourceFallback EventsSource = "fallback"
)

// EventsResult is the outcome of a date query. Callers never see an error;
// the Source marker says whether the fallback path was taken.
type EventsResult struct {
	Events []models.SpaceEvent `json:"events"`
	Source EventsSource        `json:"source"`
}

const (
	maxEventsPerDate = 6
	eventsCacheTTL   = time.Hour
	userAgent        = "AmongTheSpace/1.0 (https://amongthespace.com)"
)

// EventsService fetches and filters historical-event content from the
// encyclopedia on-this-day feed.
type EventsService struct {
	client  *http.Client
	baseURL string
}

func NewEventsService(baseURL string) *EventsService {
	return &EventsService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchSpaceEvents returns up to 6 space-related events for the calendar
// date, newest first. Any upstream failure degrades to the fixed fallback
// set tagged with the requested month/day.
func (s *EventsService) FetchSpaceEvents(ctx context.Context, month, day int) EventsResult {
	cacheKey := fmt.Sprintf("events:%d:%d", month, day)

	var cached []models.SpaceEvent
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		return EventsResult{Events: cached, Source: EventsSourceCache}
	}

	url := fmt.Sprintf("%s/feed/onthisday/events/%d/%d", s.baseURL, month, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return s.fallback(month, day, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return s.fallback(month, day, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.fallback(month, day, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var feed wikiOnThisDay
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return s.fallback(month, day, err)
	}

	events := normalizeEvents(feed.Events, month, day)

	if err := database.CacheSet(cacheKey, events, eventsCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache events")
	}

	return EventsResult{Events: events, Source: EventsSourceLive}
}

func (s *EventsService) fallback(month, day int, cause error) EventsResult {
	logger.Warn().Err(cause).Int("month", month).Int("day", day).Msg("Events feed unavailable, serving fallback set")
	return EventsResult{Events: FallbackEvents(month, day), Source: EventsSourceFallback}
}

// normalizeEvents filters for space relevance and maps surviving feed items
// into display records, sorted by year descending and capped at 6.
func normalizeEvents(raw []wikiEvent, month, day int) []models.SpaceEvent {
	events := []models.SpaceEvent{}
	for _, e := range raw {
		if !IsSpaceRelated(e.Text) {
			continue
		}

		event := models.SpaceEvent{
			ID:          fmt.Sprintf("%d-%d-%d-%d", month, day, e.Year, len(events)),
			Title:       utils.FormatTitle(fmt.Sprintf("Space Event in %d", e.Year)),
			Description: e.Text,
			Year:        e.Year,
			URL:         "#",
		}

		if len(e.Pages) > 0 {
			page := e.Pages[0]
			if page.Title != "" {
				event.Title = utils.FormatTitle(page.Title)
			}
			if page.Thumbnail != nil {
				event.Image = page.Thumbnail.Source
			} else if page.OriginalImage != nil {
				event.Image = page.OriginalImage.Source
			}
			if page.ContentURLs.Desktop.Page != "" {
				event.URL = page.ContentURLs.Desktop.Page
			}
		}

		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Year > events[j].Year
	})

	if len(events) > maxEventsPerDate {
		events = events[:maxEventsPerDate]
	}
	return events
}

// FallbackEvents is the fixed placeholder set served when the feed fails.
func FallbackEvents(month, day int) []models.SpaceEvent {
	return []models.SpaceEvent{
		{
			ID:          fmt.Sprintf("fallback-%d-%d-1", month, day),
			Title:       "Historic Space Achievement",
			Description: "A significant milestone in space exploration occurred on this day.",
			Year:        1969,
			URL:         "#",
		},
		{
			ID:          fmt.Sprintf("fallback-%d-%d-2", month, day),
			Title:       "Astronomical Discovery",
			Description: "An important astronomical discovery was made on this date.",
			Year:        1990,
			URL:         "#",
		},
		{
			ID:          fmt.Sprintf("fallback-%d-%d-3", month, day),
			Title:       "Space Mission Launch",
			Description: "A notable space mission was launched on this day.",
			Year:        2001,
			URL:         "#",
		},
	}
}
