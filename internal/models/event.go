package models

// SpaceEvent is a normalized display record for one historical event.
// Ephemeral: recomputed on every date query, never persisted.
type SpaceEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url"`
}
