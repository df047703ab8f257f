package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// StringSet is a grow-only set of strings persisted as a JSON array.
// Stored as text so the column works the same on PostgreSQL and SQLite.
// Insertion order is preserved for display.
type StringSet []string

func (s StringSet) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Add appends v if absent. Returns true when the set grew.
func (s *StringSet) Add(v string) bool {
	if s.Contains(v) {
		return false
	}
	*s = append(*s, v)
	return true
}

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		s = StringSet{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (s *StringSet) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = StringSet{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported type for StringSet: %T", value)
	}
	return json.Unmarshal(data, s)
}

// Passport is the user's locally persisted profile record. Exactly one
// exists per deployment; it is created once and then only grows.
type Passport struct {
	ID        string    `gorm:"primaryKey;type:text" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`

	// Assigned once at creation, never regenerated
	CosmicID string `gorm:"uniqueIndex;column:cosmicId" json:"cosmicId"`

	// Optional embedded image data (data URL from the file picker)
	Photo string `gorm:"type:text" json:"photo,omitempty"`

	// Derived from ExperiencePoints: level = xp/50 + 1
	Level            int `gorm:"default:1" json:"level"`
	ExperiencePoints int `gorm:"default:0" json:"experiencePoints"`

	Achievements  StringSet `gorm:"type:text" json:"achievements"`
	ExploredDates StringSet `gorm:"type:text" json:"exploredDates"`
	VisitedRealms StringSet `gorm:"type:text" json:"visitedRealms"`
}
