package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/models"
	"github.com/Saijayaranjan/among-the-space/pkg/logger"
	"github.com/Saijayaranjan/among-the-space/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrPassportExists is returned by Create when a passport already exists.
var ErrPassportExists = errors.New("passport already exists")

// ErrNoPassport is returned by mutations that require an existing passport.
var ErrNoPassport = errors.New("no passport")

// ValidationErrors carries field-scoped creation errors, keyed by field name.
type ValidationErrors map[string]string

// Level bonuses awarded on crossing a level threshold. space-veteran comes
// with +25 XP at level 3, cosmic-explorer with +50 XP at level 5. These
// match the original progression rules; cosmic-explorer is intentionally
// appended without a catalog lookup.
const (
	veteranLevel = 3
	veteranBonus = 25

	explorerLevel = 5
	explorerBonus = 50
)

// Exploration thresholds for the date-count achievements.
const (
	timeTravelerDates    = 5
	cosmicHistorianDates = 20
)

// PassportService owns the single passport record: XP, level derivation and
// achievement unlocking all go through it. Mutations are serialized by a
// mutex so every read-modify-write cycle is atomic, and each successful
// mutation is written to the store before the call returns.
type PassportService struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewPassportService(db *gorm.DB) *PassportService {
	return &PassportService{db: db}
}

// Get loads the passport. A missing or unreadable record is "no passport
// yet", never an error surfaced to the caller.
func (s *PassportService) Get() *models.Passport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load must be called with the mutex held.
func (s *PassportService) load() *models.Passport {
	var passport models.Passport
	err := s.db.Order("created_at ASC").First(&passport).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn().Err(err).Msg("Passport record unreadable, treating as absent")
		}
		return nil
	}
	return &passport
}

// save must be called with the mutex held.
func (s *PassportService) save(p *models.Passport) error {
	return s.db.Save(p).Error
}

// Create validates the input and mints a new passport. Field errors come
// back in ValidationErrors; no existing passport is ever touched.
func (s *PassportService) Create(name, dateOfBirth, photo string) (*models.Passport, ValidationErrors, error) {
	fieldErrs := ValidationErrors{}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		fieldErrs["name"] = "Name is required"
	} else if len([]rune(trimmed)) < 2 {
		fieldErrs["name"] = "Name must be at least 2 characters"
	}

	if dateOfBirth == "" {
		fieldErrs["dateOfBirth"] = "Date of birth is required"
	} else {
		birthDate, err := time.Parse("2006-01-02", dateOfBirth)
		if err != nil {
			fieldErrs["dateOfBirth"] = "Date of birth is invalid"
		} else if birthDate.After(time.Now()) {
			fieldErrs["dateOfBirth"] = "Date of birth cannot be in the future"
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.load(); existing != nil {
		return nil, nil, ErrPassportExists
	}

	passport := &models.Passport{
		ID:               uuid.NewString(),
		Name:             trimmed,
		DateOfBirth:      dateOfBirth,
		Photo:            photo,
		CosmicID:         utils.GenerateCosmicID(),
		Level:            1,
		ExperiencePoints: 10,
		Achievements:     models.StringSet{models.AchievementInitiate},
		ExploredDates:    models.StringSet{},
		VisitedRealms:    models.StringSet{},
	}

	if err := s.db.Create(passport).Error; err != nil {
		return nil, nil, err
	}

	logger.Info().Str("cosmic_id", passport.CosmicID).Msg("Passport created")
	return passport, nil, nil
}

// Update changes the mutable profile fields. CosmicID, createdAt and all
// progression state are untouchable through this path.
func (s *PassportService) Update(name, photo string) (*models.Passport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passport := s.load()
	if passport == nil {
		return nil, ErrNoPassport
	}

	if trimmed := strings.TrimSpace(name); len([]rune(trimmed)) >= 2 {
		passport.Name = trimmed
	}
	if photo != "" {
		passport.Photo = photo
	}

	if err := s.save(passport); err != nil {
		return nil, err
	}
	return passport, nil
}

// AddExperiencePoints adds points and re-derives the level. No-op without
// a passport.
func (s *PassportService) AddExperiencePoints(points int) (*models.Passport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passport := s.load()
	if passport == nil {
		return nil, ErrNoPassport
	}

	s.applyXP(passport, points)

	if err := s.save(passport); err != nil {
		return nil, err
	}
	return passport, nil
}

// AddAchievement unlocks the achievement and awards its points. Idempotent,
// and unknown ids are silently ignored.
func (s *PassportService) AddAchievement(achievementID string) (*models.Passport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passport := s.load()
	if passport == nil {
		return nil, ErrNoPassport
	}

	if s.award(passport, achievementID) {
		if err := s.save(passport); err != nil {
			return nil, err
		}
	}
	return passport, nil
}

// RecordDateExploration adds the date to the explored set and checks the
// date-count achievements against the size after insertion.
func (s *PassportService) RecordDateExploration(date string) (*models.Passport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passport := s.load()
	if passport == nil {
		return nil, ErrNoPassport
	}

	if !passport.ExploredDates.Add(date) {
		return passport, nil
	}

	if len(passport.ExploredDates) >= timeTravelerDates {
		s.award(passport, models.AchievementTimeTraveler)
	}
	if len(passport.ExploredDates) >= cosmicHistorianDates {
		s.award(passport, models.AchievementCosmicHistorian)
	}

	if err := s.save(passport); err != nil {
		return nil, err
	}
	return passport, nil
}

// RecordRealmVisit adds the realm key to the visited set and checks the
// per-realm achievements plus the all-realms one.
func (s *PassportService) RecordRealmVisit(realmKey string) (*models.Passport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passport := s.load()
	if passport == nil {
		return nil, ErrNoPassport
	}

	if !passport.VisitedRealms.Add(realmKey) {
		return passport, nil
	}

	switch realmKey {
	case "galaxies":
		s.award(passport, models.AchievementGalaxyExplorer)
	case "stars":
		s.award(passport, models.AchievementStarGazer)
	case "planets":
		s.award(passport, models.AchievementPlanetWalker)
	}

	if len(passport.VisitedRealms) >= models.TrackableRealmCount {
		s.award(passport, models.AchievementUniverse)
	}

	if err := s.save(passport); err != nil {
		return nil, err
	}
	return passport, nil
}

// UnlockedAchievements returns the catalog entries present on the passport,
// in catalog order. Empty without a passport.
func (s *PassportService) UnlockedAchievements() []models.Achievement {
	s.mu.Lock()
	passport := s.load()
	s.mu.Unlock()

	if passport == nil {
		return []models.Achievement{}
	}

	unlocked := []models.Achievement{}
	for _, a := range models.Achievements {
		if passport.Achievements.Contains(a.ID) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// award appends the achievement and its points. Returns true when state
// changed. Unknown ids are tolerated and change nothing.
func (s *PassportService) award(p *models.Passport, achievementID string) bool {
	achievement := models.AchievementByID(achievementID)
	if achievement == nil {
		logger.Debug().Str("achievement", achievementID).Msg("Ignoring unknown achievement id")
		return false
	}
	if !p.Achievements.Add(achievement.ID) {
		return false
	}
	s.applyXP(p, achievement.Points)
	return true
}

// applyXP adds points and settles the level derivation. The level is always
// recomputed, never incremented, so repeated settling cannot drift. Crossing
// a bonus threshold adds one-time bonus XP, which is itself settled until a
// fixpoint is reached; the already-present guards keep that loop finite.
func (s *PassportService) applyXP(p *models.Passport, points int) {
	p.ExperiencePoints += points

	for {
		newLevel := p.ExperiencePoints/50 + 1
		leveledUp := newLevel > p.Level
		p.Level = newLevel
		if !leveledUp {
			return
		}

		logger.Info().Int("level", p.Level).Msg("Level up")

		bonus := 0
		if p.Level >= veteranLevel && p.Achievements.Add(models.AchievementSpaceVeteran) {
			bonus += veteranBonus
		}
		if p.Level >= explorerLevel && p.Achievements.Add(models.AchievementCosmicExplorer) {
			bonus += explorerBonus
		}
		if bonus == 0 {
			return
		}
		p.ExperiencePoints += bonus
	}
}
