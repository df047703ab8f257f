package models

// Achievement is a named, point-valued unlockable flag. The catalog is
// fixed at build time and not user-extensible at runtime.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

const (
	AchievementInitiate        = "space-explorer-initiate"
	AchievementTimeTraveler    = "time-traveler"
	AchievementOrbitalMaster   = "orbital-master"
	AchievementCosmicHistorian = "cosmic-historian"
	AchievementGalaxyExplorer  = "galaxy-explorer"
	AchievementStarGazer       = "star-gazer"
	AchievementPlanetWalker    = "planet-walker"
	AchievementUniverse        = "universe-explorer"
	AchievementSpaceVeteran    = "space-veteran"

	// Awarded directly on reaching level 5. Deliberately not part of the
	// catalog, so it carries its own bonus and never shows in the
	// unlocked-achievements listing.
	AchievementCosmicExplorer = "cosmic-explorer"
)

// Achievements is the full catalog, in display order.
var Achievements = []Achievement{
	{ID: AchievementInitiate, Name: "Space Explorer Initiate", Description: "Created your space passport", Icon: "🚀", Points: 10},
	{ID: AchievementTimeTraveler, Name: "Time Traveler", Description: "Explored 5 different dates", Icon: "⏰", Points: 20},
	{ID: AchievementOrbitalMaster, Name: "Orbital Master", Description: "Used the orbital date selector 10 times", Icon: "🌍", Points: 15},
	{ID: AchievementCosmicHistorian, Name: "Cosmic Historian", Description: "Discovered 20 space events", Icon: "📚", Points: 30},
	{ID: AchievementGalaxyExplorer, Name: "Galaxy Explorer", Description: "Visited the Distant Galaxies realm", Icon: "🌌", Points: 25},
	{ID: AchievementStarGazer, Name: "Star Gazer", Description: "Visited the Star Systems realm", Icon: "⭐", Points: 25},
	{ID: AchievementPlanetWalker, Name: "Planet Walker", Description: "Visited the Solar Planets realm", Icon: "🪐", Points: 25},
	{ID: AchievementUniverse, Name: "Universe Explorer", Description: "Visited all three realms", Icon: "🌠", Points: 50},
	{ID: AchievementSpaceVeteran, Name: "Space Veteran", Description: "Reached level 5", Icon: "🎖️", Points: 100},
}

// AchievementByID returns the catalog entry for id, or nil for unknown ids.
func AchievementByID(id string) *Achievement {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}
