package models

// RealmItem is one browsable object inside a realm.
type RealmItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	Icon        string   `json:"icon"`
	Facts       []string `json:"facts"`
}

// Realm is a thematic content category the UI groups browsable items into.
type Realm struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Items       []RealmItem `json:"items"`
}

// TrackedRealmKey maps a realm page id to the key recorded on the passport.
// Only three keys are trackable; space-missions and cosmic-phenomena are
// intentionally left unmapped, and "solar-planets" does not match any realm
// page id, so the planets key is never recorded through this path. Kept as
// shipped pending product clarification.
func TrackedRealmKey(realmID string) string {
	switch realmID {
	case "distant-galaxies":
		return "galaxies"
	case "star-systems":
		return "stars"
	case "solar-planets":
		return "planets"
	}
	return ""
}

// TrackableRealmCount is the number of realm keys counted toward the
// all-realms achievement.
const TrackableRealmCount = 3

// Realms is the static content catalog, in display order.
var Realms = []Realm{
	{
		ID:          "distant-galaxies",
		Name:        "Distant Galaxies",
		Description: "Explore the vast cosmic neighborhoods beyond our own",
		Icon:        "🌌",
		Items: []RealmItem{
			{
				ID:          "andromeda",
				Name:        "Andromeda Galaxy",
				Description: "Our nearest major galactic neighbor",
				Details:     "The Andromeda Galaxy is approaching the Milky Way and will collide with it in about 4.5 billion years.",
				Icon:        "🌀",
				Facts: []string{
					"Contains approximately 1 trillion stars",
					"Located 2.5 million light-years away",
					"Spans about 220,000 light-years in diameter",
					"Also known as M31 or NGC 224",
				},
			},
			{
				ID:          "milky-way",
				Name:        "Milky Way Galaxy",
				Description: "Our home galaxy with its spiral arms",
				Details:     "The Milky Way is a barred spiral galaxy containing our Solar System, with an estimated 100-400 billion stars.",
				Icon:        "🌌",
				Facts: []string{
					"Contains 200-400 billion stars",
					"Spans about 100,000 light-years across",
					"Has a supermassive black hole at its center",
					"Takes 225 million years for one galactic rotation",
				},
			},
			{
				ID:          "whirlpool",
				Name:        "Whirlpool Galaxy",
				Description: "A stunning face-on spiral galaxy",
				Details:     "The Whirlpool Galaxy showcases perfect spiral structure and is interacting with a smaller companion galaxy.",
				Icon:        "🌪️",
				Facts: []string{
					"Also known as M51",
					"Located 23 million light-years away",
					"Classic example of a grand design spiral galaxy",
					"Being distorted by gravitational interaction",
				},
			},
		},
	},
	{
		ID:          "star-systems",
		Name:        "Star Systems",
		Description: "Discover the stellar formations that light up the cosmos",
		Icon:        "⭐",
		Items: []RealmItem{
			{
				ID:          "alpha-centauri",
				Name:        "Alpha Centauri System",
				Description: "The closest star system to Earth",
				Details:     "A triple star system consisting of Alpha Centauri A, B, and Proxima Centauri, with potentially habitable exoplanets.",
				Icon:        "🌟",
				Facts: []string{
					"Only 4.37 light-years from Earth",
					"Contains three stars in total",
					"Proxima Centauri hosts potentially habitable planets",
					"Visible as the third brightest star in night sky",
				},
			},
			{
				ID:          "sirius",
				Name:        "Sirius Binary System",
				Description: "The brightest star in our night sky",
				Details:     "Sirius is a binary star system consisting of a main-sequence star and a white dwarf companion.",
				Icon:        "💎",
				Facts: []string{
					"Brightest star in the night sky",
					"8.6 light-years from Earth",
					"Also known as the Dog Star",
					"Has a white dwarf companion called Sirius B",
				},
			},
			{
				ID:          "vega",
				Name:        "Vega",
				Description: "The former and future pole star",
				Details:     "Vega was the pole star around 12,000 BCE and will be again around 13,727 CE due to axial precession.",
				Icon:        "🎯",
				Facts: []string{
					"Fifth brightest star in night sky",
					"25 light-years from Earth",
					"Was the northern pole star 12,000 years ago",
					"First star photographed and first to have spectrum recorded",
				},
			},
		},
	},
	{
		ID:          "solar-system",
		Name:        "Solar System Planets",
		Description: "Journey through our cosmic neighborhood",
		Icon:        "🪐",
		Items: []RealmItem{
			{
				ID:          "mercury",
				Name:        "Mercury",
				Description: "The swiftest planet, closest to the Sun",
				Details:     "Mercury has extreme temperature variations and no atmosphere to retain heat, making it both scorching and freezing.",
				Icon:        "☿️",
				Facts: []string{
					"Closest planet to the Sun",
					"Completes orbit in just 88 Earth days",
					"No atmosphere or moons",
					"Temperature ranges from -173°C to 427°C",
				},
			},
			{
				ID:          "venus",
				Name:        "Venus",
				Description: "The hottest planet with a toxic atmosphere",
				Details:     "Venus has a runaway greenhouse effect with surface temperatures hot enough to melt lead.",
				Icon:        "♀️",
				Facts: []string{
					"Hottest planet in the solar system",
					"Surface temperature of 462°C",
					"Rotates backwards compared to most planets",
					"Day longer than its year",
				},
			},
			{
				ID:          "earth",
				Name:        "Earth",
				Description: "Our blue marble, the only known habitable planet",
				Details:     "Earth is the only known planet with life, featuring liquid water, a protective atmosphere, and perfect conditions.",
				Icon:        "🌍",
				Facts: []string{
					"Only known planet with life",
					"71% of surface covered by water",
					"Has one natural satellite - the Moon",
					"Perfect distance from Sun for liquid water",
				},
			},
			{
				ID:          "mars",
				Name:        "Mars",
				Description: "The red planet, target for future exploration",
				Details:     "Mars shows evidence of ancient water flow and is the most Earth-like planet in our solar system.",
				Icon:        "♂️",
				Facts: []string{
					"Known as the Red Planet",
					"Has the largest volcano in the solar system",
					"Day length similar to Earth (24h 37m)",
					"Evidence of ancient river valleys and lakes",
				},
			},
			{
				ID:          "jupiter",
				Name:        "Jupiter",
				Description: "The gas giant that protects inner planets",
				Details:     "Jupiter acts as a cosmic vacuum cleaner, protecting inner planets from asteroids and comets.",
				Icon:        "🪐",
				Facts: []string{
					"Largest planet in the solar system",
					"Has over 80 known moons",
					"Great Red Spot is a storm larger than Earth",
					"Acts as a shield for inner planets",
				},
			},
			{
				ID:          "saturn",
				Name:        "Saturn",
				Description: "The ringed beauty of our solar system",
				Details:     "Saturn is famous for its spectacular ring system made of ice and rock particles.",
				Icon:        "🪐",
				Facts: []string{
					"Most spectacular ring system",
					"Less dense than water",
					"Has 83 confirmed moons",
					"Largest moon Titan has thick atmosphere",
				},
			},
		},
	},
	{
		ID:          "space-missions",
		Name:        "Historic Space Missions",
		Description: "Journey through humanity's greatest space achievements",
		Icon:        "🚀",
		Items: []RealmItem{
			{
				ID:          "apollo-11",
				Name:        "Apollo 11",
				Description: "First human moon landing mission",
				Details:     "Apollo 11 achieved humanity's first crewed lunar landing on July 20, 1969, with Neil Armstrong and Buzz Aldrin walking on the Moon.",
				Icon:        "🌙",
				Facts: []string{
					"First humans to land on the Moon",
					"Neil Armstrong first to step on lunar surface",
					"Collected 47.5 pounds of lunar material",
					"Mission duration: 8 days, 3 hours, 18 minutes",
				},
			},
			{
				ID:          "voyager",
				Name:        "Voyager Program",
				Description: "Interstellar explorers of the outer solar system",
				Details:     "Twin spacecraft launched in 1977, Voyager 1 and 2 have provided unprecedented views of the outer planets and continue their journey into interstellar space.",
				Icon:        "🛰️",
				Facts: []string{
					"Launched in 1977, still active today",
					"Voyager 1 is furthest human-made object from Earth",
					"Discovered active volcanoes on Jupiter's moon Io",
					"Carry golden records with sounds of Earth",
				},
			},
			{
				ID:          "hubble",
				Name:        "Hubble Space Telescope",
				Description: "Eye in the sky revolutionizing astronomy",
				Details:     "Launched in 1990, Hubble has provided stunning images of deep space and revolutionized our understanding of the universe.",
				Icon:        "🔭",
				Facts: []string{
					"Orbiting Earth since 1990",
					"Made over 1.5 million observations",
					"Helped determine age of universe (13.8 billion years)",
					"Travels at 17,000 mph around Earth",
				},
			},
			{
				ID:          "iss",
				Name:        "International Space Station",
				Description: "Humanity's home in space",
				Details:     "The ISS is a marvel of international cooperation, serving as a laboratory for scientific research and technology development in microgravity.",
				Icon:        "🏗️",
				Facts: []string{
					"Largest human-made object in space",
					"Continuously occupied since November 2000",
					"Orbits Earth every 90 minutes",
					"Joint project of 5 space agencies",
				},
			},
			{
				ID:          "mars-rovers",
				Name:        "Mars Exploration Rovers",
				Description: "Robotic explorers of the Red Planet",
				Details:     "From Sojourner to Perseverance, Mars rovers have been our eyes and hands on the Red Planet, searching for signs of past life.",
				Icon:        "🤖",
				Facts: []string{
					"Multiple successful rover missions since 1997",
					"Perseverance searching for signs of ancient life",
					"Ingenuity helicopter achieved first powered flight on Mars",
					"Discovered evidence of ancient water activity",
				},
			},
		},
	},
	{
		ID:          "cosmic-phenomena",
		Name:        "Cosmic Phenomena",
		Description: "Witness the universe's most spectacular events",
		Icon:        "💫",
		Items: []RealmItem{
			{
				ID:          "black-holes",
				Name:        "Black Holes",
				Description: "Regions where gravity warps spacetime itself",
				Details:     "Black holes are among the most extreme objects in the universe, where gravity is so strong that nothing, not even light, can escape.",
				Icon:        "⚫",
				Facts: []string{
					"First image captured in 2019 (M87 black hole)",
					"Sagittarius A* is the black hole at our galaxy's center",
					"Time dilates near the event horizon",
					"Can have mass millions of times greater than our Sun",
				},
			},
			{
				ID:          "supernovas",
				Name:        "Supernovas",
				Description: "Stellar explosions that forge heavy elements",
				Details:     "Supernovas are the explosive deaths of massive stars, creating and distributing heavy elements throughout the universe.",
				Icon:        "💥",
				Facts: []string{
					"Can briefly outshine entire galaxies",
					"Create and distribute heavy elements like gold and uranium",
					"Leave behind neutron stars or black holes",
					"Visible from billions of light-years away",
				},
			},
			{
				ID:          "pulsars",
				Name:        "Pulsars",
				Description: "Cosmic lighthouses spinning in space",
				Details:     "Pulsars are rapidly rotating neutron stars that emit beams of electromagnetic radiation from their magnetic poles.",
				Icon:        "🌟",
				Facts: []string{
					"Ultra-dense neutron stars",
					"Can spin hundreds of times per second",
					"More precise than atomic clocks",
					"Formed from supernova explosions",
				},
			},
			{
				ID:          "gravitational-waves",
				Name:        "Gravitational Waves",
				Description: "Ripples in the fabric of spacetime",
				Details:     "Gravitational waves are distortions in spacetime caused by accelerating massive objects, first detected by LIGO in 2015.",
				Icon:        "〰️",
				Facts: []string{
					"Predicted by Einstein in 1915",
					"First detected in 2015 by LIGO",
					"Caused by colliding black holes or neutron stars",
					"Travel at the speed of light",
				},
			},
		},
	},
}

// RealmByID returns the realm with the given page id, or nil.
func RealmByID(id string) *Realm {
	for i := range Realms {
		if Realms[i].ID == id {
			return &Realms[i]
		}
	}
	return nil
}
