package utils

import (
	"fmt"
	"math/rand"
	"regexp"
)

// Catalog-style prefixes (New General Catalogue, Messier, Index Catalogue...)
var cosmicIDPrefixes = []string{"NGC", "M", "IC", "UGC", "PGC"}

var cosmicIDPattern = regexp.MustCompile(`^(NGC|M|IC|UGC|PGC)-\d{4}$`)

// GenerateCosmicID produces a catalog-style identifier like "NGC-0042".
// Assigned once at passport creation and never regenerated.
func GenerateCosmicID() string {
	prefix := cosmicIDPrefixes[rand.Intn(len(cosmicIDPrefixes))]
	number := rand.Intn(9999) + 1
	return fmt.Sprintf("%s-%04d", prefix, number)
}

// IsCosmicID checks if the string is a valid cosmic identifier
func IsCosmicID(s string) bool {
	return cosmicIDPattern.MatchString(s)
}
