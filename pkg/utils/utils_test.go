package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCosmicID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateCosmicID()
		assert.True(t, IsCosmicID(id), "generated id %q should match the catalog pattern", id)
	}
}

func TestIsCosmicID(t *testing.T) {
	assert.True(t, IsCosmicID("NGC-0042"))
	assert.True(t, IsCosmicID("M-9999"))
	assert.False(t, IsCosmicID("NGC-42"))
	assert.False(t, IsCosmicID("HST-0042"))
	assert.False(t, IsCosmicID("ngc-0042"))
	assert.False(t, IsCosmicID(""))
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Apollo 11", FormatTitle("Apollo_11"))
	assert.Equal(t, "Mars Rover", FormatTitle("mars_rover"))
	assert.Equal(t, "Sputnik 1", FormatTitle("Sputnik_1_(disambiguation)"))
	assert.Equal(t, "Space Shuttle", FormatTitle("space shuttle (page)"))
	assert.Equal(t, "", FormatTitle(""))
}

func TestFormatTitle_MultibyteFirstLetter(t *testing.T) {
	got := FormatTitle("école_polytechnique")
	assert.Equal(t, "École Polytechnique", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "École Polytechnique", FormatTitle("École_polytechnique"))
	assert.Equal(t, "Мир Station", FormatTitle("мир_station"))
}
