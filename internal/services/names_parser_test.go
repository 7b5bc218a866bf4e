package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNamesFivePairs(t *testing.T) {
	text := `Bistro Luna
A cozy escape under the moon
Casa Verde
Fresh from the garden
The Gilded Fork
Where every bite shines
Saffron & Smoke
Bold flavors, open fire
Harbor Table
The catch of the day, every day`

	suggestions := ParseNames(text)
	require.Len(t, suggestions, 5)

	assert.Equal(t, "Bistro Luna", suggestions[0].Name)
	assert.Equal(t, "A cozy escape under the moon", suggestions[0].Tagline)
	assert.Equal(t, "Harbor Table", suggestions[4].Name)
	assert.Equal(t, "The catch of the day, every day", suggestions[4].Tagline)
}

func TestParseNamesStripsListMarkers(t *testing.T) {
	text := `1. Bistro Luna
A cozy escape
2) Casa Verde
- Fresh from the garden
• The Gilded Fork
Where every bite shines`

	suggestions := ParseNames(text)
	require.Len(t, suggestions, 3)

	assert.Equal(t, "Bistro Luna", suggestions[0].Name)
	assert.Equal(t, "Casa Verde", suggestions[1].Name)
	assert.Equal(t, "Fresh from the garden", suggestions[1].Tagline)
	assert.Equal(t, "The Gilded Fork", suggestions[2].Name)
}

func TestParseNamesStripsMarkdownEmphasis(t *testing.T) {
	text := `1. **Bistro Luna**
*A cozy escape*`

	suggestions := ParseNames(text)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Bistro Luna", suggestions[0].Name)
	assert.Equal(t, "A cozy escape", suggestions[0].Tagline)
}

func TestParseNamesFewerPairsThanRequested(t *testing.T) {
	text := `Bistro Luna
A cozy escape
Casa Verde
Fresh from the garden
The Gilded Fork
Where every bite shines`

	suggestions := ParseNames(text)
	assert.Len(t, suggestions, 3)
}

func TestParseNamesCapsAtFivePairs(t *testing.T) {
	text := `One
one tagline
Two
two tagline
Three
three tagline
Four
four tagline
Five
five tagline
Six
six tagline`

	suggestions := ParseNames(text)
	require.Len(t, suggestions, 5)
	assert.Equal(t, "Five", suggestions[4].Name)
}

func TestParseNamesMissingTaglineKeepsEntry(t *testing.T) {
	text := `Bistro Luna
A cozy escape
Casa Verde`

	suggestions := ParseNames(text)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Casa Verde", suggestions[1].Name)
	assert.Equal(t, "", suggestions[1].Tagline)
}

func TestParseNamesIgnoresBlankLines(t *testing.T) {
	text := "\nBistro Luna\n\n\nA cozy escape\n\n"

	suggestions := ParseNames(text)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Bistro Luna", suggestions[0].Name)
	assert.Equal(t, "A cozy escape", suggestions[0].Tagline)
}

func TestParseNamesEmptyInput(t *testing.T) {
	assert.Empty(t, ParseNames(""))
	assert.Empty(t, ParseNames("   \n\n  "))
}

func TestParseNamesIdempotent(t *testing.T) {
	text := "1. Bistro Luna\nA cozy escape\n2. Casa Verde\nFresh from the garden"

	first := ParseNames(text)
	second := ParseNames(text)
	assert.Equal(t, first, second)
}
