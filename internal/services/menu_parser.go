package services

import (
	"strings"
	"unicode"

	"github.com/tastecraft/tastecraft-api/internal/models"
)

// sectionAliases maps a normalized header line to its canonical section.
// The alias set covers the wording the menu prompt requests plus common
// drift (appetizers, mains, sweets, drinks).
var sectionAliases = map[string]models.SectionName{
	"starters":     models.SectionStarters,
	"starter":      models.SectionStarters,
	"appetizers":   models.SectionStarters,
	"appetizer":    models.SectionStarters,
	"main courses": models.SectionMainCourses,
	"entrees":      models.SectionMainCourses,
	"main course":  models.SectionMainCourses,
	"mains":        models.SectionMainCourses,
	"main dishes":  models.SectionMainCourses,
	"desserts":     models.SectionDesserts,
	"dessert":      models.SectionDesserts,
	"sweets":       models.SectionDesserts,
	"beverages":    models.SectionBeverages,
	"beverage":     models.SectionBeverages,
	"drinks":       models.SectionBeverages,
	"drink":        models.SectionBeverages,
}

// normalizeHeader lowercases a line and strips everything that is not a
// letter or a space, so "### 🥗 Starters:" and "**Main Courses**" reduce
// to their bare section names
func normalizeHeader(line string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(line) {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// matchSectionHeader reports whether the line is a section header after
// markup stripping. Item lines that merely mention a section word (for
// example a dish description containing "drink") do not match because the
// whole normalized line must equal an alias.
func matchSectionHeader(line string) (models.SectionName, bool) {
	section, ok := sectionAliases[normalizeHeader(line)]
	return section, ok
}

// ParseMenu converts the raw model reply into a MenuResult.
//
// Lines are scanned in order. A recognized header opens its section; all
// following non-header lines become items of the open section. Lines
// before the first recognized header are discarded, as are unrecognized
// headers (which simply read as items, or nothing when no section is
// open). The result always contains all four sections in canonical order
// regardless of the order headers appeared in the reply.
//
// Never fails: unparseable input yields four empty sections.
func ParseMenu(text string) *models.MenuResult {
	items := make(map[models.SectionName][]string)

	var current models.SectionName
	haveSection := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if section, ok := matchSectionHeader(line); ok {
			current = section
			haveSection = true
			continue
		}

		if !haveSection {
			continue
		}

		item := stripListMarker(line)
		if item != "" {
			items[current] = append(items[current], item)
		}
	}

	result := &models.MenuResult{Sections: make([]models.MenuSection, 0, len(models.SectionOrder))}
	for _, name := range models.SectionOrder {
		result.Sections = append(result.Sections, models.MenuSection{
			Name:  name,
			Items: items[name],
		})
	}
	return result
}
