package services

import (
	"fmt"
	"strings"

	"github.com/tastecraft/tastecraft-api/internal/models"
)

// RenderNamesText renders name suggestions as plain text suitable for a
// downloadable file: one entry per line group, numbered in output order.
func RenderNamesText(country, style string, suggestions []models.NameSuggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant name ideas - %s style, %s\n\n", style, country)

	for i, s := range suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.Name)
		if s.Tagline != "" {
			fmt.Fprintf(&b, "   %s\n", s.Tagline)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderMenuText renders a parsed menu as plain text, one section per
// line group in canonical order.
func RenderMenuText(country, style string, menu *models.MenuResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Menu - %s style, %s\n", style, country)

	for _, section := range menu.Sections {
		fmt.Fprintf(&b, "\n%s\n", section.Name)
		for _, item := range section.Items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}

	return b.String()
}

// RenderConceptText renders a full restaurant concept (chosen name plus
// menu) for download, mirroring the shape of the exported file the web UI
// offers.
func RenderConceptText(restaurantName, country, style string, menu *models.MenuResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant: %s\n", restaurantName)
	b.WriteString("\n")
	b.WriteString(RenderMenuText(country, style, menu))
	return b.String()
}
