package prompt

import (
	"fmt"
	"strings"

	"github.com/tastecraft/tastecraft-api/internal/models"
)

// Builder constructs the prompts sent to the text-generation provider.
// Every prompt spells out an exact cardinality and a line format so the
// response parsers can split the reply mechanically.
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// SystemPrompt returns the shared system instructions for all requests
func (b *Builder) SystemPrompt() string {
	return strings.Join([]string{
		"You are a restaurant branding assistant.",
		"You produce restaurant names, taglines, and menus for a given country and restaurant style.",
		"Follow the requested output format exactly: no introductions, no closing remarks, no markdown tables.",
	}, " ")
}

// NamesPrompt builds the prompt for the names-and-taglines request.
// Pure function of its inputs; the literal country and style always
// appear verbatim in the output.
func (b *Builder) NamesPrompt(country, style string) string {
	return fmt.Sprintf(
		"Suggest exactly %d unique and catchy restaurant names for a %s style restaurant in %s. "+
			"Make them creative and memorable. "+
			"For each suggestion output exactly two lines: "+
			"the first line is the restaurant name prefixed with its number (for example \"1. Bistro Luna\"), "+
			"the second line is a short tagline for that restaurant. "+
			"Output nothing else.",
		models.ExpectedNameCount, style, country,
	)
}

// MenuPrompt builds the prompt for the menu request
func (b *Builder) MenuPrompt(country, style string) string {
	return fmt.Sprintf(
		"Create a detailed menu for a %s style restaurant in %s. "+
			"Include exactly %d starters, %d main courses, %d desserts, and %d beverages. "+
			"Make the dishes authentic to the cuisine. "+
			"Use exactly these four section headers, in this order, each on its own line: "+
			"Starters, Main Courses, Desserts, Beverages. "+
			"Under each header list one item per line as \"Dish name - short description\". "+
			"Output nothing else.",
		style, country,
		models.ExpectedStarterCount,
		models.ExpectedMainCount,
		models.ExpectedDessertCount,
		models.ExpectedBeverageCount,
	)
}

// ForKind builds the prompt matching the request kind
func (b *Builder) ForKind(kind models.RequestKind, country, style string) string {
	if kind == models.KindMenu {
		return b.MenuPrompt(country, style)
	}
	return b.NamesPrompt(country, style)
}
