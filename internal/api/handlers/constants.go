package handlers

// PopularCountries is the country choice list shown in the form UI.
// "Other" switches the form to free-text input.
var PopularCountries = []string{
	"🇮🇳 India", "🇺🇸 United States", "🇮🇹 Italy", "🇯🇵 Japan",
	"🇫🇷 France", "🇨🇳 China", "🇹🇭 Thailand", "🇲🇽 Mexico",
	"🇬🇷 Greece", "🇪🇸 Spain", "🇰🇷 South Korea", "🇧🇷 Brazil",
	"🇬🇧 United Kingdom", "🇩🇪 Germany", "🇹🇷 Turkey", "Other",
}

// RestaurantStyles is the style choice list shown in the form UI
var RestaurantStyles = []string{
	"🏛️ Traditional", "✨ Modern", "🌮 Street Food", "👑 Luxury",
	"🌍 Fusion", "☕ Café", "🍕 Casual Dining", "🍣 Fine Dining",
}

// AllowedModels lists the models a request may select
var AllowedModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gpt-4o",
	"gpt-4o-mini",
}

func isAllowedModel(model string) bool {
	for _, m := range AllowedModels {
		if m == model {
			return true
		}
	}
	return false
}
