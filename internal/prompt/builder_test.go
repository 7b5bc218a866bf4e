package prompt

import (
	"strings"
	"testing"

	"github.com/tastecraft/tastecraft-api/internal/models"
)

func TestNamesPromptContainsInputsVerbatim(t *testing.T) {
	builder := NewBuilder()

	pairs := []struct{ country, style string }{
		{"Japan", "Fine Dining"},
		{"Mexico", "Street Food"},
		{"France", "Café"},
		{"South Korea", "Modern"},
	}

	for _, p := range pairs {
		prompt := builder.NamesPrompt(p.country, p.style)
		if !strings.Contains(prompt, p.country) {
			t.Errorf("NamesPrompt(%q, %q) does not contain country verbatim", p.country, p.style)
		}
		if !strings.Contains(prompt, p.style) {
			t.Errorf("NamesPrompt(%q, %q) does not contain style verbatim", p.country, p.style)
		}
	}
}

func TestNamesPromptRequestsFiveEntries(t *testing.T) {
	builder := NewBuilder()
	prompt := builder.NamesPrompt("Italy", "Traditional")

	if !strings.Contains(prompt, "exactly 5") {
		t.Error("NamesPrompt does not request an explicit cardinality of 5")
	}
	if !strings.Contains(prompt, "two lines") {
		t.Error("NamesPrompt does not specify the name/tagline line format")
	}
}

func TestMenuPromptContainsInputsVerbatim(t *testing.T) {
	builder := NewBuilder()
	prompt := builder.MenuPrompt("Thailand", "Luxury")

	if !strings.Contains(prompt, "Thailand") {
		t.Error("MenuPrompt does not contain country verbatim")
	}
	if !strings.Contains(prompt, "Luxury") {
		t.Error("MenuPrompt does not contain style verbatim")
	}
}

func TestMenuPromptSpecifiesSectionsAndCounts(t *testing.T) {
	builder := NewBuilder()
	prompt := builder.MenuPrompt("Greece", "Casual Dining")

	for _, header := range []string{"Starters", "Main Courses", "Desserts", "Beverages"} {
		if !strings.Contains(prompt, header) {
			t.Errorf("MenuPrompt does not name the %q section", header)
		}
	}
	if !strings.Contains(prompt, "5 starters") || !strings.Contains(prompt, "5 main courses") {
		t.Error("MenuPrompt does not request 5 starters and 5 main courses")
	}
	if !strings.Contains(prompt, "3 desserts") || !strings.Contains(prompt, "3 beverages") {
		t.Error("MenuPrompt does not request 3 desserts and 3 beverages")
	}
}

func TestForKindSelectsTemplate(t *testing.T) {
	builder := NewBuilder()

	if builder.ForKind(models.KindMenu, "Spain", "Fusion") != builder.MenuPrompt("Spain", "Fusion") {
		t.Error("ForKind(menu) does not match MenuPrompt")
	}
	if builder.ForKind(models.KindNamesAndTaglines, "Spain", "Fusion") != builder.NamesPrompt("Spain", "Fusion") {
		t.Error("ForKind(names) does not match NamesPrompt")
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	builder := NewBuilder()

	if builder.NamesPrompt("India", "Modern") != builder.NamesPrompt("India", "Modern") {
		t.Error("NamesPrompt is not deterministic")
	}
	if builder.MenuPrompt("India", "Modern") != builder.MenuPrompt("India", "Modern") {
		t.Error("MenuPrompt is not deterministic")
	}
}
