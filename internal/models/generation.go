package models

import "time"

// RequestKind selects what the generator should produce
type RequestKind string

const (
	// KindNamesAndTaglines requests restaurant names with taglines
	KindNamesAndTaglines RequestKind = "names"
	// KindMenu requests a full menu
	KindMenu RequestKind = "menu"
)

// GenerationRequest describes one user-triggered generation.
// Created fresh per request, never mutated.
type GenerationRequest struct {
	Country  string      `json:"country"`
	Style    string      `json:"style"`
	Kind     RequestKind `json:"kind"`
	Model    string      `json:"model,omitempty"`
	Provider string      `json:"provider,omitempty"`
}

// NameSuggestion is a single restaurant name with its tagline.
// The tagline may be empty when the model omitted it.
type NameSuggestion struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
}

// SectionName is one of the four fixed menu categories
type SectionName string

const (
	SectionStarters    SectionName = "Starters"
	SectionMainCourses SectionName = "Main Courses"
	SectionDesserts    SectionName = "Desserts"
	SectionBeverages   SectionName = "Beverages"
)

// SectionOrder is the canonical rendering order of menu sections
var SectionOrder = []SectionName{
	SectionStarters,
	SectionMainCourses,
	SectionDesserts,
	SectionBeverages,
}

// Expected per-section item counts. Soft targets only - the model is an
// uncontrolled source and may return fewer or more.
const (
	ExpectedNameCount     = 5
	ExpectedStarterCount  = 5
	ExpectedMainCount     = 5
	ExpectedDessertCount  = 3
	ExpectedBeverageCount = 3
)

// MenuSection holds the items found under one section header
type MenuSection struct {
	Name  SectionName `json:"name"`
	Items []string    `json:"items"`
}

// MenuResult is a full parsed menu. Sections are always present in
// canonical order, possibly with empty item lists.
type MenuResult struct {
	Sections []MenuSection `json:"sections"`
}

// Section returns the section with the given name, or nil
func (m *MenuResult) Section(name SectionName) *MenuSection {
	for i := range m.Sections {
		if m.Sections[i].Name == name {
			return &m.Sections[i]
		}
	}
	return nil
}

// ItemCount returns the total number of items across all sections
func (m *MenuResult) ItemCount() int {
	total := 0
	for _, s := range m.Sections {
		total += len(s.Items)
	}
	return total
}

// GenerationLog records one upstream generation call for the history view
type GenerationLog struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RequestID    string      `gorm:"index" json:"request_id"`
	Country      string      `json:"country"`
	Style        string      `json:"style"`
	Kind         RequestKind `json:"kind"`
	Model        string      `json:"model"`
	Provider     string      `json:"provider"`
	Success      bool        `json:"success"`
	ErrorKind    string      `json:"error_kind,omitempty"`
	DurationMS   int64       `json:"duration_ms"`
	InputTokens  int64       `json:"input_tokens"`
	OutputTokens int64       `json:"output_tokens"`
	TotalTokens  int64       `json:"total_tokens"`
	CostUSD      float64     `json:"cost_usd"`
	CreatedAt    time.Time   `json:"created_at"`
}
