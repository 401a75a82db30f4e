package render

import "github.com/geosick/pitchdeck/pkg/domain"

// View is the complete visual tree for one rendered frame. The browser page
// is a dumb terminal: it draws exactly what is here and sends stimuli back.
type View struct {
	Slide      SlideView  `json:"slide"`
	Position   Position   `json:"position"`
	Background Background `json:"background"`
}

type Position struct {
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	Label      string `json:"label"`
	CanAdvance bool   `json:"canAdvance"`
	CanRetreat bool   `json:"canRetreat"`
}

// Background describes the decorative globe scene behind the slide. The
// scene gets nothing from the deck besides the dark/light flag.
type Background struct {
	Active bool `json:"active"`
	Dark   bool `json:"dark"`
}

type SlideView struct {
	ID       int           `json:"id"`
	Layout   domain.Layout `json:"layout"`
	Dark     bool          `json:"dark"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Icon     string        `json:"icon"`

	// Exactly one of the following is set, matching Layout.
	Content  *ContentView  `json:"content,omitempty"`
	Points   []string      `json:"points,omitempty"`
	Steps    []StepView    `json:"steps,omitempty"`
	Cards    []CardView    `json:"cards,omitempty"`
	Analysis *AnalysisView `json:"analysis,omitempty"`
	Chat     *ChatView     `json:"chat,omitempty"`
}

// ContentView is the two-column text+graphic arrangement.
type ContentView struct {
	Points   []string    `json:"points"`
	TextSide string      `json:"textSide"` // "left" or "right"
	Graphic  GraphicView `json:"graphic"`
}

type GraphicView struct {
	Kind string `json:"kind"` // graphic tag, or "generic"
	Icon string `json:"icon"`
}

type StepView struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type CardView struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type AnalysisView struct {
	Points         []string    `json:"points,omitempty"`
	HasImage       bool        `json:"hasImage"`
	Pending        bool        `json:"pending"`
	Failed         bool        `json:"failed"`
	FailureMessage string      `json:"failureMessage,omitempty"`
	Report         *ReportView `json:"report,omitempty"`
}

type ReportView struct {
	RiskLevel      string          `json:"riskLevel"`
	Severity       domain.Severity `json:"severity"`
	Hazards        []string        `json:"hazards,omitempty"`
	HazardsEmpty   string          `json:"hazardsEmpty,omitempty"`
	Recommendation string          `json:"recommendation"`
}

type ChatView struct {
	Points  []string        `json:"points,omitempty"`
	Entries []ChatEntryView `json:"entries"`
	Pending bool            `json:"pending"`
}

type ChatEntryView struct {
	Speaker domain.Speaker `json:"speaker"`
	Text    string         `json:"text"`
	// HTML is set for assistant entries, which may reply in markdown.
	HTML string `json:"html,omitempty"`
}
