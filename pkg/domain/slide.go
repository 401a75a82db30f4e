package domain

type Layout string

const (
	LayoutTitle        Layout = "title"
	LayoutContentLeft  Layout = "content_left"
	LayoutContentRight Layout = "content_right"
	LayoutCentered     Layout = "centered"
	LayoutProcess      Layout = "process"
	LayoutGrid         Layout = "grid"
	LayoutLiveAnalysis Layout = "live_analysis"
	LayoutLiveChat     Layout = "live_chat"
	LayoutClosing      Layout = "closing"
)

// Graphic tags the decorative visual shown next to a text slide. The tag is
// assigned per slide in the catalog, so retitling a slide never changes its
// graphic. An empty tag renders the generic icon graphic.
type Graphic string

const (
	GraphicPulse        Graphic = "pulse"
	GraphicScan         Graphic = "scan"
	GraphicPrescription Graphic = "prescription"
	GraphicTravel       Graphic = "travel"
	GraphicTechStack    Graphic = "techstack"
)

// GlobeSlideID is the slide that activates the globe background scene even
// without the Emphasize flag.
const GlobeSlideID = 10

type Slide struct {
	ID        int      `json:"id"`
	Layout    Layout   `json:"layout"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle,omitempty"`
	Body      []string `json:"body,omitempty"`
	Icon      string   `json:"icon,omitempty"`
	Graphic   Graphic  `json:"graphic,omitempty"`
	Emphasize bool     `json:"emphasize,omitempty"`
}
