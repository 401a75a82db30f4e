package domain

// AnalysisState is the image-analysis widget's slice of the presentation
// state. Report and Failed are mutually exclusive; both empty means no
// analysis has completed for the current input.
type AnalysisState struct {
	HasInput bool
	Pending  bool
	Failed   bool
	Report   *HazardReport
}

// PresentationSnapshot is a read-only copy of the controller's state, taken
// under its lock, for rendering.
type PresentationSnapshot struct {
	Index       int
	Chat        []ChatMessage
	ChatPending bool
	Analysis    AnalysisState
}
