package render

import (
	"fmt"
	"strings"

	"github.com/russross/blackfriday"
	"github.com/samber/lo"

	"github.com/geosick/pitchdeck/pkg/domain"
)

const defaultIcon = "activity"

// knownIcons is the fixed icon registry. Unknown keys fall back to the
// default icon rather than breaking the slide.
var knownIcons = map[string]struct{}{
	"activity": {}, "alert-triangle": {}, "layout-grid": {}, "star": {},
	"camera": {}, "file-text": {}, "message-circle-heart": {}, "globe": {},
	"smile": {}, "cpu": {}, "map-pin": {}, "trending-up": {}, "briefcase": {},
	"zap": {}, "check-circle": {}, "heart": {}, "mic": {}, "users": {},
	"plane": {}, "graduation-cap": {}, "pill": {}, "shield-check": {},
}

var knownGraphics = map[domain.Graphic]struct{}{
	domain.GraphicPulse:        {},
	domain.GraphicScan:         {},
	domain.GraphicPrescription: {},
	domain.GraphicTravel:       {},
	domain.GraphicTechStack:    {},
}

// Render maps a slide plus the session snapshot to a visual tree. It is a
// pure function: same inputs, same view.
func Render(slide domain.Slide, snap domain.PresentationSnapshot, total int) View {
	view := View{
		Slide: SlideView{
			ID:       slide.ID,
			Layout:   slide.Layout,
			Dark:     slide.Emphasize,
			Title:    slide.Title,
			Subtitle: slide.Subtitle,
			Icon:     iconFor(slide.Icon),
		},
		Position: Position{
			Index:      snap.Index,
			Total:      total,
			Label:      fmt.Sprintf("%d / %d", snap.Index+1, total),
			CanAdvance: snap.Index < total-1,
			CanRetreat: snap.Index > 0,
		},
		Background: Background{
			Active: slide.Emphasize || slide.ID == domain.GlobeSlideID,
			Dark:   slide.Emphasize,
		},
	}

	switch slide.Layout {
	case domain.LayoutContentLeft:
		view.Slide.Content = contentView(slide, "left")
	case domain.LayoutContentRight:
		view.Slide.Content = contentView(slide, "right")
	case domain.LayoutProcess:
		view.Slide.Steps = lo.Map(slide.Body, func(text string, i int) StepView {
			return StepView{Number: i + 1, Text: text}
		})
	case domain.LayoutGrid:
		icon := iconFor(slide.Icon)
		view.Slide.Cards = lo.Map(slide.Body, func(text string, _ int) CardView {
			return CardView{Text: text, Icon: icon}
		})
	case domain.LayoutLiveAnalysis:
		view.Slide.Analysis = analysisView(slide, snap.Analysis)
	case domain.LayoutLiveChat:
		view.Slide.Chat = chatView(slide, snap)
	default: // title, centered, closing
		view.Slide.Points = slide.Body
	}

	return view
}

func contentView(slide domain.Slide, textSide string) *ContentView {
	return &ContentView{
		Points:   slide.Body,
		TextSide: textSide,
		Graphic:  graphicFor(slide),
	}
}

func graphicFor(slide domain.Slide) GraphicView {
	if _, ok := knownGraphics[slide.Graphic]; ok {
		return GraphicView{Kind: string(slide.Graphic)}
	}
	return GraphicView{Kind: "generic", Icon: iconFor(slide.Icon)}
}

func analysisView(slide domain.Slide, state domain.AnalysisState) *AnalysisView {
	v := &AnalysisView{
		Points:   slide.Body,
		HasImage: state.HasInput,
		Pending:  state.Pending,
		Failed:   state.Failed,
	}
	if state.Failed {
		v.FailureMessage = domain.AnalysisFailedMessage
	}
	if state.Report != nil {
		v.Report = &ReportView{
			RiskLevel:      state.Report.RiskLevel,
			Severity:       state.Report.Severity(),
			Hazards:        state.Report.Hazards,
			Recommendation: state.Report.Recommendation,
		}
		if len(state.Report.Hazards) == 0 {
			v.Report.HazardsEmpty = "No immediate hazards detected."
		}
	}
	return v
}

func chatView(slide domain.Slide, snap domain.PresentationSnapshot) *ChatView {
	return &ChatView{
		Points:  slide.Body,
		Pending: snap.ChatPending,
		Entries: lo.Map(snap.Chat, func(m domain.ChatMessage, _ int) ChatEntryView {
			entry := ChatEntryView{Speaker: m.Speaker, Text: m.Text}
			if m.Speaker == domain.SpeakerAssistant {
				entry.HTML = strings.TrimSpace(string(blackfriday.MarkdownCommon([]byte(m.Text))))
			}
			return entry
		}),
	}
}

func iconFor(key string) string {
	if _, ok := knownIcons[key]; ok {
		return key
	}
	return defaultIcon
}
