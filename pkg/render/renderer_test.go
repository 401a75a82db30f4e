package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosick/pitchdeck/pkg/domain"
)

func emptySnapshot(index int) domain.PresentationSnapshot {
	return domain.PresentationSnapshot{
		Index: index,
		Chat:  []domain.ChatMessage{{Speaker: domain.SpeakerAssistant, Text: domain.ChatGreeting}},
	}
}

func TestRenderIsPure(t *testing.T) {
	slide := domain.Slide{
		ID: 2, Layout: domain.LayoutContentLeft, Title: "Introduction",
		Body: []string{"a", "b"}, Icon: "activity", Graphic: domain.GraphicPulse,
	}

	first := Render(slide, emptySnapshot(1), 19)
	second := Render(slide, emptySnapshot(1), 19)

	assert.Equal(t, first, second)
}

func TestRenderLayoutSelection(t *testing.T) {
	snap := emptySnapshot(0)
	body := []string{"one", "two"}

	tests := []struct {
		layout domain.Layout
		check  func(t *testing.T, v SlideView)
	}{
		{domain.LayoutTitle, func(t *testing.T, v SlideView) {
			assert.Equal(t, body, v.Points)
		}},
		{domain.LayoutContentLeft, func(t *testing.T, v SlideView) {
			require.NotNil(t, v.Content)
			assert.Equal(t, "left", v.Content.TextSide)
		}},
		{domain.LayoutContentRight, func(t *testing.T, v SlideView) {
			require.NotNil(t, v.Content)
			assert.Equal(t, "right", v.Content.TextSide)
		}},
		{domain.LayoutCentered, func(t *testing.T, v SlideView) {
			assert.Equal(t, body, v.Points)
		}},
		{domain.LayoutProcess, func(t *testing.T, v SlideView) {
			require.Len(t, v.Steps, 2)
			assert.Equal(t, 1, v.Steps[0].Number)
			assert.Equal(t, 2, v.Steps[1].Number)
		}},
		{domain.LayoutGrid, func(t *testing.T, v SlideView) {
			require.Len(t, v.Cards, 2)
			assert.Equal(t, "one", v.Cards[0].Text)
		}},
		{domain.LayoutLiveAnalysis, func(t *testing.T, v SlideView) {
			require.NotNil(t, v.Analysis)
		}},
		{domain.LayoutLiveChat, func(t *testing.T, v SlideView) {
			require.NotNil(t, v.Chat)
			require.Len(t, v.Chat.Entries, 1)
			assert.Equal(t, domain.SpeakerAssistant, v.Chat.Entries[0].Speaker)
		}},
		{domain.LayoutClosing, func(t *testing.T, v SlideView) {
			assert.Equal(t, body, v.Points)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.layout), func(t *testing.T) {
			view := Render(domain.Slide{ID: 1, Layout: tt.layout, Body: body}, snap, 5)
			assert.Equal(t, tt.layout, view.Slide.Layout)
			tt.check(t, view.Slide)
		})
	}
}

func TestGraphicSelection(t *testing.T) {
	snap := emptySnapshot(0)

	tagged := domain.Slide{ID: 2, Layout: domain.LayoutContentLeft, Graphic: domain.GraphicScan}
	view := Render(tagged, snap, 5)
	assert.Equal(t, "scan", view.Slide.Content.Graphic.Kind)

	untagged := domain.Slide{ID: 3, Layout: domain.LayoutContentRight, Icon: "plane"}
	view = Render(untagged, snap, 5)
	assert.Equal(t, "generic", view.Slide.Content.Graphic.Kind)
	assert.Equal(t, "plane", view.Slide.Content.Graphic.Icon)

	unknownTag := domain.Slide{ID: 4, Layout: domain.LayoutContentLeft, Graphic: "hologram"}
	view = Render(unknownTag, snap, 5)
	assert.Equal(t, "generic", view.Slide.Content.Graphic.Kind)
}

func TestIconFallback(t *testing.T) {
	view := Render(domain.Slide{ID: 1, Layout: domain.LayoutCentered, Icon: "no-such-icon"}, emptySnapshot(0), 3)
	assert.Equal(t, "activity", view.Slide.Icon)

	view = Render(domain.Slide{ID: 1, Layout: domain.LayoutCentered}, emptySnapshot(0), 3)
	assert.Equal(t, "activity", view.Slide.Icon)
}

func TestBackgroundScene(t *testing.T) {
	snap := emptySnapshot(0)

	dark := Render(domain.Slide{ID: 1, Layout: domain.LayoutTitle, Emphasize: true}, snap, 19)
	assert.True(t, dark.Background.Active)
	assert.True(t, dark.Background.Dark)

	globe := Render(domain.Slide{ID: domain.GlobeSlideID, Layout: domain.LayoutCentered}, snap, 19)
	assert.True(t, globe.Background.Active)
	assert.False(t, globe.Background.Dark)

	plain := Render(domain.Slide{ID: 2, Layout: domain.LayoutCentered}, snap, 19)
	assert.False(t, plain.Background.Active)
}

func TestPositionChrome(t *testing.T) {
	slide := domain.Slide{ID: 1, Layout: domain.LayoutTitle}

	first := Render(slide, emptySnapshot(0), 3)
	assert.Equal(t, "1 / 3", first.Position.Label)
	assert.True(t, first.Position.CanAdvance)
	assert.False(t, first.Position.CanRetreat)

	last := Render(slide, emptySnapshot(2), 3)
	assert.False(t, last.Position.CanAdvance)
	assert.True(t, last.Position.CanRetreat)
}

func TestAnalysisSeverityBuckets(t *testing.T) {
	slide := domain.Slide{ID: 7, Layout: domain.LayoutLiveAnalysis}

	snap := emptySnapshot(0)
	snap.Analysis = domain.AnalysisState{
		HasInput: true,
		Report:   &domain.HazardReport{RiskLevel: "HIGH", Hazards: []string{"mold"}, Recommendation: "ventilate"},
	}

	view := Render(slide, snap, 19)
	require.NotNil(t, view.Slide.Analysis.Report)
	assert.Equal(t, domain.SeverityHigh, view.Slide.Analysis.Report.Severity)
	assert.Empty(t, view.Slide.Analysis.Report.HazardsEmpty)
}

func TestAnalysisEmptyHazards(t *testing.T) {
	slide := domain.Slide{ID: 7, Layout: domain.LayoutLiveAnalysis}

	snap := emptySnapshot(0)
	snap.Analysis = domain.AnalysisState{
		HasInput: true,
		Report:   &domain.HazardReport{RiskLevel: "Low", Recommendation: "all clear"},
	}

	view := Render(slide, snap, 19)
	require.NotNil(t, view.Slide.Analysis.Report)
	assert.Equal(t, "No immediate hazards detected.", view.Slide.Analysis.Report.HazardsEmpty)
}

func TestAnalysisFailure(t *testing.T) {
	slide := domain.Slide{ID: 7, Layout: domain.LayoutLiveAnalysis}

	snap := emptySnapshot(0)
	snap.Analysis = domain.AnalysisState{HasInput: true, Failed: true}

	view := Render(slide, snap, 19)
	assert.True(t, view.Slide.Analysis.Failed)
	assert.Equal(t, domain.AnalysisFailedMessage, view.Slide.Analysis.FailureMessage)
	assert.Nil(t, view.Slide.Analysis.Report)
}

func TestChatMarkdownRendering(t *testing.T) {
	slide := domain.Slide{ID: 9, Layout: domain.LayoutLiveChat}

	snap := emptySnapshot(0)
	snap.Chat = []domain.ChatMessage{
		{Speaker: domain.SpeakerUser, Text: "**not rendered**"},
		{Speaker: domain.SpeakerAssistant, Text: "Try **rest** and water."},
	}

	view := Render(slide, snap, 19)
	require.Len(t, view.Slide.Chat.Entries, 2)
	assert.Empty(t, view.Slide.Chat.Entries[0].HTML)
	assert.Contains(t, view.Slide.Chat.Entries[1].HTML, "<strong>rest</strong>")
}
