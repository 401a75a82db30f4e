package presentation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosick/pitchdeck/pkg/domain"
)

type fakeAssistant struct {
	mu           sync.Mutex
	analyzeCalls int
	analyzeResp  string
	analyzeErr   error
	chatReply    string
	lastHistory  []domain.ChatMessage

	// When set, AnalyzeImage signals started and blocks until release closes.
	started chan struct{}
	release chan struct{}
}

func (f *fakeAssistant) AnalyzeImage(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	f.analyzeCalls++
	started, release := f.started, f.release
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
		<-release
	}
	return f.analyzeResp, f.analyzeErr
}

func (f *fakeAssistant) Chat(_ context.Context, _ string, history []domain.ChatMessage) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastHistory = history
	return f.chatReply
}

func (f *fakeAssistant) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.analyzeCalls
}

func TestNavigationClamps(t *testing.T) {
	c := NewController(3, &fakeAssistant{})

	c.Retreat()
	assert.Equal(t, 0, c.CurrentIndex())

	c.Advance()
	c.Advance()
	assert.Equal(t, 2, c.CurrentIndex())

	c.Advance()
	assert.Equal(t, 2, c.CurrentIndex())
}

func TestAdvanceRetreatAreInverse(t *testing.T) {
	c := NewController(5, &fakeAssistant{})
	c.Advance()
	c.Advance()

	before := c.CurrentIndex()
	c.Advance()
	c.Retreat()
	assert.Equal(t, before, c.CurrentIndex())
}

func TestChatStartsWithGreeting(t *testing.T) {
	c := NewController(3, &fakeAssistant{})

	snap := c.Snapshot()
	require.Len(t, snap.Chat, 1)
	assert.Equal(t, domain.SpeakerAssistant, snap.Chat[0].Speaker)
	assert.Equal(t, domain.ChatGreeting, snap.Chat[0].Text)
}

func TestSendChatOptimisticOrdering(t *testing.T) {
	fake := &fakeAssistant{chatReply: "Rest and drink water."}
	c := NewController(3, fake)

	c.SendChat(context.Background(), "I have a headache")

	snap := c.Snapshot()
	require.Len(t, snap.Chat, 3)
	assert.Equal(t, domain.ChatGreeting, snap.Chat[0].Text)
	assert.Equal(t, domain.ChatMessage{Speaker: domain.SpeakerUser, Text: "I have a headache"}, snap.Chat[1])
	assert.Equal(t, domain.SpeakerAssistant, snap.Chat[2].Speaker)
	assert.False(t, snap.ChatPending)
}

func TestSendChatPassesPriorHistory(t *testing.T) {
	fake := &fakeAssistant{chatReply: "ok"}
	c := NewController(3, fake)

	c.SendChat(context.Background(), "hello")

	// History handed to the assistant is the log before the new message.
	require.Len(t, fake.lastHistory, 1)
	assert.Equal(t, domain.ChatGreeting, fake.lastHistory[0].Text)
}

func TestSendChatIgnoresBlankText(t *testing.T) {
	fake := &fakeAssistant{chatReply: "ok"}
	c := NewController(3, fake)

	c.SendChat(context.Background(), "   ")

	snap := c.Snapshot()
	assert.Len(t, snap.Chat, 1)
}

func TestRunAnalysisWithoutInputIsNoop(t *testing.T) {
	fake := &fakeAssistant{}
	c := NewController(3, fake)

	c.RunAnalysis(context.Background())
	assert.Equal(t, 0, fake.calls())
}

func TestRunAnalysisStoresReport(t *testing.T) {
	fake := &fakeAssistant{analyzeResp: `{"riskLevel":"High","hazards":["mold"],"recommendation":"ventilate"}`}
	c := NewController(3, fake)

	c.SelectImage("data:image/png;base64,aGVsbG8=")
	c.RunAnalysis(context.Background())

	snap := c.Snapshot()
	require.NotNil(t, snap.Analysis.Report)
	assert.Equal(t, domain.SeverityHigh, snap.Analysis.Report.Severity())
	assert.Equal(t, []string{"mold"}, snap.Analysis.Report.Hazards)
	assert.False(t, snap.Analysis.Pending)
	assert.False(t, snap.Analysis.Failed)
}

func TestRunAnalysisDecodeFailure(t *testing.T) {
	fake := &fakeAssistant{analyzeResp: "sorry, I cannot help with that"}
	c := NewController(3, fake)

	c.SelectImage("payload")
	c.RunAnalysis(context.Background())

	snap := c.Snapshot()
	assert.True(t, snap.Analysis.Failed)
	assert.Nil(t, snap.Analysis.Report)
	assert.False(t, snap.Analysis.Pending)
}

func TestRunAnalysisTransportFailure(t *testing.T) {
	fake := &fakeAssistant{analyzeErr: errors.New("boom")}
	c := NewController(3, fake)

	c.SelectImage("payload")
	c.RunAnalysis(context.Background())

	snap := c.Snapshot()
	assert.True(t, snap.Analysis.Failed)
	assert.Nil(t, snap.Analysis.Report)
	assert.False(t, snap.Analysis.Pending)
}

func TestRunAnalysisSingleFlight(t *testing.T) {
	fake := &fakeAssistant{
		analyzeResp: `{"riskLevel":"Low","hazards":[],"recommendation":"none"}`,
		started:     make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
	c := NewController(3, fake)
	c.SelectImage("payload")

	done := make(chan struct{})
	go func() {
		c.RunAnalysis(context.Background())
		close(done)
	}()
	<-fake.started

	// Second trigger while the first is in flight must not call out again.
	c.RunAnalysis(context.Background())

	close(fake.release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("analysis did not finish")
	}

	assert.Equal(t, 1, fake.calls())
	assert.False(t, c.Snapshot().Analysis.Pending)
}

func TestStaleAnalysisResultIsDiscarded(t *testing.T) {
	fake := &fakeAssistant{
		analyzeResp: `{"riskLevel":"High","hazards":["mold"],"recommendation":"ventilate"}`,
		started:     make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
	c := NewController(3, fake)
	c.SelectImage("image-a")

	done := make(chan struct{})
	go func() {
		c.RunAnalysis(context.Background())
		close(done)
	}()
	<-fake.started

	// A new image arrives while image-a is still being analyzed.
	c.SelectImage("image-b")

	close(fake.release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("analysis did not finish")
	}

	snap := c.Snapshot()
	assert.Nil(t, snap.Analysis.Report, "result for the old image must not surface")
	assert.False(t, snap.Analysis.Failed)
	assert.False(t, snap.Analysis.Pending)
	assert.True(t, snap.Analysis.HasInput)
}

func TestSelectImageClearsPreviousResult(t *testing.T) {
	fake := &fakeAssistant{analyzeResp: `{"riskLevel":"Low","hazards":[],"recommendation":"none"}`}
	c := NewController(3, fake)

	c.SelectImage("first")
	c.RunAnalysis(context.Background())
	require.NotNil(t, c.Snapshot().Analysis.Report)

	c.SelectImage("second")
	snap := c.Snapshot()
	assert.Nil(t, snap.Analysis.Report)
	assert.False(t, snap.Analysis.Failed)
}

func TestSubscribeSignalsOnChange(t *testing.T) {
	c := NewController(3, &fakeAssistant{})

	ch, cancel := c.Subscribe()
	defer cancel()

	c.Advance()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no signal after state change")
	}

	// Clamped no-op must not signal.
	c.Retreat()
	c.Retreat()
	select {
	case <-ch:
		// One coalesced signal from the first Retreat is fine.
	default:
	}
}
