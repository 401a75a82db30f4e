package presentation

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/geosick/pitchdeck/pkg/domain"
	"github.com/geosick/pitchdeck/pkg/logger"
)

// Assistant is the external generative-AI capability.
type Assistant interface {
	// AnalyzeImage returns the raw (ideally JSON) response for an
	// image-hazard analysis. The caller decodes it defensively.
	AnalyzeImage(ctx context.Context, image string) (string, error)

	// Chat returns the assistant reply for a message plus prior history.
	// It never fails: implementations map internal errors to a fixed
	// fallback reply, so callers have no error path to handle.
	Chat(ctx context.Context, message string, history []domain.ChatMessage) string
}

// Controller owns one session's presentation state. All mutation goes
// through its named operations; the mutex stands in for the single logical
// thread of control the browser page had.
type Controller struct {
	assistant Assistant
	count     int

	mu              sync.Mutex
	index           int
	chat            []domain.ChatMessage
	chatPending     bool
	analysisInput   string
	analysisPending bool
	analysisFailed  bool
	analysisReport  *domain.HazardReport
	analysisToken   uint64

	watchMu   sync.Mutex
	watchers  map[int]chan struct{}
	nextWatch int
}

func NewController(count int, assistant Assistant) *Controller {
	return &Controller{
		assistant: assistant,
		count:     count,
		chat:      []domain.ChatMessage{{Speaker: domain.SpeakerAssistant, Text: domain.ChatGreeting}},
		watchers:  make(map[int]chan struct{}),
	}
}

// Advance moves to the next slide, clamped at the end. The index update is
// synchronous; any transition animation is the transport's concern.
func (c *Controller) Advance() {
	c.mu.Lock()
	moved := c.index < c.count-1
	if moved {
		c.index++
	}
	c.mu.Unlock()

	if moved {
		c.notify()
	}
}

// Retreat moves to the previous slide, clamped at the start.
func (c *Controller) Retreat() {
	c.mu.Lock()
	moved := c.index > 0
	if moved {
		c.index--
	}
	c.mu.Unlock()

	if moved {
		c.notify()
	}
}

// SelectImage replaces the analysis input wholesale and clears any previous
// result. Bumping the token makes an in-flight analysis stale, so its
// eventual result is discarded instead of overwriting state meant for the
// new image.
func (c *Controller) SelectImage(payload string) {
	c.mu.Lock()
	c.analysisInput = payload
	c.analysisReport = nil
	c.analysisFailed = false
	c.analysisToken++
	c.mu.Unlock()

	c.notify()
}

// RunAnalysis calls the assistant on the selected image. It is a no-op when
// there is no input or a request is already in flight, so a double click
// issues exactly one underlying call.
func (c *Controller) RunAnalysis(ctx context.Context) {
	c.mu.Lock()
	if c.analysisInput == "" || c.analysisPending {
		c.mu.Unlock()
		return
	}
	c.analysisPending = true
	c.analysisToken++
	token := c.analysisToken
	input := c.analysisInput
	c.mu.Unlock()
	c.notify()

	// The pending flag must never stick, whatever the call does.
	defer func() {
		c.mu.Lock()
		c.analysisPending = false
		c.mu.Unlock()
		c.notify()
	}()

	raw, err := c.assistant.AnalyzeImage(ctx, input)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.analysisToken {
		slog.DebugContext(ctx, "Discarding stale analysis result", "token", token)
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "Image analysis failed", logger.Err(err))
		c.analysisFailed = true
		c.analysisReport = nil
		return
	}

	report, err := domain.ParseHazardReport(raw)
	if err != nil {
		slog.ErrorContext(ctx, "Image analysis response malformed", logger.Err(err))
		c.analysisFailed = true
		c.analysisReport = nil
		return
	}

	c.analysisFailed = false
	c.analysisReport = &report
}

// SendChat appends the user message optimistically, asks the assistant with
// the history as it was before this message, and appends whatever comes
// back. Chat has no failure path: the assistant answers or apologizes.
func (c *Controller) SendChat(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	history := slices.Clone(c.chat)
	c.chat = append(c.chat, domain.ChatMessage{Speaker: domain.SpeakerUser, Text: text})
	c.chatPending = true
	c.mu.Unlock()
	c.notify()

	reply := c.assistant.Chat(ctx, text, history)

	c.mu.Lock()
	c.chat = append(c.chat, domain.ChatMessage{Speaker: domain.SpeakerAssistant, Text: reply})
	c.chatPending = false
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Snapshot copies the state for rendering.
func (c *Controller) Snapshot() domain.PresentationSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := domain.PresentationSnapshot{
		Index:       c.index,
		Chat:        slices.Clone(c.chat),
		ChatPending: c.chatPending,
		Analysis: domain.AnalysisState{
			HasInput: c.analysisInput != "",
			Pending:  c.analysisPending,
			Failed:   c.analysisFailed,
		},
	}
	if c.analysisReport != nil {
		report := *c.analysisReport
		snap.Analysis.Report = &report
	}
	return snap
}

// Subscribe returns a channel that fires after every state change, plus a
// cancel func. Signals coalesce; subscribers re-render from Snapshot.
func (c *Controller) Subscribe() (<-chan struct{}, func()) {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	id := c.nextWatch
	c.nextWatch++
	ch := make(chan struct{}, 1)
	c.watchers[id] = ch

	return ch, func() {
		c.watchMu.Lock()
		defer c.watchMu.Unlock()
		delete(c.watchers, id)
	}
}

func (c *Controller) notify() {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	for _, ch := range c.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
