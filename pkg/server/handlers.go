package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/geosick/pitchdeck/pkg/catalog"
	"github.com/geosick/pitchdeck/pkg/domain"
	"github.com/geosick/pitchdeck/pkg/logger"
	"github.com/geosick/pitchdeck/pkg/presentation"
	"github.com/geosick/pitchdeck/pkg/render"
)

type SessionRegistry interface {
	Create() (string, *presentation.Controller)
	Get(id string) (*presentation.Controller, error)
}

type Handler struct {
	catalog  *catalog.Catalog
	registry SessionRegistry
	writer   JSONResponseWriter
}

func NewHandler(catalog *catalog.Catalog, registry SessionRegistry) *Handler {
	return &Handler{
		catalog:  catalog,
		registry: registry,
	}
}

type createSessionResponse struct {
	SessionID string      `json:"sessionId"`
	View      render.View `json:"view"`
}

// CreateSession starts a fresh presentation at the title slide.
// POST /api/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, controller := h.registry.Create()
	slog.InfoContext(r.Context(), "Session created", "sessionID", id)

	h.writer.WriteSuccessResponse(w, createSessionResponse{
		SessionID: id,
		View:      h.renderView(controller),
	})
}

// GetView returns the current rendered frame.
// GET /api/sessions/{id}/view
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}
	h.writer.WriteSuccessResponse(w, h.renderView(controller))
}

// Advance moves to the next slide; both the "next" button and the right
// arrow key land here.
// POST /api/sessions/{id}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}
	controller.Advance()
	h.writer.WriteSuccessResponse(w, h.renderView(controller))
}

// Retreat moves to the previous slide.
// POST /api/sessions/{id}/retreat
func (h *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}
	controller.Retreat()
	h.writer.WriteSuccessResponse(w, h.renderView(controller))
}

type chatRequest struct {
	Text string `json:"text"`
}

// SendChat forwards a chat message to the assistant.
// POST /api/sessions/{id}/chat
func (h *Handler) SendChat(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	controller.SendChat(r.Context(), req.Text)
	h.writer.WriteSuccessResponse(w, h.renderView(controller))
}

type selectImageRequest struct {
	Payload string `json:"payload"`
}

// SelectImage stores a freshly picked image as the analysis input.
// POST /api/sessions/{id}/image
func (h *Handler) SelectImage(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	var req selectImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Payload == "" {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "payload is required")
		return
	}

	controller.SelectImage(req.Payload)
	h.writer.WriteSuccessResponse(w, h.renderView(controller))
}

// RunAnalysis asks the assistant for a hazard report on the selected image.
// POST /api/sessions/{id}/analysis
func (h *Handler) RunAnalysis(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	controller.RunAnalysis(r.Context())
	h.writer.WriteSuccessResponse(w, h.renderView(controller))
}

func (h *Handler) controller(w http.ResponseWriter, r *http.Request) (*presentation.Controller, bool) {
	id := mux.Vars(r)["id"]

	controller, err := h.registry.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			h.writer.WriteErrorResponse(w, http.StatusNotFound, "session not found")
		} else {
			slog.ErrorContext(r.Context(), "Fetching session", logger.Err(err))
			h.writer.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
		}
		return nil, false
	}
	return controller, true
}

func (h *Handler) renderView(controller *presentation.Controller) render.View {
	snap := controller.Snapshot()

	slide, err := h.catalog.Get(snap.Index)
	if err != nil {
		// Navigation clamps, so this indicates a bug rather than bad input.
		slog.Error("Current index outside catalog", "index", snap.Index, logger.Err(err))
		slide = domain.Slide{Layout: domain.LayoutCentered, Title: "Slide unavailable"}
	}

	return render.Render(slide, snap, h.catalog.Count())
}
