package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/geosick/pitchdeck/pkg/domain"
	"github.com/geosick/pitchdeck/pkg/presentation"
)

// Registry hands out per-viewer presentation sessions. Sessions live only
// in memory and expire after the idle TTL; nothing survives a restart.
type Registry struct {
	assistant  presentation.Assistant
	slideCount int
	ttl        time.Duration
	sessions   *cache.Cache
}

func NewRegistry(slideCount int, assistant presentation.Assistant, ttl time.Duration) *Registry {
	return &Registry{
		assistant:  assistant,
		slideCount: slideCount,
		ttl:        ttl,
		sessions:   cache.New(ttl, ttl/2),
	}
}

func (r *Registry) Create() (string, *presentation.Controller) {
	id := uuid.NewString()
	controller := presentation.NewController(r.slideCount, r.assistant)
	r.sessions.Set(id, controller, cache.DefaultExpiration)
	return id, controller
}

// Get returns the session's controller and refreshes its idle TTL.
func (r *Registry) Get(id string) (*presentation.Controller, error) {
	value, ok := r.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, domain.ErrSessionNotFound)
	}

	controller := value.(*presentation.Controller)
	r.sessions.Set(id, controller, cache.DefaultExpiration)
	return controller, nil
}
