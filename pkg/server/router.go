package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/geosick/pitchdeck/pkg/logger"
)

type Authenticator interface {
	IsAuthorized(key string) bool
}

// NewRouter wires the API and the embedded presentation page.
func NewRouter(handler *Handler, authenticator Authenticator) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(requestIDMiddleware, authMiddleware(authenticator))

	api.HandleFunc("/sessions", handler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/view", handler.GetView).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/advance", handler.Advance).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/retreat", handler.Retreat).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/chat", handler.SendChat).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/image", handler.SelectImage).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/analysis", handler.RunAnalysis).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/ws", handler.StreamView).Methods(http.MethodGet)

	router.PathPrefix("/").Handler(StaticHandler())

	return router
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.ContextWithRequestID(r.Context(), uuid.NewString()[:8])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authMiddleware(authenticator Authenticator) mux.MiddlewareFunc {
	writer := JSONResponseWriter{}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Access-Key")
			if key == "" {
				key = r.URL.Query().Get("access_key")
			}
			if !authenticator.IsAuthorized(key) {
				writer.WriteErrorResponse(w, http.StatusUnauthorized, "not authorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
