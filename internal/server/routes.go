package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"giftai/pkg/httpx/reply"
	"giftai/pkg/middlewarex"
)

//go:generate moq -rm -out limiter_mock.gen.go . limiter
type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Get("/locale", handler(s.getV1Locale))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/sign-up", handler(s.postV1AuthSignUp))
				r.Post("/sign-in", handler(s.postV1AuthSignIn))

				r.Group(func(r chi.Router) {
					r.Use(requireAuth(s.authenticator))

					r.Get("/session", handler(s.getV1AuthSession))
					r.Post("/sign-out", handler(s.postV1AuthSignOut))
					r.Put("/password", handler(s.putV1AuthPassword))
				})
			})

			// model zone, anonymous callers allowed
			r.Route("/gifts", func(r chi.Router) {
				if s.limiter != nil {
					r.Use(middlewarex.RateLimit(s.limiter))
				}
				r.Use(optionalAuth(s.authenticator))

				r.Post("/generate", handler(s.postV1GiftsGenerate))
				r.Post("/refine", handler(s.postV1GiftsRefine))
			})

			// authorized zone
			r.Group(func(r chi.Router) {
				r.Use(requireAuth(s.authenticator))

				r.Get("/profile", handler(s.getV1Profile))
				r.Patch("/profile", handler(s.patchV1Profile))

				r.Route("/searches", func(r chi.Router) {
					r.Get("/", handler(s.getV1Searches))
					r.Post("/", handler(s.postV1Searches))
					r.Get("/{id}", handler(s.getV1Search))
					r.Delete("/{id}", handler(s.deleteV1Search))
					r.Post("/{id}/suggestions", handler(s.postV1SearchSuggestions))
				})

				r.Put("/suggestions/{id}/favorite", handler(s.putV1SuggestionFavorite))
				r.Post("/suggestions/{id}/favorite/toggle", handler(s.postV1SuggestionFavoriteToggle))
				r.Get("/favorites", handler(s.getV1Favorites))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
