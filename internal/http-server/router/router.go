package router

import (
	"net/http"

	"photo-masker/internal/http-server/handler/mask"
	"photo-masker/internal/http-server/middleware"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	MaskHandler *mask.MaskHandler
	APIKey      string
}

func SetupRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", h.MaskHandler.Health)
	r.Get("/", h.MaskHandler.Info)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyMiddleware(h.APIKey))

		r.Post("/mask-by-url", h.MaskHandler.MaskByURL)
		r.Post("/mask-by-upload", h.MaskHandler.MaskByUpload)
	})

	return r
}
