package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/playstack/video-catalog/internal/catalog/auth"
)

func NewRouter(h *Handler, tokens *auth.TokenManager, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	authed := Authenticate(tokens)

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)

	// Public catalog routes.
	mux.HandleFunc("GET /api/videos", h.ListVideos)
	mux.HandleFunc("GET /api/videos/channel/{username}", h.ChannelVideos)

	// Owner-gated routes.
	mux.Handle("POST /api/videos", authed(http.HandlerFunc(h.UploadVideo)))
	mux.Handle("PATCH /api/videos/{id}", authed(http.HandlerFunc(h.UpdateDetails)))
	mux.Handle("PATCH /api/videos/{id}/thumbnail", authed(http.HandlerFunc(h.UpdateThumbnail)))
	mux.Handle("PATCH /api/videos/{id}/publish", authed(http.HandlerFunc(h.TogglePublish)))
	mux.Handle("DELETE /api/videos/{id}", authed(http.HandlerFunc(h.DeleteVideo)))

	return RequestLogger(logger)(mux)
}
