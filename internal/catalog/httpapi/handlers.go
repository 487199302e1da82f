package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/playstack/video-catalog/internal/catalog/auth"
	"github.com/playstack/video-catalog/internal/catalog/models"
	"github.com/playstack/video-catalog/internal/catalog/repository"
	"github.com/playstack/video-catalog/internal/catalog/service"
)

// maxUploadBytes bounds the in-memory part of multipart parsing; larger
// bodies spill to disk.
const maxUploadBytes = 32 << 20

type Handler struct {
	svc     *service.Service
	users   repository.UserDirectory
	tokens  *auth.TokenManager
	tempDir string
	logger  zerolog.Logger
}

func New(svc *service.Service, users repository.UserDirectory, tokens *auth.TokenManager, tempDir string, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:     svc,
		users:   users,
		tokens:  tokens,
		tempDir: tempDir,
		logger:  logger.With().Str("component", "httpapi").Logger(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.svc.List(r.Context(), service.ListParams{
		Query:     q.Get("query"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListVideosResponse(result))
}

func (h *Handler) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.ChannelVideos(r.Context(), r.PathValue("username"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	out := make([]VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, toVideoResponse(&videos[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"videos": out})
}

func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeErrorJSON(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	videoPath, cleanupVideo, err := h.spoolFormFile(r, "videoFile")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "both video and thumbnail are required")
		return
	}
	defer cleanupVideo()

	thumbnailPath, cleanupThumb, err := h.spoolFormFile(r, "thumbnail")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "both video and thumbnail are required")
		return
	}
	defer cleanupThumb()

	v, err := h.svc.Create(r.Context(), userID, service.CreateInput{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVideoResponse(v))
}

func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	userID, videoID, ok := h.authedVideoID(w, r)
	if !ok {
		return
	}
	defer r.Body.Close()

	var req UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid json body")
		return
	}

	v, err := h.svc.UpdateDetails(r.Context(), videoID, userID, req.Title, req.Description)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVideoResponse(v))
}

func (h *Handler) UpdateThumbnail(w http.ResponseWriter, r *http.Request) {
	userID, videoID, ok := h.authedVideoID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	thumbnailPath, cleanup, err := h.spoolFormFile(r, "thumbnail")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "thumbnail is required")
		return
	}
	defer cleanup()

	v, err := h.svc.UpdateThumbnail(r.Context(), videoID, userID, thumbnailPath)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVideoResponse(v))
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	userID, videoID, ok := h.authedVideoID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), videoID, userID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "video deleted successfully"})
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	userID, videoID, ok := h.authedVideoID(w, r)
	if !ok {
		return
	}

	v, err := h.svc.TogglePublish(r.Context(), videoID, userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	state := "unpublished"
	if v.IsPublished {
		state = "published"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"video":   toVideoResponse(v),
		"message": fmt.Sprintf("video %s successfully", state),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid json body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" {
		writeErrorJSON(w, http.StatusBadRequest, "username and email are required")
		return
	}
	if len(req.Password) < 8 {
		writeErrorJSON(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error().Err(err).Msg("hash password")
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	u := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := h.users.Create(r.Context(), u); err != nil {
		if errors.Is(err, models.ErrConflict) {
			writeErrorJSON(w, http.StatusConflict, "username or email already registered")
			return
		}
		h.logger.Error().Err(err).Msg("create user")
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("issue token")
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: toUserResponse(u)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid json body")
		return
	}

	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("get user by email")
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
		writeErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("issue token")
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: toUserResponse(u)})
}

// authedVideoID pulls the authenticated user and the {id} path parameter,
// writing the error response itself when either is missing.
func (h *Handler) authedVideoID(w http.ResponseWriter, r *http.Request) (userID, videoID uuid.UUID, ok bool) {
	userID, authed := UserID(r.Context())
	if !authed {
		writeErrorJSON(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	videoID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid video id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, videoID, true
}

// spoolFormFile copies a multipart file to the handler's temp dir so the
// service can hand the asset host a local path. The returned cleanup removes
// the spooled file.
func (h *Handler) spoolFormFile(r *http.Request, field string) (string, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("form file %s: %w", field, err)
	}
	defer file.Close()

	path, err := h.spool(file, header)
	if err != nil {
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}

func (h *Handler) spool(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	tmp, err := os.CreateTemp(h.tempDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("spool upload: %w", err)
	}
	return tmp.Name(), nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeErrorJSON(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrForbidden):
		writeErrorJSON(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, models.ErrConflict):
		writeErrorJSON(w, http.StatusConflict, "conflict, please retry with fresh data")
	case errors.Is(err, models.ErrUpstream):
		writeErrorJSON(w, http.StatusBadGateway, "upstream failure")
	default:
		h.logger.Error().Err(err).Msg("internal error")
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
