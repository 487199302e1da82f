package httpapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/playstack/video-catalog/internal/catalog/models"
)

type OwnerResponse struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

type VideoResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	VideoURL     string         `json:"videoUrl"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	Duration     float64        `json:"duration"`
	Views        int64          `json:"views"`
	IsPublished  bool           `json:"isPublished"`
	Owner        *OwnerResponse `json:"owner,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type PaginationResponse struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalVideos int  `json:"totalVideos"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type ListVideosResponse struct {
	Videos     []VideoResponse    `json:"videos"`
	Pagination PaginationResponse `json:"pagination"`
}

type UpdateDetailsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toVideoResponse(v *models.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Duration:     v.Duration,
		Views:        v.Views,
		IsPublished:  v.IsPublished,
		CreatedAt:    v.CreatedAt,
	}
}

func toListVideosResponse(page *models.VideoPage) ListVideosResponse {
	videos := make([]VideoResponse, 0, len(page.Videos))
	for i := range page.Videos {
		v := toVideoResponse(&page.Videos[i].Video)
		v.Owner = &OwnerResponse{
			Username: page.Videos[i].Owner.Username,
			FullName: page.Videos[i].Owner.FullName,
			Avatar:   page.Videos[i].Owner.Avatar,
		}
		videos = append(videos, v)
	}
	return ListVideosResponse{
		Videos: videos,
		Pagination: PaginationResponse{
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			TotalVideos: page.TotalVideos,
			HasNextPage: page.HasNextPage,
			HasPrevPage: page.HasPrevPage,
		},
	}
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}
