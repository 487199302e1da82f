package models

import (
	"time"

	"github.com/google/uuid"
)

// SortField enumerates the fields a public listing may be ordered by.
// Anything outside the allow-list falls back to SortByCreatedAt so arbitrary
// sort expressions never reach the store.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByViews     SortField = "views"
	SortByDuration  SortField = "duration"
	SortByTitle     SortField = "title"
)

func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByViews, SortByDuration, SortByTitle:
		return SortField(s)
	default:
		return SortByCreatedAt
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

// Video is the catalog record. The binary assets live on the asset host;
// the record only carries their durable URL and deletable key.
type Video struct {
	ID               uuid.UUID `db:"id"`
	Title            string    `db:"title"`
	Description      string    `db:"description"`
	VideoURL         string    `db:"video_url"`
	VideoAssetID     string    `db:"video_asset_id"`
	ThumbnailURL     string    `db:"thumbnail_url"`
	ThumbnailAssetID string    `db:"thumbnail_asset_id"`
	Duration         float64   `db:"duration"`
	Views            int64     `db:"views"`
	OwnerID          uuid.UUID `db:"owner_id"`
	IsPublished      bool      `db:"is_published"`
	Version          int64     `db:"version"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// OwnerProfile is the public projection of a video owner. Nothing beyond
// these three fields may leak into listing responses.
type OwnerProfile struct {
	Username string `db:"username"`
	FullName string `db:"full_name"`
	Avatar   string `db:"avatar"`
}

type VideoWithOwner struct {
	Video
	Owner OwnerProfile `db:"owner"`
}
