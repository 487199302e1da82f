// Package service implements the video catalog: paginated public listings,
// owner-gated mutation, and coordination between the catalog records and the
// remote assets they reference.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/playstack/video-catalog/internal/assets"
	"github.com/playstack/video-catalog/internal/catalog/models"
	"github.com/playstack/video-catalog/internal/catalog/repository"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 5000

	defaultPageSize = 12
	maxPageSize     = 100
)

type Service struct {
	videos repository.VideoRepository
	users  repository.UserDirectory
	assets assets.Store
	logger zerolog.Logger
	clock  func() time.Time
	idGen  func() uuid.UUID
}

func New(videos repository.VideoRepository, users repository.UserDirectory, store assets.Store, logger zerolog.Logger) *Service {
	return &Service{
		videos: videos,
		users:  users,
		assets: store,
		logger: logger.With().Str("component", "catalog_service").Logger(),
		clock:  time.Now,
		idGen:  uuid.New,
	}
}

// ListParams is the raw listing request as it comes off the wire. Unknown
// sort fields fall back to createdAt, unknown orders to desc, and page/limit
// are clamped (page >= 1, 1 <= limit <= 100, default 12).
type ListParams struct {
	Query     string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

func (s *Service) List(ctx context.Context, p ListParams) (*models.VideoPage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	q := repository.ListQuery{
		TitleQuery: strings.TrimSpace(p.Query),
		SortField:  models.ParseSortField(p.SortBy),
		SortOrder:  models.ParseSortOrder(p.SortOrder),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	videos, total, err := s.videos.List(ctx, q)
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit

	return &models.VideoPage{
		Videos:      videos,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalVideos: total,
		HasNextPage: page*limit < total,
		HasPrevPage: page > 1,
	}, nil
}

type CreateInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// Create validates the input, stores both assets on the asset host and then
// writes the catalog record. Failures after a partial upload compensate by
// deleting whatever was already stored, so no orphaned assets survive a
// failed create.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (*models.Video, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)

	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", models.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, fmt.Errorf("%w: title must be %d characters or less", models.ErrInvalidArgument, maxTitleLen)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description must be %d characters or less", models.ErrInvalidArgument, maxDescriptionLen)
	}
	if in.VideoPath == "" || in.ThumbnailPath == "" {
		return nil, fmt.Errorf("%w: both video and thumbnail are required", models.ErrInvalidArgument)
	}

	videoUp, err := s.assets.Upload(ctx, in.VideoPath, assets.KindVideo)
	if err != nil {
		s.logger.Error().Err(err).Msg("video asset upload failed")
		return nil, fmt.Errorf("%w: video upload failed", models.ErrUpstream)
	}

	thumbUp, err := s.assets.Upload(ctx, in.ThumbnailPath, assets.KindImage)
	if err != nil {
		s.logger.Error().Err(err).Msg("thumbnail asset upload failed")
		s.compensateAsset(ctx, videoUp.Key)
		return nil, fmt.Errorf("%w: thumbnail upload failed", models.ErrUpstream)
	}

	now := s.clock()
	v := &models.Video{
		ID:               s.idGen(),
		Title:            title,
		Description:      description,
		VideoURL:         videoUp.URL,
		VideoAssetID:     videoUp.Key,
		ThumbnailURL:     thumbUp.URL,
		ThumbnailAssetID: thumbUp.Key,
		Duration:         videoUp.Duration,
		OwnerID:          ownerID,
		IsPublished:      true,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.videos.Create(ctx, v, models.NewVideoCreated(v.ID, ownerID)); err != nil {
		s.compensateAsset(ctx, videoUp.Key)
		s.compensateAsset(ctx, thumbUp.Key)
		return nil, err
	}

	return v, nil
}

// compensateAsset removes an asset left behind by a failed multi-step
// operation. A failed compensation only logs: the asset host delete is
// idempotent-safe, so an operator can retry out of band.
func (s *Service) compensateAsset(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.assets.Delete(ctx, key); err != nil {
		s.logger.Error().Err(err).Str("asset_key", key).Msg("compensating asset delete failed")
	}
}

func (s *Service) UpdateDetails(ctx context.Context, videoID, userID uuid.UUID, title, description string) (*models.Video, error) {
	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" && description == "" {
		return nil, fmt.Errorf("%w: at least one field is required to update", models.ErrInvalidArgument)
	}

	if title != "" {
		v.Title = title
	}
	if description != "" {
		v.Description = description
	}
	v.UpdatedAt = s.clock()

	return s.videos.Update(ctx, v, nil)
}

// UpdateThumbnail uploads the replacement first and only removes the old
// asset after the new reference has been persisted. A crash between upload
// and persist leaves the old thumbnail intact instead of losing both.
func (s *Service) UpdateThumbnail(ctx context.Context, videoID, userID uuid.UUID, thumbnailPath string) (*models.Video, error) {
	if thumbnailPath == "" {
		return nil, fmt.Errorf("%w: thumbnail is required", models.ErrInvalidArgument)
	}

	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	up, err := s.assets.Upload(ctx, thumbnailPath, assets.KindImage)
	if err != nil {
		s.logger.Error().Err(err).Msg("thumbnail asset upload failed")
		return nil, fmt.Errorf("%w: thumbnail upload failed", models.ErrUpstream)
	}

	oldKey := v.ThumbnailAssetID
	v.ThumbnailURL = up.URL
	v.ThumbnailAssetID = up.Key
	v.UpdatedAt = s.clock()

	updated, err := s.videos.Update(ctx, v, nil)
	if err != nil {
		s.compensateAsset(ctx, up.Key)
		return nil, err
	}

	if oldKey != "" {
		if err := s.assets.Delete(ctx, oldKey); err != nil {
			// The new thumbnail is already durably referenced; the stale
			// asset is the only leftover.
			s.logger.Warn().Err(err).Str("asset_key", oldKey).Msg("old thumbnail delete failed")
		}
	}

	return updated, nil
}

// Delete removes the remote assets first and the catalog record last. An
// asset delete failure aborts the operation and keeps the record, so the
// remaining references stay visible for reconciliation.
func (s *Service) Delete(ctx context.Context, videoID, userID uuid.UUID) error {
	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return err
	}

	if v.VideoAssetID != "" {
		if err := s.assets.Delete(ctx, v.VideoAssetID); err != nil {
			s.logger.Error().Err(err).Str("asset_key", v.VideoAssetID).Msg("video asset delete failed")
			return fmt.Errorf("%w: video asset delete failed", models.ErrUpstream)
		}
	}
	if v.ThumbnailAssetID != "" {
		if err := s.assets.Delete(ctx, v.ThumbnailAssetID); err != nil {
			s.logger.Error().Err(err).Str("asset_key", v.ThumbnailAssetID).Msg("thumbnail asset delete failed")
			return fmt.Errorf("%w: thumbnail asset delete failed", models.ErrUpstream)
		}
	}

	return s.videos.Delete(ctx, videoID, models.NewVideoDeleted(v.ID, v.OwnerID))
}

func (s *Service) TogglePublish(ctx context.Context, videoID, userID uuid.UUID) (*models.Video, error) {
	v, err := s.getOwned(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	v.IsPublished = !v.IsPublished
	v.UpdatedAt = s.clock()

	return s.videos.Update(ctx, v, models.NewVideoPublishChanged(v.ID, v.IsPublished))
}

// ChannelVideos returns the published videos of the channel with the given
// username (case-insensitive exact match), in store order.
func (s *Service) ChannelVideos(ctx context.Context, username string) ([]models.Video, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrInvalidArgument)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return s.videos.ListByOwner(ctx, u.ID)
}

func (s *Service) getOwned(ctx context.Context, videoID, userID uuid.UUID) (*models.Video, error) {
	v, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != userID {
		return nil, fmt.Errorf("%w: only the owner may modify this video", models.ErrForbidden)
	}
	return v, nil
}
