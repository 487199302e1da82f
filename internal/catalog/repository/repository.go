package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/playstack/video-catalog/internal/catalog/models"
)

// ListQuery carries an already-validated listing request: the sort field has
// been resolved against the allow-list and limit/offset have been clamped by
// the service.
type ListQuery struct {
	TitleQuery string
	SortField  models.SortField
	SortOrder  models.SortOrder
	Limit      int
	Offset     int
}

// VideoRepository persists catalog records. Mutations optionally take a
// domain event that the implementation must store atomically with the record
// change (outbox); a nil event means no event is emitted.
//
// List and ListByOwner only ever return published videos.
// Update checks the record version and returns models.ErrConflict on
// mismatch, models.ErrNotFound when the id is absent.
type VideoRepository interface {
	Create(ctx context.Context, v *models.Video, evt models.DomainEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	List(ctx context.Context, q ListQuery) ([]models.VideoWithOwner, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Video, error)
	Update(ctx context.Context, v *models.Video, evt models.DomainEvent) (*models.Video, error)
	Delete(ctx context.Context, id uuid.UUID, evt models.DomainEvent) error
}

// UserDirectory is the user store consumed by the catalog. Username lookup
// is a case-insensitive exact match.
type UserDirectory interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
