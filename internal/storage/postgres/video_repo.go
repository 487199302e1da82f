package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/playstack/video-catalog/internal/catalog/models"
	"github.com/playstack/video-catalog/internal/catalog/repository"
)

type VideoRepo struct {
	db     *sqlx.DB
	outbox *OutboxRepo
}

func NewVideoRepo(db *sqlx.DB, outbox *OutboxRepo) *VideoRepo {
	return &VideoRepo{db: db, outbox: outbox}
}

const videoColumns = `
	id, title, description,
	video_url, video_asset_id, thumbnail_url, thumbnail_asset_id,
	duration, views, owner_id, is_published, version, created_at, updated_at
`

// sortColumns maps the allow-listed sort fields to real columns. The service
// resolves user input against the allow-list before it gets here, so the
// interpolation below never sees an arbitrary value.
var sortColumns = map[models.SortField]string{
	models.SortByCreatedAt: "created_at",
	models.SortByViews:     "views",
	models.SortByDuration:  "duration",
	models.SortByTitle:     "title",
}

func (r *VideoRepo) Create(ctx context.Context, v *models.Video, evt models.DomainEvent) error {
	const q = `
		INSERT INTO videos (` + videoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, q,
		v.ID, v.Title, v.Description,
		v.VideoURL, v.VideoAssetID, v.ThumbnailURL, v.ThumbnailAssetID,
		v.Duration, v.Views, v.OwnerID, v.IsPublished, v.Version, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("video create: %w", err)
	}

	if evt != nil {
		if err := r.outbox.Add(ctx, tx, evt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *VideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	const q = `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	var v models.Video
	if err := r.db.GetContext(ctx, &v, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("video get by id: %w", err)
	}
	return &v, nil
}

func (r *VideoRepo) List(ctx context.Context, q repository.ListQuery) ([]models.VideoWithOwner, int, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM videos
		WHERE is_published
		  AND ($1 = '' OR title ILIKE '%' || $1 || '%')
	`

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, q.TitleQuery); err != nil {
		return nil, 0, fmt.Errorf("video count: %w", err)
	}

	order := "DESC"
	if q.SortOrder == models.SortAsc {
		order = "ASC"
	}
	column, ok := sortColumns[q.SortField]
	if !ok {
		column = "created_at"
	}

	listQuery := fmt.Sprintf(`
		SELECT
			v.id, v.title, v.description,
			v.video_url, v.video_asset_id, v.thumbnail_url, v.thumbnail_asset_id,
			v.duration, v.views, v.owner_id, v.is_published, v.version, v.created_at, v.updated_at,
			u.username AS "owner.username",
			u.full_name AS "owner.full_name",
			u.avatar AS "owner.avatar"
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.is_published
		  AND ($1 = '' OR v.title ILIKE '%%' || $1 || '%%')
		ORDER BY v.%s %s
		LIMIT $2 OFFSET $3
	`, column, order)

	videos := make([]models.VideoWithOwner, 0)
	if err := r.db.SelectContext(ctx, &videos, listQuery, q.TitleQuery, q.Limit, q.Offset); err != nil {
		return nil, 0, fmt.Errorf("video list: %w", err)
	}

	return videos, total, nil
}

func (r *VideoRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Video, error) {
	const q = `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE owner_id = $1 AND is_published
	`

	videos := make([]models.Video, 0)
	if err := r.db.SelectContext(ctx, &videos, q, ownerID); err != nil {
		return nil, fmt.Errorf("video list by owner: %w", err)
	}
	return videos, nil
}

// Update persists the record with an optimistic version check. The stored row
// must still carry the version the caller read; otherwise a concurrent write
// won and the caller gets models.ErrConflict.
func (r *VideoRepo) Update(ctx context.Context, v *models.Video, evt models.DomainEvent) (*models.Video, error) {
	const q = `
		UPDATE videos
		SET title = $3, description = $4,
		    video_url = $5, video_asset_id = $6,
		    thumbnail_url = $7, thumbnail_asset_id = $8,
		    is_published = $9, updated_at = $10,
		    version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING ` + videoColumns

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var updated models.Video
	err = tx.GetContext(ctx, &updated, q,
		v.ID, v.Version,
		v.Title, v.Description,
		v.VideoURL, v.VideoAssetID,
		v.ThumbnailURL, v.ThumbnailAssetID,
		v.IsPublished, v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.versionMissErr(ctx, tx, v.ID)
		}
		return nil, fmt.Errorf("video update: %w", err)
	}

	if evt != nil {
		if err := r.outbox.Add(ctx, tx, evt); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &updated, nil
}

// versionMissErr tells a stale version apart from a missing row.
func (r *VideoRepo) versionMissErr(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)`, id); err != nil {
		return fmt.Errorf("video exists check: %w", err)
	}
	if exists {
		return models.ErrConflict
	}
	return models.ErrNotFound
}

func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID, evt models.DomainEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("video delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("video delete rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	if evt != nil {
		if err := r.outbox.Add(ctx, tx, evt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
