package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/playstack/video-catalog/internal/catalog/models"
)

// MemoryVideoRepository is an in-memory VideoRepository used in tests and
// local development. Domain events are accepted for interface parity but not
// stored; there is no outbox to relay them from.
type MemoryVideoRepository struct {
	mu     sync.RWMutex
	videos map[uuid.UUID]*models.Video
	owners map[uuid.UUID]models.OwnerProfile
}

func NewMemoryVideoRepository() *MemoryVideoRepository {
	return &MemoryVideoRepository{
		videos: make(map[uuid.UUID]*models.Video),
		owners: make(map[uuid.UUID]models.OwnerProfile),
	}
}

// SetOwnerProfile registers the public projection joined into List results.
func (r *MemoryVideoRepository) SetOwnerProfile(ownerID uuid.UUID, p models.OwnerProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[ownerID] = p
}

func (r *MemoryVideoRepository) Create(ctx context.Context, v *models.Video, _ models.DomainEvent) error {
	if v == nil || v.ID == uuid.Nil {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.videos[v.ID]; exists {
		return models.ErrConflict
	}

	// Defensive copy so callers cannot mutate the stored record.
	cp := *v
	r.videos[v.ID] = &cp
	return nil
}

func (r *MemoryVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	if id == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.videos[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *MemoryVideoRepository) List(ctx context.Context, q ListQuery) ([]models.VideoWithOwner, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(q.TitleQuery)
	matched := make([]models.VideoWithOwner, 0)
	for _, v := range r.videos {
		if !v.IsPublished {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(v.Title), needle) {
			continue
		}
		matched = append(matched, models.VideoWithOwner{
			Video: *v,
			Owner: r.owners[v.OwnerID],
		})
	}

	sortVideos(matched, q.SortField, q.SortOrder)

	total := len(matched)
	if q.Offset >= total {
		return []models.VideoWithOwner{}, total, nil
	}
	end := q.Offset + q.Limit
	if q.Limit <= 0 || end > total {
		end = total
	}
	return matched[q.Offset:end], total, nil
}

func sortVideos(vs []models.VideoWithOwner, field models.SortField, order models.SortOrder) {
	less := func(a, b models.VideoWithOwner) bool {
		switch field {
		case models.SortByViews:
			return a.Views < b.Views
		case models.SortByDuration:
			return a.Duration < b.Duration
		case models.SortByTitle:
			return a.Title < b.Title
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(vs, func(i, j int) bool {
		if order == models.SortAsc {
			return less(vs[i], vs[j])
		}
		return less(vs[j], vs[i])
	})
}

func (r *MemoryVideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Video, error) {
	if ownerID == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Video, 0)
	for _, v := range r.videos {
		if v.OwnerID == ownerID && v.IsPublished {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *MemoryVideoRepository) Update(ctx context.Context, v *models.Video, _ models.DomainEvent) (*models.Video, error) {
	if v == nil || v.ID == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.videos[v.ID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if stored.Version != v.Version {
		return nil, models.ErrConflict
	}

	cp := *v
	cp.Version++
	r.videos[v.ID] = &cp

	out := cp
	return &out, nil
}

func (r *MemoryVideoRepository) Delete(ctx context.Context, id uuid.UUID, _ models.DomainEvent) error {
	if id == uuid.Nil {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.videos[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.videos, id)
	return nil
}

// MemoryUserDirectory is the in-memory UserDirectory counterpart.
type MemoryUserDirectory struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
}

func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{users: make(map[uuid.UUID]*models.User)}
}

func (d *MemoryUserDirectory) Create(ctx context.Context, u *models.User) error {
	if u == nil || u.ID == uuid.Nil {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return models.ErrConflict
		}
	}
	cp := *u
	d.users[u.ID] = &cp
	return nil
}

func (d *MemoryUserDirectory) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (d *MemoryUserDirectory) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (d *MemoryUserDirectory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}
