package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/playstack/video-catalog/internal/assets"
	"github.com/playstack/video-catalog/internal/catalog/models"
	"github.com/playstack/video-catalog/internal/catalog/repository"
)

type VideoRepoMock struct {
	mock.Mock
}

func (m *VideoRepoMock) Create(ctx context.Context, v *models.Video, evt models.DomainEvent) error {
	args := m.Called(ctx, v, evt)
	return args.Error(0)
}

func (m *VideoRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VideoRepoMock) List(ctx context.Context, q repository.ListQuery) ([]models.VideoWithOwner, int, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.([]models.VideoWithOwner), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *VideoRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Video, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VideoRepoMock) Update(ctx context.Context, v *models.Video, evt models.DomainEvent) (*models.Video, error) {
	args := m.Called(ctx, v, evt)
	if out := args.Get(0); out != nil {
		return out.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VideoRepoMock) Delete(ctx context.Context, id uuid.UUID, evt models.DomainEvent) error {
	args := m.Called(ctx, id, evt)
	return args.Error(0)
}

type UserDirectoryMock struct {
	mock.Mock
}

func (m *UserDirectoryMock) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserDirectoryMock) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserDirectoryMock) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserDirectoryMock) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type AssetStoreMock struct {
	mock.Mock
}

func (m *AssetStoreMock) Upload(ctx context.Context, localPath string, kind assets.Kind) (*assets.Upload, error) {
	args := m.Called(ctx, localPath, kind)
	if v := args.Get(0); v != nil {
		return v.(*assets.Upload), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetStoreMock) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
