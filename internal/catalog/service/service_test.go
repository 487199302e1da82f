package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playstack/video-catalog/internal/assets"
	"github.com/playstack/video-catalog/internal/catalog/models"
	"github.com/playstack/video-catalog/internal/catalog/repository"
)

func newTestService(videos repository.VideoRepository, users repository.UserDirectory, store assets.Store) *Service {
	return New(videos, users, store, zerolog.Nop())
}

func TestList_ClampsPageAndLimit(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name       string
		params     ListParams
		wantLimit  int
		wantOffset int
	}{
		{name: "zero page and limit", params: ListParams{Page: 0, Limit: 0}, wantLimit: 12, wantOffset: 0},
		{name: "negative page", params: ListParams{Page: -3, Limit: 5}, wantLimit: 5, wantOffset: 0},
		{name: "oversized limit", params: ListParams{Page: 2, Limit: 500}, wantLimit: 100, wantOffset: 100},
		{name: "regular page", params: ListParams{Page: 3, Limit: 10}, wantLimit: 10, wantOffset: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			videos := new(VideoRepoMock)
			svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

			var got repository.ListQuery
			videos.On("List", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					got = args.Get(1).(repository.ListQuery)
				}).
				Return([]models.VideoWithOwner{}, 0, nil).
				Once()

			_, err := svc.List(ctx, tc.params)
			require.NoError(t, err)
			require.Equal(t, tc.wantLimit, got.Limit)
			require.Equal(t, tc.wantOffset, got.Offset)
			videos.AssertExpectations(t)
		})
	}
}

func TestList_SortFieldFallback(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		sortBy    string
		sortOrder string
		wantField models.SortField
		wantOrder models.SortOrder
	}{
		{sortBy: "views", sortOrder: "asc", wantField: models.SortByViews, wantOrder: models.SortAsc},
		{sortBy: "duration", sortOrder: "desc", wantField: models.SortByDuration, wantOrder: models.SortDesc},
		{sortBy: "title", sortOrder: "", wantField: models.SortByTitle, wantOrder: models.SortDesc},
		{sortBy: "owner.password", sortOrder: "asc", wantField: models.SortByCreatedAt, wantOrder: models.SortAsc},
		{sortBy: "", sortOrder: "sideways", wantField: models.SortByCreatedAt, wantOrder: models.SortDesc},
	}

	for _, tc := range cases {
		t.Run(tc.sortBy+"/"+tc.sortOrder, func(t *testing.T) {
			videos := new(VideoRepoMock)
			svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

			var got repository.ListQuery
			videos.On("List", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					got = args.Get(1).(repository.ListQuery)
				}).
				Return([]models.VideoWithOwner{}, 0, nil).
				Once()

			_, err := svc.List(ctx, ListParams{SortBy: tc.sortBy, SortOrder: tc.sortOrder})
			require.NoError(t, err)
			require.Equal(t, tc.wantField, got.SortField)
			require.Equal(t, tc.wantOrder, got.SortOrder)
		})
	}
}

func TestList_PaginationMetadata(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name           string
		page, limit    int
		total          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{name: "middle page", page: 2, limit: 10, total: 25, wantTotalPages: 3, wantHasNext: true, wantHasPrev: true},
		{name: "last page", page: 3, limit: 10, total: 25, wantTotalPages: 3, wantHasNext: false, wantHasPrev: true},
		{name: "first of one", page: 1, limit: 10, total: 7, wantTotalPages: 1, wantHasNext: false, wantHasPrev: false},
		{name: "exact boundary", page: 2, limit: 5, total: 10, wantTotalPages: 2, wantHasNext: false, wantHasPrev: true},
		{name: "empty catalog", page: 1, limit: 12, total: 0, wantTotalPages: 0, wantHasNext: false, wantHasPrev: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			videos := new(VideoRepoMock)
			svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

			videos.On("List", mock.Anything, mock.Anything).
				Return([]models.VideoWithOwner{}, tc.total, nil).
				Once()

			page, err := svc.List(ctx, ListParams{Page: tc.page, Limit: tc.limit})
			require.NoError(t, err)
			require.Equal(t, tc.page, page.CurrentPage)
			require.Equal(t, tc.wantTotalPages, page.TotalPages)
			require.Equal(t, tc.total, page.TotalVideos)
			require.Equal(t, tc.wantHasNext, page.HasNextPage)
			require.Equal(t, tc.wantHasPrev, page.HasPrevPage)
		})
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{name: "missing title", in: CreateInput{Description: "d", VideoPath: "v", ThumbnailPath: "t"}},
		{name: "missing description", in: CreateInput{Title: "t", VideoPath: "v", ThumbnailPath: "t"}},
		{name: "whitespace title", in: CreateInput{Title: "   ", Description: "d", VideoPath: "v", ThumbnailPath: "t"}},
		{name: "title too long", in: CreateInput{Title: strings.Repeat("a", 101), Description: "d", VideoPath: "v", ThumbnailPath: "t"}},
		{name: "description too long", in: CreateInput{Title: "t", Description: strings.Repeat("a", 5001), VideoPath: "v", ThumbnailPath: "t"}},
		{name: "missing video file", in: CreateInput{Title: "t", Description: "d", ThumbnailPath: "t"}},
		{name: "missing thumbnail file", in: CreateInput{Title: "t", Description: "d", VideoPath: "v"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			videos := new(VideoRepoMock)
			store := new(AssetStoreMock)
			svc := newTestService(videos, new(UserDirectoryMock), store)

			got, err := svc.Create(ctx, uuid.New(), tc.in)
			require.ErrorIs(t, err, models.ErrInvalidArgument)
			require.Nil(t, got)
			store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
			videos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_TitleTooLongMessage(t *testing.T) {
	svc := newTestService(new(VideoRepoMock), new(UserDirectoryMock), new(AssetStoreMock))

	_, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Title:         strings.Repeat("x", 101),
		Description:   "d",
		VideoPath:     "v.mp4",
		ThumbnailPath: "t.png",
	})
	require.ErrorIs(t, err, models.ErrInvalidArgument)
	require.Contains(t, err.Error(), "title must be 100 characters or less")
}

func TestCreate_SetsFieldsAndPersists(t *testing.T) {
	ctx := context.Background()
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	fixedID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fixedTime := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	svc.idGen = func() uuid.UUID { return fixedID }
	svc.clock = func() time.Time { return fixedTime }

	owner := uuid.New()

	store.On("Upload", mock.Anything, "/tmp/clip.mp4", assets.KindVideo).
		Return(&assets.Upload{URL: "https://cdn/video.mp4", Key: "video/abc", Duration: 42.5}, nil).Once()
	store.On("Upload", mock.Anything, "/tmp/thumb.png", assets.KindImage).
		Return(&assets.Upload{URL: "https://cdn/thumb.png", Key: "image/def"}, nil).Once()

	var persisted *models.Video
	var event models.DomainEvent
	videos.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.Video)
			event = args.Get(2).(models.DomainEvent)
		}).
		Return(nil).
		Once()

	got, err := svc.Create(ctx, owner, CreateInput{
		Title:         "  My first video  ",
		Description:   "about nothing",
		VideoPath:     "/tmp/clip.mp4",
		ThumbnailPath: "/tmp/thumb.png",
	})
	require.NoError(t, err)
	require.Equal(t, persisted, got)

	require.Equal(t, fixedID, got.ID)
	require.Equal(t, "My first video", got.Title)
	require.Equal(t, "about nothing", got.Description)
	require.Equal(t, "https://cdn/video.mp4", got.VideoURL)
	require.Equal(t, "video/abc", got.VideoAssetID)
	require.Equal(t, "https://cdn/thumb.png", got.ThumbnailURL)
	require.Equal(t, "image/def", got.ThumbnailAssetID)
	require.Equal(t, 42.5, got.Duration)
	require.Equal(t, owner, got.OwnerID)
	require.True(t, got.IsPublished)
	require.Equal(t, int64(1), got.Version)
	require.Equal(t, fixedTime, got.CreatedAt)

	require.Equal(t, "VideoCreated", event.EventType())
	require.Equal(t, fixedID, event.AggregateID())

	store.AssertExpectations(t)
	videos.AssertExpectations(t)
}

func TestCreate_VideoUploadFails(t *testing.T) {
	ctx := context.Background()
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	store.On("Upload", mock.Anything, "/tmp/clip.mp4", assets.KindVideo).
		Return(nil, errors.New("bucket unreachable")).Once()

	got, err := svc.Create(ctx, uuid.New(), CreateInput{
		Title: "t", Description: "d", VideoPath: "/tmp/clip.mp4", ThumbnailPath: "/tmp/thumb.png",
	})
	require.ErrorIs(t, err, models.ErrUpstream)
	require.Nil(t, got)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	videos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ThumbnailUploadFailureCompensatesVideoAsset(t *testing.T) {
	ctx := context.Background()
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	store.On("Upload", mock.Anything, "/tmp/clip.mp4", assets.KindVideo).
		Return(&assets.Upload{URL: "u", Key: "video/abc"}, nil).Once()
	store.On("Upload", mock.Anything, "/tmp/thumb.png", assets.KindImage).
		Return(nil, errors.New("bucket unreachable")).Once()
	store.On("Delete", mock.Anything, "video/abc").Return(nil).Once()

	got, err := svc.Create(ctx, uuid.New(), CreateInput{
		Title: "t", Description: "d", VideoPath: "/tmp/clip.mp4", ThumbnailPath: "/tmp/thumb.png",
	})
	require.ErrorIs(t, err, models.ErrUpstream)
	require.Nil(t, got)
	store.AssertExpectations(t)
	videos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_PersistFailureCompensatesBothAssets(t *testing.T) {
	ctx := context.Background()
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	store.On("Upload", mock.Anything, mock.Anything, assets.KindVideo).
		Return(&assets.Upload{URL: "u", Key: "video/abc"}, nil).Once()
	store.On("Upload", mock.Anything, mock.Anything, assets.KindImage).
		Return(&assets.Upload{URL: "u", Key: "image/def"}, nil).Once()
	store.On("Delete", mock.Anything, "video/abc").Return(nil).Once()
	store.On("Delete", mock.Anything, "image/def").Return(nil).Once()
	videos.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("insert failed")).Once()

	got, err := svc.Create(ctx, uuid.New(), CreateInput{
		Title: "t", Description: "d", VideoPath: "v.mp4", ThumbnailPath: "t.png",
	})
	require.Error(t, err)
	require.Nil(t, got)
	store.AssertExpectations(t)
}

func ownedVideo(owner uuid.UUID) *models.Video {
	return &models.Video{
		ID:               uuid.New(),
		Title:            "original title",
		Description:      "original description",
		VideoURL:         "https://cdn/v.mp4",
		VideoAssetID:     "video/v1",
		ThumbnailURL:     "https://cdn/t.png",
		ThumbnailAssetID: "image/t1",
		OwnerID:          owner,
		IsPublished:      true,
		Version:          3,
	}
}

func TestUpdateDetails_NotFound(t *testing.T) {
	videos := new(VideoRepoMock)
	svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

	videos.On("GetByID", mock.Anything, mock.Anything).Return(nil, models.ErrNotFound).Once()

	_, err := svc.UpdateDetails(context.Background(), uuid.New(), uuid.New(), "t", "")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateDetails_Forbidden(t *testing.T) {
	videos := new(VideoRepoMock)
	svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()

	_, err := svc.UpdateDetails(context.Background(), v.ID, uuid.New(), "new title", "")
	require.ErrorIs(t, err, models.ErrForbidden)
	videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDetails_NoFields(t *testing.T) {
	videos := new(VideoRepoMock)
	svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()

	_, err := svc.UpdateDetails(context.Background(), v.ID, owner, "  ", "")
	require.ErrorIs(t, err, models.ErrInvalidArgument)
	videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDetails_PartialUpdate(t *testing.T) {
	videos := new(VideoRepoMock)
	svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()

	var persisted *models.Video
	videos.On("Update", mock.Anything, mock.Anything, nil).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.Video)
		}).
		Return(v, nil).
		Once()

	_, err := svc.UpdateDetails(context.Background(), v.ID, owner, " new title ", "")
	require.NoError(t, err)
	require.Equal(t, "new title", persisted.Title)
	require.Equal(t, "original description", persisted.Description)
	videos.AssertExpectations(t)
}

func TestUpdateDetails_ConflictPropagated(t *testing.T) {
	videos := new(VideoRepoMock)
	svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
	videos.On("Update", mock.Anything, mock.Anything, nil).Return(nil, models.ErrConflict).Once()

	_, err := svc.UpdateDetails(context.Background(), v.ID, owner, "new title", "")
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateThumbnail_MissingFile(t *testing.T) {
	videos := new(VideoRepoMock)
	svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

	_, err := svc.UpdateThumbnail(context.Background(), uuid.New(), uuid.New(), "")
	require.ErrorIs(t, err, models.ErrInvalidArgument)
	videos.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateThumbnail_OldAssetDeletedAfterPersist(t *testing.T) {
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()

	store.On("Upload", mock.Anything, "/tmp/new.png", assets.KindImage).
		Return(&assets.Upload{URL: "https://cdn/new.png", Key: "image/t2"}, nil).Once()

	persisted := false
	videos.On("Update", mock.Anything, mock.Anything, nil).
		Run(func(args mock.Arguments) {
			persisted = true
			got := args.Get(1).(*models.Video)
			require.Equal(t, "image/t2", got.ThumbnailAssetID)
			require.Equal(t, "https://cdn/new.png", got.ThumbnailURL)
		}).
		Return(v, nil).
		Once()

	// Old asset must only be removed once the new reference is durable.
	store.On("Delete", mock.Anything, "image/t1").
		Run(func(mock.Arguments) {
			require.True(t, persisted, "old thumbnail deleted before persist")
		}).
		Return(nil).
		Once()

	_, err := svc.UpdateThumbnail(context.Background(), v.ID, owner, "/tmp/new.png")
	require.NoError(t, err)
	store.AssertExpectations(t)
	videos.AssertExpectations(t)
}

func TestUpdateThumbnail_PersistFailureKeepsOldAsset(t *testing.T) {
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
	store.On("Upload", mock.Anything, mock.Anything, assets.KindImage).
		Return(&assets.Upload{URL: "u", Key: "image/t2"}, nil).Once()
	videos.On("Update", mock.Anything, mock.Anything, nil).Return(nil, models.ErrConflict).Once()
	// Compensate the orphaned new asset, never the old one.
	store.On("Delete", mock.Anything, "image/t2").Return(nil).Once()

	_, err := svc.UpdateThumbnail(context.Background(), v.ID, owner, "/tmp/new.png")
	require.ErrorIs(t, err, models.ErrConflict)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Delete", mock.Anything, "image/t1")
}

func TestUpdateThumbnail_NoPriorAssetSkipsDelete(t *testing.T) {
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	owner := uuid.New()
	v := ownedVideo(owner)
	v.ThumbnailAssetID = ""
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
	store.On("Upload", mock.Anything, mock.Anything, assets.KindImage).
		Return(&assets.Upload{URL: "u", Key: "image/t2"}, nil).Once()
	videos.On("Update", mock.Anything, mock.Anything, nil).Return(v, nil).Once()

	_, err := svc.UpdateThumbnail(context.Background(), v.ID, owner, "/tmp/new.png")
	require.NoError(t, err)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Forbidden(t *testing.T) {
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	v := ownedVideo(uuid.New())
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()

	err := svc.Delete(context.Background(), v.ID, uuid.New())
	require.ErrorIs(t, err, models.ErrForbidden)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	videos.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_AssetsFirstThenRecord(t *testing.T) {
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
	store.On("Delete", mock.Anything, "video/v1").Return(nil).Once()
	store.On("Delete", mock.Anything, "image/t1").Return(nil).Once()

	var event models.DomainEvent
	videos.On("Delete", mock.Anything, v.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			event = args.Get(2).(models.DomainEvent)
		}).
		Return(nil).
		Once()

	require.NoError(t, svc.Delete(context.Background(), v.ID, owner))
	require.Equal(t, "VideoDeleted", event.EventType())
	store.AssertExpectations(t)
	videos.AssertExpectations(t)
}

func TestDelete_AssetFailureKeepsRecord(t *testing.T) {
	videos := new(VideoRepoMock)
	store := new(AssetStoreMock)
	svc := newTestService(videos, new(UserDirectoryMock), store)

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
	store.On("Delete", mock.Anything, "video/v1").Return(errors.New("bucket unreachable")).Once()

	err := svc.Delete(context.Background(), v.ID, owner)
	require.ErrorIs(t, err, models.ErrUpstream)
	videos.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestTogglePublish_FlipsAndEmitsEvent(t *testing.T) {
	videos := new(VideoRepoMock)
	svc := newTestService(videos, new(UserDirectoryMock), new(AssetStoreMock))

	owner := uuid.New()
	v := ownedVideo(owner)
	videos.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()

	var persisted *models.Video
	var event models.DomainEvent
	videos.On("Update", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.Video)
			event = args.Get(2).(models.DomainEvent)
		}).
		Return(v, nil).
		Once()

	_, err := svc.TogglePublish(context.Background(), v.ID, owner)
	require.NoError(t, err)
	require.False(t, persisted.IsPublished)

	change, ok := event.(*models.VideoPublishChanged)
	require.True(t, ok)
	require.False(t, change.Published())
}

func TestTogglePublish_TwiceRestoresOriginal(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryVideoRepository()
	svc := newTestService(repo, new(UserDirectoryMock), new(AssetStoreMock))

	owner := uuid.New()
	v := ownedVideo(owner)
	require.NoError(t, repo.Create(ctx, v, nil))

	first, err := svc.TogglePublish(ctx, v.ID, owner)
	require.NoError(t, err)
	require.False(t, first.IsPublished)

	second, err := svc.TogglePublish(ctx, v.ID, owner)
	require.NoError(t, err)
	require.True(t, second.IsPublished)
}

func TestChannelVideos_MissingUsername(t *testing.T) {
	users := new(UserDirectoryMock)
	svc := newTestService(new(VideoRepoMock), users, new(AssetStoreMock))

	_, err := svc.ChannelVideos(context.Background(), "  ")
	require.ErrorIs(t, err, models.ErrInvalidArgument)
	users.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestChannelVideos_UserNotFound(t *testing.T) {
	users := new(UserDirectoryMock)
	svc := newTestService(new(VideoRepoMock), users, new(AssetStoreMock))

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, models.ErrNotFound).Once()

	_, err := svc.ChannelVideos(context.Background(), "ghost")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestChannelVideos_ReturnsOwnerVideos(t *testing.T) {
	videos := new(VideoRepoMock)
	users := new(UserDirectoryMock)
	svc := newTestService(videos, users, new(AssetStoreMock))

	ownerID := uuid.New()
	users.On("GetByUsername", mock.Anything, "alice").
		Return(&models.User{ID: ownerID, Username: "alice"}, nil).Once()

	want := []models.Video{{ID: uuid.New(), OwnerID: ownerID, IsPublished: true}}
	videos.On("ListByOwner", mock.Anything, ownerID).Return(want, nil).Once()

	got, err := svc.ChannelVideos(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
