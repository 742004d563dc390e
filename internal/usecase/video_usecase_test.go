package usecase

import (
	"net/http"
	"sort"
	"strings"
	"testing"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const (
	testVideoID   = "3f2f4f9a-5b36-4f0e-9a3e-111111111111"
	testUserID    = "3f2f4f9a-5b36-4f0e-9a3e-222222222222"
	otherUserID   = "3f2f4f9a-5b36-4f0e-9a3e-333333333333"
	secondVideoID = "3f2f4f9a-5b36-4f0e-9a3e-888888888888"
)

func newVideoUseCase(videoRepo *MockVideoRepository, userRepo *MockUserRepository) VideoUseCase {
	return NewVideoUseCase(videoRepo, userRepo, nil, nil, logger.New())
}

func TestListVideos_SearchComposesQuery(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	expected := persistent.VideoQuery{Search: "cat", SortBy: "createdAt", SortDesc: true}
	rows := []entity.VideoView{
		{ID: testVideoID, Title: "Cat compilation"},
	}
	videoRepo.On("ListFeed", expected, 10, 0).Return(rows, int64(1), nil)

	videos, meta, err := uc.ListVideos(FeedParams{
		Query: "cat",
		Page:  pagination.Params{Page: 1, Limit: 10},
	})

	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, "Cat compilation", videos[0].Title)
	assert.Equal(t, int64(1), meta.TotalDocs)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
	videoRepo.AssertExpectations(t)
}

func TestListVideos_ExplicitSortAscending(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	expected := persistent.VideoQuery{SortBy: "views", SortDesc: false}
	videoRepo.On("ListFeed", expected, 10, 10).Return([]entity.VideoView{}, int64(25), nil)

	_, meta, err := uc.ListVideos(FeedParams{
		SortBy:   "views",
		SortType: "asc",
		Page:     pagination.Params{Page: 2, Limit: 10},
	})

	assert.NoError(t, err)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
	videoRepo.AssertExpectations(t)
}

func TestListVideos_UnknownSortField(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	_, _, err := uc.ListVideos(FeedParams{
		SortBy: "owner.password",
		Page:   pagination.Params{Page: 1, Limit: 10},
	})

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusBadRequest, status)
	videoRepo.AssertNotCalled(t, "ListFeed")
}

func TestListVideos_MalformedOwnerID(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	_, _, err := uc.ListVideos(FeedParams{
		UserID: "not-a-uuid",
		Page:   pagination.Params{Page: 1, Limit: 10},
	})

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusBadRequest, status)
	videoRepo.AssertNotCalled(t, "ListFeed")
}

func TestWatchVideo_IncrementsViewsAndRecordsHistory(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	detail := &entity.VideoDetail{
		VideoView:    entity.VideoView{ID: testVideoID, Views: 5},
		IsSubscribed: true,
	}
	videoRepo.On("GetDetail", testVideoID, testUserID).Return(detail, nil)
	videoRepo.On("IncrementViews", testVideoID).Return(nil)
	userRepo.On("AppendWatchHistory", testUserID, testVideoID).Return(nil)

	got, err := uc.WatchVideo(testUserID, testVideoID)

	assert.NoError(t, err)
	assert.Equal(t, int64(6), got.Views)
	assert.True(t, got.IsSubscribed)
	videoRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestWatchVideo_MalformedID(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	_, err := uc.WatchVideo(testUserID, "12345")

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusBadRequest, status)
	videoRepo.AssertNotCalled(t, "GetDetail")
}

func TestWatchVideo_NotFound(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	videoRepo.On("GetDetail", testVideoID, testUserID).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.WatchVideo(testUserID, testVideoID)

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusNotFound, status)
	userRepo.AssertNotCalled(t, "AppendWatchHistory")
}

func TestDeleteVideo_NotOwner(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	videoRepo.On("FindByID", testVideoID).Return(&models.Video{ID: testVideoID, OwnerID: testUserID}, nil)

	err := uc.DeleteVideo(testVideoID, otherUserID)

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusForbidden, status)
	videoRepo.AssertNotCalled(t, "DeleteWithRefs")
}

func TestDeleteVideo_OwnerCascades(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	videoRepo.On("FindByID", testVideoID).Return(&models.Video{ID: testVideoID, OwnerID: testUserID}, nil)
	videoRepo.On("DeleteWithRefs", testVideoID).Return(nil)

	err := uc.DeleteVideo(testVideoID, testUserID)

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
}

func TestTogglePublish_Flips(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUseCase(videoRepo, userRepo)

	videoRepo.On("FindByID", testVideoID).Return(&models.Video{ID: testVideoID, OwnerID: testUserID, IsPublished: true}, nil)
	videoRepo.On("SetPublished", testVideoID, false).Return(nil)

	video, err := uc.TogglePublish(testVideoID, testUserID)

	assert.NoError(t, err)
	assert.False(t, video.IsPublished)
	videoRepo.AssertExpectations(t)
}

// fakeVideoRepository applies the feed filter, sort and window in memory,
// mirroring the repository's query semantics so listing behavior can be
// checked end to end.
type fakeVideoRepository struct {
	videos []entity.VideoView
}

func (f *fakeVideoRepository) Create(video *models.Video) error { return nil }

func (f *fakeVideoRepository) FindByID(videoID string) (*models.Video, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideoRepository) Exists(videoID string) (bool, error) {
	for _, v := range f.videos {
		if v.ID == videoID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVideoRepository) ListFeed(query persistent.VideoQuery, limit, offset int) ([]entity.VideoView, int64, error) {
	needle := strings.ToLower(query.Search)
	filtered := make([]entity.VideoView, 0, len(f.videos))
	for _, v := range f.videos {
		if needle != "" &&
			!strings.Contains(strings.ToLower(v.Title), needle) &&
			!strings.Contains(strings.ToLower(v.Description), needle) {
			continue
		}
		if query.OwnerID != "" && v.Owner.ID != query.OwnerID {
			continue
		}
		filtered = append(filtered, v)
	}

	// Stable sort keeps insertion order on equal keys, matching the
	// created_at/id tie-break of the store query.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		var less bool
		switch query.SortBy {
		case "views":
			if a.Views == b.Views {
				return false
			}
			less = a.Views < b.Views
		case "title":
			if a.Title == b.Title {
				return false
			}
			less = a.Title < b.Title
		default:
			if a.CreatedAt.Equal(b.CreatedAt) {
				return false
			}
			less = a.CreatedAt.Before(b.CreatedAt)
		}
		if query.SortDesc {
			return !less
		}
		return less
	})

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []entity.VideoView{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (f *fakeVideoRepository) ListByOwner(ownerID string) ([]entity.VideoView, error) {
	return nil, nil
}

func (f *fakeVideoRepository) GetDetail(videoID, viewerID string) (*entity.VideoDetail, error) {
	for _, v := range f.videos {
		if v.ID == videoID {
			return &entity.VideoDetail{VideoView: v}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideoRepository) Update(videoID string, fields map[string]interface{}) (*models.Video, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideoRepository) SetPublished(videoID string, published bool) error { return nil }

func (f *fakeVideoRepository) IncrementViews(videoID string) error {
	for i := range f.videos {
		if f.videos[i].ID == videoID {
			f.videos[i].Views++
		}
	}
	return nil
}

func (f *fakeVideoRepository) DeleteWithRefs(videoID string) error { return nil }

var _ persistent.VideoRepository = (*fakeVideoRepository)(nil)

// fakeUserRepository keeps watch history as an append-if-absent ordered
// list per user.
type fakeUserRepository struct {
	history map[string][]string
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{history: map[string][]string{}}
}

func (f *fakeUserRepository) Exists(userID string) (bool, error) { return true, nil }

func (f *fakeUserRepository) FindByID(userID string) (*models.User, error) {
	return &models.User{ID: userID}, nil
}

func (f *fakeUserRepository) AppendWatchHistory(userID, videoID string) error {
	for _, id := range f.history[userID] {
		if id == videoID {
			return nil
		}
	}
	f.history[userID] = append(f.history[userID], videoID)
	return nil
}

func (f *fakeUserRepository) GetWatchHistory(userID string) ([]entity.VideoView, error) {
	views := make([]entity.VideoView, 0, len(f.history[userID]))
	for _, id := range f.history[userID] {
		views = append(views, entity.VideoView{ID: id})
	}
	return views, nil
}

var _ persistent.UserRepository = (*fakeUserRepository)(nil)

func TestListVideos_SearchFiltersAndSortsByViews(t *testing.T) {
	repo := &fakeVideoRepository{videos: []entity.VideoView{
		{ID: "vid-1", Title: "Cat nap", Views: 5},
		{ID: "vid-2", Title: "Dog run", Views: 50},
		{ID: "vid-3", Title: "Cat fight", Views: 30},
		{ID: "vid-4", Title: "Birds", Description: "a cat cameo", Views: 1},
	}}
	uc := NewVideoUseCase(repo, newFakeUserRepository(), nil, nil, logger.New())

	videos, meta, err := uc.ListVideos(FeedParams{
		Query:    "cat",
		SortBy:   "views",
		SortType: "desc",
		Page:     pagination.Params{Page: 1, Limit: 2},
	})

	assert.NoError(t, err)
	assert.Len(t, videos, 2)
	assert.Equal(t, "Cat fight", videos[0].Title)
	assert.Equal(t, "Cat nap", videos[1].Title)
	assert.Equal(t, int64(3), meta.TotalDocs)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}

func TestListVideos_WindowEqualsOrderedSlice(t *testing.T) {
	repo := &fakeVideoRepository{videos: []entity.VideoView{
		{ID: "vid-1", Title: "v1", Views: 7},
		{ID: "vid-2", Title: "v2", Views: 3},
		{ID: "vid-3", Title: "v3", Views: 9},
		{ID: "vid-4", Title: "v4", Views: 3},
		{ID: "vid-5", Title: "v5", Views: 5},
		{ID: "vid-6", Title: "v6", Views: 1},
		{ID: "vid-7", Title: "v7", Views: 8},
	}}
	uc := NewVideoUseCase(repo, newFakeUserRepository(), nil, nil, logger.New())

	full, meta, err := uc.ListVideos(FeedParams{
		SortBy:   "views",
		SortType: "desc",
		Page:     pagination.Params{Page: 1, Limit: 10},
	})
	assert.NoError(t, err)
	assert.Len(t, full, 7)
	assert.Equal(t, int64(7), meta.TotalDocs)

	// Equal view counts keep insertion order.
	assert.Equal(t, "v2", full[4].Title)
	assert.Equal(t, "v4", full[5].Title)

	limit := 3
	for page := 1; page <= 3; page++ {
		window, meta, err := uc.ListVideos(FeedParams{
			SortBy:   "views",
			SortType: "desc",
			Page:     pagination.Params{Page: page, Limit: limit},
		})
		assert.NoError(t, err)

		lo := (page - 1) * limit
		hi := page * limit
		if hi > len(full) {
			hi = len(full)
		}
		assert.Equal(t, full[lo:hi], window)
		assert.Equal(t, int64(7), meta.TotalDocs)
		assert.Equal(t, page*limit < 7, meta.HasNextPage)
		assert.Equal(t, page > 1, meta.HasPrevPage)
	}
}

func TestWatchVideo_RepeatedWatchesRecordOneHistoryEntry(t *testing.T) {
	repo := &fakeVideoRepository{videos: []entity.VideoView{
		{ID: testVideoID, Title: "First"},
		{ID: secondVideoID, Title: "Second"},
	}}
	users := newFakeUserRepository()
	uc := NewVideoUseCase(repo, users, nil, nil, logger.New())

	for i := 0; i < 3; i++ {
		_, err := uc.WatchVideo(testUserID, testVideoID)
		assert.NoError(t, err)
	}
	_, err := uc.WatchVideo(testUserID, secondVideoID)
	assert.NoError(t, err)
	detail, err := uc.WatchVideo(testUserID, testVideoID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), detail.Views)

	history, err := users.GetWatchHistory(testUserID)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, testVideoID, history[0].ID)
	assert.Equal(t, secondVideoID, history[1].ID)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{59, "00:59"},
		{60, "01:00"},
		{90, "01:30"},
		{754, "12:34"},
		{3599, "59:59"},
		{3600, "00:00"},
		{3725, "02:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds))
	}
}
