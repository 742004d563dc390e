package usecase

import (
	"time"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/models"

	"github.com/stretchr/testify/mock"
)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *models.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(videoID string) (*models.Video, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoRepository) Exists(videoID string) (bool, error) {
	args := m.Called(videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) ListFeed(query persistent.VideoQuery, limit, offset int) ([]entity.VideoView, int64, error) {
	args := m.Called(query, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.VideoView), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) ListByOwner(ownerID string) ([]entity.VideoView, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoView), args.Error(1)
}

func (m *MockVideoRepository) GetDetail(videoID, viewerID string) (*entity.VideoDetail, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoDetail), args.Error(1)
}

func (m *MockVideoRepository) Update(videoID string, fields map[string]interface{}) (*models.Video, error) {
	args := m.Called(videoID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoRepository) SetPublished(videoID string, published bool) error {
	args := m.Called(videoID, published)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(videoID string) error {
	args := m.Called(videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) DeleteWithRefs(videoID string) error {
	args := m.Called(videoID)
	return args.Error(0)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Exists(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(userID string) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) AppendWatchHistory(userID, videoID string) error {
	args := m.Called(userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) GetWatchHistory(userID string) ([]entity.VideoView, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoView), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockLikeRepository is a mock implementation of persistent.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) ToggleVideoLike(userID, videoID string) (bool, error) {
	args := m.Called(userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ToggleCommentLike(userID, commentID string) (bool, error) {
	args := m.Called(userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ToggleTweetLike(userID, tweetID string) (bool, error) {
	args := m.Called(userID, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(userID string) ([]entity.VideoView, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoView), args.Error(1)
}

var _ persistent.LikeRepository = (*MockLikeRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(commentID string) (*models.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(commentID, content string) (*models.Comment, error) {
	args := m.Called(commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(commentID string) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByVideo(videoID string, limit, offset int) ([]entity.CommentView, int64, error) {
	args := m.Called(videoID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.CommentView), args.Get(1).(int64), args.Error(2)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

// MockTweetRepository is a mock implementation of persistent.TweetRepository
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *models.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) FindByID(tweetID string) (*models.Tweet, error) {
	args := m.Called(tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(tweetID, content string) (*models.Tweet, error) {
	args := m.Called(tweetID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(tweetID string) error {
	args := m.Called(tweetID)
	return args.Error(0)
}

func (m *MockTweetRepository) ListByUser(userID string) ([]entity.TweetView, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TweetView), args.Error(1)
}

var _ persistent.TweetRepository = (*MockTweetRepository)(nil)

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(channelID string) ([]entity.ChannelView, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ChannelView), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(subscriberID string) ([]entity.ChannelView, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ChannelView), args.Error(1)
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockPlaylistRepository is a mock implementation of persistent.PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(playlist *models.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) FindByID(playlistID string) (*models.Playlist, error) {
	args := m.Called(playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) FindByOwnerAndName(ownerID, name string) (*models.Playlist, error) {
	args := m.Called(ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(playlistID string, fields map[string]interface{}) (*models.Playlist, error) {
	args := m.Called(playlistID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(playlistID string) error {
	args := m.Called(playlistID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) ListByOwner(ownerID string) ([]entity.PlaylistSummary, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PlaylistSummary), args.Error(1)
}

func (m *MockPlaylistRepository) GetDetail(playlistID string) (*entity.PlaylistDetail, error) {
	args := m.Called(playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(playlistID, videoID string) (bool, error) {
	args := m.Called(playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) RemoveVideo(playlistID, videoID string) (bool, error) {
	args := m.Called(playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

// MockDashboardRepository is a mock implementation of persistent.DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) VideoTotals(channelID string) (int64, int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockDashboardRepository) CountLikesGivenOnVideos(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountCommentsBy(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountSubscribers(channelID string) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountSubscribing(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) DailyViews(channelID string, since time.Time) ([]entity.DailyCount, error) {
	args := m.Called(channelID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DailyCount), args.Error(1)
}

func (m *MockDashboardRepository) DailyLikes(userID string, since time.Time) ([]entity.DailyCount, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DailyCount), args.Error(1)
}

func (m *MockDashboardRepository) DailyComments(userID string, since time.Time) ([]entity.DailyCount, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DailyCount), args.Error(1)
}

func (m *MockDashboardRepository) DailySubscribers(channelID string, since time.Time) ([]entity.DailyCount, error) {
	args := m.Called(channelID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DailyCount), args.Error(1)
}

var _ persistent.DashboardRepository = (*MockDashboardRepository)(nil)
