package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MediaStorage is the narrow media-upload collaborator surface; pkg/s3
// satisfies it.
type MediaStorage interface {
	UploadFile(key string, file multipart.File, contentType string) (string, error)
}

// FeedParams is the raw feed request before composition.
type FeedParams struct {
	Query    string
	SortBy   string
	SortType string
	UserID   string
	Page     pagination.Params
}

type VideoUseCase interface {
	ListVideos(params FeedParams) ([]entity.VideoView, pagination.Meta, error)
	PublishVideo(ownerID, title, description string, durationSeconds int, videoFile, thumbnail *multipart.FileHeader) (*models.Video, error)
	WatchVideo(viewerID, videoID string) (*entity.VideoDetail, error)
	UpdateVideo(videoID, userID string, title, description *string, thumbnail *multipart.FileHeader) (*models.Video, error)
	DeleteVideo(videoID, userID string) error
	TogglePublish(videoID, userID string) (*models.Video, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	storage     MediaStorage
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	storage MediaStorage,
	redisClient *redis.Client,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		storage:     storage,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *videoUseCase) ListVideos(params FeedParams) ([]entity.VideoView, pagination.Meta, error) {
	query := persistent.VideoQuery{Search: params.Query, SortDesc: true, SortBy: "createdAt"}

	if params.UserID != "" {
		if err := validateID(params.UserID, "user"); err != nil {
			return nil, pagination.Meta{}, err
		}
		query.OwnerID = params.UserID
	}

	if params.SortBy != "" {
		if _, ok := persistent.FeedSortColumn(params.SortBy); !ok {
			return nil, pagination.Meta{}, apperrors.Invalid("Invalid sort field")
		}
		query.SortBy = params.SortBy
		query.SortDesc = params.SortType != "asc"
	}

	videos, total, err := uc.videoRepo.ListFeed(query, params.Page.Limit, params.Page.Offset())
	if err != nil {
		uc.logger.Error("Failed to list videos: %v", err)
		return nil, pagination.Meta{}, apperrors.Internal("Failed to fetch videos", err)
	}

	return videos, pagination.NewMeta(params.Page, total), nil
}

func (uc *videoUseCase) PublishVideo(ownerID, title, description string, durationSeconds int, videoFile, thumbnail *multipart.FileHeader) (*models.Video, error) {
	if title == "" || description == "" {
		return nil, apperrors.Invalid("Title and description are required")
	}
	if videoFile == nil {
		return nil, apperrors.Invalid("Video file is required")
	}

	videoURL, err := uc.upload("videos", videoFile)
	if err != nil {
		uc.logger.Error("Failed to upload video file: %v", err)
		return nil, apperrors.Internal("Failed to upload video", err)
	}

	thumbnailURL := ""
	if thumbnail != nil {
		thumbnailURL, err = uc.upload("thumbnails", thumbnail)
		if err != nil {
			uc.logger.Error("Failed to upload thumbnail: %v", err)
			return nil, apperrors.Internal("Failed to upload thumbnail", err)
		}
	}

	video := &models.Video{
		Title:       title,
		Description: description,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    FormatDuration(durationSeconds),
		OwnerID:     ownerID,
		IsPublished: true,
	}
	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, apperrors.Internal("Failed to publish video", err)
	}

	return video, nil
}

func (uc *videoUseCase) WatchVideo(viewerID, videoID string) (*entity.VideoDetail, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}

	detail, err := uc.videoRepo.GetDetail(videoID, viewerID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, apperrors.NotFound("Video not found")
		}
		return nil, apperrors.Internal("Failed to fetch video", err)
	}

	if err := uc.videoRepo.IncrementViews(videoID); err != nil {
		return nil, apperrors.Internal("Failed to increment views", err)
	}
	detail.Views++

	if err := uc.userRepo.AppendWatchHistory(viewerID, videoID); err != nil {
		return nil, apperrors.Internal("Failed to record watch history", err)
	}

	// Best-effort mirror of the counter for cheap reads.
	if uc.redisClient != nil {
		if err := uc.redisClient.Incr(context.Background(), "video:views:"+videoID).Err(); err != nil {
			uc.logger.Warn("Failed to update cached view count: %v", err)
		}
	}

	return detail, nil
}

func (uc *videoUseCase) UpdateVideo(videoID, userID string, title, description *string, thumbnail *multipart.FileHeader) (*models.Video, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	if title == nil && description == nil && thumbnail == nil {
		return nil, apperrors.Invalid("At least one field is required")
	}

	video, err := uc.videoRepo.FindByID(videoID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, apperrors.NotFound("Video not found")
		}
		return nil, apperrors.Internal("Failed to fetch video", err)
	}
	if video.OwnerID != userID {
		return nil, apperrors.Forbidden("Unauthorized to update this video")
	}

	fields := map[string]interface{}{}
	if title != nil {
		fields["title"] = *title
	}
	if description != nil {
		fields["description"] = *description
	}
	if thumbnail != nil {
		url, err := uc.upload("thumbnails", thumbnail)
		if err != nil {
			uc.logger.Error("Failed to upload thumbnail: %v", err)
			return nil, apperrors.Internal("Failed to upload thumbnail", err)
		}
		fields["thumbnail"] = url
	}

	updated, err := uc.videoRepo.Update(videoID, fields)
	if err != nil {
		return nil, apperrors.Internal("Failed to update video", err)
	}
	return updated, nil
}

func (uc *videoUseCase) DeleteVideo(videoID, userID string) error {
	if err := validateID(videoID, "video"); err != nil {
		return err
	}

	video, err := uc.videoRepo.FindByID(videoID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return apperrors.NotFound("Video not found")
		}
		return apperrors.Internal("Failed to fetch video", err)
	}
	if video.OwnerID != userID {
		return apperrors.Forbidden("Unauthorized to delete this video")
	}

	if err := uc.videoRepo.DeleteWithRefs(videoID); err != nil {
		uc.logger.Error("Failed to delete video %s: %v", videoID, err)
		return apperrors.Internal("Failed to delete video", err)
	}
	return nil
}

func (uc *videoUseCase) TogglePublish(videoID, userID string) (*models.Video, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}

	video, err := uc.videoRepo.FindByID(videoID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, apperrors.NotFound("Video not found")
		}
		return nil, apperrors.Internal("Failed to fetch video", err)
	}
	if video.OwnerID != userID {
		return nil, apperrors.Forbidden("Unauthorized to change publish status")
	}

	if err := uc.videoRepo.SetPublished(videoID, !video.IsPublished); err != nil {
		return nil, apperrors.Internal("Failed to toggle publish status", err)
	}
	video.IsPublished = !video.IsPublished

	return video, nil
}

func (uc *videoUseCase) upload(prefix string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	return uc.storage.UploadFile(key, file, contentType)
}

// FormatDuration renders whole seconds as mm:ss.
func FormatDuration(seconds int) string {
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
