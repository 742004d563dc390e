package usecase

import (
	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"
)

type CommentUseCase interface {
	AddComment(videoID, userID, content string) (*models.Comment, error)
	ListComments(videoID string, page pagination.Params) ([]entity.CommentView, pagination.Meta, error)
	UpdateComment(commentID, userID, content string) (*models.Comment, error)
	DeleteComment(commentID, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, videoRepo persistent.VideoRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(videoID, userID, content string) (*models.Comment, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, apperrors.Invalid("Comment content is required")
	}

	exists, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return nil, apperrors.Internal("Failed to check video", err)
	}
	if !exists {
		return nil, apperrors.NotFound("Video not found")
	}

	comment := &models.Comment{
		Content: content,
		VideoID: videoID,
		OwnerID: userID,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, apperrors.Internal("Failed to post comment", err)
	}
	return comment, nil
}

func (uc *commentUseCase) ListComments(videoID string, page pagination.Params) ([]entity.CommentView, pagination.Meta, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, pagination.Meta{}, err
	}

	comments, total, err := uc.commentRepo.ListByVideo(videoID, page.Limit, page.Offset())
	if err != nil {
		uc.logger.Error("Failed to list comments: %v", err)
		return nil, pagination.Meta{}, apperrors.Internal("Failed to fetch comments", err)
	}
	return comments, pagination.NewMeta(page, total), nil
}

func (uc *commentUseCase) UpdateComment(commentID, userID, content string) (*models.Comment, error) {
	if err := validateID(commentID, "comment"); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, apperrors.Invalid("Comment content is required")
	}

	comment, err := uc.commentRepo.FindByID(commentID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, apperrors.NotFound("Comment not found")
		}
		return nil, apperrors.Internal("Failed to fetch comment", err)
	}
	if comment.OwnerID != userID {
		return nil, apperrors.Forbidden("Unauthorized to update this comment")
	}

	updated, err := uc.commentRepo.UpdateContent(commentID, content)
	if err != nil {
		return nil, apperrors.Internal("Failed to update comment", err)
	}
	return updated, nil
}

func (uc *commentUseCase) DeleteComment(commentID, userID string) error {
	if err := validateID(commentID, "comment"); err != nil {
		return err
	}

	comment, err := uc.commentRepo.FindByID(commentID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return apperrors.NotFound("Comment not found")
		}
		return apperrors.Internal("Failed to fetch comment", err)
	}
	if comment.OwnerID != userID {
		return apperrors.Forbidden("Unauthorized to delete this comment")
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return apperrors.Internal("Failed to delete comment", err)
	}
	return nil
}
