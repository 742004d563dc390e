package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(commentID string) (*models.Comment, error)
	UpdateContent(commentID, content string) (*models.Comment, error)
	Delete(commentID string) error
	ListByVideo(videoID string, limit, offset int) ([]entity.CommentView, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("id = ?", commentID).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) UpdateContent(commentID, content string) (*models.Comment, error) {
	res := r.db.Model(&models.Comment{}).Where("id = ?", commentID).Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(commentID)
}

func (r *commentRepository) Delete(commentID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", commentID).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("comment_id = ?", commentID).Delete(&models.Like{}).Error
	})
}

func (r *commentRepository) ListByVideo(videoID string, limit, offset int) ([]entity.CommentView, int64, error) {
	base := r.db.Model(&models.Comment{}).Where("comments.video_id = ?", videoID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []commentRow
	err := r.db.Model(&models.Comment{}).
		Joins("JOIN users ON users.id = comments.owner_id AND users.deleted_at IS NULL").
		Where("comments.video_id = ?", videoID).
		Select(`comments.id, comments.content, comments.created_at,
			users.id AS owner_id, users.username AS owner_username, users.avatar AS owner_avatar`).
		Order("comments.created_at DESC, comments.id ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return toCommentViews(rows), total, nil
}
