package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, threadID, owner string, nc domain.NewComment) (domain.AddedComment, error) {
	comment := model.NewCommentFromDomain(repository.NewID("comment"), threadID, owner, nc)
	if err := c.DB.WithContext(ctx).Create(comment).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return comment.ToAdded(), nil
}

func (c *commentRepository) VerifyCommentAvailable(ctx context.Context, commentID string) error {
	return c.expectOne(ctx, "id = ?", commentID)
}

func (c *commentRepository) VerifyCommentInThread(ctx context.Context, commentID, threadID string) error {
	return c.expectOne(ctx, "id = ? AND thread_id = ?", commentID, threadID)
}

func (c *commentRepository) VerifyCommentOwner(ctx context.Context, commentID, owner string) error {
	var comment model.Comment
	err := c.DB.WithContext(ctx).
		Select("id, owner").
		Where("id = ?", commentID).
		Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError("COMMENT", msgCommentNotFound)
	}
	if err != nil {
		return err
	}
	if comment.Owner != owner {
		return domain.NewAuthorizationError("COMMENT", msgForbidden)
	}
	return nil
}

// DeleteComment 软删除，只标记 is_delete
func (c *commentRepository) DeleteComment(ctx context.Context, commentID string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("COMMENT", msgCommentNotFound)
	}
	return nil
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []model.CommentRow
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.thread_id, comments.content, comments.is_delete, comments.created_at, users.username").
		Joins("LEFT JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) expectOne(ctx context.Context, query string, args ...any) error {
	var count int64
	err := c.DB.WithContext(ctx).Where(query, args...).Model(&model.Comment{}).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError("COMMENT", msgCommentNotFound)
	}
	return nil
}
