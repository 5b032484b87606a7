package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{
		DB: db,
	}
}

// AddLike relies on the (comment_id, user_id) unique key to reject doubles.
func (m *commentLikeRepository) AddLike(ctx context.Context, commentID, userID string) (string, error) {
	like := &model.CommentLike{
		ID:        repository.NewID("like"),
		CommentID: commentID,
		UserID:    userID,
	}
	err := m.DB.WithContext(ctx).Create(like).Error
	if isDuplicateKey(err) {
		return "", domain.NewConflictError("COMMENT_LIKE", msgAlreadyLiked)
	}
	if err != nil {
		return "", err
	}
	return like.ID, nil
}

func (m *commentLikeRepository) DeleteLike(ctx context.Context, commentID, userID string) error {
	result := m.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewInvariantError("COMMENT_LIKE", msgLikeNotFound)
	}
	return nil
}

func (m *commentLikeRepository) IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}

func (m *commentLikeRepository) GetLikeCountsByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	res := make(map[string]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return res, nil
	}

	var rows []model.LikeCount
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, id := range commentIDs {
		res[id] = 0
	}
	for _, row := range rows {
		res[row.CommentID] = row.Count
	}
	return res, nil
}
