package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, commentID, owner string, nr domain.NewReply) (domain.AddedReply, error) {
	reply := model.NewReplyFromDomain(repository.NewID("reply"), commentID, owner, nr)
	if err := r.DB.WithContext(ctx).Create(reply).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return reply.ToAdded(), nil
}

func (r *replyRepository) VerifyReplyAvailable(ctx context.Context, replyID string) error {
	return r.expectOne(ctx, "id = ?", replyID)
}

func (r *replyRepository) VerifyReplyInComment(ctx context.Context, replyID, commentID string) error {
	return r.expectOne(ctx, "id = ? AND comment_id = ?", replyID, commentID)
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, replyID, owner string) error {
	var reply model.Reply
	err := r.DB.WithContext(ctx).
		Select("id, owner").
		Where("id = ?", replyID).
		Take(&reply).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError("REPLY", msgReplyNotFound)
	}
	if err != nil {
		return err
	}
	if reply.Owner != owner {
		return domain.NewAuthorizationError("REPLY", msgForbidden)
	}
	return nil
}

func (r *replyRepository) DeleteReply(ctx context.Context, replyID string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", replyID).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("REPLY", msgReplyNotFound)
	}
	return nil
}

// GetRepliesByCommentIDs 一次查询所有评论的回复
func (r *replyRepository) GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.Reply, error) {
	if len(commentIDs) == 0 {
		return []domain.Reply{}, nil
	}

	var rows []model.ReplyRow
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, replies.content, replies.is_delete, replies.created_at, users.username").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Where("replies.comment_id IN ?", commentIDs).
		Order("replies.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *replyRepository) expectOne(ctx context.Context, query string, args ...any) error {
	var count int64
	err := r.DB.WithContext(ctx).Where(query, args...).Model(&model.Reply{}).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError("REPLY", msgReplyNotFound)
	}
	return nil
}
