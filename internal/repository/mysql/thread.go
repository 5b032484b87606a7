package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.ThreadDBRepository = (*threadRepository)(nil)

// NewThreadDBRepository 创建数据库操作层
func NewThreadDBRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{db}
}

func (m *threadRepository) AddThread(ctx context.Context, owner string, nt domain.NewThread) (domain.AddedThread, error) {
	thread := model.NewThreadFromDomain(repository.NewID("thread"), owner, nt)
	if err := m.DB.WithContext(ctx).Create(thread).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return thread.ToAdded(), nil
}

func (m *threadRepository) VerifyThreadAvailability(ctx context.Context, threadID string) error {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id = ?", threadID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError("THREAD", msgThreadNotFound)
	}
	return nil
}

func (m *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.Thread, error) {
	var row model.ThreadRow
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.created_at, users.username").
		Joins("LEFT JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, domain.NewNotFoundError("THREAD", msgThreadNotFound)
	}
	if err != nil {
		return domain.Thread{}, err
	}
	return row.ToDomain(), nil
}

func (m *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) (ids []string, err error) {
	repository.PageVerify(&limit)
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return
}
