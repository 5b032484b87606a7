package repository

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/forum-api/domain"
)

// threadRepository 协调层，布隆过滤器挡在数据库前面
//
// The filter only answers "definitely absent". Until InitBloomFilter has
// seeded it, and again after a write to it failed or its marker was found
// missing, every lookup goes straight to the database so a missed Add or a
// lost key can never turn into a false NotFound. A later successful seed that
// started after the failure turns it back on.
type threadRepository struct {
	db    domain.ThreadDBRepository
	bloom domain.BloomRepository

	seedGroup      singleflight.Group
	ready          atomic.Bool
	addFailures    atomic.Uint64
	seededFailures atomic.Uint64
}

var (
	_ domain.ThreadRepository = (*threadRepository)(nil)
	_ domain.BloomSeeder      = (*threadRepository)(nil)
)

// NewThreadRepository 创建协调层repository
func NewThreadRepository(db domain.ThreadDBRepository, bloom domain.BloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		bloom: bloom,
	}
}

func (r *threadRepository) AddThread(ctx context.Context, owner string, nt domain.NewThread) (domain.AddedThread, error) {
	added, err := r.db.AddThread(ctx, owner, nt)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if err := r.bloom.Add(ctx, added.ID); err != nil {
		r.degrade(err)
	}
	return added, nil
}

func (r *threadRepository) VerifyThreadAvailability(ctx context.Context, threadID string) error {
	if !r.mayExist(ctx, threadID) {
		return domain.NewNotFoundError("THREAD", msgThreadNotFound)
	}
	return r.db.VerifyThreadAvailability(ctx, threadID)
}

func (r *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.Thread, error) {
	if !r.mayExist(ctx, threadID) {
		return domain.Thread{}, domain.NewNotFoundError("THREAD", msgThreadNotFound)
	}
	return r.db.GetThreadByID(ctx, threadID)
}

// InitBloomFilter 分批加载所有thread ID到布隆过滤器，并发调用只执行一次
func (r *threadRepository) InitBloomFilter(ctx context.Context, batch int) error {
	_, err, _ := r.seedGroup.Do("seed", func() (any, error) {
		return nil, r.seed(ctx, batch)
	})
	return err
}

func (r *threadRepository) seed(ctx context.Context, batch int) error {
	PageVerify(&batch)
	failuresAtStart := r.addFailures.Load()

	if err := r.bloom.MarkLoaded(ctx); err != nil {
		return err
	}

	cursor := ""
	total := 0
	for {
		ids, err := r.db.FetchIDs(ctx, cursor, batch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := r.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < batch {
			break
		}
	}

	r.seededFailures.Store(failuresAtStart)
	r.ready.Store(true)
	logrus.WithField("threads", total).Info("bloom filter seeded")
	return nil
}

// Healthy reports whether lookups currently consult the filter
func (r *threadRepository) Healthy() bool {
	return r.ready.Load() && r.addFailures.Load() == r.seededFailures.Load()
}

func (r *threadRepository) mayExist(ctx context.Context, threadID string) bool {
	if !r.Healthy() {
		return true
	}
	ok, err := r.bloom.Exists(ctx, threadID)
	if errors.Is(err, domain.ErrBloomNotLoaded) {
		r.degrade(err)
		return true
	}
	if err != nil {
		logrus.Warnf("bloom filter lookup failed, falling back to database: %v", err)
		return true
	}
	return ok
}

func (r *threadRepository) degrade(err error) {
	r.addFailures.Add(1)
	logrus.Errorf("bloom filter unreliable, disabled until reseeded: %v", err)
}

const msgThreadNotFound = "thread tidak ditemukan"
