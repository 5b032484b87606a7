package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

const DefaultReseedInterval = 30 * time.Second

type bloomReseedWorker struct {
	Seeder   domain.BloomSeeder
	interval time.Duration
	batch    int
}

func NewBloomReseedWorker(s domain.BloomSeeder, interval time.Duration, batch int) *bloomReseedWorker {
	if interval <= 0 {
		interval = DefaultReseedInterval
	}
	return &bloomReseedWorker{
		Seeder:   s,
		interval: interval,
		batch:    batch,
	}
}

// Start reseeds the filter whenever it is unhealthy, until ctx is done.
func (w *bloomReseedWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down BloomReseedWorker")
			return
		}
	}
}

func (w *bloomReseedWorker) tick(ctx context.Context) {
	if w.Seeder.Healthy() {
		return
	}
	if err := w.Seeder.InitBloomFilter(ctx, w.batch); err != nil {
		logrus.Warnf("bloom filter reseed failed: %v", err)
	}
}
