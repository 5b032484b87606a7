package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSeeder struct {
	healthy atomic.Bool
	seeds   atomic.Int32
	err     error
}

func (f *fakeSeeder) Healthy() bool { return f.healthy.Load() }

func (f *fakeSeeder) InitBloomFilter(context.Context, int) error {
	f.seeds.Add(1)
	if f.err != nil {
		return f.err
	}
	f.healthy.Store(true)
	return nil
}

func TestBloomReseedWorker_Tick(t *testing.T) {
	t.Run("skips a healthy filter", func(t *testing.T) {
		s := &fakeSeeder{}
		s.healthy.Store(true)

		NewBloomReseedWorker(s, time.Second, 10).tick(context.TODO())

		assert.Equal(t, int32(0), s.seeds.Load())
	})

	t.Run("reseeds an unhealthy filter", func(t *testing.T) {
		s := &fakeSeeder{}

		NewBloomReseedWorker(s, time.Second, 10).tick(context.TODO())

		assert.Equal(t, int32(1), s.seeds.Load())
		assert.True(t, s.Healthy())
	})

	t.Run("keeps trying after a failure", func(t *testing.T) {
		s := &fakeSeeder{err: errors.New("redis down")}
		w := NewBloomReseedWorker(s, time.Second, 10)

		w.tick(context.TODO())
		w.tick(context.TODO())

		assert.Equal(t, int32(2), s.seeds.Load())
		assert.False(t, s.Healthy())
	})
}

func TestBloomReseedWorker_StartStops(t *testing.T) {
	s := &fakeSeeder{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		NewBloomReseedWorker(s, 5*time.Millisecond, 10).Start(ctx)
		close(done)
	}()

	assert.Eventually(t, s.Healthy, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestNewBloomReseedWorker_DefaultInterval(t *testing.T) {
	w := NewBloomReseedWorker(&fakeSeeder{}, 0, 10)
	assert.Equal(t, DefaultReseedInterval, w.interval)
}
