package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	KeyThreadBloom = "bloom:thread:ids"

	bloomHashes = 3
)

// threadBloom keeps bloomHashes bits per thread ID in a single bitmap.
// Offsets [0, bits) hold the filter; offset bits is the loaded marker, so a
// lost key reads as "not loaded" rather than as an empty filter.
type threadBloom struct {
	client *redis.Client
	bits   uint64
}

var _ domain.BloomRepository = (*threadBloom)(nil)

func NewThreadBloom(client *redis.Client, bitSize uint64) *threadBloom {
	return &threadBloom{
		client: client,
		bits:   bitSize,
	}
}

func (b *threadBloom) Add(ctx context.Context, id string) error {
	return b.BulkAdd(ctx, []string{id})
}

func (b *threadBloom) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := b.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, id := range ids {
			for _, off := range b.positions(id) {
				p.SetBit(ctx, KeyThreadBloom, off, 1)
			}
		}
		return nil
	})
	return err
}

func (b *threadBloom) MarkLoaded(ctx context.Context) error {
	return b.client.SetBit(ctx, KeyThreadBloom, b.marker(), 1).Err()
}

// Exists reads the marker and the ID's bits in one round trip.
func (b *threadBloom) Exists(ctx context.Context, id string) (bool, error) {
	positions := b.positions(id)
	cmds := make([]*redis.IntCmd, 0, len(positions)+1)
	_, err := b.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		cmds = append(cmds, p.GetBit(ctx, KeyThreadBloom, b.marker()))
		for _, off := range positions {
			cmds = append(cmds, p.GetBit(ctx, KeyThreadBloom, off))
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if cmds[0].Val() == 0 {
		return false, domain.ErrBloomNotLoaded
	}
	for _, cmd := range cmds[1:] {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (b *threadBloom) marker() int64 {
	return int64(b.bits)
}

// positions derives every offset from two base hashes: h1 + i*h2.
// h2 is forced odd so the offsets don't collapse onto one bit.
func (b *threadBloom) positions(id string) []int64 {
	data := []byte(id)

	f := fnv.New64a()
	_, _ = f.Write(data)
	h1 := f.Sum64()
	h2 := uint64(crc32.ChecksumIEEE(data)) | 1

	res := make([]int64, bloomHashes)
	for i := range res {
		res[i] = int64((h1 + uint64(i)*h2) % b.bits)
	}
	return res
}
