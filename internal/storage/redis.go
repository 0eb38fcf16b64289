package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisSlotPrefix = "slot:"

// RedisStore keeps each slot under a prefixed redis key. Slots have no
// TTL; the last write wins.
type RedisStore struct {
	Client *redis.Client
	ctx    context.Context
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client, ctx: context.Background()}
}

func (s *RedisStore) Load(slot string) ([]byte, error) {
	data, err := s.Client.Get(s.ctx, redisSlotPrefix+slot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(slot string, data []byte) error {
	return s.Client.Set(s.ctx, redisSlotPrefix+slot, data, 0).Err()
}

func (s *RedisStore) Delete(slot string) error {
	return s.Client.Del(s.ctx, redisSlotPrefix+slot).Err()
}
