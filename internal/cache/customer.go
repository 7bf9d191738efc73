package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const cachedCustomerTimeToLive = 10 * time.Minute

// CustomerCacheRepository provides caching logic for customers
type CustomerCacheRepository interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	DeleteByID(ctx context.Context, id string) error
}

type redisCustomerCacheRepository struct {
	client *redis.Client
}

// NewRedisCustomerCacheRepository builds redis CustomerCacheRepository
func NewRedisCustomerCacheRepository(client *redis.Client) CustomerCacheRepository {
	return &redisCustomerCacheRepository{client: client}
}

func (r *redisCustomerCacheRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Customer
	if err := msgpack.Unmarshal([]byte(res), &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *redisCustomerCacheRepository) Create(ctx context.Context, c *model.Customer) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, r.key(c.ID), encoded, cachedCustomerTimeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCacheRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCacheRepository) key(id string) string {
	return fmt.Sprintf("customer:%s", id)
}
