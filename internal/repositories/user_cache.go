package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/lightbnb/internal/logger"
	"github.com/sbilibin2017/lightbnb/internal/models"
)

// ErrCacheMiss is returned by UserCacheRepository.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("user not found in cache")

// UserCacheRepository caches user rows by id in Redis.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Get returns the cached user or ErrCacheMiss.
func (r *UserCacheRepository) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Errorw("cache decode", "key", key, "error", err)
		return nil, err
	}

	return &user, nil
}

// Set stores user under its id with the repository expiration.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userCacheKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
