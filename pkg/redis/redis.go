package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis keeps the denylist of access tokens revoked by logout. The token
// middleware consults it on every authenticated request.
type IRedis interface {
	RevokeToken(ctx context.Context, token string, expiration time.Duration) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis ping failed: %v", err)
	}

	return &redisClient{client: client}
}

func revokedKey(token string) string {
	return fmt.Sprintf("revoked_token:%s", token)
}

func (r *redisClient) RevokeToken(ctx context.Context, token string, expiration time.Duration) error {
	if token == "" {
		return errors.New("token is required")
	}
	if expiration <= 0 {
		// Already expired tokens need no denylist entry.
		return nil
	}

	return r.client.Set(ctx, revokedKey(token), "1", expiration).Err()
}

func (r *redisClient) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, errors.New("token is required")
	}

	_, err := r.client.Get(ctx, revokedKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
