package database

import (
	"context"
	"fmt"
	"time"

	"cinema_admin/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis mở kết nối redis và ping thử trước khi trả về
func ConnectRedis(cfg config.App, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	log.Info("Connection Opened to Redis", zap.String("addr", cfg.RedisAddr))
	return client, nil
}

// NewTokenStore chọn nơi lưu access token theo TOKEN_STORE
func NewTokenStore(cfg config.App, log *zap.Logger) (TokenStore, func(), error) {
	if cfg.TokenStore != "redis" {
		return NewMemoryTokenStore(), func() {}, nil
	}
	client, err := ConnectRedis(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisTokenStore(client, "", cfg.LoginSessionTTL), func() { client.Close() }, nil
}
