package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const redisKeyPrefix = "sales_dashboard:report:"

// RedisReportCache guarda os relatórios serializados em JSON no Redis
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache conecta no Redis e valida a conexão com um PING
func NewRedisReportCache(cfg config.Cache) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar no Redis: %w", err)
	}

	return NewRedisReportCacheWithClient(client), nil
}

func NewRedisReportCacheWithClient(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

func (c *RedisReportCache) Get(ctx context.Context, key string) (*domain.SalesReport, error) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler relatório do Redis: %w", err)
	}

	var report domain.SalesReport
	if err := json.Unmarshal(data, &report); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Relatório corrompido no Redis, removendo")
		_ = c.client.Del(ctx, redisKeyPrefix+key)
		return nil, nil
	}

	return &report, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, report *domain.SalesReport, ttl time.Duration) error {
	if report == nil || ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	if err := c.client.Set(ctx, redisKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar relatório no Redis: %w", err)
	}

	return nil
}

func (c *RedisReportCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("erro ao remover relatório do Redis: %w", err)
	}
	return nil
}

func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
