package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestRedisReportCache_SemServidor(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	cache := NewRedisReportCacheWithClient(client)
	defer cache.Close()

	ctx := context.Background()

	_, err := cache.Get(ctx, "relatorio")
	assert.ErrorContains(t, err, "Redis")

	err = cache.Set(ctx, "relatorio", domain.NewEmptyReport(domain.ProvenanceExact), time.Minute)
	assert.ErrorContains(t, err, "Redis")

	// ttl zero e relatório nulo não acessam o Redis
	assert.NoError(t, cache.Set(ctx, "relatorio", domain.NewEmptyReport(domain.ProvenanceExact), 0))
	assert.NoError(t, cache.Set(ctx, "relatorio", nil, time.Minute))
}
