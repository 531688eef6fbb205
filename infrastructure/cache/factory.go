// Package cache contém as implementações do cache de relatórios
package cache

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

// NewReportCache escolhe a implementação pelo CACHE_DRIVER. Se o Redis não
// responder, cai para o cache em memória. "none" desliga o cache.
func NewReportCache(cfg config.Cache) statistics.ReportCache {
	switch cfg.Driver {
	case DriverNone:
		logrus.Info("Cache de relatórios desabilitado")
		return nil
	case DriverRedis:
		redisCache, err := NewRedisReportCache(cfg)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
			return NewMemoryReportCache()
		}
		logrus.Infof("Cache de relatórios no Redis em %s", cfg.RedisAddr)
		return redisCache
	default:
		return NewMemoryReportCache()
	}
}
