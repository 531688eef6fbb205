package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type memoryEntry struct {
	report    *domain.SalesReport
	expiresAt time.Time
}

// MemoryReportCache guarda os relatórios na memória do processo
type MemoryReportCache struct {
	mutex   sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryReportCache() *MemoryReportCache {
	return &MemoryReportCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryReportCache) Get(_ context.Context, key string) (*domain.SalesReport, error) {
	c.mutex.RLock()
	entry, found := c.entries[key]
	c.mutex.RUnlock()

	if !found {
		return nil, nil
	}

	if !c.now().Before(entry.expiresAt) {
		c.mutex.Lock()
		// outra goroutine pode ter gravado um relatório novo
		if current, ok := c.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mutex.Unlock()
		return nil, nil
	}

	return entry.report, nil
}

// Set grava o relatório. ttl <= 0 não guarda nada.
func (c *MemoryReportCache) Set(_ context.Context, key string, report *domain.SalesReport, ttl time.Duration) error {
	if report == nil || ttl <= 0 {
		return nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = memoryEntry{
		report:    report,
		expiresAt: c.now().Add(ttl),
	}

	return nil
}

func (c *MemoryReportCache) Delete(_ context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
	return nil
}
