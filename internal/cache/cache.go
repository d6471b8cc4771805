package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glamsuite/salon-scheduler/internal/config"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
}

// Catalog caches the public service list per salon. Staff mutations
// invalidate the key, so the public page never serves a deleted service for
// longer than one request.
type Catalog struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalog(client *redis.Client, ttl time.Duration) *Catalog {
	return &Catalog{client: client, ttl: ttl}
}

func servicesKey(salonID uint) string {
	return fmt.Sprintf("catalog:services:%d", salonID)
}

func (c *Catalog) GetServices(ctx context.Context, salonID uint) ([]models.Service, bool) {
	val, err := c.client.Get(ctx, servicesKey(salonID)).Result()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal([]byte(val), &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *Catalog) SetServices(ctx context.Context, salonID uint, services []models.Service) {
	data, err := json.Marshal(services)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the DB remains authoritative.
	_ = c.client.Set(ctx, servicesKey(salonID), data, c.ttl).Err()
}

func (c *Catalog) InvalidateServices(ctx context.Context, salonID uint) {
	_ = c.client.Del(ctx, servicesKey(salonID)).Err()
}
