package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamsuite/salon-scheduler/internal/models"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCatalog(client, time.Minute)
}

func TestCatalogRoundTrip(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	_, ok := c.GetServices(ctx, 1)
	assert.False(t, ok)

	services := []models.Service{
		{ID: 3, SalonID: 1, Name: "Tresses", DurationMin: 90, Price: 45000},
	}
	c.SetServices(ctx, 1, services)

	got, ok := c.GetServices(ctx, 1)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Tresses", got[0].Name)

	// Another salon's key stays cold.
	_, ok = c.GetServices(ctx, 2)
	assert.False(t, ok)
}

func TestCatalogInvalidate(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	c.SetServices(ctx, 1, []models.Service{{ID: 1, SalonID: 1, Name: "Coupe"}})
	c.InvalidateServices(ctx, 1)

	_, ok := c.GetServices(ctx, 1)
	assert.False(t, ok)
}
