package wizardstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamsuite/salon-scheduler/internal/domain/booking"
)

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, time.Hour), s
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	w := booking.New(4)
	require.NoError(t, w.SubmitContact(booking.Contact{
		FirstName: "Awa", LastName: "Diallo",
		Email: "awa@test.com", Phone: "+243990000001",
	}))
	require.NoError(t, store.Save(ctx, w))

	got, err := store.Get(ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, w.ID, got.ID)
	assert.Equal(t, booking.StepSelection, got.Step)
	assert.Equal(t, "awa@test.com", got.Contact.Email)
}

func TestGetMissingReturnsNil(t *testing.T) {
	store, _ := newStore(t)

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionExpires(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	w := booking.New(1)
	require.NoError(t, store.Save(ctx, w))

	mr.FastForward(2 * time.Hour)

	got, err := store.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLockIsSingleFlight(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	ok, err := store.TryLock(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.TryLock(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquisition must fail while held")

	require.NoError(t, store.Unlock(ctx, "w1"))

	ok, err = store.TryLock(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// Expired locks free themselves.
	mr.FastForward(2 * time.Minute)
	ok, err = store.TryLock(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	w := booking.New(1)
	require.NoError(t, store.Save(ctx, w))
	require.NoError(t, store.Delete(ctx, w.ID))

	got, err := store.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
