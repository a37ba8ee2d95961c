package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBookingPageKey(t *testing.T) {
	id := uuid.MustParse("5f0c6a2e-7d1b-4f35-9a57-0c9b1f3d2e11")
	assert.Equal(t, "booking_page:5f0c6a2e-7d1b-4f35-9a57-0c9b1f3d2e11", BookingPageKey(id))
}

func TestNopAlwaysMisses(t *testing.T) {
	var s Store = Nop{}
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var out map[string]int
	hit, err := s.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)

	assert.NoError(t, s.Delete(ctx, "k"))
	assert.NoError(t, s.Ping(ctx))
}

type failingStore struct {
	Nop
	deleted []string
}

func (f *failingStore) Delete(_ context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return errors.New("connection refused")
}

func TestInvalidateBookingPageLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	id := uuid.New()
	store := &failingStore{}
	InvalidateBookingPage(context.Background(), store, id)

	assert.Equal(t, []string{BookingPageKey(id)}, store.deleted)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "booking page cache invalidation failed", entry.Message)
	assert.Equal(t, id.String(), entry.ContextMap()["profile_id"])
}
