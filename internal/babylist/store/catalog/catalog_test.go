package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"babylist/internal/babylist/models"
	"babylist/internal/babylist/ports/mocks"
)

func stroller() models.CatalogEntry {
	return models.CatalogEntry{
		SKU:          "100300",
		CatalogID:    31,
		Name:         "Passeggino Trio",
		Price:        decimal.RequireFromString("54.00"),
		RegularPrice: decimal.RequireFromString("60.00"),
		VipPrice:     decimal.NewNullDecimal(decimal.RequireFromString("49.00")),
		InStock:      true,
		Categories:   []models.Category{{ID: 3, Name: "Passeggio", Slug: "passeggio"}},
	}
}

func TestInMemoryStoreBulkFetch(t *testing.T) {
	store := NewInMemoryStore(stroller())

	got, err := store.BulkFetch(context.Background(), []string{"100300", "999999"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Passeggino Trio", got["100300"].Name)

	got["100300"].Categories[0] = models.Category{}
	again, _ := store.BulkFetch(context.Background(), []string{"100300"})
	assert.Equal(t, "passeggio", again["100300"].Categories[0].Slug)
}

func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
	})
}

func TestRedisCacheFallsBackWhenRedisIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCatalogLookup(ctrl)
	next.EXPECT().BulkFetch(gomock.Any(), []string{"100300", "999999"}).
		Return(map[string]models.CatalogEntry{"100300": stroller()}, nil)

	client := unreachableRedis()
	defer client.Close()

	cache, err := NewRedisCache(next, client, WithCacheLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	got, err := cache.BulkFetch(context.Background(), []string{"100300", "999999"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, decimal.RequireFromString("54").Equal(got["100300"].Price))
}

func TestRedisCachePropagatesLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCatalogLookup(ctrl)
	boom := errors.New("catalog down")
	next.EXPECT().BulkFetch(gomock.Any(), gomock.Any()).Return(nil, boom)

	client := unreachableRedis()
	defer client.Close()

	cache, err := NewRedisCache(next, client, WithCacheLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	got, err := cache.BulkFetch(context.Background(), []string{"100300"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, boom)
}

func TestRedisCacheRequiresCollaborators(t *testing.T) {
	_, err := NewRedisCache(nil, unreachableRedis())
	assert.Error(t, err)
	_, err = NewRedisCache(NewInMemoryStore(), nil)
	assert.Error(t, err)
}

func TestRedisCacheEmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache, err := NewRedisCache(mocks.NewMockCatalogLookup(ctrl), unreachableRedis())
	require.NoError(t, err)

	got, err := cache.BulkFetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
