package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babylist/internal/babylist/models"
)

func TestInMemoryStoreHonoursWindow(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	store := NewInMemoryStore()
	store.Record(Order{RegistryID: "0042000123", Line: models.LineRef{SKU: "100200", LineID: 7}, PlacedAt: now.Add(-time.Hour)})
	store.Record(Order{RegistryID: "0042000123", Line: models.LineRef{SKU: "100300", LineID: 8}, PlacedAt: now.Add(-96 * time.Hour)})
	store.Record(Order{RegistryID: "0042000999", Line: models.LineRef{SKU: "100200", LineID: 1}, PlacedAt: now})

	refs, err := store.ReservedLines(context.Background(), "0042000123", now.Add(-72*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []models.LineRef{{SKU: "100200", LineID: 7}}, refs)
}
