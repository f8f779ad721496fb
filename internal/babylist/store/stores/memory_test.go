package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babylist/internal/babylist/models"
)

func TestInMemoryStoreFindByLocateID(t *testing.T) {
	store := NewInMemoryStore(models.Store{ID: 1, LocateID: "0042", Name: "Milano Centro", AllowPurchase: true})

	found, err := store.FindByLocateID(context.Background(), "0042")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Milano Centro", found.Name)

	missing, err := store.FindByLocateID(context.Background(), "0099")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
