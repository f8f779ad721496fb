package vip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	store.AddCard("0400123456789")
	store.AddCustomer("42")

	ok, _ := store.IsVip(ctx, " 0400123456789")
	assert.True(t, ok)
	ok, _ = store.IsVip(ctx, "0400000000000")
	assert.False(t, ok)
	ok, _ = store.IsVipViewer(ctx, "42")
	assert.True(t, ok)
	ok, _ = store.IsVipViewer(ctx, "")
	assert.False(t, ok)
}
