package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)
	it := NewItem("  buy milk ", now)

	assert.Equal(t, "  buy milk ", it.Description)
	assert.False(t, it.Completed)
	assert.True(t, now.Equal(it.CreatedAt))
	_, err := uuid.Parse(it.ID)
	require.NoError(t, err)
	assert.Len(t, it.ShortID(), 8)
}

func TestEnsureID(t *testing.T) {
	it := Item{Description: "old"}
	assert.True(t, it.EnsureID())
	id := it.ID
	assert.NotEmpty(t, id)
	assert.False(t, it.EnsureID())
	assert.Equal(t, id, it.ID)
}

func TestShortIDWithoutDash(t *testing.T) {
	assert.Equal(t, "abc", Item{ID: "abc"}.ShortID())
	assert.Equal(t, "", Item{}.ShortID())
}
