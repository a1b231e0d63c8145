package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brewlog/brewlog/internal/model"
	"github.com/brewlog/brewlog/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newEntry(id, date, createdAt string, volume float64) *model.BeerEntry {
	return &model.BeerEntry{
		ID:                id,
		Name:              "Entry " + id,
		AlcoholPercentage: 5.0,
		VolumeML:          volume,
		Date:              date,
		Notes:             "",
		CreatedAt:         createdAt,
	}
}
