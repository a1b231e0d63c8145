package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brewlog/internal/apperr"
	"github.com/brewlog/brewlog/internal/model"
)

func TestEntryService_AddThenGet(t *testing.T) {
	env := setupTestEnv(t)

	added, err := env.entries.Add("Pale Ale", 5.0, 330.0, "first of the day")
	require.NoError(t, err)
	assert.Equal(t, today, added.Date)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "2024-03-04T10:00:00.000000000Z", added.CreatedAt)

	entries, err := env.entries.Get(today, today)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Pale Ale", entries[0].Name)
	assert.Equal(t, 5.0, entries[0].AlcoholPercentage)
	assert.Equal(t, 330.0, entries[0].VolumeML)
	assert.Equal(t, "first of the day", entries[0].Notes)
	assert.Equal(t, added.ID, entries[0].ID)
}

func TestEntryService_NameRoundTripsUnchanged(t *testing.T) {
	env := setupTestEnv(t)

	names := []string{" Pale Ale ", "   ", "Mo\u0308nchshof"}
	for _, name := range names {
		_, err := env.entries.Add(name, 5.0, 330.0, "")
		require.NoError(t, err)
	}

	entries, err := env.entries.Get(today, today)
	require.NoError(t, err)
	require.Len(t, entries, len(names))

	var got []string
	for _, e := range entries {
		got = append(got, e.Name)
	}
	assert.ElementsMatch(t, names, got)

	_, err = env.entries.AddFull("kept", " Stout\t", 6.5, 440, today, "")
	require.NoError(t, err)
	require.NoError(t, env.entries.Update("kept", "  Imperial Stout", 9.0, 330, ""))
	entry, err := env.entries.ByID("kept")
	require.NoError(t, err)
	assert.Equal(t, "  Imperial Stout", entry.Name)
}

func TestEntryService_AddRejectsInvalidInput(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name   string
		drink  string
		pct    float64
		volume float64
	}{
		{"empty name", "", 5.0, 330.0},
		{"negative percentage", "Beer", -1.0, 330.0},
		{"percentage above 100", "Beer", 101.0, 330.0},
		{"zero volume", "Beer", 5.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.entries.Add(tt.drink, tt.pct, tt.volume, "x")
			assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
		})
	}

	assert.Equal(t, 0, env.countEntries(t))
}

func TestEntryService_GetIsOrderedAndIdempotent(t *testing.T) {
	env := setupTestEnv(t)

	env.addOn(t, "a", "2024-03-02", 100)
	env.addOn(t, "b", "2024-03-04", 200)
	env.addOn(t, "c", "2024-03-02", 300)
	env.addOn(t, "d", "2024-03-03", 400)

	first, err := env.entries.Get("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	second, err := env.entries.Get("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var ids []string
	for _, e := range first {
		ids = append(ids, e.ID)
	}
	// date descending, newest created first within a day
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
}

func TestEntryService_GetNoMatchesIsEmpty(t *testing.T) {
	env := setupTestEnv(t)

	entries, err := env.entries.Get("2030-01-01", "2030-01-31")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestEntryService_AddFull(t *testing.T) {
	env := setupTestEnv(t)

	created, err := env.entries.AddFull("", "Porter", 5.5, 500, "2024-02-29", "leap day")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	replaced, err := env.entries.AddFull(created.ID, "Baltic Porter", 9.0, 330, "2024-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)

	got, err := env.entries.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Baltic Porter", got.Name)
	assert.Equal(t, 9.0, got.AlcoholPercentage)
	assert.Equal(t, 330.0, got.VolumeML)
	assert.Equal(t, "2024-03-01", got.Date)
	assert.Equal(t, "", got.Notes)
	assert.Equal(t, 1, env.countEntries(t))
}

func TestEntryService_AddFullValidates(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.entries.AddFull("x", "", 5, 330, "2024-03-04", "")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	_, err = env.entries.AddFull("x", "Beer", 5, 330, "yesterday", "")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	assert.Equal(t, 0, env.countEntries(t))
}

func TestEntryService_Update(t *testing.T) {
	env := setupTestEnv(t)
	env.addOn(t, "a", "2024-03-02", 330)

	require.NoError(t, env.entries.Update("a", "Weissbier", 5.4, 500, "cloudy"))

	got, err := env.entries.ByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Weissbier", got.Name)
	assert.Equal(t, 500.0, got.VolumeML)
	assert.Equal(t, "2024-03-02", got.Date)

	err = env.entries.Update("a", "Weissbier", 5.4, -1, "cloudy")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestEntryService_MissingIDs(t *testing.T) {
	env := setupTestEnv(t)
	env.addOn(t, "a", "2024-03-02", 330)

	err := env.entries.Delete("missing")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, 1, env.countEntries(t))

	err = env.entries.Update("missing", "Beer", 5, 330, "")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	err = env.entries.UpdateDate("missing", "2024-03-01")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestEntryService_UpdateDate(t *testing.T) {
	env := setupTestEnv(t)
	env.addOn(t, "a", "2024-03-02", 330)

	require.NoError(t, env.entries.UpdateDate("a", "2024-03-01"))

	got, err := env.entries.ByID("a")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.Date)
	assert.Equal(t, "Beer a", got.Name)

	err = env.entries.UpdateDate("a", "03/01/2024")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestEntryService_Delete(t *testing.T) {
	env := setupTestEnv(t)
	env.addOn(t, "a", "2024-03-02", 330)

	require.NoError(t, env.entries.Delete("a"))
	assert.Equal(t, 0, env.countEntries(t))
}

func TestEntryService_Clear(t *testing.T) {
	env := setupTestEnv(t)
	env.addOn(t, "a", "2024-03-02", 330)
	_, err := env.goals.Set(500, 3500, "2024-03-01", "2024-03-31")
	require.NoError(t, err)

	require.NoError(t, env.entries.Clear())

	assert.Equal(t, 0, env.countEntries(t))
	_, err = env.goals.Current()
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestEntryService_AddPreset(t *testing.T) {
	env := setupTestEnv(t)

	preset, ok := model.FindPreset(model.DefaultPresets(), "Glass of wine")
	require.True(t, ok)

	entry, err := env.entries.AddPreset(preset, "dinner")
	require.NoError(t, err)
	assert.Equal(t, "Glass of wine", entry.Name)
	assert.Equal(t, 12.5, entry.AlcoholPercentage)
	assert.Equal(t, 175.0, entry.VolumeML)
	assert.Equal(t, today, entry.Date)
}
