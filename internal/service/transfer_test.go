package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brewlog/internal/apperr"
)

func seedExport(t *testing.T, env *testEnv) {
	t.Helper()
	_, err := env.entries.AddFull("a", "Pale Ale", 5.0, 330, "2024-03-04", "")
	require.NoError(t, err)
	_, err = env.entries.AddFull("b", "Red, White & Blue", 4.2, 500, "2024-03-05", `with "friends"`)
	require.NoError(t, err)
	_, err = env.entries.AddFull("c", "Stout", 6.5, 440, "2024-03-03", "")
	require.NoError(t, err)
}

func TestTransferService_ExportCSV(t *testing.T) {
	env := setupTestEnv(t)
	seedExport(t, env)

	var buf bytes.Buffer
	count, err := env.transfer.ExportCSV(&buf, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	g := goldie.New(t)
	g.Assert(t, "export_csv", buf.Bytes())
}

func TestTransferService_RoundTrip(t *testing.T) {
	src := setupTestEnv(t)
	seedExport(t, src)

	var buf bytes.Buffer
	_, err := src.transfer.ExportCSV(&buf, "2024-03-01", "2024-03-31")
	require.NoError(t, err)

	dst := setupTestEnv(t)
	imported, err := dst.transfer.ImportCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, imported)

	entries, err := dst.entries.Get("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Red, White & Blue", entries[0].Name)
	assert.Equal(t, `with "friends"`, entries[0].Notes)
	assert.Equal(t, 4.2, entries[0].AlcoholPercentage)
	assert.Equal(t, "2024-03-03", entries[2].Date)
}

func TestTransferService_ImportSkipsBadRows(t *testing.T) {
	env := setupTestEnv(t)

	input := strings.Join([]string{
		"Date,Name,Alcohol%,Volume(ml),Notes",
		"2024-03-01,Lager,4.8,500,",
		"2024-03-01,,4.8,500,no name",
		"2024-03-01,Lager,strong,500,",
		"not-a-date,Lager,4.8,500,",
		"2024-03-02,Short",
		"2024-03-02,Cider,4.5,440,dry",
	}, "\n")

	imported, err := env.transfer.ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Equal(t, 2, env.countEntries(t))
}

func TestTransferService_ImportRejectsWrongHeader(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.transfer.ImportCSV(strings.NewReader("when,what\n2024-03-01,Lager\n"))
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	assert.EqualError(t, err, "Invalid input: Invalid CSV format")

	_, err = env.transfer.ImportCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestTransferService_ImportWithoutValidRows(t *testing.T) {
	env := setupTestEnv(t)

	input := "Date,Name,Alcohol%,Volume(ml),Notes\n2024-03-01,Lager,4.8,0,\n"
	_, err := env.transfer.ImportCSV(strings.NewReader(input))
	assert.EqualError(t, err, "Invalid input: No valid entries found to import")
}

func TestTransferService_RoundTripKeepsNameWhitespace(t *testing.T) {
	src := setupTestEnv(t)
	_, err := src.entries.AddFull("a", " Pale Ale ", 5.0, 330, "2024-03-04", " ")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = src.transfer.ExportCSV(&buf, "2024-03-04", "2024-03-04")
	require.NoError(t, err)

	dst := setupTestEnv(t)
	_, err = dst.transfer.ImportCSV(&buf)
	require.NoError(t, err)

	entries, err := dst.entries.Get("2024-03-04", "2024-03-04")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, " Pale Ale ", entries[0].Name)
	assert.Equal(t, " ", entries[0].Notes)
}
