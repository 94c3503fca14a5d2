package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlanger/zeiterfassung/internal/ledger"
	"github.com/mlanger/zeiterfassung/internal/service"
	"github.com/mlanger/zeiterfassung/internal/storage"
	"github.com/mlanger/zeiterfassung/internal/testutil"
)

func TestImportService_PersistsWellFormedRows(t *testing.T) {
	led, _ := testutil.NewLedger(t)
	svc := service.NewImportService(led, testutil.QuietLogger())
	ctx := context.Background()

	text := strings.Join([]string{
		"id,startUtc,endUtc,notes",
		"a,2024-01-01T08:00:00Z,2024-01-01T10:30:00Z,first",
		"garbage row",
		"b,2024-01-02T09:00:00Z,,open one",
	}, "\n")

	res, err := svc.ImportCSV(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)

	list, err := led.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Nil(t, list[1].EndUTC)
}

func TestImportService_PartialImportOnSaveFailure(t *testing.T) {
	backend := testutil.NewFailingBackend()
	store := storage.NewStore(backend, testutil.QuietLogger())
	led := ledger.New(store)
	svc := service.NewImportService(led, testutil.QuietLogger())
	ctx := context.Background()

	// Two rows; the backend dies after the first add.
	text := strings.Join([]string{
		"id,startUtc,endUtc,notes",
		"a,2024-01-01T08:00:00Z,2024-01-01T09:00:00Z,",
		"b,2024-01-02T08:00:00Z,2024-01-02T09:00:00Z,",
	}, "\n")

	// Each Add is its own save; fail everything after the first write by
	// flipping the switch once one row is in.
	require.NoError(t, led.Add(ctx, testutil.NewSession(time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC), 30)))
	backend.FailWrites = true

	res, err := svc.ImportCSV(ctx, text)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStorageFailure)
	assert.Equal(t, 0, res.Imported)

	// The pre-existing row is untouched by the failed import.
	backend.FailWrites = false
	list, err := led.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestExportService_RoundTripThroughLedger(t *testing.T) {
	led, _ := testutil.NewLedger(t)
	ctx := context.Background()

	require.NoError(t, led.Add(ctx, testutil.NewSession(
		time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), 150,
		testutil.WithID("a"), testutil.WithNotes("export me"))))

	svc := service.NewExportService(led, testutil.Zone)
	res, err := svc.Export(ctx)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Filename, "zeiterfassung-export-"))
	assert.True(t, strings.HasSuffix(res.Filename, ".csv"))
	assert.Contains(t, res.Content, "id,startUtc,endUtc,notes")
	assert.Contains(t, res.Content, "a,2024-01-01T08:00:00Z,2024-01-01T10:30:00Z,export me")
}

func TestReportService_MonthlyTimesheet(t *testing.T) {
	led, _ := testutil.NewLedger(t)
	ctx := context.Background()

	require.NoError(t, led.SetUserName(ctx, "Mira Langer"))
	require.NoError(t, led.Add(ctx, testutil.NewSession(
		time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), 150, testutil.WithNotes("kickoff"))))
	require.NoError(t, led.Add(ctx, testutil.NewSession(
		time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 30)))
	require.NoError(t, led.Add(ctx, testutil.NewSession(
		time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), 0, testutil.Open())))

	svc := service.NewReportService(led, testutil.Zone)
	sheet, err := svc.MonthlyTimesheet(ctx, 2024, time.January)
	require.NoError(t, err)

	assert.Equal(t, "Mira Langer", sheet.UserName)
	assert.Equal(t, "January 2024", sheet.MonthLabel)
	assert.Equal(t, "3h 0m", sheet.Total)
	require.Len(t, sheet.Days, 31)

	// Newest first: index 0 is Jan 31, index 30 is Jan 1.
	assert.Equal(t, "2024-01-31", sheet.Days[0].Date)
	assert.False(t, sheet.Days[0].HasWork)

	jan1 := sheet.Days[30]
	assert.Equal(t, "2024-01-01", jan1.Date)
	require.Len(t, jan1.Rows, 2)
	assert.Equal(t, "08:00", jan1.Rows[0].Start)
	assert.Equal(t, "10:30", jan1.Rows[0].End)
	assert.Equal(t, "2h 30m", jan1.Rows[0].Duration)
	assert.Equal(t, "kickoff", jan1.Rows[0].Notes)
	assert.Equal(t, "3h 0m", jan1.Total)

	jan15 := sheet.Days[16]
	require.Len(t, jan15.Rows, 1)
	assert.Equal(t, "incomplete", jan15.Rows[0].Duration)
	assert.Equal(t, "0m", jan15.Total)
}
