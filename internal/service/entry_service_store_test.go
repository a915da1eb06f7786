package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/repository"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/service"

	"github.com/stretchr/testify/require"
)

func newStoreService(t *testing.T) (service.EntryService, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Diary")
	return service.NewEntryService(repository.NewEntryRepository(root)), root
}

func TestEntryService_Store_Lifecycle(t *testing.T) {
	svc, root := newStoreService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, model.NewEntry(day(2024, 11, 23), "Today", "Learned X", "John Doe"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "2024", "11", "2024-11-23_John_Doe.yaml"))
	require.NoError(t, err)

	found, err := svc.Search(ctx, day(2024, 11, 23), "John Doe")
	require.NoError(t, err)
	require.Equal(t, "Today", found.Title)
	require.Equal(t, "Learned X", found.Content)
	require.Equal(t, "John Doe", found.Author)

	entries, err := svc.ListByMonth(ctx, 2024, 11)
	require.NoError(t, err)
	require.Equal(t, []model.Entry{found}, entries)

	require.NoError(t, svc.Delete(ctx, day(2024, 11, 23), "John Doe"))
	_, err = svc.Search(ctx, day(2024, 11, 23), "John Doe")
	require.ErrorIs(t, err, service.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, day(2024, 11, 23), "John Doe"), service.ErrNotFound)
}

func TestEntryService_Store_EditMissingCreatesNothing(t *testing.T) {
	svc, root := newStoreService(t)
	ctx := context.Background()

	_, err := svc.Edit(ctx, day(2024, 11, 23), "John Doe", "t", "c")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = os.Stat(root)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = svc.Search(ctx, day(2024, 11, 23), "John Doe")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestEntryService_Store_EditKeepsKey(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, model.NewEntry(day(2024, 2, 29), "Old", "old", "Mary Ann"))
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, day(2024, 2, 29), "Mary Ann", "New", "line 1\nline 2")
	require.NoError(t, err)
	require.Equal(t, day(2024, 2, 29), edited.Date)
	require.Equal(t, "Mary Ann", edited.Author)

	found, err := svc.Search(ctx, day(2024, 2, 29), "Mary Ann")
	require.NoError(t, err)
	require.Equal(t, edited, found)
}

func TestEntryService_Store_ListByMonthEmpty(t *testing.T) {
	svc, _ := newStoreService(t)

	entries, err := svc.ListByMonth(context.Background(), 2030, 1)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEntryService_Store_MigrateLegacy(t *testing.T) {
	svc, root := newStoreService(t)
	ctx := context.Background()

	dir := filepath.Join(root, "2024", "11")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	write("2024-11-23_John_Doe.txt", "Date: 2024-11-23\nTitle: Today\nContent: Learned X\nAuthor: John Doe\n")
	write("2024-11-24_Jane.txt", "Date: 2024-11-24\nTitle: Legacy\nContent: old\nAuthor: Jane\n")
	write("2024-11-25_Bad.txt", "garbage")

	_, err := svc.Add(ctx, model.NewEntry(day(2024, 11, 24), "Current", "new", "Jane"))
	require.NoError(t, err)

	result, err := svc.MigrateLegacy(ctx, 2024, 11)
	require.NoError(t, err)
	require.Equal(t, service.MigrationResult{Converted: 1, Skipped: 1, Failed: 1}, result)

	_, err = os.Stat(filepath.Join(dir, "2024-11-23_John_Doe.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	entries, err := svc.ListByMonth(ctx, 2024, 11)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Today", entries[0].Title)
	require.Equal(t, "Current", entries[1].Title)

	// Running again only sees the files it left behind.
	result, err = svc.MigrateLegacy(ctx, 2024, int(time.November))
	require.NoError(t, err)
	require.Equal(t, service.MigrationResult{Converted: 0, Skipped: 1, Failed: 1}, result)
}
