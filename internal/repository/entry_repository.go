package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/logger"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
)

//go:generate mockgen -destination=mock/mock_entry_repository.go -package=mock . EntryRepository

type EntryRepository interface {
	Save(ctx context.Context, entry model.Entry) error
	Get(ctx context.Context, date time.Time, author string) (model.Entry, error)
	Delete(ctx context.Context, date time.Time, author string) error
	ListByMonth(ctx context.Context, year int, month time.Month) ([]model.Entry, error)
	ListLegacy(ctx context.Context, year int, month time.Month) (LegacyScan, error)
	RemoveLegacy(ctx context.Context, rec LegacyRecord) error
	PathFor(date time.Time, author string) (string, error)
}

// entryRepository keeps one record file per (date, author) under root.
// It holds no entries in memory; every call goes to the filesystem.
type entryRepository struct {
	root string
}

func NewEntryRepository(root string) EntryRepository {
	if root == "" {
		root = DefaultRoot
	}
	return &entryRepository{root: filepath.Clean(root)}
}

func (r *entryRepository) PathFor(date time.Time, author string) (string, error) {
	return RecordPath(r.root, date, author, RecordExt)
}

func (r *entryRepository) Save(ctx context.Context, entry model.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := r.PathFor(entry.Date, entry.Author)
	if err != nil {
		return err
	}
	raw, err := encodeRecord(entry)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create entry dir: %w", err)
	}
	if err := writeFileAtomic(path, raw); err != nil {
		return fmt.Errorf("save entry %s: %w", path, err)
	}
	logger.Debug("entry saved", "module", "repository", "action", "save", "resource", "entry", "result", "ok", "path", path)
	return nil
}

func (r *entryRepository) Get(ctx context.Context, date time.Time, author string) (model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return model.Entry{}, err
	}
	path, err := r.PathFor(date, author)
	if err != nil {
		return model.Entry{}, err
	}
	return readRecord(path)
}

func (r *entryRepository) Delete(ctx context.Context, date time.Time, author string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := r.PathFor(date, author)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("delete entry %s: %w", path, err)
	}
	return nil
}

// ListByMonth decodes every record file in the month directory, sorted by date then author.
// A missing directory yields no entries; records that fail to decode are skipped.
func (r *entryRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]model.Entry, error) {
	dir := MonthDir(r.root, year, month)
	paths, err := listRecordFiles(dir, hasExt(RecordExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Entry{}, nil
		}
		return nil, fmt.Errorf("list entries %s: %w", dir, err)
	}

	entries := make([]model.Entry, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := readRecord(path)
		if err != nil {
			logger.Warn("entry skipped", "module", "repository", "action", "list", "resource", "entry", "result", "skipped", "path", path, "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(a, b model.Entry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Author, b.Author)
	})
	return entries, nil
}

func (r *entryRepository) ListLegacy(ctx context.Context, year int, month time.Month) (LegacyScan, error) {
	dir := MonthDir(r.root, year, month)
	paths, err := listRecordFiles(dir, hasExt(LegacyExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LegacyScan{}, nil
		}
		return LegacyScan{}, fmt.Errorf("list legacy entries %s: %w", dir, err)
	}

	var scan LegacyScan
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return LegacyScan{}, err
		}
		entry, err := readLegacy(path)
		if err != nil {
			logger.Warn("legacy entry skipped", "module", "repository", "action", "list", "resource", "legacy_entry", "result", "skipped", "path", path, "error", err)
			scan.Corrupt = append(scan.Corrupt, path)
			continue
		}
		scan.Records = append(scan.Records, LegacyRecord{Path: path, Entry: entry})
	}
	return scan, nil
}

func (r *entryRepository) RemoveLegacy(ctx context.Context, rec LegacyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filepath.Ext(rec.Path) != LegacyExt {
		return fmt.Errorf("%w: %s is not a legacy record", ErrInvalidKey, rec.Path)
	}
	if err := os.Remove(rec.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("remove legacy entry %s: %w", rec.Path, err)
	}
	return nil
}

func readRecord(path string) (model.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Entry{}, ErrNotFound
		}
		return model.Entry{}, fmt.Errorf("read entry %s: %w", path, err)
	}
	entry, err := decodeRecord(raw)
	if err != nil {
		return model.Entry{}, &CorruptRecordError{Path: path, Err: err}
	}
	return entry, nil
}

func readLegacy(path string) (model.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Entry{}, fmt.Errorf("read legacy entry: %w", err)
	}
	return decodeLegacy(raw)
}

// listRecordFiles returns the regular files in dir accepted by match, in name order.
func listRecordFiles(dir string, match func(fs.DirEntry) bool) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range dirEntries {
		if !e.Type().IsRegular() || !match(e) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

func hasExt(ext string) func(fs.DirEntry) bool {
	return func(e fs.DirEntry) bool {
		return filepath.Ext(e.Name()) == ext
	}
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
