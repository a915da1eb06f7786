package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/logger"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/repository"
)

type EntryService interface {
	Add(ctx context.Context, entry model.Entry) (model.Entry, error)
	Edit(ctx context.Context, date time.Time, author, title, content string) (model.Entry, error)
	Search(ctx context.Context, date time.Time, author string) (model.Entry, error)
	Delete(ctx context.Context, date time.Time, author string) error
	ListByMonth(ctx context.Context, year, month int) ([]model.Entry, error)
	MigrateLegacy(ctx context.Context, year, month int) (MigrationResult, error)
}

type entryService struct {
	entries repository.EntryRepository
}

func NewEntryService(entries repository.EntryRepository) EntryService {
	return &entryService{entries: entries}
}

func (s *entryService) Add(ctx context.Context, entry model.Entry) (model.Entry, error) {
	if entry.Date.IsZero() {
		return model.Entry{}, fmt.Errorf("%w: entry date is required", ErrInvalid)
	}
	entry.Date = model.Day(entry.Date)

	if err := s.entries.Save(ctx, entry); err != nil {
		logger.Error("entry add failed", "module", "service", "action", "create", "resource", "entry", "result", "failed", "date", entry.Date.Format(model.DateLayout), "author", entry.Author, "error", err)
		return model.Entry{}, fromRepository("save entry", err)
	}
	logger.Info("entry added", "module", "service", "action", "create", "resource", "entry", "result", "ok", "date", entry.Date.Format(model.DateLayout), "author", entry.Author)
	return entry, nil
}

// Edit replaces the title and content of an existing entry. Date and author
// are part of the key and never change. A missing entry is left untouched.
func (s *entryService) Edit(ctx context.Context, date time.Time, author, title, content string) (model.Entry, error) {
	entry, err := s.lookup(ctx, "update", date, author)
	if err != nil {
		return model.Entry{}, err
	}

	entry.Title = title
	entry.Content = content
	if err := s.entries.Save(ctx, entry); err != nil {
		logger.Error("entry update failed", "module", "service", "action", "update", "resource", "entry", "result", "failed", "date", entry.Date.Format(model.DateLayout), "author", author, "error", err)
		return model.Entry{}, fromRepository("save entry", err)
	}
	logger.Info("entry updated", "module", "service", "action", "update", "resource", "entry", "result", "ok", "date", entry.Date.Format(model.DateLayout), "author", author)
	return entry, nil
}

func (s *entryService) Search(ctx context.Context, date time.Time, author string) (model.Entry, error) {
	return s.lookup(ctx, "fetch", date, author)
}

func (s *entryService) Delete(ctx context.Context, date time.Time, author string) error {
	if date.IsZero() {
		return fmt.Errorf("%w: entry date is required", ErrInvalid)
	}
	day := model.Day(date)
	if err := s.entries.Delete(ctx, day, author); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("entry delete skipped", "module", "service", "action", "delete", "resource", "entry", "result", "not_found", "date", day.Format(model.DateLayout), "author", author)
		} else {
			logger.Error("entry delete failed", "module", "service", "action", "delete", "resource", "entry", "result", "failed", "date", day.Format(model.DateLayout), "author", author, "error", err)
		}
		return fromRepository("delete entry", err)
	}
	logger.Info("entry deleted", "module", "service", "action", "delete", "resource", "entry", "result", "ok", "date", day.Format(model.DateLayout), "author", author)
	return nil
}

func (s *entryService) ListByMonth(ctx context.Context, year, month int) ([]model.Entry, error) {
	if !validMonth(year, month) {
		return nil, invalidMonth(year, month)
	}
	entries, err := s.entries.ListByMonth(ctx, year, time.Month(month))
	if err != nil {
		logger.Error("entry list failed", "module", "service", "action", "list", "resource", "entry", "result", "failed", "year", year, "month", month, "error", err)
		return nil, fromRepository("list entries", err)
	}
	logger.Debug("entries listed", "module", "service", "action", "list", "resource", "entry", "result", "ok", "year", year, "month", month, "count", len(entries))
	return entries, nil
}

// lookup fetches one entry. Corrupt records are reported as not found, with
// the decode failure logged and kept in the error chain.
func (s *entryService) lookup(ctx context.Context, action string, date time.Time, author string) (model.Entry, error) {
	if date.IsZero() {
		return model.Entry{}, fmt.Errorf("%w: entry date is required", ErrInvalid)
	}
	day := model.Day(date)
	entry, err := s.entries.Get(ctx, day, author)
	if err != nil {
		var corrupt *repository.CorruptRecordError
		switch {
		case errors.As(err, &corrupt):
			logger.Warn("entry unreadable", "module", "service", "action", action, "resource", "entry", "result", "corrupt", "path", corrupt.Path, "error", corrupt.Err)
		case !errors.Is(err, repository.ErrNotFound):
			logger.Error("entry lookup failed", "module", "service", "action", action, "resource", "entry", "result", "failed", "date", day.Format(model.DateLayout), "author", author, "error", err)
		}
		return model.Entry{}, fromRepository("get entry", err)
	}
	return entry, nil
}

func validMonth(year, month int) bool {
	return year >= 1 && year <= 9999 && month >= 1 && month <= 12
}

func invalidMonth(year, month int) error {
	return fmt.Errorf("%w: year %d month %d", ErrInvalid, year, month)
}
