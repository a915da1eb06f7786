package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/logger"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/repository"
)

// MigrationResult counts what happened to the line-format records of one month.
type MigrationResult struct {
	Converted int
	Skipped   int // a canonical record already exists for the key
	Failed    int // unreadable legacy file or unusable key
}

// MigrateLegacy rewrites the month's line-format records in the canonical
// format and removes the old files. Existing canonical records win.
func (s *entryService) MigrateLegacy(ctx context.Context, year, month int) (MigrationResult, error) {
	if !validMonth(year, month) {
		return MigrationResult{}, invalidMonth(year, month)
	}

	scan, err := s.entries.ListLegacy(ctx, year, time.Month(month))
	if err != nil {
		return MigrationResult{}, fromRepository("list legacy entries", err)
	}

	result := MigrationResult{Failed: len(scan.Corrupt)}
	for _, rec := range scan.Records {
		_, err := s.entries.Get(ctx, rec.Entry.Date, rec.Entry.Author)
		var corrupt *repository.CorruptRecordError
		switch {
		case err == nil, errors.As(err, &corrupt):
			logger.Info("legacy entry kept", "module", "service", "action", "migrate", "resource", "legacy_entry", "result", "skipped", "path", rec.Path)
			result.Skipped++
			continue
		case errors.Is(err, repository.ErrInvalidKey):
			logger.Warn("legacy entry key invalid", "module", "service", "action", "migrate", "resource", "legacy_entry", "result", "failed", "path", rec.Path, "error", err)
			result.Failed++
			continue
		case !errors.Is(err, repository.ErrNotFound):
			return result, fmt.Errorf("check entry for %s: %w", rec.Path, err)
		}

		if err := s.entries.Save(ctx, rec.Entry); err != nil {
			return result, fmt.Errorf("convert %s: %w", rec.Path, err)
		}
		result.Converted++

		if err := s.entries.RemoveLegacy(ctx, rec); err != nil {
			logger.Warn("legacy entry not removed", "module", "service", "action", "migrate", "resource", "legacy_entry", "result", "failed", "path", rec.Path, "error", err)
		}
	}

	logger.Info("legacy migration completed", "module", "service", "action", "migrate", "resource", "legacy_entry", "result", "ok",
		"year", year, "month", month, "converted", result.Converted, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}
