package repository

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
)

const (
	// DefaultRoot is the store root used when none is configured.
	DefaultRoot = "Diary"
	// RecordExt is the extension of canonical record files.
	RecordExt = ".yaml"
	// LegacyExt is the extension of line-format records written by older versions.
	LegacyExt = ".txt"
)

// DeriveParts returns the year, month and day strings used to place a record on disk.
func DeriveParts(date time.Time) (year, month, day string) {
	return fmt.Sprintf("%04d", date.Year()), fmt.Sprintf("%02d", int(date.Month())), date.Format(model.DateLayout)
}

// SafeAuthor replaces every space with an underscore.
func SafeAuthor(author string) string {
	return strings.ReplaceAll(author, " ", "_")
}

// FileName returns "<YYYY-MM-DD>_<author>" followed by ext.
func FileName(date time.Time, author, ext string) string {
	_, _, day := DeriveParts(date)
	return day + "_" + SafeAuthor(author) + ext
}

// MonthDir returns <root>/<YYYY>/<MM>.
func MonthDir(root string, year int, month time.Month) string {
	return filepath.Join(root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", int(month)))
}

// RecordPath returns the location of the record keyed by (date, author).
// Authors containing a path separator cannot be stored.
func RecordPath(root string, date time.Time, author, ext string) (string, error) {
	if strings.ContainsAny(author, `/\`) || author == "." || author == ".." {
		return "", fmt.Errorf("%w: author %q", ErrInvalidKey, author)
	}
	return filepath.Join(MonthDir(root, date.Year(), date.Month()), FileName(date, author, ext)), nil
}
