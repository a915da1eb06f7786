package repository

import (
	"fmt"
	"strings"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
)

// Line-format records hold four "<Label>: <value>" lines in this order.
// Values cannot contain newlines, which is why the format is read-only now.
var legacyLabels = [...]string{"Date", "Title", "Content", "Author"}

// LegacyRecord is a line-format record found during a legacy scan.
type LegacyRecord struct {
	Path  string
	Entry model.Entry
}

// LegacyScan is the outcome of scanning one month for line-format records.
type LegacyScan struct {
	Records []LegacyRecord
	Corrupt []string
}

func decodeLegacy(raw []byte) (model.Entry, error) {
	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	if len(lines) < len(legacyLabels) {
		return model.Entry{}, fmt.Errorf("legacy record: want %d lines, got %d", len(legacyLabels), len(lines))
	}

	var values [len(legacyLabels)]string
	for i, label := range legacyLabels {
		name, value, ok := strings.Cut(lines[i], ": ")
		if !ok || name != label {
			return model.Entry{}, fmt.Errorf("legacy record: line %d: want %q field", i+1, label)
		}
		values[i] = value
	}
	for _, extra := range lines[len(legacyLabels):] {
		if strings.TrimSpace(extra) != "" {
			return model.Entry{}, fmt.Errorf("legacy record: unexpected trailing line %q", extra)
		}
	}

	date, err := model.ParseDate(values[0])
	if err != nil {
		return model.Entry{}, fmt.Errorf("legacy record: parse date: %w", err)
	}
	return model.NewEntry(date, values[1], values[2], values[3]), nil
}
