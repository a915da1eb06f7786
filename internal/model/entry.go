package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for keys, file names and records.
const DateLayout = "2006-01-02"

type Entry struct {
	Date    time.Time
	Title   string
	Content string
	Author  string
}

// NewEntry builds an entry for the calendar day of date. No other validation is applied.
func NewEntry(date time.Time, title, content, author string) Entry {
	return Entry{
		Date:    Day(date),
		Title:   title,
		Content: content,
		Author:  author,
	}
}

// Day drops the time of day, keeping the calendar date as midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString("-------------------------------------\n")
	sb.WriteString("📅 Date    : " + e.Date.Format(DateLayout) + "\n")
	sb.WriteString("📝 Title   : " + e.Title + "\n")
	sb.WriteString("✏️ Content : " + e.Content + "\n")
	sb.WriteString("👤 Author  : " + e.Author + "\n")
	sb.WriteString("-------------------------------------")
	return sb.String()
}
