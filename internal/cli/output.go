package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

func success(w io.Writer, format string, args ...any) {
	successColor.Fprintln(w, "✅ "+fmt.Sprintf(format, args...))
}

func failure(w io.Writer, format string, args ...any) {
	failureColor.Fprintln(w, "❌ "+fmt.Sprintf(format, args...))
}

func printEntries(w io.Writer, year, month int, entries []model.Entry) {
	if len(entries) == 0 {
		failure(w, "No entries found for %04d %02d", year, month)
		return
	}
	headerColor.Fprintf(w, "\n📜 Entries for %04d-%02d:\n", year, month)
	for _, entry := range entries {
		fmt.Fprintln(w, entry.String())
	}
}

func printMenu(w io.Writer) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, "\n"+rule)
	headerColor.Fprintln(w, "                DIARY MANAGER")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "1. Add Entry")
	fmt.Fprintln(w, "2. View Entries")
	fmt.Fprintln(w, "3. Search Entry")
	fmt.Fprintln(w, "4. Edit Entry")
	fmt.Fprintln(w, "5. Delete Entry")
	fmt.Fprintln(w, "6. Exit")
	fmt.Fprintln(w, rule)
}
