package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/service"
)

const historyFileName = ".diary-history"

// errQuit ends the menu loop on EOF or Ctrl+C.
var errQuit = errors.New("quit")

type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type menu struct {
	in      lineReader
	out     io.Writer
	entries service.EntryService
}

func newMenuCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}
}

func (a *app) runMenu(cmd *cobra.Command) error {
	homeDir, _ := os.UserHomeDir()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(homeDir, historyFileName),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           readline.NewCancelableStdin(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("initialize readline: %w", err)
	}
	defer rl.Close()

	m := &menu{in: rl, out: cmd.OutOrStdout(), entries: a.entries}
	return m.run(cmd.Context())
}

func (m *menu) run(ctx context.Context) error {
	for {
		printMenu(m.out)
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return m.exit(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.add(ctx)
		case "2":
			err = m.view(ctx)
		case "3":
			err = m.search(ctx)
		case "4":
			err = m.edit(ctx)
		case "5":
			err = m.delete(ctx)
		case "6":
			fmt.Fprintln(m.out, "\nThank you for using the Diary Manager. Goodbye!")
			return nil
		default:
			failure(m.out, "Invalid option! Please try again.")
		}
		if err != nil {
			return m.exit(err)
		}
	}
}

func (m *menu) exit(err error) error {
	if errors.Is(err, errQuit) {
		fmt.Fprintln(m.out, "\nGoodbye!")
		return nil
	}
	return err
}

func (m *menu) add(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Add a New Entry ---")
	date, err := m.promptDate("Enter date (yyyy-MM-dd): ")
	if err != nil {
		return err
	}
	fields, err := m.promptAll("Enter title: ", "Enter content: ", "Enter author: ")
	if err != nil {
		return err
	}

	if _, err := m.entries.Add(ctx, model.NewEntry(date, fields[0], fields[1], fields[2])); err != nil {
		failure(m.out, "Error saving entry: %v", err)
		return nil
	}
	success(m.out, "Entry added successfully!")
	return nil
}

func (m *menu) view(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- View Entries ---")
	fields, err := m.promptAll("Enter year (e.g., 2024): ", "Enter month (e.g., 11): ")
	if err != nil {
		return err
	}
	year, month, err := parseYearMonthArgs(fields[0], fields[1])
	if err != nil {
		failure(m.out, "Invalid year or month.")
		return nil
	}

	entries, err := m.entries.ListByMonth(ctx, year, month)
	if err != nil {
		failure(m.out, "Could not list entries: %v", err)
		return nil
	}
	printEntries(m.out, year, month, entries)
	return nil
}

func (m *menu) search(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Search for an Entry ---")
	date, author, err := m.promptKey("Enter date (yyyy-MM-dd): ")
	if err != nil {
		return err
	}

	entry, err := m.entries.Search(ctx, date, author)
	switch {
	case errors.Is(err, service.ErrNotFound):
		failure(m.out, "No entry found.")
	case err != nil:
		failure(m.out, "Search failed: %v", err)
	default:
		fmt.Fprintln(m.out, "\n🎯 Entry found:\n"+entry.String())
	}
	return nil
}

func (m *menu) edit(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Edit an Entry ---")
	date, author, err := m.promptKey("Enter date of entry to edit (yyyy-MM-dd): ")
	if err != nil {
		return err
	}
	fields, err := m.promptAll("Enter new title: ", "Enter new content: ")
	if err != nil {
		return err
	}

	_, err = m.entries.Edit(ctx, date, author, fields[0], fields[1])
	reportEdit(m.out, err)
	return nil
}

func (m *menu) delete(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Delete an Entry ---")
	date, author, err := m.promptKey("Enter date of entry to delete (yyyy-MM-dd): ")
	if err != nil {
		return err
	}

	reportDelete(m.out, m.entries.Delete(ctx, date, author))
	return nil
}

func (m *menu) prompt(label string) (string, error) {
	m.in.SetPrompt(label)
	line, err := m.in.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", errQuit
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func (m *menu) promptAll(labels ...string) ([]string, error) {
	values := make([]string, 0, len(labels))
	for _, label := range labels {
		value, err := m.prompt(label)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// promptDate asks until the answer parses as YYYY-MM-DD.
func (m *menu) promptDate(label string) (time.Time, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return time.Time{}, err
		}
		if date, err := model.ParseDate(raw); err == nil {
			return date, nil
		}
		failure(m.out, "Invalid date format! Please try again.")
	}
}

func (m *menu) promptKey(dateLabel string) (time.Time, string, error) {
	date, err := m.promptDate(dateLabel)
	if err != nil {
		return time.Time{}, "", err
	}
	author, err := m.prompt("Enter author: ")
	if err != nil {
		return time.Time{}, "", err
	}
	return date, author, nil
}
