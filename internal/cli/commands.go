package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/handler"
	transport "github.com/nasrallahilyass/Personal-Diary-APP/internal/http"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/logger"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/service"
)

const shutdownTimeout = 5 * time.Second

func newAddCommand(a *app) *cobra.Command {
	var date, title, content, author string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry (overwrites an entry with the same date and author)",
		Example: `  diary add --date 2024-11-23 --title Today --content "Learned X" --author "John Doe"
  echo "multi-line content" | diary add --title Notes --content - --author "John Doe"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(date)
			if err != nil {
				return err
			}
			if content == "-" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read content: %w", err)
				}
				content = strings.TrimSuffix(string(raw), "\n")
			}
			entry, err := a.entries.Add(cmd.Context(), model.NewEntry(day, title, content, author))
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Entry added for %s by %s.", entry.Date.Format(model.DateLayout), entry.Author)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateLayout), "entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&title, "title", "", "entry title")
	cmd.Flags().StringVar(&content, "content", "", `entry content, "-" reads it from stdin`)
	cmd.Flags().StringVar(&author, "author", "", "entry author")
	_ = cmd.MarkFlagRequired("author")
	return cmd
}

func newViewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "view <year> <month>",
		Short:   "Show all entries of a month",
		Example: "  diary view 2024 11",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonthArgs(args[0], args[1])
			if err != nil {
				return err
			}
			entries, err := a.entries.ListByMonth(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), year, month, entries)
			return nil
		},
	}
}

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "search <date> <author>",
		Short:   "Show the entry of an author on a date",
		Example: `  diary search 2024-11-23 "John Doe"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			entry, err := a.entries.Search(cmd.Context(), day, args[1])
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					failure(cmd.OutOrStdout(), "No entry found.")
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "🎯 Entry found:\n"+entry.String())
			return nil
		},
	}
}

func newEditCommand(a *app) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:     "edit <date> <author>",
		Short:   "Replace the title and content of an entry",
		Example: `  diary edit 2024-11-23 "John Doe" --title "Today, revised" --content "Learned Y"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			_, err = a.entries.Edit(cmd.Context(), day, args[1], title, content)
			reportEdit(cmd.OutOrStdout(), err)
			if err != nil && !errors.Is(err, service.ErrNotFound) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new content")
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <date> <author>",
		Short:   "Delete the entry of an author on a date",
		Example: `  diary delete 2024-11-23 "John Doe"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			err = a.entries.Delete(cmd.Context(), day, args[1])
			reportDelete(cmd.OutOrStdout(), err)
			if err != nil && !errors.Is(err, service.ErrNotFound) {
				return err
			}
			return nil
		},
	}
}

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate <year> <month>",
		Short:   "Convert the old text records of a month to the current format",
		Example: "  diary migrate 2024 11",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonthArgs(args[0], args[1])
			if err != nil {
				return err
			}
			result, err := a.entries.MigrateLegacy(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Migrated %04d-%02d: %d converted, %d skipped, %d failed.", year, month, result.Converted, result.Skipped, result.Failed)
			return nil
		},
	}
}

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diary over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&a.cfg.Addr, "addr", a.cfg.Addr, "listen address (env DIARY_ADDR)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	router := transport.NewRouter(handler.NewEntryHandler(a.entries), a.cfg.RateLimit)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", "module", "cli", "action", "serve", "resource", "http", "result", "ok", "addr", a.cfg.Addr, "root", a.cfg.Root)
		if err := router.Start(a.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down", "module", "cli", "action", "serve", "resource", "http", "result", "ok")
		return router.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func reportEdit(w io.Writer, err error) {
	switch {
	case err == nil:
		success(w, "Entry updated successfully.")
	case errors.Is(err, service.ErrNotFound):
		failure(w, "Entry not found for the given date and author.")
	default:
		failure(w, "Failed to update entry: %v", err)
	}
}

func reportDelete(w io.Writer, err error) {
	switch {
	case err == nil:
		success(w, "Entry deleted successfully.")
	case errors.Is(err, service.ErrNotFound):
		failure(w, "Entry not found for the given date and author.")
	default:
		failure(w, "Failed to delete entry: %v", err)
	}
}

func parseDateArg(raw string) (time.Time, error) {
	date, err := model.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}

func parseYearMonthArgs(rawYear, rawMonth string) (int, int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", rawYear)
	}
	month, err := strconv.Atoi(strings.TrimSpace(rawMonth))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q", rawMonth)
	}
	return year, month, nil
}
