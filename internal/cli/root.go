package cli

import (
	"github.com/spf13/cobra"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/config"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/logger"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/repository"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/service"
)

type app struct {
	cfg     config.Config
	entries service.EntryService
}

// NewRootCommand builds the diary command tree. Without a subcommand it
// starts the interactive menu.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Load()}

	root := &cobra.Command{
		Use:          "diary",
		Short:        config.AppName + " manager",
		Long:         "Create, view, search, edit and delete dated diary entries stored under a year/month directory tree.",
		Version:      config.AppVersion,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Root, "root", a.cfg.Root, "diary storage root (env DIARY_ROOT)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error (env DIARY_LOG_LEVEL)")

	root.AddCommand(
		newMenuCommand(a),
		newAddCommand(a),
		newViewCommand(a),
		newSearchCommand(a),
		newEditCommand(a),
		newDeleteCommand(a),
		newMigrateCommand(a),
		newServeCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) {
	logger.Init(logger.ParseLevel(a.cfg.LogLevel), cmd.ErrOrStderr())
	if a.entries == nil {
		a.entries = service.NewEntryService(repository.NewEntryRepository(a.cfg.Root))
	}
}
