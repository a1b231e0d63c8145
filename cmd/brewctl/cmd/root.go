package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/brewlog/brewlog/internal/app"
	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/config"
)

// Options are shared by every subcommand.
type Options struct {
	Cfg    *config.Config
	DBPath string
	Memory bool
	JSON   bool
}

func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &Options{Cfg: cfg}

	root := &cobra.Command{
		Use:           "brewctl",
		Short:         "Log drinks and track consumption goals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.DBPath, "db", cfg.DBPath, "Database file")
	root.PersistentFlags().BoolVar(&opts.Memory, "memory", false, "Use a throwaway in-memory database")
	root.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Print JSON instead of tables")

	root.AddCommand(AddCmd(opts))
	root.AddCommand(ListCmd(opts))
	root.AddCommand(UpdateCmd(opts))
	root.AddCommand(DeleteCmd(opts))
	root.AddCommand(ClearCmd(opts))
	root.AddCommand(PresetsCmd(opts))
	root.AddCommand(DailyCmd(opts))
	root.AddCommand(WeeklyCmd(opts))
	root.AddCommand(BaselineCmd(opts))
	root.AddCommand(ProgressCmd(opts))
	root.AddCommand(CompareCmd(opts))
	root.AddCommand(GoalCmd(opts))
	root.AddCommand(ExportCmd(opts))
	root.AddCommand(ImportCmd(opts))
	root.AddCommand(ReportCmd(opts))
	root.AddCommand(BackupCmd(opts))

	return root
}

// withApp opens the tracker for the duration of one command.
func withApp(opts *Options, fn func(cmd *cobra.Command, args []string, a *app.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := *opts.Cfg
		cfg.DBPath = opts.DBPath
		if opts.Memory {
			cfg.DBPath = ""
		}

		a, err := app.New(cmd.Context(), &cfg, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(cmd, args, a)
	}
}

// dateArg returns args[i], or today when it is absent.
func dateArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return calendar.Today(time.Now())
}
