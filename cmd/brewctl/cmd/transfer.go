package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brewlog/brewlog/internal/app"
	"github.com/brewlog/brewlog/internal/calendar"
)

func ExportCmd(opts *Options) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write drinks as CSV",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			if to == "" {
				to = calendar.Today(time.Now())
			}
			if from == "" {
				var err error
				from, err = calendar.AddDays(to, -a.Cfg.ExportLookbackDays)
				if err != nil {
					return err
				}
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			count, err := a.TransferService.ExportCSV(w, from, to)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", count, out)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (default: EXPORT_LOOKBACK_DAYS before --to)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (default: today)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

func ImportCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Add drinks from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			count, err := a.TransferService.ImportCSV(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", count)
			return nil
		}),
	}
}

func ReportCmd(opts *Options) *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "report [week-start]",
		Short: "Render a weekly report as markdown or HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			weekStart := dateArg(args, 0)
			if len(args) == 0 {
				var err error
				weekStart, err = calendar.AddDays(weekStart, -6)
				if err != nil {
					return err
				}
			}

			report, err := a.ReportService.WeeklyReport(weekStart)
			if err != nil {
				return err
			}

			if !html {
				fmt.Fprint(cmd.OutOrStdout(), report.Markdown)
				return nil
			}
			out, err := report.HTML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}),
	}

	cmd.Flags().BoolVar(&html, "html", false, "Render HTML instead of markdown")
	return cmd
}

func BackupCmd(opts *Options) *cobra.Command {
	var report, remove string
	var link bool

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Upload a CSV backup to the configured bucket",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			if a.BackupService == nil {
				return errors.New("backups are disabled: set BACKUP_S3_BUCKET")
			}

			if remove != "" {
				err := a.BackupService.Remove(cmd.Context(), remove)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", remove)
				return nil
			}

			keys := []string{}
			key, err := a.BackupService.Backup(cmd.Context())
			if err != nil {
				return err
			}
			keys = append(keys, key)

			if report != "" {
				key, err = a.BackupService.PublishReport(cmd.Context(), report)
				if err != nil {
					return err
				}
				keys = append(keys, key)
			}

			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
				if !link {
					continue
				}
				url, err := a.BackupService.URL(cmd.Context(), k)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(url))
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&report, "report", "", "Also publish the weekly report starting on this date")
	cmd.Flags().BoolVar(&link, "link", false, "Print a download link for each upload")
	cmd.Flags().StringVar(&remove, "remove", "", "Delete a stored object by key instead of uploading")
	return cmd
}
