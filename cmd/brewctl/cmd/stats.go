package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brewlog/brewlog/internal/app"
)

func DailyCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "daily [date]",
		Short: "Total volume for one day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			date := dateArg(args, 0)
			total, err := a.StatsService.DailyConsumption(date)
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{"date": date, "total_ml": total})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", titleStyle.Render(date), ml(total))
			return nil
		}),
	}
}

func WeeklyCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly [week-start]",
		Short: "Total volume for seven days from week-start (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			weekStart := dateArg(args, 0)
			total, err := a.StatsService.WeeklyConsumption(weekStart)
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{"week_start": weekStart, "total_ml": total})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", titleStyle.Render("Week of "+weekStart), ml(total))
			return nil
		}),
	}
}

func BaselineCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline <start> <end>",
		Short: "Average consumption over a reference period",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			baseline, err := a.StatsService.Baseline(args[0], args[1])
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), baseline)
			}
			printTable(cmd.OutOrStdout(), []string{"Period", "Daily avg", "Weekly avg"}, [][]string{{
				baseline.PeriodStart + " to " + baseline.PeriodEnd,
				ml(baseline.AverageDailyConsumption),
				ml(baseline.AverageWeeklyConsumption),
			}})
			return nil
		}),
	}
}

func ProgressCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <start> <end>",
		Short: "Average consumption over a period",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			progress, err := a.StatsService.Progress(args[0], args[1])
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), progress)
			}
			printTable(cmd.OutOrStdout(), []string{"Period", "Daily avg", "Weekly avg"}, [][]string{{
				progress.PeriodStart + " to " + progress.PeriodEnd,
				ml(progress.CurrentDailyAverage),
				ml(progress.CurrentWeeklyAverage),
			}})
			return nil
		}),
	}
}

func CompareCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <baseline-start> <baseline-end> <start> <end>",
		Short:   "Compare a period against a baseline period",
		Example: "  brewctl compare 2024-01-01 2024-01-31 2024-02-01 2024-02-29",
		Args:    cobra.ExactArgs(4),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			cmp, err := a.StatsService.CompareToBaseline(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), cmp)
			}
			printTable(cmd.OutOrStdout(), []string{"", "Period", "Daily avg", "Weekly avg"}, [][]string{
				{"Baseline", cmp.Baseline.PeriodStart + " to " + cmp.Baseline.PeriodEnd, ml(cmp.Baseline.AverageDailyConsumption), ml(cmp.Baseline.AverageWeeklyConsumption)},
				{"Current", cmp.Current.PeriodStart + " to " + cmp.Current.PeriodEnd, ml(cmp.Current.CurrentDailyAverage), ml(cmp.Current.CurrentWeeklyAverage)},
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.1f%%\n", titleStyle.Render("Reduction:"), cmp.Current.ReductionPercentage)
			return nil
		}),
	}
}
