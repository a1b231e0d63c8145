package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/brewlog/brewlog/internal/app"
	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/model"
)

func GoalCmd(opts *Options) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage the consumption goal"}
	goal.AddCommand(goalSetCmd(opts))
	goal.AddCommand(goalShowCmd(opts))
	goal.AddCommand(goalStatusCmd(opts))
	return goal
}

func goalSetCmd(opts *Options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     "set <daily-ml> <weekly-ml>",
		Short:   "Replace the goal",
		Example: "  brewctl goal set 500 2000 --to 2024-12-31",
		Args:    cobra.ExactArgs(2),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			daily, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid daily target %q", args[0])
			}
			weekly, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weekly target %q", args[1])
			}

			if from == "" {
				from = calendar.Today(time.Now())
			}
			if to == "" {
				to, err = calendar.AddDays(from, 30)
				if err != nil {
					return err
				}
			}

			g, err := a.GoalService.Set(daily, weekly, from, to)
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), g)
			}
			printGoal(cmd, g)
			return nil
		}),
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (default: today)")
	cmd.Flags().StringVar(&to, "to", "", "End date (default: 30 days after --from)")
	return cmd
}

func goalShowCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current goal",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			g, err := a.GoalService.Current()
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), g)
			}
			printGoal(cmd, g)
			return nil
		}),
	}
}

func goalStatusCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status [date]",
		Short: "Compare a day and its trailing week with the goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			status, err := a.StatsService.GoalStatus(dateArg(args, 0))
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), status)
			}
			printTable(cmd.OutOrStdout(), []string{"", "Consumed", "Target", "Remaining", "Over"}, [][]string{
				{status.Date, ml(status.DailyConsumed), ml(status.Goal.DailyTarget), ml(status.DailyRemaining), strconv.FormatBool(status.OverDaily)},
				{status.WeekStart + " to " + status.Date, ml(status.WeeklyConsumed), ml(status.Goal.WeeklyTarget), ml(status.WeeklyRemaining), strconv.FormatBool(status.OverWeekly)},
			})
			return nil
		}),
	}
}

func printGoal(cmd *cobra.Command, g *model.ConsumptionGoal) {
	printTable(cmd.OutOrStdout(), []string{"Daily", "Weekly", "From", "To"}, [][]string{{
		ml(g.DailyTarget), ml(g.WeeklyTarget), g.StartDate, g.EndDate,
	}})
}
