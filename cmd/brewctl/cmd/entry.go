package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/brewlog/brewlog/internal/app"
	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/model"
)

func AddCmd(opts *Options) *cobra.Command {
	var notes, date, preset string

	cmd := &cobra.Command{
		Use:   "add [name abv ml]",
		Short: "Log a drink",
		Example: `  brewctl add "Pale Ale" 5 330
  brewctl add --preset Pint --notes "after work"
  brewctl add Stout 6.5 440 --date 2024-03-01`,
		Args: func(cmd *cobra.Command, args []string) error {
			if preset != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			var entry *model.BeerEntry
			var err error

			switch {
			case preset != "":
				p, ok := model.FindPreset(model.DefaultPresets(), preset)
				if !ok {
					return fmt.Errorf("unknown preset %q", preset)
				}
				entry, err = a.EntryService.AddPreset(p, notes)
			case date != "":
				pct, volume, perr := parseMeasures(args[1], args[2])
				if perr != nil {
					return perr
				}
				entry, err = a.EntryService.AddFull("", args[0], pct, volume, date, notes)
			default:
				pct, volume, perr := parseMeasures(args[1], args[2])
				if perr != nil {
					return perr
				}
				entry, err = a.EntryService.Add(args[0], pct, volume, notes)
			}
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s) on %s\n", entry.Name, ml(entry.VolumeML), entry.Date)
			return nil
		}),
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")
	cmd.Flags().StringVar(&date, "date", "", "Log for another day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&preset, "preset", "", "Log a built-in preset by name")
	return cmd
}

func ListCmd(opts *Options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drinks, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			if to == "" {
				to = calendar.Today(time.Now())
			}
			if from == "" {
				var err error
				from, err = calendar.AddDays(to, -6)
				if err != nil {
					return err
				}
			}

			entries, err := a.EntryService.Get(from, to)
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		}),
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (default: six days before --to)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (default: today)")
	return cmd
}

func UpdateCmd(opts *Options) *cobra.Command {
	var notes, date string

	cmd := &cobra.Command{
		Use:   "update <id> [name abv ml]",
		Short: "Change a logged drink",
		Example: `  brewctl update 6f1c... "Pale Ale" 5 500 --notes refill
  brewctl update 6f1c... --date 2024-03-01`,
		Args: cobra.MatchAll(cobra.RangeArgs(1, 4), func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 4 {
				return errors.New("expected <id> or <id> <name> <abv> <ml>")
			}
			if len(args) == 1 && date == "" {
				return errors.New("nothing to update")
			}
			return nil
		}),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			id := args[0]

			if len(args) == 4 {
				pct, volume, err := parseMeasures(args[2], args[3])
				if err != nil {
					return err
				}

				// Without --notes the stored notes are kept.
				if !cmd.Flags().Changed("notes") {
					existing, err := a.EntryService.ByID(id)
					if err != nil {
						return err
					}
					notes = existing.Notes
				}

				err = a.EntryService.Update(id, args[1], pct, volume, notes)
				if err != nil {
					return err
				}
			}

			if date != "" {
				err := a.EntryService.UpdateDate(id, date)
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id)
			return nil
		}),
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes (default: keep the stored notes)")
	cmd.Flags().StringVar(&date, "date", "", "Move the drink to another day (YYYY-MM-DD)")
	return cmd
}

func DeleteCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logged drink",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			err := a.EntryService.Delete(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		}),
	}
}

func ClearCmd(opts *Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every drink and the goal",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			if !yes {
				return errors.New("refusing to delete all data without --yes")
			}
			err := a.EntryService.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
			return nil
		}),
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func PresetsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Show built-in drink presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := model.DefaultPresets()
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), presets)
			}

			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				fav := ""
				if p.Favorite {
					fav = "*"
				}
				rows = append(rows, []string{p.Name, p.Type.DisplayName(), strconv.Itoa(p.Volume) + " ml", num(p.Strength) + "%", fav})
			}
			printTable(cmd.OutOrStdout(), []string{"Name", "Type", "Volume", "ABV", "Favorite"}, rows)
			return nil
		},
	}
}

func parseMeasures(abv, volume string) (float64, float64, error) {
	pct, err := strconv.ParseFloat(abv, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid alcohol percentage %q", abv)
	}
	vol, err := strconv.ParseFloat(volume, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid volume %q", volume)
	}
	return pct, vol, nil
}
