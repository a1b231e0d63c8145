package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/brewlog/brewlog/internal/model"
)

var (
	accent = lipgloss.Color("#fab387")
	muted  = lipgloss.Color("#a6adc8")

	titleStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func printEntries(w io.Writer, entries []*model.BeerEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No entries"))
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Date, e.Name, ml(e.VolumeML), num(e.AlcoholPercentage) + "%", e.Notes, e.ID})
	}
	printTable(w, []string{"Date", "Name", "Volume", "ABV", "Notes", "ID"}, rows)
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("Total:"), ml(model.TotalVolume(entries)))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ml(v float64) string {
	return num(v) + " ml"
}
