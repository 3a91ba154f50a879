package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"wtt/internal/model"
	"wtt/internal/timeutil"
)

const listTimeLayout = "2006-01-02 15:04:05"

var (
	listFrom   string
	listTo     string
	listLabels string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List work sessions as a table",
	Long: `List work sessions as a table, optionally filtered by an inclusive
start-time range and a label set. Bounds accept "today", a date
(YYYY-MM-DD) or a date-time (YYYY-MM-DD HH:MM:SS); a bare-date --to covers
the whole day.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "Lower bound on session start")
	listCmd.Flags().StringVar(&listTo, "to", "", "Upper bound on session start")
	listCmd.Flags().StringVar(&listLabels, "labels", "", "Comma-separated labels (any match)")
}

func runList(cmd *cobra.Command, args []string) error {
	var from, to *int64
	if listFrom != "" {
		v, err := timeutil.ParseLowerBound(listFrom)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		from = &v
	}
	if listTo != "" {
		v, err := timeutil.ParseUpperBound(listTo)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		to = &v
	}

	st, cfg := openStore()

	sessions, err := st.Sessions(from, to, splitLabels(listLabels))
	if err != nil {
		fail(err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	fmt.Println(sessionTable(sessions, cfg.NoteWidth))
	fmt.Printf("Total: %s\n", timeutil.FormatMinutes(totalMinutes(sessions)))
	return nil
}

// sessionTable renders the sessions as a bordered table, wrapping notes to
// noteWidth columns for display only.
func sessionTable(sessions []model.Session, noteWidth int) *table.Table {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "START", "END", "DURATION", "LABELS", "NOTE")

	for _, s := range sessions {
		tbl.Row(sessionRow(s, noteWidth)...)
	}
	return tbl
}

func sessionRow(s model.Session, noteWidth int) []string {
	start := time.Unix(s.StartAt, 0).Format(listTimeLayout)

	end := "running"
	duration := ""
	if s.EndAt != nil {
		end = time.Unix(*s.EndAt, 0).Format(listTimeLayout)
		duration = timeutil.FormatMinutes(timeutil.CeilMinutes(*s.EndAt - s.StartAt))
	}

	note := ""
	if s.Note != nil {
		note = wordwrap.String(*s.Note, noteWidth)
	}

	return []string{s.ID, start, end, duration, strings.Join(s.Labels, ", "), note}
}

// totalMinutes sums the ceiling-rounded durations of all ended sessions.
func totalMinutes(sessions []model.Session) int64 {
	var total int64
	for _, s := range sessions {
		if s.EndAt != nil {
			total += timeutil.CeilMinutes(*s.EndAt - s.StartAt)
		}
	}
	return total
}
