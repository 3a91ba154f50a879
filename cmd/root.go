package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wtt/internal/config"
	"wtt/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wtt",
	Short: "wtt – a minimal CLI work-session tracker",
	Long: `wtt records work sessions with labels and notes in a single
human-readable JSON file (WTT_PATH_DATABASE, default db.json).`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(labelCmd)
}

// openStore loads the configuration, wires up logging, and opens the store.
// A storage failure at startup is fatal: the process must not proceed on
// partial state.
func openStore() (*store.Store, config.Config) {
	cfg := config.Load()

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return st, cfg
}

// fail reports an operation failure on stderr. Business-rule violations
// exit 1; anything else is a storage problem and exits 2. The document is
// never flushed on either path.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	var inv *store.InvalidOperationError
	if errors.As(err, &inv) {
		os.Exit(1)
	}
	os.Exit(2)
}

// mustFlush persists the document after a successful mutation, aborting on
// storage failure.
func mustFlush(st *store.Store) {
	if err := st.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// splitLabels parses a comma-separated label list, trimming whitespace and
// dropping empty segments.
func splitLabels(s string) []string {
	if s == "" {
		return nil
	}
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}
