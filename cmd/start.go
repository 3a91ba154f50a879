package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startLabels string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new work session",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVar(&startLabels, "labels", "", "Comma-separated labels (must exist)")
}

func runStart(cmd *cobra.Command, args []string) error {
	st, _ := openStore()

	id, err := st.CreateSession(splitLabels(startLabels))
	if err != nil {
		fail(err)
	}
	mustFlush(st)

	fmt.Printf("Started session %s\n", id)
	return nil
}
