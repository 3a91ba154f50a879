package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	endID   string
	endNote string
)

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End a running work session",
	Long: `End a running work session. Without --id the most recently started
running session is ended.`,
	Args: cobra.NoArgs,
	RunE: runEnd,
}

func init() {
	endCmd.Flags().StringVar(&endID, "id", "", "Session id (default: most recently started running session)")
	endCmd.Flags().StringVar(&endNote, "note", "", "Closing note")
}

func runEnd(cmd *cobra.Command, args []string) error {
	st, _ := openStore()

	id, err := st.EndSession(endID, endNote)
	if err != nil {
		fail(err)
	}
	mustFlush(st)

	fmt.Printf("Ended session %s\n", id)
	return nil
}
