package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <id> <text>...",
	Short: "Set or replace the note on an ended session",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runNote,
}

func runNote(cmd *cobra.Command, args []string) error {
	id := args[0]
	note := strings.Join(args[1:], " ")

	st, _ := openStore()

	if err := st.SetNote(id, note); err != nil {
		fail(err)
	}
	mustFlush(st)

	fmt.Printf("Updated note on session %s\n", id)
	return nil
}
