package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Manage labels",
}

var labelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all labels",
	Args:  cobra.NoArgs,
	RunE:  runLabelList,
}

var labelAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new label",
	Args:  cobra.ExactArgs(1),
	RunE:  runLabelAdd,
}

var labelRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a label and strip it from all sessions",
	Args:  cobra.ExactArgs(1),
	RunE:  runLabelRm,
}

func init() {
	labelCmd.AddCommand(labelListCmd)
	labelCmd.AddCommand(labelAddCmd)
	labelCmd.AddCommand(labelRmCmd)
}

func runLabelList(cmd *cobra.Command, args []string) error {
	st, _ := openStore()

	labels := st.Labels()
	if len(labels) == 0 {
		fmt.Println("No labels defined.")
		return nil
	}
	for _, name := range labels {
		fmt.Println(name)
	}
	return nil
}

func runLabelAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	st, _ := openStore()

	if err := st.CreateLabel(name); err != nil {
		fail(err)
	}
	mustFlush(st)

	fmt.Printf("Created label %q\n", name)
	return nil
}

func runLabelRm(cmd *cobra.Command, args []string) error {
	name := args[0]
	st, _ := openStore()

	if err := st.DeleteLabel(name); err != nil {
		fail(err)
	}
	mustFlush(st)

	fmt.Printf("Deleted label %q\n", name)
	return nil
}
