package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete recorded LLM calls",
	Long:  "Deletes every call in the log, or with --older-than only calls recorded before that age.",
	RunE: func(cmd *cobra.Command, args []string) error {
		olderThan, _ := cmd.Flags().GetDuration("older-than")
		if olderThan < 0 {
			return fmt.Errorf("--older-than must not be negative")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		var before time.Time
		if olderThan > 0 {
			before = time.Now().Add(-olderThan)
		}
		n, err := s.EventRepo().PruneLLMCalls(cmd.Context(), before)
		if err != nil {
			return fmt.Errorf("prune calls: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d LLM call(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Duration("older-than", 0, "Only delete calls older than this (e.g. 720h)")
}
