package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dkeye/Clubs/internal/domain"
)

func seedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect activity seed data",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check [file]",
		Short: "Validate a seed file, or the built-in seed without an argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			acts, err := domain.LoadSeed(path)
			if err != nil {
				return err
			}
			writeSeedSummary(cmd.OutOrStdout(), acts)
			return nil
		},
	})
	return cmd
}

func writeSeedSummary(w io.Writer, acts []domain.Activity) {
	total := 0
	for _, a := range acts {
		fmt.Fprintf(w, "%-20s %3d/%-3d %s\n", a.Name, len(a.Participants), a.MaxParticipants, a.Schedule)
		total += len(a.Participants)
	}
	fmt.Fprintf(w, "%d activities, %d participants\n", len(acts), total)
}
