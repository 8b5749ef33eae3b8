package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/UberChili/pngmev2/internal/commands"
	"github.com/UberChili/pngmev2/internal/model"
	"github.com/UberChili/pngmev2/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled mutations, newest first",
		Run:   runHistory,
	}

	cmd.Flags().String("file", "", "Filter by file path")
	cmd.Flags().String("op", "", "Filter by op: encode, remove, restore")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	op, _ := cmd.Flags().GetString("op")
	limit, _ := cmd.Flags().GetInt("limit")

	if op != "" && !model.ValidOps[op] {
		exitErr("history", fmt.Errorf("invalid op %q", op))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open journal", err)
	}
	defer s.Close()

	entries, err := s.List(cmd.Context(), store.ListParams{
		File:  file,
		Op:    op,
		Limit: limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if formatFlag == commands.FormatJSON {
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "[]")
			return
		}
		b, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-7s  %s  %s  %d bytes\n",
			e.ID, e.CreatedAt.Local().Format(time.DateTime), e.Op, e.ChunkType, e.File, len(e.Payload))
	}
}
