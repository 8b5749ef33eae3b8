package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as JSON",
		Long:  "Export journal entries oldest first. Filter by file with --file.",
		Run:   runExport,
	}

	cmd.Flags().String("file", "", "Filter by file path")

	journalCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")

	s, err := openStore()
	if err != nil {
		exitErr("open journal", err)
	}
	defer s.Close()

	entries, err := s.ExportAll(cmd.Context(), file)
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
