package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/UberChili/pngmev2/internal/model"
)

// journalCmd groups journal maintenance subcommands.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Journal maintenance",
}

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import journal entries from JSON",
		Long:  "Import journal entries from JSON on stdin. Expects the format produced by journal export.",
		Run:   runImport,
	}

	journalCmd.AddCommand(cmd)
	RootCmd.AddCommand(journalCmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open journal", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), entries)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
