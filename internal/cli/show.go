package cli

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/UberChili/pngmev2/internal/commands"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one journal entry",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open journal", err)
	}
	defer s.Close()

	e, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("show", err)
	}

	if formatFlag == commands.FormatJSON {
		b, _ := json.MarshalIndent(e, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ID: %s\nOp: %s\nFile: %s\nType: %s\nCrc: %d\nCreated: %s\n",
		e.ID, e.Op, e.File, e.ChunkType, e.CRC, e.CreatedAt.Local())
	if e.RestoredFrom != "" {
		fmt.Fprintf(w, "Restored from: %s\n", e.RestoredFrom)
	}
	if utf8.Valid(e.Payload) {
		fmt.Fprintf(w, "Message: %s\n", e.Payload)
	} else {
		fmt.Fprintf(w, "Data: %d bytes\n", len(e.Payload))
	}
}
