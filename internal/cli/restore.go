package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UberChili/pngmev2/internal/commands"
	"github.com/UberChili/pngmev2/internal/model"
	"github.com/UberChili/pngmev2/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "restore <entry-id>",
		Short: "Re-append a chunk dropped by remove",
		Long:  "Look up a journaled remove and append the removed chunk to the end of its file.",
		Args:  cobra.ExactArgs(1),
		Run:   runRestore,
	}

	cmd.Flags().StringP("out", "o", "", "Write the result here instead of the journaled file")

	RootCmd.AddCommand(cmd)
}

func runRestore(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open journal", err)
	}
	e, err := s.Get(cmd.Context(), args[0])
	s.Close()
	if err != nil {
		exitErr("restore", err)
	}
	if e.Op != model.OpRemove {
		exitErr("restore", fmt.Errorf("entry %s is a %s, only remove entries can be restored", e.ID, e.Op))
	}

	out, chunk, err := commands.Restore(readFile(e.File), e.ChunkType, e.Payload)
	if err != nil {
		exitErr("restore", err)
	}
	if chunk.CRC() != e.CRC {
		exitErr("restore", fmt.Errorf("journaled crc %d does not match rebuilt chunk crc %d", e.CRC, chunk.CRC()))
	}
	dst := outputPath(cmd, e.File)
	writeFile(dst, out)

	id := record(cmd.Context(), store.RecordParams{
		Op:           model.OpRestore,
		File:         dst,
		ChunkType:    e.ChunkType,
		Payload:      e.Payload,
		CRC:          chunk.CRC(),
		RestoredFrom: e.ID,
	})

	if formatFlag == commands.FormatJSON {
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"file":%q,"chunk_type":%q,"journal_id":%q}`+"\n", dst, e.ChunkType, id)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restored %s chunk into %s\n", e.ChunkType, dst)
}
