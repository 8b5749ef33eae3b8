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
		Use:     "remove <file> <chunk-type>",
		Aliases: []string{"rm"},
		Short:   "Remove the first chunk of a type",
		Long:    "Remove the first chunk of the given type. The removed chunk is journaled and can be brought back with restore.",
		Args:    cobra.ExactArgs(2),
		Run:     runRemove,
	}

	cmd.Flags().StringP("out", "o", "", "Write the result here instead of overwriting the input")

	RootCmd.AddCommand(cmd)
}

func runRemove(cmd *cobra.Command, args []string) {
	path, typeCode := args[0], args[1]

	out, removed, err := commands.Remove(readFile(path), typeCode)
	if err != nil {
		exitErr("remove", err)
	}
	dst := outputPath(cmd, path)
	writeFile(dst, out)

	id := record(cmd.Context(), store.RecordParams{
		Op:        model.OpRemove,
		File:      dst,
		ChunkType: typeCode,
		Payload:   removed.Data(),
		CRC:       removed.CRC(),
	})

	if formatFlag == commands.FormatJSON {
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"file":%q,"chunk_type":%q,"journal_id":%q}`+"\n", dst, typeCode, id)
		return
	}
	if id != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s chunk from %s (journal id %s)\n", typeCode, dst, id)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s chunk from %s\n", typeCode, dst)
}
