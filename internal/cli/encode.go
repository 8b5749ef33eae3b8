package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/UberChili/pngmev2/internal/commands"
	"github.com/UberChili/pngmev2/internal/model"
	"github.com/UberChili/pngmev2/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "encode <file> <chunk-type> [message]",
		Short: "Hide a message in a new chunk",
		Long:  "Append a chunk carrying the message. The message can be positional args or piped via stdin.",
		Args:  cobra.MinimumNArgs(2),
		Run:   runEncode,
	}

	cmd.Flags().StringP("out", "o", "", "Write the result here instead of overwriting the input")

	RootCmd.AddCommand(cmd)
}

func runEncode(cmd *cobra.Command, args []string) {
	path, typeCode := args[0], args[1]

	var message string
	if len(args) > 2 {
		message = strings.Join(args[2:], " ")
	} else if !term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		message = strings.TrimRight(string(b), "\r\n")
	}

	if message == "" {
		exitErr("encode", fmt.Errorf("message is required (positional arg or stdin)"))
	}

	out, chunk, err := commands.Encode(readFile(path), typeCode, message)
	if err != nil {
		exitErr("encode", err)
	}
	dst := outputPath(cmd, path)
	writeFile(dst, out)

	id := record(cmd.Context(), store.RecordParams{
		Op:        model.OpEncode,
		File:      dst,
		ChunkType: typeCode,
		Payload:   chunk.Data(),
		CRC:       chunk.CRC(),
	})

	if formatFlag == commands.FormatJSON {
		b, _ := json.Marshal(map[string]any{"ok": true, "file": dst, "chunk_type": typeCode, "crc": chunk.CRC(), "journal_id": id})
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Encoded %d bytes into %s chunk of %s\n", chunk.Length(), typeCode, dst)
}
