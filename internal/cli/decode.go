package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UberChili/pngmev2/internal/commands"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Print the message hidden in a chunk",
		Args:  cobra.ExactArgs(2),
		Run:   runDecode,
	}

	RootCmd.AddCommand(cmd)
}

func runDecode(cmd *cobra.Command, args []string) {
	path, typeCode := args[0], args[1]

	msg, err := commands.Decode(readFile(path), typeCode)
	if err != nil {
		exitErr("decode", err)
	}

	if formatFlag == commands.FormatJSON {
		b, _ := json.Marshal(map[string]string{"file": path, "chunk_type": typeCode, "message": msg})
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Message: %s\n", msg)
}
