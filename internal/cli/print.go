package cli

import (
	"github.com/spf13/cobra"

	"github.com/UberChili/pngmev2/internal/commands"
)

func init() {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "List every chunk in a file",
		Args:  cobra.ExactArgs(1),
		Run:   runPrint,
	}

	RootCmd.AddCommand(cmd)
}

func runPrint(cmd *cobra.Command, args []string) {
	if err := commands.Print(cmd.OutOrStdout(), readFile(args[0]), formatFlag); err != nil {
		exitErr("print", err)
	}
}
