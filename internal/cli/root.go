// Package cli implements the pngme CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/UberChili/pngmev2/internal/logger"
	"github.com/UberChili/pngmev2/internal/store"
)

var (
	journalPath string
	noJournal   bool
	formatFlag  string
	logLevel    string
	logFormat   string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "pngme",
	Short: "Hide messages in PNG chunks",
	Long:  "Encode, decode, remove and list ancillary chunks in PNG files. Every mutation is journaled so removed chunks can be restored.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logFormat == "json" {
			logger.UseWriter(os.Stderr, true)
		}
		if logLevel != "" {
			if err := logger.SetLevel(logLevel); err != nil {
				exitErr("log level", err)
			}
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&journalPath, "journal", "j", "", "Journal path (default: $PNGME_JOURNAL or ~/.pngme/journal.db)")
	RootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "Do not record mutations")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $PNGME_LOG_LEVEL or warn)")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

func getJournalPath() string {
	if journalPath != "" {
		return journalPath
	}
	if env := os.Getenv("PNGME_JOURNAL"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pngme", "journal.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getJournalPath())
}

// record journals a mutation. Failures are logged, not fatal: the file has
// already been written by the time this runs.
func record(ctx context.Context, p store.RecordParams) string {
	if noJournal {
		return ""
	}
	s, err := openStore()
	if err != nil {
		logger.Warn("journal unavailable", "path", getJournalPath(), "err", err)
		return ""
	}
	defer s.Close()

	e, err := s.Record(ctx, p)
	if err != nil {
		logger.Warn("journal record failed", "op", p.Op, "err", err)
		return ""
	}
	logger.Debug("journaled", "id", e.ID, "op", e.Op, "file", e.File, "chunk_type", e.ChunkType)
	return e.ID
}

func readFile(path string) []byte {
	b, err := os.ReadFile(path)
	if err != nil {
		exitErr("read file", err)
	}
	logger.WithFile(logger.Logger(), path).Debug("read file", "bytes", len(b))
	return b
}

func writeFile(path string, b []byte) {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, b, mode); err != nil {
		exitErr("write file", err)
	}
	logger.WithFile(logger.Logger(), path).Debug("wrote file", "bytes", len(b))
}

// outputPath returns --out when set, else the input file.
func outputPath(cmd *cobra.Command, in string) string {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out
	}
	return in
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
