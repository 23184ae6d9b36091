package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/classpatch/classpatch/internal/history"
	"github.com/classpatch/classpatch/internal/ui"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log [file]",
	Short: "List recorded class edits",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileFilter := ""
		if len(args) == 1 {
			fileFilter = args[0]
		}
		return RunLog(cmd.OutOrStdout(), fileFilter)
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func RunLog(w io.Writer, fileFilter string) error {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return fmt.Errorf("run `classpatch init` first")
	}

	db, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer db.Close()

	edits, err := history.List(db, fileFilter)
	if err != nil {
		return err
	}
	if len(edits) == 0 {
		return nil
	}

	// Compute column widths
	pathWidth, tagWidth, ordWidth := 0, 0, 0
	for _, e := range edits {
		if len(e.FilePath) > pathWidth {
			pathWidth = len(e.FilePath)
		}
		if len(e.TagName) > tagWidth {
			tagWidth = len(e.TagName)
		}
		if len(ordinalLabel(e.Ordinal)) > ordWidth {
			ordWidth = len(ordinalLabel(e.Ordinal))
		}
	}

	for _, e := range edits {
		ui.LogRow(w, e.FilePath, e.TagName, ordinalLabel(e.Ordinal), e.NewValue, pathWidth, tagWidth, ordWidth)
	}

	return nil
}

// ordinalLabel renders -1 (every occurrence) as "*".
func ordinalLabel(ordinal int) string {
	if ordinal < 0 {
		return "*"
	}
	return strconv.Itoa(ordinal)
}
