package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/classpatch/classpatch/internal/history"
	"github.com/classpatch/classpatch/internal/jsx"
	"github.com/classpatch/classpatch/internal/source"
	"github.com/classpatch/classpatch/internal/ui"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <file> <tag> <value> [index]",
	Short: "Rewrite the class value of a JSX element",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawIndex := ""
		if len(args) == 4 {
			rawIndex = args[3]
		}
		return RunSet(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], args[2], rawIndex)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func RunSet(ctx context.Context, w io.Writer, file, tag, value, rawIndex string) error {
	index, err := parseIndex(rawIndex)
	if err != nil {
		return err
	}

	store, err := source.NewStore(".")
	if err != nil {
		return err
	}

	var oldValue string
	var hadOld bool

	changed, err := store.Update(file, func(src []byte) ([]byte, error) {
		oldValue, hadOld, _ = jsx.GetClassExpression(ctx, src, tag, index)
		return jsx.UpdateClass(ctx, src, tag, value, index)
	})
	if err != nil {
		return err
	}

	if !changed {
		ui.SameLine(w, file, tag)
		return nil
	}

	// Journal only when initialized; set works without it.
	if _, err := os.Stat(dataDir); err == nil {
		db, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer db.Close()

		_, err = history.Record(db, history.Edit{
			FilePath: file,
			TagName:  tag,
			Ordinal:  index,
			OldValue: oldValue,
			HadOld:   hadOld,
			NewValue: value,
		})
		if err != nil {
			return err
		}
	}

	ui.UpdLine(w, file, tag)
	return nil
}
