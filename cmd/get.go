package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/classpatch/classpatch/internal/jsx"
	"github.com/classpatch/classpatch/internal/ui"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <tag> [index]",
	Short: "Print the current class value of a JSX element",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawIndex := ""
		if len(args) == 3 {
			rawIndex = args[2]
		}
		return RunGet(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], rawIndex)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func RunGet(ctx context.Context, w io.Writer, file, tag, rawIndex string) error {
	index, err := parseIndex(rawIndex)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	value, found, err := jsx.GetClassExpression(ctx, src, tag, index)
	if err != nil {
		return err
	}

	if !found {
		ui.AbsentLine(w)
		return nil
	}

	ui.ValueLine(w, value)
	return nil
}

// parseIndex maps an optional positional index to the engine's convention:
// empty means "no ordinal" (-1).
func parseIndex(raw string) (int, error) {
	if raw == "" {
		return -1, nil
	}

	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid index: %s", raw)
	}
	return index, nil
}
