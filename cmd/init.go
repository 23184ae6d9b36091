package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/classpatch/classpatch/internal/history"
	"github.com/spf13/cobra"
)

const (
	dataDir = ".classpatch"
	dbPath  = ".classpatch/classpatch.db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize classpatch in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	// .classpatch/ directory
	_, err := os.Stat(dataDir)
	dirExists := err == nil
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", dataDir, err)
	}
	if dirExists {
		fmt.Fprintln(w, dataDir+"/ already exists")
	} else {
		fmt.Fprintln(w, dataDir+"/ created")
	}

	// journal database
	_, err = os.Stat(dbPath)
	dbExists := err == nil
	db, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	db.Close()
	if dbExists {
		fmt.Fprintln(w, dbPath+" already exists")
	} else {
		fmt.Fprintln(w, dbPath+" created")
	}

	// gitignore
	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore() ([]string, error) {
	const entry = dataDir + "/"

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}
