package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exportEntry is one saved value in the export document.
type exportEntry struct {
	Key     string    `yaml:"key"`
	Value   string    `yaml:"value"`
	Updated time.Time `yaml:"updated"`
}

type exportDoc struct {
	Database string        `yaml:"database"`
	Entries  []exportEntry `yaml:"entries"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print saved progress as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		st, err := e.db()
		if err != nil {
			return err
		}

		entries, err := st.Entries(cmd.Context(), "")
		if err != nil {
			return err
		}
		doc := exportDoc{Database: e.dbPath, Entries: make([]exportEntry, len(entries))}
		for i, en := range entries {
			doc.Entries[i] = exportEntry{Key: en.Key, Value: en.Value, Updated: en.Updated()}
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	},
}
