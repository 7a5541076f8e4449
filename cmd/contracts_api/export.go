package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/talentledger/contracts/internal/catalog"
	"github.com/talentledger/contracts/internal/config"
	"github.com/talentledger/contracts/internal/contract"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export-schemas",
	Short: "Write every registered kind as a JSON Schema file",
	Long:  `Export the registry's kinds as draft-07 JSON Schema documents, one file per kind, for consumption by non-Go clients.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", "", "Output directory (defaults to SCHEMA_DIR, then ./schemas)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	dir := exportDir
	if dir == "" {
		if cfg, err := config.FromEnv(); err == nil && cfg.SchemaDir != "" {
			dir = cfg.SchemaDir
		}
	}
	if dir == "" {
		dir = "schemas"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	registry := catalog.Default()
	for _, kind := range registry.Kinds() {
		schema, _ := registry.Schema(kind)
		doc := contract.JSONSchema(schema)

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema for %s: %w", kind, err)
		}

		// "job_post.create" becomes job_post.create.schema.json
		name := strings.ReplaceAll(kind, string(filepath.Separator), "_") + ".schema.json"
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
