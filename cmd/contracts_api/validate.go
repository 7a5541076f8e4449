package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/talentledger/contracts/internal/catalog"
	"github.com/talentledger/contracts/internal/contract"
	"github.com/talentledger/contracts/internal/observability"
	"golang.org/x/sync/errgroup"
)

var (
	validateKind    string
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate --kind <kind> <file>...",
	Short: "Validate JSON documents against a registered kind",
	Long:  `Validate one or more JSON documents against a registered contract kind. Files are validated concurrently; every violation in every file is reported.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", "", "Contract kind to validate against (required)")
	validateCmd.Flags().BoolVar(&validateVerbose, "verbose", false, "Print a formatted report for each document")
	_ = validateCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(validateCmd)
}

// fileResult is one file's validation outcome.
type fileResult struct {
	path string
	err  error
}

func runValidate(cmd *cobra.Command, args []string) error {
	registry := catalog.Default()
	if _, ok := registry.Schema(validateKind); !ok {
		return &contract.UnknownKindError{Kind: validateKind}
	}

	results := make([]fileResult, len(args))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(8)

	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			err := validateFile(registry, validateKind, path)
			mu.Lock()
			results[i] = fileResult{path: path, err: err}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if validateVerbose {
		schema, _ := registry.Schema(validateKind)
		printer.PrintSchemaSummary(schema)
	}

	failed := 0
	for _, res := range results {
		if res.err == nil {
			if validateVerbose {
				printer.PrintValidationReport(res.path, nil)
			} else {
				fmt.Printf("✓ %s\n", res.path)
			}
			continue
		}

		failed++
		var ve *contract.ValidationError
		if validateVerbose && errors.As(res.err, &ve) {
			printer.PrintValidationReport(res.path, ve)
			continue
		}
		fmt.Printf("✗ %s\n%v\n", res.path, res.err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}

func validateFile(registry *contract.Registry, kind, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	_, err = registry.Parse(kind, doc)
	return err
}
