// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/talentledger/contracts/internal/contract"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSchemaSummary outputs a human-readable summary of a schema: its kind,
// field count, and which fields are required.
func (p *Printer) PrintSchemaSummary(s *contract.Schema) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Kind:    %s\n", s.Kind))
	sb.WriteString(fmt.Sprintf("Fields:  %d\n", len(s.Fields)))

	var required []string
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	if len(required) > 0 {
		sb.WriteString("\nRequired:\n")
		count := min(len(required), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", required[i]))
		}
		if len(required) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(required)-maxItemsToShow))
		}
	}

	p.printBox("SCHEMA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs the outcome of validating one document:
// either a clean pass or every field violation grouped under the document.
func (p *Printer) PrintValidationReport(name string, ve *contract.ValidationError) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document: %s\n", name))

	if ve == nil || len(ve.Errors) == 0 {
		sb.WriteString("Result:   valid\n")
		p.printBox("VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	sb.WriteString(fmt.Sprintf("Result:   %d violation(s)\n\n", len(ve.Errors)))
	count := min(len(ve.Errors), maxItemsToShow)
	for i := 0; i < count; i++ {
		fe := ve.Errors[i]
		sb.WriteString(fmt.Sprintf("  • %s [%s]\n", fe.Path, fe.Code))
		sb.WriteString(fmt.Sprintf("    %s\n", fe.Message))
	}
	if len(ve.Errors) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(ve.Errors)-maxItemsToShow))
	}

	p.printBox("VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}
