package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentledger/contracts/internal/contract"
)

func TestPrintSchemaSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSchemaSummary(&contract.Schema{
		Kind: "job_post",
		Fields: []contract.Field{
			{Name: "title", Type: contract.TypeString, Required: true},
			{Name: "description", Type: contract.TypeString, Required: true},
			{Name: "location", Type: contract.TypeString},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "SCHEMA")
	assert.Contains(t, out, "job_post")
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "description")
	assert.NotContains(t, out, "location")
}

func TestPrintSchemaSummary_TruncatesRequiredList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	fields := make([]contract.Field, 8)
	for i := range fields {
		fields[i] = contract.Field{Name: strings.Repeat("f", i+1), Type: contract.TypeString, Required: true}
	}
	p.PrintSchemaSummary(&contract.Schema{Kind: "wide", Fields: fields})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintSchemaSummary_NilSchema(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintSchemaSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintValidationReport_Valid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport("job.json", nil)

	out := buf.String()
	assert.Contains(t, out, "job.json")
	assert.Contains(t, out, "valid")
}

func TestPrintValidationReport_Violations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ve := &contract.ValidationError{Kind: "job_post"}
	ve.Errors = []contract.FieldError{
		{Path: "title", Code: contract.CodeRequired, Message: "is required"},
		{Path: "work_mode", Code: contract.CodeConstraint, Message: "must be one of remote, hybrid, onsite"},
	}
	p.PrintValidationReport("job.json", ve)

	out := buf.String()
	assert.Contains(t, out, "2 violation(s)")
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "work_mode")
}
