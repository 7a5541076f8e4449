// Package practice declares the contract schemas for the CPA
// practice-management product: clients, engagements, invoices, and tasks.
package practice

import (
	"github.com/talentledger/contracts/internal/contract"
)

// Registered practice kinds.
const (
	KindClient        = "client"
	KindClientCreate  = "client.create"
	KindClientUpdate  = "client.update"
	KindEngagement    = "engagement"
	KindInvoice       = "invoice"
	KindInvoiceCreate = "invoice.create"
	KindTaskItem      = "task_item"
)

// Practice enumerations.
var (
	ClientEntityTypes = []string{
		"individual",
		"sole_proprietor",
		"llc",
		"s_corp",
		"c_corp",
		"partnership",
		"nonprofit",
	}

	ClientStatuses = []string{"prospect", "active", "inactive"}

	EngagementTypes = []string{"tax_prep", "bookkeeping", "audit", "advisory", "payroll"}

	EngagementStatuses = []string{"planned", "in_progress", "review", "complete", "cancelled"}

	InvoiceStatuses = []string{"draft", "sent", "paid", "overdue", "void"}

	TaskStatuses = []string{"todo", "in_progress", "blocked", "done"}

	TaskPriorities = []string{"low", "medium", "high", "urgent"}
)

// clientServerFields mirror the hiring entities: identity and tenancy are
// assigned by the server.
var clientServerFields = []string{"id", "tenant_id", "created_at"}

// ClientSchema returns the canonical practice client schema.
func ClientSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindClient,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "name", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "email", Type: contract.TypeEmail},
			{Name: "phone", Type: contract.TypeString, MaxLen: 32},
			{Name: "entity_type", Type: contract.TypeString, Enum: ClientEntityTypes},
			{Name: "status", Type: contract.TypeString, Enum: ClientStatuses, Default: "active"},
			{Name: "created_at", Type: contract.TypeDate},
		},
	}
}

// EngagementSchema returns the schema for one client engagement.
func EngagementSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindEngagement,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "client_id", Type: contract.TypeUUID, Required: true},
			{Name: "title", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "engagement_type", Type: contract.TypeString, Required: true, Enum: EngagementTypes},
			{Name: "status", Type: contract.TypeString, Enum: EngagementStatuses, Default: "planned"},
			{Name: "start_date", Type: contract.TypeDate},
			{Name: "end_date", Type: contract.TypeDate},
			{Name: "fee_cents", Type: contract.TypeCents, Min: contract.Int64(0)},
		},
	}
}

// invoiceServerFields: paid_at is stamped when payment settles.
var invoiceServerFields = []string{"id", "tenant_id", "paid_at"}

// InvoiceSchema returns the canonical invoice schema.
func InvoiceSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindInvoice,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "client_id", Type: contract.TypeUUID, Required: true},
			{Name: "invoice_number", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 32},
			{Name: "amount_cents", Type: contract.TypeCents, Required: true, Min: contract.Int64(0)},
			{Name: "status", Type: contract.TypeString, Enum: InvoiceStatuses, Default: "draft"},
			{Name: "issued_at", Type: contract.TypeDate},
			{Name: "due_at", Type: contract.TypeDate},
			{Name: "paid_at", Type: contract.TypeDate},
		},
	}
}

// TaskItemSchema returns the schema for a practice work item.
func TaskItemSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindTaskItem,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "title", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "description", Type: contract.TypeString, MaxLen: 5000},
			{Name: "assigned_to", Type: contract.TypeUUID},
			{Name: "client_id", Type: contract.TypeUUID},
			{Name: "status", Type: contract.TypeString, Enum: TaskStatuses, Default: "todo"},
			{Name: "priority", Type: contract.TypeString, Enum: TaskPriorities, Default: "medium"},
			{Name: "due_at", Type: contract.TypeDate},
		},
	}
}

// Register adds every practice schema to the registry.
func Register(r *contract.Registry) {
	client := ClientSchema()
	create := client.Omit(clientServerFields...).WithKind(KindClientCreate)
	r.Register(client)
	r.Register(create)
	r.Register(create.Partial().WithKind(KindClientUpdate))

	r.Register(EngagementSchema())

	invoice := InvoiceSchema()
	r.Register(invoice)
	r.Register(invoice.Omit(invoiceServerFields...).WithKind(KindInvoiceCreate))

	r.Register(TaskItemSchema())
}
