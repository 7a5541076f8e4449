// Package billing declares the contract schemas for plans, subscriptions,
// usage meters, and entitlements. All prices are integer cents.
package billing

import (
	"regexp"

	"github.com/talentledger/contracts/internal/contract"
)

// Registered billing kinds.
const (
	KindPlan               = "plan"
	KindSubscription       = "subscription"
	KindSubscriptionCreate = "subscription.create"
	KindSubscriptionUpdate = "subscription.update"
	KindUsageMeter         = "usage_meter"
	KindEntitlement        = "entitlement"
)

// SubscriptionStatuses is the closed subscription lifecycle set.
var SubscriptionStatuses = []string{"trialing", "active", "past_due", "cancelled"}

// slugPattern restricts plan slugs to lowercase alphanumerics and hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// PlanSchema returns the canonical plan schema.
func PlanSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindPlan,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "slug", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 64, Pattern: slugPattern},
			{Name: "name", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
			{Name: "price_monthly_cents", Type: contract.TypeCents, Required: true, Min: contract.Int64(0)},
			{Name: "price_annual_cents", Type: contract.TypeCents, Required: true, Min: contract.Int64(0)},
			{Name: "max_seats", Type: contract.TypeInt, Min: contract.Int64(1)},
			{Name: "max_jobs", Type: contract.TypeInt, Min: contract.Int64(0)},
			{Name: "max_candidates", Type: contract.TypeInt, Min: contract.Int64(0)},
			{Name: "features", Type: contract.TypeArray, Elem: &contract.Field{Type: contract.TypeString, MinLen: 1, MaxLen: 100}},
		},
	}
}

// subscriptionServerFields: billing periods are managed by the billing jobs.
var subscriptionServerFields = []string{"id", "current_period_start", "current_period_end", "seats_used"}

// SubscriptionSchema returns the canonical subscription schema. The
// seats_used <= seats_limit invariant is checked by the billing service when
// seats are assigned; the schema bounds each field independently.
func SubscriptionSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindSubscription,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "plan_id", Type: contract.TypeUUID, Required: true},
			{Name: "status", Type: contract.TypeString, Enum: SubscriptionStatuses, Default: "trialing"},
			{Name: "current_period_start", Type: contract.TypeDate, Required: true},
			{Name: "current_period_end", Type: contract.TypeDate, Required: true},
			{Name: "trial_ends_at", Type: contract.TypeDate},
			{Name: "seats_used", Type: contract.TypeInt, Min: contract.Int64(0)},
			{Name: "seats_limit", Type: contract.TypeInt, Min: contract.Int64(0)},
		},
	}
}

// UsageMeterSchema returns the schema for a per-tenant named counter over a
// billing period.
func UsageMeterSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindUsageMeter,
		Fields: []contract.Field{
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "name", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
			{Name: "current_value", Type: contract.TypeInt, Required: true, Min: contract.Int64(0)},
			{Name: "limit_value", Type: contract.TypeInt, Min: contract.Int64(0)},
			{Name: "period_start", Type: contract.TypeDate, Required: true},
			{Name: "period_end", Type: contract.TypeDate, Required: true},
		},
	}
}

// EntitlementSchema returns the schema for a per-plan feature flag with an
// optional numeric limit.
func EntitlementSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindEntitlement,
		Fields: []contract.Field{
			{Name: "plan_id", Type: contract.TypeUUID, Required: true},
			{Name: "feature", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
			{Name: "is_enabled", Type: contract.TypeBool, Default: true},
			{Name: "limit", Type: contract.TypeInt, Min: contract.Int64(0)},
		},
	}
}

// Register adds every billing schema to the registry. Subscriptions are
// tenant-created (choosing a plan) and tenant-updated (plan changes and
// cancellation); plans, meters, and entitlements are platform-managed.
func Register(r *contract.Registry) {
	r.Register(PlanSchema())

	subscription := SubscriptionSchema()
	create := subscription.Omit(subscriptionServerFields...).Omit("tenant_id").WithKind(KindSubscriptionCreate)
	r.Register(subscription)
	r.Register(create)
	r.Register(create.Partial().WithKind(KindSubscriptionUpdate))

	r.Register(UsageMeterSchema())
	r.Register(EntitlementSchema())
}
