// Package hiring declares the contract schemas for the applicant-tracking
// product: users, candidate profiles, job posts, applications, scorecards,
// and hiring decisions. Field tables are the single source of truth; create
// and update shapes are derived structurally from explicit server-controlled
// field lists.
package hiring

import (
	"github.com/talentledger/contracts/internal/contract"
)

// Registered entity kinds.
const (
	KindUser       = "user"
	KindUserCreate = "user.create"
	KindUserUpdate = "user.update"
)

// UserRoles is the closed set of platform roles.
var UserRoles = []string{
	"super_admin",
	"org_admin",
	"recruiter",
	"hiring_manager",
	"interviewer",
	"candidate",
}

// userServerFields are assigned by the server, never by a client. tenant_id
// comes from the authenticated token, enforcing the tenant isolation boundary
// at the authorization layer rather than in the schema itself.
var userServerFields = []string{"id", "tenant_id", "created_at"}

// UserSchema returns the canonical user schema.
func UserSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindUser,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "email", Type: contract.TypeEmail, Required: true},
			{Name: "first_name", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
			{Name: "last_name", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
			{Name: "role", Type: contract.TypeString, Required: true, Enum: UserRoles},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "mfa_enabled", Type: contract.TypeBool, Default: false},
			{Name: "created_at", Type: contract.TypeDate},
		},
	}
}

// Register adds every hiring schema, with its derived create/update shapes,
// to the registry.
func Register(r *contract.Registry) {
	user := UserSchema()
	userCreate := user.Omit(userServerFields...).WithKind(KindUserCreate)
	r.Register(user)
	r.Register(userCreate)
	r.Register(userCreate.Partial().WithKind(KindUserUpdate))

	registerCandidates(r)
	registerJobs(r)
	registerApplications(r)
}
