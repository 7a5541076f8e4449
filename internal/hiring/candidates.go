package hiring

import (
	"github.com/talentledger/contracts/internal/contract"
)

// Registered candidate kinds.
const (
	KindCandidateProfile       = "candidate_profile"
	KindCandidateProfileCreate = "candidate_profile.create"
	KindCandidateProfileUpdate = "candidate_profile.update"
	KindCandidateSkill         = "candidate_skill"
	KindCandidateWorkHistory   = "candidate_work_history"
	KindCandidateEducation     = "candidate_education"
)

// Candidate enumerations.
var (
	RemotePreferences = []string{"remote", "hybrid", "onsite", "flexible"}

	AvailabilityStatuses = []string{
		"actively_looking",
		"open_to_offers",
		"not_looking",
		"unavailable",
	}

	SkillCategories = []string{
		"technical",
		"soft",
		"language",
		"certification",
		"tool",
		"domain",
	}

	ProficiencyLevels = []string{"beginner", "intermediate", "advanced", "expert"}
)

// candidateServerFields: identity, linkage, and computed scores are assigned
// server-side. Completeness and reputation are recomputed on every write.
var candidateServerFields = []string{
	"id",
	"tenant_id",
	"user_id",
	"profile_completeness_pct",
	"reputation_score",
	"created_at",
	"updated_at",
}

// CandidateProfileSchema returns the canonical candidate profile schema.
func CandidateProfileSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindCandidateProfile,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "user_id", Type: contract.TypeUUID, Required: true},
			{Name: "headline", Type: contract.TypeString, MaxLen: 160},
			{Name: "summary", Type: contract.TypeString, MaxLen: 2000},
			{Name: "location", Type: contract.TypeObject, Fields: []contract.Field{
				{Name: "city", Type: contract.TypeString, MaxLen: 100},
				{Name: "state", Type: contract.TypeString, MaxLen: 100},
				{Name: "country", Type: contract.TypeString, Required: true, MinLen: 2, MaxLen: 100},
			}},
			{Name: "remote_preference", Type: contract.TypeString, Enum: RemotePreferences},
			{Name: "availability_status", Type: contract.TypeString, Required: true, Enum: AvailabilityStatuses},
			{Name: "desired_salary_min_cents", Type: contract.TypeCents, Min: contract.Int64(0)},
			{Name: "desired_salary_max_cents", Type: contract.TypeCents, Min: contract.Int64(0)},
			{Name: "visa_status", Type: contract.TypeString, MaxLen: 200},
			{Name: "work_authorization", Type: contract.TypeString, MaxLen: 200},
			{Name: "linkedin_url", Type: contract.TypeURL},
			{Name: "github_url", Type: contract.TypeURL},
			{Name: "portfolio_url", Type: contract.TypeURL},
			{Name: "profile_completeness_pct", Type: contract.TypeInt, Required: true, Min: contract.Int64(0), Max: contract.Int64(100)},
			{Name: "is_anonymous", Type: contract.TypeBool, Default: false},
			{Name: "reputation_score", Type: contract.TypeInt, Min: contract.Int64(0), Max: contract.Int64(100)},
			{Name: "created_at", Type: contract.TypeDate},
			{Name: "updated_at", Type: contract.TypeDate},
		},
	}
}

// CandidateSkillSchema returns the schema for one skill owned by a candidate.
func CandidateSkillSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindCandidateSkill,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "candidate_id", Type: contract.TypeUUID, Required: true},
			{Name: "skill_name", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
			{Name: "category", Type: contract.TypeString, Required: true, Enum: SkillCategories},
			{Name: "proficiency_level", Type: contract.TypeString, Required: true, Enum: ProficiencyLevels},
			{Name: "years_experience", Type: contract.TypeInt, Min: contract.Int64(0)},
			{Name: "is_verified", Type: contract.TypeBool, Default: false},
		},
	}
}

// CandidateWorkHistorySchema returns the schema for an unkeyed work history
// entry attached to a candidate profile. end_date is optional; a current
// position carries is_current=true instead.
func CandidateWorkHistorySchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindCandidateWorkHistory,
		Fields: []contract.Field{
			{Name: "company", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "title", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "location", Type: contract.TypeString, MaxLen: 200},
			{Name: "start_date", Type: contract.TypeDate, Required: true},
			{Name: "end_date", Type: contract.TypeDate},
			{Name: "is_current", Type: contract.TypeBool, Default: false},
			{Name: "description", Type: contract.TypeString, MaxLen: 2000},
			{Name: "achievements", Type: contract.TypeArray, Elem: &contract.Field{Type: contract.TypeString, MinLen: 1, MaxLen: 500}},
			{Name: "skills_used", Type: contract.TypeArray, Elem: &contract.Field{Type: contract.TypeString, MinLen: 1, MaxLen: 100}},
		},
	}
}

// CandidateEducationSchema returns the schema for an unkeyed education entry.
func CandidateEducationSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindCandidateEducation,
		Fields: []contract.Field{
			{Name: "institution", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "degree", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "field_of_study", Type: contract.TypeString, MaxLen: 200},
			{Name: "start_date", Type: contract.TypeDate},
			{Name: "end_date", Type: contract.TypeDate},
			{Name: "is_current", Type: contract.TypeBool, Default: false},
		},
	}
}

func registerCandidates(r *contract.Registry) {
	profile := CandidateProfileSchema()
	create := profile.Omit(candidateServerFields...).WithKind(KindCandidateProfileCreate)
	r.Register(profile)
	r.Register(create)
	r.Register(create.Partial().WithKind(KindCandidateProfileUpdate))

	r.Register(CandidateSkillSchema())
	r.Register(CandidateWorkHistorySchema())
	r.Register(CandidateEducationSchema())
}
