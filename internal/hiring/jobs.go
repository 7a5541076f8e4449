package hiring

import (
	"github.com/talentledger/contracts/internal/contract"
)

// Registered job kinds.
const (
	KindJobPost       = "job_post"
	KindJobPostCreate = "job_post.create"
	KindJobPostUpdate = "job_post.update"
)

// Job post enumerations.
var (
	WorkModes = []string{"remote", "hybrid", "onsite"}

	EmploymentTypes = []string{
		"full_time",
		"part_time",
		"contract",
		"freelance",
		"internship",
		"temporary",
	}

	// SeniorityLevels is the 11-value ladder from intern to c_level.
	SeniorityLevels = []string{
		"intern",
		"junior",
		"mid",
		"senior",
		"staff",
		"principal",
		"lead",
		"manager",
		"director",
		"vp",
		"c_level",
	}

	JobStatuses = []string{"draft", "open", "paused", "closed", "filled", "cancelled"}

	JobVisibilities = []string{"public", "internal", "private", "unlisted"}
)

// jobServerFields: posted_at is stamped when the post transitions to open.
var jobServerFields = []string{"id", "tenant_id", "posted_at"}

// jobRequirementField describes one element of the requirements array.
var jobRequirementField = contract.Field{
	Type: contract.TypeObject,
	Fields: []contract.Field{
		{Name: "requirement_text", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 500},
		{Name: "category", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
		{Name: "is_must_have", Type: contract.TypeBool, Default: false},
		{Name: "weight", Type: contract.TypeInt, Min: contract.Int64(0), Max: contract.Int64(100)},
	},
}

// JobPostSchema returns the canonical job post schema.
func JobPostSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindJobPost,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "tenant_id", Type: contract.TypeUUID, Required: true},
			{Name: "title", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "department", Type: contract.TypeString, MaxLen: 100},
			{Name: "description", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 20000},
			{Name: "requirements", Type: contract.TypeArray, Elem: &jobRequirementField},
			{Name: "location", Type: contract.TypeString, MaxLen: 200},
			{Name: "work_mode", Type: contract.TypeString, Required: true, Enum: WorkModes},
			{Name: "employment_type", Type: contract.TypeString, Required: true, Enum: EmploymentTypes},
			{Name: "seniority_level", Type: contract.TypeString, Enum: SeniorityLevels},
			{Name: "salary_min_cents", Type: contract.TypeCents, Min: contract.Int64(0)},
			{Name: "salary_max_cents", Type: contract.TypeCents, Min: contract.Int64(0)},
			{Name: "status", Type: contract.TypeString, Enum: JobStatuses, Default: "draft"},
			{Name: "visibility", Type: contract.TypeString, Enum: JobVisibilities, Default: "public"},
			{Name: "hiring_manager_id", Type: contract.TypeUUID},
			{Name: "recruiter_id", Type: contract.TypeUUID},
			{Name: "is_urgent", Type: contract.TypeBool, Default: false},
			{Name: "posted_at", Type: contract.TypeDate},
			{Name: "closes_at", Type: contract.TypeDate},
		},
	}
}

func registerJobs(r *contract.Registry) {
	job := JobPostSchema()
	create := job.Omit(jobServerFields...).WithKind(KindJobPostCreate)
	r.Register(job)
	r.Register(create)
	r.Register(create.Partial().WithKind(KindJobPostUpdate))
}
