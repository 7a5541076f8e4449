package hiring

import (
	"github.com/talentledger/contracts/internal/contract"
)

// Registered application-adjacent kinds.
const (
	KindApplication           = "application"
	KindApplicationCreate     = "application.create"
	KindApplicationUpdate     = "application.update"
	KindApplicationStageEvent = "application_stage_event"
	KindScorecard             = "scorecard"
	KindScorecardCreate       = "scorecard.create"
	KindDecisionRecord        = "decision_record"
)

// Application lifecycle enumerations. The schema layer declares the legal
// value sets only; which transitions between stages are legal is business
// logic that lives with the pipeline services, not here.
var (
	ApplicationStages = []string{
		"applied",
		"screening",
		"phone_screen",
		"technical",
		"onsite",
		"offer",
		"hired",
		"rejected",
		"withdrawn",
	}

	ApplicationStatuses = []string{"active", "on_hold", "archived"}

	Recommendations = []string{"strong_hire", "hire", "no_hire", "strong_no_hire"}

	Decisions = []string{"advance", "reject", "hold", "hire"}
)

// applicationServerFields: match scoring is computed server-side.
var applicationServerFields = []string{"id", "match_score", "match_reasons", "created_at", "updated_at"}

// ApplicationSchema returns the canonical application schema.
func ApplicationSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindApplication,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "job_id", Type: contract.TypeUUID, Required: true},
			{Name: "candidate_id", Type: contract.TypeUUID, Required: true},
			{Name: "stage", Type: contract.TypeString, Enum: ApplicationStages, Default: "applied"},
			{Name: "status", Type: contract.TypeString, Enum: ApplicationStatuses, Default: "active"},
			{Name: "source", Type: contract.TypeString, MaxLen: 100},
			{Name: "match_score", Type: contract.TypeInt, Min: contract.Int64(0), Max: contract.Int64(100)},
			{Name: "match_reasons", Type: contract.TypeArray, Elem: &contract.Field{Type: contract.TypeString, MinLen: 1, MaxLen: 500}},
			{Name: "created_at", Type: contract.TypeDate},
			{Name: "updated_at", Type: contract.TypeDate},
		},
	}
}

// StageEventSchema returns the schema for the immutable audit record written
// on every stage transition. Stage changes are recorded as events, never as
// in-place mutations, so there is no update shape.
func StageEventSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindApplicationStageEvent,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "application_id", Type: contract.TypeUUID, Required: true},
			{Name: "from_stage", Type: contract.TypeString, Required: true, Enum: ApplicationStages},
			{Name: "to_stage", Type: contract.TypeString, Required: true, Enum: ApplicationStages},
			{Name: "changed_by", Type: contract.TypeUUID, Required: true},
			{Name: "notes", Type: contract.TypeString, MaxLen: 2000},
			{Name: "created_at", Type: contract.TypeDate},
		},
	}
}

// scorecardServerFields: submitted_at is stamped on submission.
var scorecardServerFields = []string{"id", "submitted_at"}

// ScorecardSchema returns the schema for one interviewer's structured
// evaluation of an application at one stage.
func ScorecardSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindScorecard,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "application_id", Type: contract.TypeUUID, Required: true},
			{Name: "interviewer_id", Type: contract.TypeUUID, Required: true},
			{Name: "stage", Type: contract.TypeString, Required: true, Enum: ApplicationStages},
			{Name: "overall_rating", Type: contract.TypeInt, Required: true, Min: contract.Int64(1), Max: contract.Int64(5)},
			{Name: "criteria", Type: contract.TypeArray, Required: true, MinItems: 1, Elem: &contract.Field{
				Type: contract.TypeObject,
				Fields: []contract.Field{
					{Name: "name", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 100},
					{Name: "rating", Type: contract.TypeInt, Required: true, Min: contract.Int64(1), Max: contract.Int64(5)},
					{Name: "notes", Type: contract.TypeString, MaxLen: 2000},
				},
			}},
			{Name: "strengths", Type: contract.TypeString, MaxLen: 2000},
			{Name: "weaknesses", Type: contract.TypeString, MaxLen: 2000},
			{Name: "recommendation", Type: contract.TypeString, Required: true, Enum: Recommendations},
			{Name: "notes", Type: contract.TypeString, MaxLen: 5000},
			{Name: "submitted_at", Type: contract.TypeDate},
		},
	}
}

// DecisionRecordSchema returns the schema for a final, auditable hiring
// decision, distinct from the individual scorecards that informed it.
func DecisionRecordSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindDecisionRecord,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "application_id", Type: contract.TypeUUID, Required: true},
			{Name: "decision", Type: contract.TypeString, Required: true, Enum: Decisions},
			{Name: "decided_by", Type: contract.TypeUUID, Required: true},
			{Name: "rationale", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 5000},
			{Name: "dissenting_opinions", Type: contract.TypeArray, Elem: &contract.Field{Type: contract.TypeString, MinLen: 1, MaxLen: 2000}},
			{Name: "created_at", Type: contract.TypeDate},
		},
	}
}

func registerApplications(r *contract.Registry) {
	application := ApplicationSchema()
	create := application.Omit(applicationServerFields...).WithKind(KindApplicationCreate)
	r.Register(application)
	r.Register(create)
	r.Register(create.Partial().WithKind(KindApplicationUpdate))

	r.Register(StageEventSchema())

	scorecard := ScorecardSchema()
	r.Register(scorecard)
	r.Register(scorecard.Omit(scorecardServerFields...).WithKind(KindScorecardCreate))

	r.Register(DecisionRecordSchema())
}
