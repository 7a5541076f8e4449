package messaging

import (
	"regexp"

	"github.com/talentledger/contracts/internal/contract"
)

// Registered meeting kinds. Accept/deny/reschedule are distinct operation
// inputs, not field mutations on the request itself.
const (
	KindMeetingRequest           = "meeting_request"
	KindMeetingRequestCreate     = "meeting_request.create"
	KindMeetingAccept            = "meeting_request.accept"
	KindMeetingDeny              = "meeting_request.deny"
	KindMeetingReschedule        = "meeting_request.reschedule"
	KindMeetingAvailabilityBlock = "meeting_availability_block"
)

// Meeting enumerations.
var (
	MeetingStatuses = []string{"pending", "accepted", "denied", "rescheduled", "cancelled"}
	MeetingTypes    = []string{"phone", "video", "in_person"}

	DaysOfWeek = []string{
		"monday",
		"tuesday",
		"wednesday",
		"thursday",
		"friday",
		"saturday",
		"sunday",
	}
)

// clockPattern requires zero-padded 24h wall-clock times, e.g. "09:00".
var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// timeSlotField describes one proposed meeting window.
var timeSlotField = contract.Field{
	Type: contract.TypeObject,
	Fields: []contract.Field{
		{Name: "start", Type: contract.TypeDate, Required: true},
		{Name: "end", Type: contract.TypeDate, Required: true},
		{Name: "timezone", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 64},
	},
}

// MeetingRequestSchema returns the canonical meeting request schema. At least
// one time must be proposed; duration is bounded to a working day.
func MeetingRequestSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindMeetingRequest,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "title", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 200},
			{Name: "description", Type: contract.TypeString, MaxLen: 2000},
			{Name: "requested_by", Type: contract.TypeUUID, Required: true},
			{Name: "requested_to", Type: contract.TypeUUID, Required: true},
			{Name: "proposed_times", Type: contract.TypeArray, Required: true, MinItems: 1, Elem: &timeSlotField},
			{Name: "status", Type: contract.TypeString, Enum: MeetingStatuses, Default: "pending"},
			{Name: "meeting_type", Type: contract.TypeString, Required: true, Enum: MeetingTypes},
			{Name: "duration_minutes", Type: contract.TypeInt, Required: true, Min: contract.Int64(1), Max: contract.Int64(480)},
			{Name: "location", Type: contract.TypeString, MaxLen: 200},
			{Name: "meeting_url", Type: contract.TypeURL},
		},
	}
}

// AcceptMeetingSchema returns the input shape for accepting a request by
// selecting one of its proposed times.
func AcceptMeetingSchema() *contract.Schema {
	selected := timeSlotField
	selected.Name = "selected_time"
	selected.Required = true
	return &contract.Schema{
		Kind:   KindMeetingAccept,
		Fields: []contract.Field{selected},
	}
}

// DenyMeetingSchema returns the input shape for denying a request. A reason
// is required.
func DenyMeetingSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindMeetingDeny,
		Fields: []contract.Field{
			{Name: "reason", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 2000},
		},
	}
}

// RescheduleMeetingSchema returns the input shape for proposing a fresh set
// of times.
func RescheduleMeetingSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindMeetingReschedule,
		Fields: []contract.Field{
			{Name: "proposed_times", Type: contract.TypeArray, Required: true, MinItems: 1, Elem: &timeSlotField},
		},
	}
}

// AvailabilityBlockSchema returns the schema for a recurring weekly
// availability window. Times are strict zero-padded "HH:MM" strings.
func AvailabilityBlockSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindMeetingAvailabilityBlock,
		Fields: []contract.Field{
			{Name: "user_id", Type: contract.TypeUUID, Required: true},
			{Name: "day_of_week", Type: contract.TypeString, Required: true, Enum: DaysOfWeek},
			{Name: "start_time", Type: contract.TypeString, Required: true, Pattern: clockPattern},
			{Name: "end_time", Type: contract.TypeString, Required: true, Pattern: clockPattern},
			{Name: "timezone", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: 64},
			{Name: "is_recurring", Type: contract.TypeBool, Default: true},
		},
	}
}

func registerMeetings(r *contract.Registry) {
	request := MeetingRequestSchema()
	r.Register(request)
	r.Register(request.Omit("id").WithKind(KindMeetingRequestCreate))
	r.Register(AcceptMeetingSchema())
	r.Register(DenyMeetingSchema())
	r.Register(RescheduleMeetingSchema())
	r.Register(AvailabilityBlockSchema())
}
