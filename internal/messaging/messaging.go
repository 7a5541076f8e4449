// Package messaging declares the contract schemas for conversations,
// messages, read receipts, meeting requests, and availability blocks.
package messaging

import (
	"github.com/talentledger/contracts/internal/contract"
)

// Registered conversation kinds.
const (
	KindConversation       = "conversation"
	KindConversationCreate = "conversation.create"
	KindMessage            = "message"
	KindMessageCreate      = "message.create"
	KindMessageReceipt     = "message_receipt"
)

// Messaging enumerations.
var (
	ConversationTypes = []string{"direct", "group", "channel"}
	MessageTypes      = []string{"text", "file", "system"}
)

// MaxMessageLength bounds message content; the minimum is one character.
const MaxMessageLength = 50000

// ConversationSchema returns the canonical conversation schema. Every
// conversation has at least one participant.
func ConversationSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindConversation,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "type", Type: contract.TypeString, Required: true, Enum: ConversationTypes},
			{Name: "title", Type: contract.TypeString, MaxLen: 200},
			{Name: "created_by", Type: contract.TypeUUID, Required: true},
			{Name: "participant_ids", Type: contract.TypeArray, Required: true, MinItems: 1, Elem: &contract.Field{Type: contract.TypeUUID}},
			{Name: "created_at", Type: contract.TypeDate},
		},
	}
}

// MessageSchema returns the canonical message schema. parent_id threads a
// message under another in the same conversation.
func MessageSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindMessage,
		Fields: []contract.Field{
			{Name: "id", Type: contract.TypeUUID, Required: true},
			{Name: "conversation_id", Type: contract.TypeUUID, Required: true},
			{Name: "sender_id", Type: contract.TypeUUID, Required: true},
			{Name: "content", Type: contract.TypeString, Required: true, MinLen: 1, MaxLen: MaxMessageLength},
			{Name: "message_type", Type: contract.TypeString, Enum: MessageTypes, Default: "text"},
			{Name: "is_edited", Type: contract.TypeBool, Default: false},
			{Name: "parent_id", Type: contract.TypeUUID},
			{Name: "created_at", Type: contract.TypeDate},
		},
	}
}

// MessageReceiptSchema returns the schema for an append-only read marker,
// one per (message, user) pair.
func MessageReceiptSchema() *contract.Schema {
	return &contract.Schema{
		Kind: KindMessageReceipt,
		Fields: []contract.Field{
			{Name: "message_id", Type: contract.TypeUUID, Required: true},
			{Name: "user_id", Type: contract.TypeUUID, Required: true},
			{Name: "read_at", Type: contract.TypeDate, Required: true},
		},
	}
}

// Register adds every messaging schema to the registry.
func Register(r *contract.Registry) {
	conversation := ConversationSchema()
	r.Register(conversation)
	r.Register(conversation.Omit("id", "created_at").WithKind(KindConversationCreate))

	message := MessageSchema()
	r.Register(message)
	r.Register(message.Omit("id", "is_edited", "created_at").WithKind(KindMessageCreate))

	r.Register(MessageReceiptSchema())

	registerMeetings(r)
}
