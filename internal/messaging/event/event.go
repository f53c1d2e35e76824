// Package event defines the wire format shared by the notifier (producer)
// and the ingestion consumer: a small JSON envelope with one payload struct
// per change kind.
package event

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"permission-engine/internal/repository/model"
)

// Topic carries every permission domain change event.
const Topic = "permission-engine"

type Change string

const (
	ChangeCreate Change = "create"
	ChangeModify Change = "modify"
	ChangeDelete Change = "delete"
)

const (
	TypeRoleUpdate        = "role_update"
	TypeMemberRolesUpdate = "member_roles_update"
	TypeOverwriteUpdate   = "overwrite_update"
	TypeChannelUpdate     = "channel_update"
	TypeVisibilityUpdate  = "visibility_update"
)

type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Marshal wraps a payload in an envelope and encodes it.
func Marshal(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return json.Marshal(Envelope{Type: eventType, Payload: raw})
}

// Unmarshal decodes an envelope from raw bytes.
func Unmarshal(data []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}
	return &envelope, nil
}

// Decode unmarshals the envelope payload into v.
func (e *Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
	}
	return nil
}

// RoleUpdate announces a created, modified or deleted role. Role is nil for
// deletions; the keys identify the record in every case.
type RoleUpdate struct {
	Change   Change      `json:"change"`
	ServerId uuid.UUID   `json:"serverId"`
	RoleId   string      `json:"roleId"`
	Role     *model.Role `json:"role,omitempty"`
}

// MemberRolesUpdate announces a role granted to (ChangeCreate) or revoked
// from (ChangeDelete) a member.
type MemberRolesUpdate struct {
	Change   Change    `json:"change"`
	ServerId uuid.UUID `json:"serverId"`
	UserId   uuid.UUID `json:"userId"`
	RoleId   string    `json:"roleId"`
}

// OverwriteUpdate announces a set or deleted channel overwrite. Overwrite is
// nil for deletions.
type OverwriteUpdate struct {
	Change    Change                `json:"change"`
	ChannelId uuid.UUID             `json:"channelId"`
	ServerId  uuid.UUID             `json:"serverId"`
	Target    model.OverwriteTarget `json:"target"`
	RoleId    string                `json:"roleId,omitempty"`
	UserId    uuid.UUID             `json:"userId"`
	Overwrite *model.Overwrite      `json:"overwrite,omitempty"`
}

// ChannelUpdate announces a created, modified or deleted channel. Channel is
// nil for deletions.
type ChannelUpdate struct {
	Change    Change         `json:"change"`
	ChannelId uuid.UUID      `json:"channelId"`
	ServerId  uuid.UUID      `json:"serverId"`
	Channel   *model.Channel `json:"channel,omitempty"`
}

// VisibilityUpdate feeds the externally supplied visibility predicate.
type VisibilityUpdate struct {
	ChannelId uuid.UUID `json:"channelId"`
	UserId    uuid.UUID `json:"userId"`
	Visible   bool      `json:"visible"`
}
