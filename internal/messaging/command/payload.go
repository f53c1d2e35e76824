package command

import (
	"github.com/google/uuid"

	"permission-engine/internal/permissions"
	"permission-engine/internal/repository/model"
)

type RoleCreate struct {
	Role *model.Role `json:"role"`
}

// RoleUpdate is a partial update; nil fields are left untouched.
type RoleUpdate struct {
	ServerId uuid.UUID `json:"serverId"`
	RoleId   string    `json:"roleId"`

	Priority    *uint32 `json:"priority,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`

	SetPermissions   []model.PermissionNode `json:"setPermissions,omitempty"`
	UnsetPermissions []permissions.Type     `json:"unsetPermissions,omitempty"`
}

type RoleDelete struct {
	ServerId uuid.UUID `json:"serverId"`
	RoleId   string    `json:"roleId"`
}

// MemberRole is shared by the add and remove commands.
type MemberRole struct {
	ServerId uuid.UUID `json:"serverId"`
	UserId   uuid.UUID `json:"userId"`
	RoleId   string    `json:"roleId"`
}

type OverwriteSet struct {
	Overwrite *model.Overwrite `json:"overwrite"`
}

type OverwriteDelete struct {
	ServerId  uuid.UUID             `json:"serverId"`
	ChannelId uuid.UUID             `json:"channelId"`
	Target    model.OverwriteTarget `json:"target"`
	RoleId    string                `json:"roleId,omitempty"`
	UserId    uuid.UUID             `json:"userId"`
}

type ChannelUpsert struct {
	Channel *model.Channel `json:"channel"`
}

type ChannelDelete struct {
	ServerId  uuid.UUID `json:"serverId"`
	ChannelId uuid.UUID `json:"channelId"`
}
