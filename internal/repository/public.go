package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"permission-engine/internal/repository/model"
)

var (
	ErrRoleAlreadyExists = errors.New("role already exists")
	ErrAlreadyHasRole    = errors.New("member already has role")
	ErrDoesNotHaveRole   = errors.New("member does not have role")
)

// Repository persists the permission domain: servers, channels, roles,
// members and overwrites. It is the durable source the in-memory state store
// is seeded from.
type Repository interface {
	GetServers(ctx context.Context) ([]*model.Server, error)
	GetServer(ctx context.Context, serverId uuid.UUID) (*model.Server, error)

	GetRoles(ctx context.Context, serverId uuid.UUID) ([]*model.Role, error)
	GetRole(ctx context.Context, serverId uuid.UUID, roleId string) (*model.Role, error)
	DoesRoleExist(ctx context.Context, serverId uuid.UUID, roleId string) (bool, error)
	CreateRole(ctx context.Context, role *model.Role) error
	UpdateRole(ctx context.Context, newRole *model.Role) error
	DeleteRole(ctx context.Context, serverId uuid.UUID, roleId string) error

	GetChannels(ctx context.Context, serverId uuid.UUID) ([]*model.Channel, error)
	GetChannel(ctx context.Context, channelId uuid.UUID) (*model.Channel, error)
	CreateChannel(ctx context.Context, channel *model.Channel) error
	UpdateChannel(ctx context.Context, newChannel *model.Channel) error
	DeleteChannel(ctx context.Context, channelId uuid.UUID) error

	GetMembers(ctx context.Context, serverId uuid.UUID) ([]*model.Member, error)
	GetMemberRoleIds(ctx context.Context, serverId, userId uuid.UUID) ([]string, error)
	AddRoleToMember(ctx context.Context, serverId, userId uuid.UUID, roleId string) error
	RemoveRoleFromMember(ctx context.Context, serverId, userId uuid.UUID, roleId string) error

	GetOverwrites(ctx context.Context, serverId uuid.UUID) ([]*model.Overwrite, error)
	SetOverwrite(ctx context.Context, overwrite *model.Overwrite) error
	DeleteRoleOverwrite(ctx context.Context, channelId uuid.UUID, roleId string) error
	DeleteMemberOverwrite(ctx context.Context, channelId, userId uuid.UUID) error
}
