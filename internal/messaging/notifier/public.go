package notifier

import (
	"context"

	"github.com/google/uuid"

	"permission-engine/internal/messaging/event"
	"permission-engine/internal/repository/model"
)

// Notifier publishes permission domain changes for peer services (and peer
// engine instances, whose consumers keep their state stores in sync).
type Notifier interface {
	RoleUpdate(ctx context.Context, role *model.Role, change event.Change) error
	MemberRolesUpdate(ctx context.Context, serverId, userId uuid.UUID, roleId string, change event.Change) error
	OverwriteUpdate(ctx context.Context, overwrite *model.Overwrite, change event.Change) error
	ChannelUpdate(ctx context.Context, channel *model.Channel, change event.Change) error
}
