// Package command ingests management commands from peer services. Commands
// are executed through the permission service, which persists the change and
// re-emits it as a state event for other engine instances. The command topic
// is load-balanced across instances; the event topic is broadcast.
package command

import (
	"context"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"permission-engine/internal/config"
	"permission-engine/internal/messaging/event"
	"permission-engine/internal/repository/model"
	"permission-engine/internal/service"
)

// Topic carries management commands addressed to the engine.
const Topic = "permission-engine-commands"

const groupID = "permission-engine"

const (
	TypeRoleCreate       = "role_create"
	TypeRoleUpdate       = "role_update"
	TypeRoleDelete       = "role_delete"
	TypeMemberRoleAdd    = "member_role_add"
	TypeMemberRoleRemove = "member_role_remove"
	TypeOverwriteSet     = "overwrite_set"
	TypeOverwriteDelete  = "overwrite_delete"
	TypeChannelCreate    = "channel_create"
	TypeChannelUpdate    = "channel_update"
	TypeChannelDelete    = "channel_delete"
)

type handler struct {
	logger *zap.SugaredLogger
	svc    *service.PermissionService
}

// Run starts executing commands until ctx is cancelled.
func Run(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig,
	svc *service.PermissionService) {

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		GroupID:     groupID,
		Topic:       Topic,
		ErrorLogger: zap.NewStdLog(zap.L()),
	})

	h := &handler{
		logger: logger,
		svc:    svc,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					break
				}
				logger.Errorw("failed to read command", "error", err)
				continue
			}

			if err := h.handle(ctx, msg.Value); err != nil {
				logger.Errorw("failed to execute command", "error", err)
			}
		}

		logger.Info("shutting down command reader")
		if err := reader.Close(); err != nil {
			logger.Errorw("failed to close command reader", "error", err)
		}
	}()
}

func (h *handler) handle(ctx context.Context, raw []byte) error {
	envelope, err := event.Unmarshal(raw)
	if err != nil {
		return err
	}

	switch envelope.Type {
	case TypeRoleCreate:
		var c RoleCreate
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		if c.Role == nil {
			return fmt.Errorf("%s without role body", envelope.Type)
		}
		return h.svc.CreateRole(ctx, c.Role)

	case TypeRoleUpdate:
		var c RoleUpdate
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		_, err := h.svc.UpdateRole(ctx, c.ServerId, c.RoleId, service.UpdateRoleRequest{
			Priority:         c.Priority,
			DisplayName:      c.DisplayName,
			SetPermissions:   c.SetPermissions,
			UnsetPermissions: c.UnsetPermissions,
		})
		return err

	case TypeRoleDelete:
		var c RoleDelete
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		return h.svc.DeleteRole(ctx, c.ServerId, c.RoleId)

	case TypeMemberRoleAdd:
		var c MemberRole
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		return h.svc.AddRoleToMember(ctx, c.ServerId, c.UserId, c.RoleId)

	case TypeMemberRoleRemove:
		var c MemberRole
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		return h.svc.RemoveRoleFromMember(ctx, c.ServerId, c.UserId, c.RoleId)

	case TypeOverwriteSet:
		var c OverwriteSet
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		if c.Overwrite == nil {
			return fmt.Errorf("%s without overwrite body", envelope.Type)
		}
		return h.svc.SetOverwrite(ctx, c.Overwrite)

	case TypeOverwriteDelete:
		var c OverwriteDelete
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		switch c.Target {
		case model.TargetRole:
			return h.svc.DeleteRoleOverwrite(ctx, c.ServerId, c.ChannelId, c.RoleId)
		case model.TargetMember:
			return h.svc.DeleteMemberOverwrite(ctx, c.ServerId, c.ChannelId, c.UserId)
		default:
			return fmt.Errorf("unknown overwrite target %q", c.Target)
		}

	case TypeChannelCreate:
		var c ChannelUpsert
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		if c.Channel == nil {
			return fmt.Errorf("%s without channel body", envelope.Type)
		}
		return h.svc.CreateChannel(ctx, c.Channel)

	case TypeChannelUpdate:
		var c ChannelUpsert
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		if c.Channel == nil {
			return fmt.Errorf("%s without channel body", envelope.Type)
		}
		return h.svc.UpdateChannel(ctx, c.Channel)

	case TypeChannelDelete:
		var c ChannelDelete
		if err := envelope.Decode(&c); err != nil {
			return err
		}
		return h.svc.DeleteChannel(ctx, c.ServerId, c.ChannelId)

	default:
		return fmt.Errorf("unknown command type %q", envelope.Type)
	}
}
