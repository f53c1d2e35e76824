// Package consumer ingests permission domain change events and applies them
// to the in-memory state store. This is the asynchronous mutation path the
// store's copy-on-write views isolate resolutions from.
package consumer

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"permission-engine/internal/config"
	"permission-engine/internal/messaging/event"
	"permission-engine/internal/repository/model"
	"permission-engine/internal/state"
)

// CacheInvalidator drops cached resolution results made stale by an ingested
// event.
type CacheInvalidator interface {
	InvalidateChannel(ctx context.Context, channelId uuid.UUID) error
	InvalidateServer(ctx context.Context, serverId uuid.UUID) error
}

type consumer struct {
	logger *zap.SugaredLogger
	reader *kafka.Reader
	store  *state.Store
	cache  CacheInvalidator
}

// Run starts consuming events until ctx is cancelled. cache may be nil when
// no result cache is configured.
func Run(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig,
	store *state.Store, cache CacheInvalidator) {

	// Every instance must observe every event, so the consumer group is
	// unique per instance rather than shared.
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		GroupID:     fmt.Sprintf("permission-engine-%s", uuid.NewString()),
		Topic:       event.Topic,
		ErrorLogger: zap.NewStdLog(zap.L()),
	})

	c := &consumer{
		logger: logger,
		reader: reader,
		store:  store,
		cache:  cache,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.consume(ctx)

		logger.Info("shutting down kafka reader")
		if err := reader.Close(); err != nil {
			logger.Errorw("failed to close kafka reader", "error", err)
		}
	}()
}

func (c *consumer) consume(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Errorw("failed to read message", "error", err)
			continue
		}

		if err := c.handle(ctx, msg.Value); err != nil {
			c.logger.Errorw("failed to handle event", "error", err)
		}
	}
}

func (c *consumer) handle(ctx context.Context, raw []byte) error {
	envelope, err := event.Unmarshal(raw)
	if err != nil {
		return err
	}

	switch envelope.Type {
	case event.TypeRoleUpdate:
		var e event.RoleUpdate
		if err := envelope.Decode(&e); err != nil {
			return err
		}
		return c.applyRoleUpdate(ctx, &e)

	case event.TypeMemberRolesUpdate:
		var e event.MemberRolesUpdate
		if err := envelope.Decode(&e); err != nil {
			return err
		}
		return c.applyMemberRolesUpdate(ctx, &e)

	case event.TypeOverwriteUpdate:
		var e event.OverwriteUpdate
		if err := envelope.Decode(&e); err != nil {
			return err
		}
		return c.applyOverwriteUpdate(ctx, &e)

	case event.TypeChannelUpdate:
		var e event.ChannelUpdate
		if err := envelope.Decode(&e); err != nil {
			return err
		}
		return c.applyChannelUpdate(ctx, &e)

	case event.TypeVisibilityUpdate:
		var e event.VisibilityUpdate
		if err := envelope.Decode(&e); err != nil {
			return err
		}
		c.store.SetVisibility(e.ChannelId, e.UserId, e.Visible)
		return nil

	default:
		return fmt.Errorf("unknown event type %q", envelope.Type)
	}
}

func (c *consumer) applyRoleUpdate(ctx context.Context, e *event.RoleUpdate) error {
	switch e.Change {
	case event.ChangeDelete:
		c.store.DeleteRole(e.ServerId, e.RoleId)
	default:
		if e.Role == nil {
			return fmt.Errorf("role_update %s without role body", e.Change)
		}
		c.store.PutRole(e.Role)
	}
	return c.invalidateServer(ctx, e.ServerId)
}

func (c *consumer) applyMemberRolesUpdate(ctx context.Context, e *event.MemberRolesUpdate) error {
	switch e.Change {
	case event.ChangeDelete:
		c.store.RemoveMemberRole(e.ServerId, e.UserId, e.RoleId)
	default:
		c.store.AddMemberRole(e.ServerId, e.UserId, e.RoleId)
	}
	return c.invalidateServer(ctx, e.ServerId)
}

func (c *consumer) applyOverwriteUpdate(ctx context.Context, e *event.OverwriteUpdate) error {
	switch e.Change {
	case event.ChangeDelete:
		switch e.Target {
		case model.TargetRole:
			c.store.DeleteRoleOverwrite(e.ChannelId, e.RoleId)
		default:
			c.store.DeleteMemberOverwrite(e.ChannelId, e.UserId)
		}
	default:
		if e.Overwrite == nil {
			return fmt.Errorf("overwrite_update %s without overwrite body", e.Change)
		}
		c.store.PutOverwrite(e.Overwrite)
	}
	return c.invalidateChannel(ctx, e.ChannelId)
}

func (c *consumer) applyChannelUpdate(ctx context.Context, e *event.ChannelUpdate) error {
	switch e.Change {
	case event.ChangeDelete:
		c.store.DeleteChannel(e.ChannelId)
	default:
		if e.Channel == nil {
			return fmt.Errorf("channel_update %s without channel body", e.Change)
		}
		c.store.PutChannel(e.Channel)
	}
	return c.invalidateChannel(ctx, e.ChannelId)
}

func (c *consumer) invalidateServer(ctx context.Context, serverId uuid.UUID) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.InvalidateServer(ctx, serverId)
}

func (c *consumer) invalidateChannel(ctx context.Context, channelId uuid.UUID) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.InvalidateChannel(ctx, channelId)
}
