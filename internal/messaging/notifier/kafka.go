package notifier

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
)

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       event.Topic,
		Async:       true,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(zap.L()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

func (k *kafkaNotifier) RoleUpdate(ctx context.Context, role *model.Role, change event.Change) error {
	payload := event.RoleUpdate{
		Change:   change,
		ServerId: role.ServerId,
		RoleId:   role.Id,
	}
	if change != event.ChangeDelete {
		payload.Role = role
	}

	return k.publish(ctx, event.TypeRoleUpdate, payload, role.ServerId.String())
}

func (k *kafkaNotifier) MemberRolesUpdate(ctx context.Context, serverId, userId uuid.UUID, roleId string, change event.Change) error {
	payload := event.MemberRolesUpdate{
		Change:   change,
		ServerId: serverId,
		UserId:   userId,
		RoleId:   roleId,
	}

	return k.publish(ctx, event.TypeMemberRolesUpdate, payload, serverId.String())
}

func (k *kafkaNotifier) OverwriteUpdate(ctx context.Context, overwrite *model.Overwrite, change event.Change) error {
	payload := event.OverwriteUpdate{
		Change:    change,
		ChannelId: overwrite.ChannelId,
		ServerId:  overwrite.ServerId,
		Target:    overwrite.Target,
		RoleId:    overwrite.RoleId,
		UserId:    overwrite.UserId,
	}
	if change != event.ChangeDelete {
		payload.Overwrite = overwrite
	}

	return k.publish(ctx, event.TypeOverwriteUpdate, payload, overwrite.ServerId.String())
}

func (k *kafkaNotifier) ChannelUpdate(ctx context.Context, channel *model.Channel, change event.Change) error {
	payload := event.ChannelUpdate{
		Change:    change,
		ChannelId: channel.Id,
		ServerId:  channel.ServerId,
	}
	if change != event.ChangeDelete {
		payload.Channel = channel
	}

	return k.publish(ctx, event.TypeChannelUpdate, payload, channel.ServerId.String())
}

func (k *kafkaNotifier) publish(ctx context.Context, eventType string, payload any, key string) error {
	bytes, err := event.Marshal(eventType, payload)
	if err != nil {
		return err
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   bytes,
		Headers: []kafka.Header{{Key: "X-Event-Type", Value: []byte(eventType)}},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
