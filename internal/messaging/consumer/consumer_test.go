package consumer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"permission-engine/internal/messaging/event"
	"permission-engine/internal/permissions"
	"permission-engine/internal/repository/model"
	"permission-engine/internal/state"
)

type fakeInvalidator struct {
	channels []uuid.UUID
	servers  []uuid.UUID
}

func (f *fakeInvalidator) InvalidateChannel(_ context.Context, channelId uuid.UUID) error {
	f.channels = append(f.channels, channelId)
	return nil
}

func (f *fakeInvalidator) InvalidateServer(_ context.Context, serverId uuid.UUID) error {
	f.servers = append(f.servers, serverId)
	return nil
}

func newTestConsumer() (*consumer, *state.Store, *fakeInvalidator) {
	store := state.NewStore()
	cache := &fakeInvalidator{}
	return &consumer{
		logger: zap.NewNop().Sugar(),
		store:  store,
		cache:  cache,
	}, store, cache
}

func marshal(t *testing.T, eventType string, payload any) []byte {
	t.Helper()
	raw, err := event.Marshal(eventType, payload)
	assert.NoError(t, err)
	return raw
}

func TestConsumer_RoleUpdate(t *testing.T) {
	c, store, cache := newTestConsumer()
	serverId := uuid.New()

	role := &model.Role{Id: "mod", ServerId: serverId, Priority: 10}
	raw := marshal(t, event.TypeRoleUpdate, event.RoleUpdate{
		Change: event.ChangeCreate, ServerId: serverId, RoleId: role.Id, Role: role,
	})
	assert.NoError(t, c.handle(context.Background(), raw))

	_, ok := store.View().RoleInfo(serverId, "mod")
	assert.True(t, ok)
	assert.Equal(t, []uuid.UUID{serverId}, cache.servers)

	raw = marshal(t, event.TypeRoleUpdate, event.RoleUpdate{
		Change: event.ChangeDelete, ServerId: serverId, RoleId: role.Id,
	})
	assert.NoError(t, c.handle(context.Background(), raw))

	_, ok = store.View().RoleInfo(serverId, "mod")
	assert.False(t, ok)
}

func TestConsumer_RoleUpdateWithoutBodyErrors(t *testing.T) {
	c, _, _ := newTestConsumer()

	raw := marshal(t, event.TypeRoleUpdate, event.RoleUpdate{
		Change: event.ChangeCreate, ServerId: uuid.New(), RoleId: "mod",
	})
	assert.Error(t, c.handle(context.Background(), raw))
}

func TestConsumer_MemberRolesUpdate(t *testing.T) {
	c, store, cache := newTestConsumer()
	serverId := uuid.New()
	userId := uuid.New()

	raw := marshal(t, event.TypeMemberRolesUpdate, event.MemberRolesUpdate{
		Change: event.ChangeCreate, ServerId: serverId, UserId: userId, RoleId: "mod",
	})
	assert.NoError(t, c.handle(context.Background(), raw))

	roles := store.View().MemberRoles(serverId, userId)
	assert.Contains(t, roles, permissions.Role{ID: "mod"})
	assert.Equal(t, []uuid.UUID{serverId}, cache.servers)

	raw = marshal(t, event.TypeMemberRolesUpdate, event.MemberRolesUpdate{
		Change: event.ChangeDelete, ServerId: serverId, UserId: userId, RoleId: "mod",
	})
	assert.NoError(t, c.handle(context.Background(), raw))

	roles = store.View().MemberRoles(serverId, userId)
	assert.NotContains(t, roles, permissions.Role{ID: "mod"})
}

func TestConsumer_OverwriteUpdate(t *testing.T) {
	c, store, cache := newTestConsumer()
	serverId := uuid.New()
	channelId := uuid.New()

	overwrite := &model.Overwrite{
		ChannelId: channelId, ServerId: serverId,
		Target: model.TargetRole, RoleId: "mod",
		Permissions: []model.PermissionNode{
			{Type: permissions.SendMessages, State: permissions.Denied},
		},
	}
	raw := marshal(t, event.TypeOverwriteUpdate, event.OverwriteUpdate{
		Change: event.ChangeCreate, ChannelId: channelId, ServerId: serverId,
		Target: model.TargetRole, RoleId: "mod", Overwrite: overwrite,
	})
	assert.NoError(t, c.handle(context.Background(), raw))

	set := store.View().RoleOverwrite(channelId, "mod")
	assert.Equal(t, permissions.Denied, set.State(permissions.SendMessages))
	assert.Equal(t, []uuid.UUID{channelId}, cache.channels)

	raw = marshal(t, event.TypeOverwriteUpdate, event.OverwriteUpdate{
		Change: event.ChangeDelete, ChannelId: channelId, ServerId: serverId,
		Target: model.TargetRole, RoleId: "mod",
	})
	assert.NoError(t, c.handle(context.Background(), raw))
	assert.True(t, store.View().RoleOverwrite(channelId, "mod").Equal(permissions.EmptySet()))
}

func TestConsumer_ChannelUpdate(t *testing.T) {
	c, store, _ := newTestConsumer()
	serverId := uuid.New()
	channelId := uuid.New()

	channel := &model.Channel{Id: channelId, ServerId: serverId, Name: "general", Kind: permissions.KindText}
	raw := marshal(t, event.TypeChannelUpdate, event.ChannelUpdate{
		Change: event.ChangeCreate, ChannelId: channelId, ServerId: serverId, Channel: channel,
	})
	assert.NoError(t, c.handle(context.Background(), raw))
	assert.Equal(t, serverId, store.View().Server(channelId))

	raw = marshal(t, event.TypeChannelUpdate, event.ChannelUpdate{
		Change: event.ChangeDelete, ChannelId: channelId, ServerId: serverId,
	})
	assert.NoError(t, c.handle(context.Background(), raw))
	assert.Equal(t, uuid.Nil, store.View().Server(channelId))
}

func TestConsumer_VisibilityUpdate(t *testing.T) {
	c, store, _ := newTestConsumer()
	serverId := uuid.New()
	channelId := uuid.New()
	userId := uuid.New()

	store.PutChannel(&model.Channel{Id: channelId, ServerId: serverId, Kind: permissions.KindText})

	raw := marshal(t, event.TypeVisibilityUpdate, event.VisibilityUpdate{
		ChannelId: channelId, UserId: userId, Visible: false,
	})
	assert.NoError(t, c.handle(context.Background(), raw))
	assert.False(t, store.View().IsVisible(channelId, userId))

	raw = marshal(t, event.TypeVisibilityUpdate, event.VisibilityUpdate{
		ChannelId: channelId, UserId: userId, Visible: true,
	})
	assert.NoError(t, c.handle(context.Background(), raw))
	assert.True(t, store.View().IsVisible(channelId, userId))
}

func TestConsumer_UnknownEventType(t *testing.T) {
	c, _, _ := newTestConsumer()

	raw := marshal(t, "unknown_event", struct{}{})
	assert.Error(t, c.handle(context.Background(), raw))
}

func TestConsumer_NilCacheIsTolerated(t *testing.T) {
	c, _, _ := newTestConsumer()
	c.cache = nil

	raw := marshal(t, event.TypeMemberRolesUpdate, event.MemberRolesUpdate{
		Change: event.ChangeCreate, ServerId: uuid.New(), UserId: uuid.New(), RoleId: "mod",
	})
	assert.NoError(t, c.handle(context.Background(), raw))
}
