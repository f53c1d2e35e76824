package command

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"permission-engine/internal/messaging/event"
	"permission-engine/internal/messaging/notifier"
	"permission-engine/internal/permissions"
	"permission-engine/internal/repository"
	"permission-engine/internal/repository/model"
	"permission-engine/internal/service"
	"permission-engine/internal/state"
	"permission-engine/internal/utils"
)

var (
	testServerId  = uuid.New()
	testChannelId = uuid.New()
	testUserId    = uuid.New()
)

func newTestHandler(t *testing.T) (*handler, *repository.MockRepository, *notifier.MockNotifier, *state.Store) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	mockNotifier := notifier.NewMockNotifier(mockCntrl)

	store := state.NewStore()
	store.PutServer(&model.Server{Id: testServerId, Name: "test server", OwnerId: uuid.New()})
	store.PutChannel(&model.Channel{Id: testChannelId, ServerId: testServerId, Name: "general", Kind: permissions.KindText})

	svc := service.NewPermissionService(zap.NewNop().Sugar(), store, mockRepo, mockNotifier, nil)
	return &handler{logger: zap.NewNop().Sugar(), svc: svc}, mockRepo, mockNotifier, store
}

func marshal(t *testing.T, commandType string, payload any) []byte {
	t.Helper()
	raw, err := event.Marshal(commandType, payload)
	assert.NoError(t, err)
	return raw
}

func TestHandler_RoleCreate(t *testing.T) {
	h, mockRepo, mockNotifier, store := newTestHandler(t)
	ctx := context.Background()

	role := &model.Role{Id: "mod", ServerId: testServerId, Priority: 10, Permissions: make([]model.PermissionNode, 0)}

	mockRepo.EXPECT().CreateRole(ctx, role).Return(nil)
	mockNotifier.EXPECT().RoleUpdate(ctx, role, event.ChangeCreate).Return(nil)

	assert.NoError(t, h.handle(ctx, marshal(t, TypeRoleCreate, RoleCreate{Role: role})))

	_, ok := store.View().RoleInfo(testServerId, "mod")
	assert.True(t, ok)
}

func TestHandler_RoleCreateWithoutBodyErrors(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	assert.Error(t, h.handle(context.Background(), marshal(t, TypeRoleCreate, RoleCreate{})))
}

func TestHandler_RoleUpdate(t *testing.T) {
	h, mockRepo, mockNotifier, _ := newTestHandler(t)
	ctx := context.Background()

	dbRole := &model.Role{Id: "mod", ServerId: testServerId, Priority: 10, Permissions: []model.PermissionNode{}}
	expected := &model.Role{
		Id: "mod", ServerId: testServerId, Priority: 5,
		DisplayName: utils.PointerOf("Moderator"),
		Permissions: []model.PermissionNode{
			{Type: permissions.KickMembers, State: permissions.Allowed},
		},
	}

	mockRepo.EXPECT().GetRole(ctx, testServerId, "mod").Return(dbRole, nil)
	mockRepo.EXPECT().UpdateRole(ctx, expected).Return(nil)
	mockNotifier.EXPECT().RoleUpdate(ctx, expected, event.ChangeModify).Return(nil)

	assert.NoError(t, h.handle(ctx, marshal(t, TypeRoleUpdate, RoleUpdate{
		ServerId:    testServerId,
		RoleId:      "mod",
		Priority:    utils.PointerOf(uint32(5)),
		DisplayName: utils.PointerOf("Moderator"),
		SetPermissions: []model.PermissionNode{
			{Type: permissions.KickMembers, State: permissions.Allowed},
		},
	})))
}

func TestHandler_RoleDelete(t *testing.T) {
	h, mockRepo, mockNotifier, _ := newTestHandler(t)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteRole(ctx, testServerId, "mod").Return(nil)
	mockNotifier.EXPECT().RoleUpdate(ctx, &model.Role{Id: "mod", ServerId: testServerId}, event.ChangeDelete).Return(nil)

	assert.NoError(t, h.handle(ctx, marshal(t, TypeRoleDelete, RoleDelete{ServerId: testServerId, RoleId: "mod"})))
}

func TestHandler_MemberRoleAddAndRemove(t *testing.T) {
	h, mockRepo, mockNotifier, store := newTestHandler(t)
	ctx := context.Background()

	mockRepo.EXPECT().DoesRoleExist(ctx, testServerId, "mod").Return(true, nil)
	mockRepo.EXPECT().AddRoleToMember(ctx, testServerId, testUserId, "mod").Return(nil)
	mockNotifier.EXPECT().MemberRolesUpdate(ctx, testServerId, testUserId, "mod", event.ChangeCreate).Return(nil)

	assert.NoError(t, h.handle(ctx, marshal(t, TypeMemberRoleAdd, MemberRole{
		ServerId: testServerId, UserId: testUserId, RoleId: "mod",
	})))
	assert.Contains(t, store.View().MemberRoles(testServerId, testUserId), permissions.Role{ID: "mod"})

	mockRepo.EXPECT().RemoveRoleFromMember(ctx, testServerId, testUserId, "mod").Return(nil)
	mockNotifier.EXPECT().MemberRolesUpdate(ctx, testServerId, testUserId, "mod", event.ChangeDelete).Return(nil)

	assert.NoError(t, h.handle(ctx, marshal(t, TypeMemberRoleRemove, MemberRole{
		ServerId: testServerId, UserId: testUserId, RoleId: "mod",
	})))
	assert.NotContains(t, store.View().MemberRoles(testServerId, testUserId), permissions.Role{ID: "mod"})
}

func TestHandler_OverwriteSetAndDelete(t *testing.T) {
	h, mockRepo, mockNotifier, store := newTestHandler(t)
	ctx := context.Background()

	overwrite := &model.Overwrite{
		ChannelId: testChannelId, ServerId: testServerId,
		Target: model.TargetRole, RoleId: model.DefaultRoleId,
		Permissions: []model.PermissionNode{
			{Type: permissions.SendMessages, State: permissions.Denied},
		},
	}

	mockRepo.EXPECT().SetOverwrite(ctx, overwrite).Return(nil)
	mockNotifier.EXPECT().OverwriteUpdate(ctx, overwrite, event.ChangeModify).Return(nil)

	assert.NoError(t, h.handle(ctx, marshal(t, TypeOverwriteSet, OverwriteSet{Overwrite: overwrite})))
	assert.Equal(t, permissions.Denied, store.View().RoleOverwrite(testChannelId, model.DefaultRoleId).State(permissions.SendMessages))

	mockRepo.EXPECT().DeleteRoleOverwrite(ctx, testChannelId, model.DefaultRoleId).Return(nil)
	mockNotifier.EXPECT().OverwriteUpdate(ctx,
		&model.Overwrite{ChannelId: testChannelId, ServerId: testServerId, Target: model.TargetRole, RoleId: model.DefaultRoleId},
		event.ChangeDelete).Return(nil)

	assert.NoError(t, h.handle(ctx, marshal(t, TypeOverwriteDelete, OverwriteDelete{
		ServerId: testServerId, ChannelId: testChannelId, Target: model.TargetRole, RoleId: model.DefaultRoleId,
	})))
	assert.True(t, store.View().RoleOverwrite(testChannelId, model.DefaultRoleId).Equal(permissions.EmptySet()))
}

func TestHandler_OverwriteDeleteUnknownTargetErrors(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	assert.Error(t, h.handle(context.Background(), marshal(t, TypeOverwriteDelete, OverwriteDelete{
		ServerId: testServerId, ChannelId: testChannelId, Target: "everyone",
	})))
}

func TestHandler_ChannelLifecycle(t *testing.T) {
	h, mockRepo, mockNotifier, store := newTestHandler(t)
	ctx := context.Background()

	channel := &model.Channel{Id: uuid.New(), ServerId: testServerId, Name: "voice", Kind: permissions.KindVoice}

	mockRepo.EXPECT().CreateChannel(ctx, channel).Return(nil)
	mockNotifier.EXPECT().ChannelUpdate(ctx, channel, event.ChangeCreate).Return(nil)
	assert.NoError(t, h.handle(ctx, marshal(t, TypeChannelCreate, ChannelUpsert{Channel: channel})))
	assert.Equal(t, testServerId, store.View().Server(channel.Id))

	mockRepo.EXPECT().DeleteChannel(ctx, channel.Id).Return(nil)
	mockNotifier.EXPECT().ChannelUpdate(ctx,
		&model.Channel{Id: channel.Id, ServerId: testServerId}, event.ChangeDelete).Return(nil)
	assert.NoError(t, h.handle(ctx, marshal(t, TypeChannelDelete, ChannelDelete{
		ServerId: testServerId, ChannelId: channel.Id,
	})))
	assert.Equal(t, uuid.Nil, store.View().Server(channel.Id))
}

func TestHandler_UnknownCommandErrors(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	assert.Error(t, h.handle(context.Background(), marshal(t, "unknown_command", struct{}{})))
}
