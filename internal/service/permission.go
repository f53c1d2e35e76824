package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"permission-engine/internal/messaging/event"
	"permission-engine/internal/messaging/notifier"
	"permission-engine/internal/permissions"
	"permission-engine/internal/repository"
	"permission-engine/internal/repository/model"
	"permission-engine/internal/state"
)

var ErrRoleNotFound = errors.New("role not found")

// Cache stores resolved effective permission sets. May be left nil to resolve
// everything from the state store.
type Cache interface {
	Get(ctx context.Context, channelId, userId uuid.UUID) (permissions.Set, bool, error)
	Put(ctx context.Context, serverId, channelId, userId uuid.UUID, set permissions.Set) error
	InvalidateChannel(ctx context.Context, channelId uuid.UUID) error
	InvalidateServer(ctx context.Context, serverId uuid.UUID) error
}

// PermissionService is the single entry point for permission queries and
// domain mutations. Queries resolve against the state store's current view;
// mutations persist first, then update the view, then notify peers.
type PermissionService struct {
	logger *zap.SugaredLogger
	store  *state.Store
	repo   repository.Repository
	notif  notifier.Notifier
	cache  Cache
}

func NewPermissionService(logger *zap.SugaredLogger, store *state.Store, repo repository.Repository,
	notif notifier.Notifier, cache Cache) *PermissionService {

	return &PermissionService{
		logger: logger,
		store:  store,
		repo:   repo,
		notif:  notif,
		cache:  cache,
	}
}

// EffectivePermissions resolves the user's effective permission set in the
// channel, consulting the result cache first. Cache failures degrade to a
// plain resolution.
func (s *PermissionService) EffectivePermissions(ctx context.Context, channelId, userId uuid.UUID) permissions.Set {
	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx, channelId, userId)
		if err != nil {
			s.logger.Errorw("failed to read permission cache", "error", err)
		} else if hit {
			return cached
		}
	}

	view := s.store.View()
	set := permissions.NewResolver(view).EffectivePermissions(channelId, userId)

	if s.cache != nil {
		if err := s.cache.Put(ctx, view.Server(channelId), channelId, userId, set); err != nil {
			s.logger.Errorw("failed to write permission cache", "error", err)
		}
	}

	return set
}

// EffectiveOverwrite resolves the merged overwrite layer only, without the
// server-wide base set and without default-deny closure.
func (s *PermissionService) EffectiveOverwrite(channelId, userId uuid.UUID) permissions.Set {
	return permissions.NewResolver(s.store.View()).EffectiveOverwrite(channelId, userId)
}

func (s *PermissionService) HasPermission(ctx context.Context, channelId, userId uuid.UUID, t permissions.Type) bool {
	return s.EffectivePermissions(ctx, channelId, userId).State(t) == permissions.Allowed
}

func (s *PermissionService) HasAllPermissions(ctx context.Context, channelId, userId uuid.UUID, types ...permissions.Type) bool {
	effective := s.EffectivePermissions(ctx, channelId, userId)
	for _, t := range types {
		if effective.State(t) != permissions.Allowed {
			return false
		}
	}
	return true
}

func (s *PermissionService) HasAnyPermission(ctx context.Context, channelId, userId uuid.UUID, types ...permissions.Type) bool {
	effective := s.EffectivePermissions(ctx, channelId, userId)
	for _, t := range types {
		if effective.State(t) == permissions.Allowed {
			return true
		}
	}
	return false
}

func (s *PermissionService) AllowedPermissions(ctx context.Context, channelId, userId uuid.UUID) []permissions.Type {
	return s.EffectivePermissions(ctx, channelId, userId).Allowed()
}

func (s *PermissionService) DeniedPermissions(ctx context.Context, channelId, userId uuid.UUID) []permissions.Type {
	return s.EffectivePermissions(ctx, channelId, userId).Denied()
}

// CanCreateInvite resolves invite eligibility directly against the current
// view; the visibility predicate makes the result unsuitable for caching by
// channel/user alone.
func (s *PermissionService) CanCreateInvite(channelId, userId uuid.UUID) bool {
	return permissions.NewResolver(s.store.View()).CanCreateInvite(channelId, userId)
}

// ActiveDisplayNameRole returns the highest-priority role with a display name
// among the roles the user holds, or nil when none has one.
func (s *PermissionService) ActiveDisplayNameRole(serverId, userId uuid.UUID) *model.Role {
	roles := s.store.View().RolesOf(serverId, userId)

	// Sort roles by priority
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].Priority < roles[j].Priority
	})

	for _, role := range roles {
		if role.DisplayName != nil {
			return role
		}
	}
	return nil
}

func (s *PermissionService) CreateRole(ctx context.Context, role *model.Role) error {
	if role.Permissions == nil {
		role.Permissions = make([]model.PermissionNode, 0)
	}

	if err := s.repo.CreateRole(ctx, role); err != nil {
		return err
	}
	s.store.PutRole(role)
	s.invalidateServer(ctx, role.ServerId)

	if err := s.notif.RoleUpdate(ctx, role, event.ChangeCreate); err != nil {
		s.logger.Errorw("failed to send role update notification", "error", err)
	}
	return nil
}

// UpdateRoleRequest carries a partial role update. Nil fields are left
// untouched; SetPermissions overrides existing nodes by type and
// UnsetPermissions removes nodes, returning those types to Unset.
type UpdateRoleRequest struct {
	Priority    *uint32
	DisplayName *string

	SetPermissions   []model.PermissionNode
	UnsetPermissions []permissions.Type
}

func (s *PermissionService) UpdateRole(ctx context.Context, serverId uuid.UUID, roleId string, req UpdateRoleRequest) (*model.Role, error) {
	role, err := s.repo.GetRole(ctx, serverId, roleId)
	if err != nil {
		return nil, err
	}

	if req.Priority != nil {
		role.Priority = *req.Priority
	}
	if req.DisplayName != nil {
		role.DisplayName = req.DisplayName
	}

	for _, t := range req.UnsetPermissions {
		for i, node := range role.Permissions {
			if node.Type == t {
				role.Permissions = append(role.Permissions[:i], role.Permissions[i+1:]...)
				break
			}
		}
	}

	// Update the permission state if it already exists, otherwise add it
	for _, perm := range req.SetPermissions {
		existed := false
		for i, node := range role.Permissions {
			if node.Type == perm.Type {
				role.Permissions[i].State = perm.State
				existed = true
				break
			}
		}
		if !existed {
			role.Permissions = append(role.Permissions, perm)
		}
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return nil, err
	}
	s.store.PutRole(role)
	s.invalidateServer(ctx, serverId)

	if err := s.notif.RoleUpdate(ctx, role, event.ChangeModify); err != nil {
		s.logger.Errorw("failed to send role update notification", "error", err)
	}
	return role, nil
}

func (s *PermissionService) DeleteRole(ctx context.Context, serverId uuid.UUID, roleId string) error {
	if err := s.repo.DeleteRole(ctx, serverId, roleId); err != nil {
		return err
	}
	s.store.DeleteRole(serverId, roleId)
	s.invalidateServer(ctx, serverId)

	role := &model.Role{Id: roleId, ServerId: serverId}
	if err := s.notif.RoleUpdate(ctx, role, event.ChangeDelete); err != nil {
		s.logger.Errorw("failed to send role update notification", "error", err)
	}
	return nil
}

func (s *PermissionService) AddRoleToMember(ctx context.Context, serverId, userId uuid.UUID, roleId string) error {
	ok, err := s.repo.DoesRoleExist(ctx, serverId, roleId)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrRoleNotFound, roleId)
	}

	if err := s.repo.AddRoleToMember(ctx, serverId, userId, roleId); err != nil {
		return err
	}
	s.store.AddMemberRole(serverId, userId, roleId)
	s.invalidateServer(ctx, serverId)

	if err := s.notif.MemberRolesUpdate(ctx, serverId, userId, roleId, event.ChangeCreate); err != nil {
		s.logger.Errorw("failed to send member roles update", "error", err)
	}
	return nil
}

func (s *PermissionService) RemoveRoleFromMember(ctx context.Context, serverId, userId uuid.UUID, roleId string) error {
	if err := s.repo.RemoveRoleFromMember(ctx, serverId, userId, roleId); err != nil {
		return err
	}
	s.store.RemoveMemberRole(serverId, userId, roleId)
	s.invalidateServer(ctx, serverId)

	if err := s.notif.MemberRolesUpdate(ctx, serverId, userId, roleId, event.ChangeDelete); err != nil {
		s.logger.Errorw("failed to send member roles update", "error", err)
	}
	return nil
}

func (s *PermissionService) SetOverwrite(ctx context.Context, overwrite *model.Overwrite) error {
	if err := s.repo.SetOverwrite(ctx, overwrite); err != nil {
		return err
	}
	s.store.PutOverwrite(overwrite)
	s.invalidateChannel(ctx, overwrite.ChannelId)

	if err := s.notif.OverwriteUpdate(ctx, overwrite, event.ChangeModify); err != nil {
		s.logger.Errorw("failed to send overwrite update", "error", err)
	}
	return nil
}

func (s *PermissionService) DeleteRoleOverwrite(ctx context.Context, serverId, channelId uuid.UUID, roleId string) error {
	if err := s.repo.DeleteRoleOverwrite(ctx, channelId, roleId); err != nil {
		return err
	}
	s.store.DeleteRoleOverwrite(channelId, roleId)
	s.invalidateChannel(ctx, channelId)

	overwrite := &model.Overwrite{ChannelId: channelId, ServerId: serverId, Target: model.TargetRole, RoleId: roleId}
	if err := s.notif.OverwriteUpdate(ctx, overwrite, event.ChangeDelete); err != nil {
		s.logger.Errorw("failed to send overwrite update", "error", err)
	}
	return nil
}

func (s *PermissionService) DeleteMemberOverwrite(ctx context.Context, serverId, channelId, userId uuid.UUID) error {
	if err := s.repo.DeleteMemberOverwrite(ctx, channelId, userId); err != nil {
		return err
	}
	s.store.DeleteMemberOverwrite(channelId, userId)
	s.invalidateChannel(ctx, channelId)

	overwrite := &model.Overwrite{ChannelId: channelId, ServerId: serverId, Target: model.TargetMember, UserId: userId}
	if err := s.notif.OverwriteUpdate(ctx, overwrite, event.ChangeDelete); err != nil {
		s.logger.Errorw("failed to send overwrite update", "error", err)
	}
	return nil
}

func (s *PermissionService) CreateChannel(ctx context.Context, channel *model.Channel) error {
	if err := s.repo.CreateChannel(ctx, channel); err != nil {
		return err
	}
	s.store.PutChannel(channel)

	if err := s.notif.ChannelUpdate(ctx, channel, event.ChangeCreate); err != nil {
		s.logger.Errorw("failed to send channel update", "error", err)
	}
	return nil
}

func (s *PermissionService) UpdateChannel(ctx context.Context, channel *model.Channel) error {
	if err := s.repo.UpdateChannel(ctx, channel); err != nil {
		return err
	}
	s.store.PutChannel(channel)
	s.invalidateChannel(ctx, channel.Id)

	if err := s.notif.ChannelUpdate(ctx, channel, event.ChangeModify); err != nil {
		s.logger.Errorw("failed to send channel update", "error", err)
	}
	return nil
}

func (s *PermissionService) DeleteChannel(ctx context.Context, serverId, channelId uuid.UUID) error {
	if err := s.repo.DeleteChannel(ctx, channelId); err != nil {
		return err
	}
	s.store.DeleteChannel(channelId)
	s.invalidateChannel(ctx, channelId)

	channel := &model.Channel{Id: channelId, ServerId: serverId}
	if err := s.notif.ChannelUpdate(ctx, channel, event.ChangeDelete); err != nil {
		s.logger.Errorw("failed to send channel update", "error", err)
	}
	return nil
}

func (s *PermissionService) invalidateServer(ctx context.Context, serverId uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateServer(ctx, serverId); err != nil {
		s.logger.Errorw("failed to invalidate server cache", "error", err, "serverId", serverId)
	}
}

func (s *PermissionService) invalidateChannel(ctx context.Context, channelId uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateChannel(ctx, channelId); err != nil {
		s.logger.Errorw("failed to invalidate channel cache", "error", err, "channelId", channelId)
	}
}
