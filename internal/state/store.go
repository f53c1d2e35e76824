// Package state keeps an in-memory, copy-on-write view of the permission
// domain. Readers take an immutable *View and resolve against it; writers
// build a replacement view and swap it in atomically. A resolution therefore
// always observes a consistent point-in-time snapshot, no matter how the
// ingestion path mutates the store concurrently.
package state

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"permission-engine/internal/permissions"
	"permission-engine/internal/repository/model"
)

// Loader is the subset of the repository the store seeds itself from.
type Loader interface {
	GetServers(ctx context.Context) ([]*model.Server, error)
	GetChannels(ctx context.Context, serverId uuid.UUID) ([]*model.Channel, error)
	GetRoles(ctx context.Context, serverId uuid.UUID) ([]*model.Role, error)
	GetMembers(ctx context.Context, serverId uuid.UUID) ([]*model.Member, error)
	GetOverwrites(ctx context.Context, serverId uuid.UUID) ([]*model.Overwrite, error)
}

// Store holds the current view. All mutators serialize on an internal mutex;
// View never blocks.
type Store struct {
	mu   sync.Mutex
	view atomic.Pointer[View]
}

func NewStore() *Store {
	s := &Store{}
	s.view.Store(newView())
	return s
}

// View returns the current immutable snapshot. Values reachable from a view
// must never be mutated.
func (s *Store) View() *View {
	return s.view.Load()
}

// Load seeds the store from persistent storage, replacing the current view.
func (s *Store) Load(ctx context.Context, loader Loader) error {
	view := newView()

	servers, err := loader.GetServers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load servers: %w", err)
	}

	for _, server := range servers {
		view.servers[server.Id] = server

		channels, err := loader.GetChannels(ctx, server.Id)
		if err != nil {
			return fmt.Errorf("failed to load channels for server %s: %w", server.Id, err)
		}
		for _, channel := range channels {
			view.channels[channel.Id] = channel
		}

		roles, err := loader.GetRoles(ctx, server.Id)
		if err != nil {
			return fmt.Errorf("failed to load roles for server %s: %w", server.Id, err)
		}
		for _, role := range roles {
			view.putRole(role)
		}

		members, err := loader.GetMembers(ctx, server.Id)
		if err != nil {
			return fmt.Errorf("failed to load members for server %s: %w", server.Id, err)
		}
		for _, member := range members {
			view.putMember(member)
		}

		overwrites, err := loader.GetOverwrites(ctx, server.Id)
		if err != nil {
			return fmt.Errorf("failed to load overwrites for server %s: %w", server.Id, err)
		}
		for _, overwrite := range overwrites {
			view.putOverwrite(overwrite)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Store(view)
	return nil
}

func (s *Store) PutServer(server *model.Server) {
	s.update(func(v *View) {
		v.servers[server.Id] = server
	})
}

func (s *Store) PutChannel(channel *model.Channel) {
	s.update(func(v *View) {
		v.channels[channel.Id] = channel
	})
}

// DeleteChannel removes a channel together with its overwrites and
// visibility entries.
func (s *Store) DeleteChannel(channelId uuid.UUID) {
	s.update(func(v *View) {
		delete(v.channels, channelId)
		delete(v.roleOverwrites, channelId)
		delete(v.memberOverwrites, channelId)
		for key := range v.hidden {
			if key.channelId == channelId {
				delete(v.hidden, key)
			}
		}
	})
}

func (s *Store) PutRole(role *model.Role) {
	s.update(func(v *View) {
		v.putRole(role)
	})
}

func (s *Store) DeleteRole(serverId uuid.UUID, roleId string) {
	s.update(func(v *View) {
		if roles, ok := v.roles[serverId]; ok {
			delete(roles, roleId)
		}
	})
}

func (s *Store) PutMember(member *model.Member) {
	s.update(func(v *View) {
		v.putMember(member)
	})
}

// AddMemberRole grants a role to a member, materializing an unknown member
// with the default role first.
func (s *Store) AddMemberRole(serverId, userId uuid.UUID, roleId string) {
	s.update(func(v *View) {
		member, ok := v.members[serverId][userId]
		if !ok {
			v.putMember(&model.Member{
				UserId:   userId,
				ServerId: serverId,
				RoleIds:  []string{model.DefaultRoleId, roleId},
			})
			return
		}

		for _, held := range member.RoleIds {
			if held == roleId {
				return
			}
		}

		next := *member
		next.RoleIds = append(append([]string{}, member.RoleIds...), roleId)
		v.putMember(&next)
	})
}

// RemoveMemberRole revokes a role from a member. Unknown members and unheld
// roles are no-ops.
func (s *Store) RemoveMemberRole(serverId, userId uuid.UUID, roleId string) {
	s.update(func(v *View) {
		member, ok := v.members[serverId][userId]
		if !ok {
			return
		}

		next := *member
		next.RoleIds = make([]string, 0, len(member.RoleIds))
		for _, held := range member.RoleIds {
			if held != roleId {
				next.RoleIds = append(next.RoleIds, held)
			}
		}
		v.putMember(&next)
	})
}

func (s *Store) PutOverwrite(overwrite *model.Overwrite) {
	s.update(func(v *View) {
		v.putOverwrite(overwrite)
	})
}

func (s *Store) DeleteRoleOverwrite(channelId uuid.UUID, roleId string) {
	s.update(func(v *View) {
		if overwrites, ok := v.roleOverwrites[channelId]; ok {
			delete(overwrites, roleId)
		}
	})
}

func (s *Store) DeleteMemberOverwrite(channelId, userId uuid.UUID) {
	s.update(func(v *View) {
		if overwrites, ok := v.memberOverwrites[channelId]; ok {
			delete(overwrites, userId)
		}
	})
}

// SetVisibility records the externally supplied visibility predicate's data
// for one channel/user pair. Channels are visible by default.
func (s *Store) SetVisibility(channelId, userId uuid.UUID, visible bool) {
	s.update(func(v *View) {
		key := visibilityKey{channelId: channelId, userId: userId}
		if visible {
			delete(v.hidden, key)
		} else {
			v.hidden[key] = true
		}
	})
}

// update clones the current view, applies fn to the clone and swaps it in.
func (s *Store) update(fn func(v *View)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.view.Load().clone()
	fn(next)
	s.view.Store(next)
}

type visibilityKey struct {
	channelId uuid.UUID
	userId    uuid.UUID
}

// View is an immutable snapshot of the whole domain. It implements
// permissions.Snapshot.
type View struct {
	servers  map[uuid.UUID]*model.Server
	channels map[uuid.UUID]*model.Channel
	roles    map[uuid.UUID]map[string]*model.Role      // serverId -> roleId
	members  map[uuid.UUID]map[uuid.UUID]*model.Member // serverId -> userId

	roleOverwrites   map[uuid.UUID]map[string]*model.Overwrite    // channelId -> roleId
	memberOverwrites map[uuid.UUID]map[uuid.UUID]*model.Overwrite // channelId -> userId

	hidden map[visibilityKey]bool
}

var _ permissions.Snapshot = (*View)(nil)

func newView() *View {
	return &View{
		servers:          map[uuid.UUID]*model.Server{},
		channels:         map[uuid.UUID]*model.Channel{},
		roles:            map[uuid.UUID]map[string]*model.Role{},
		members:          map[uuid.UUID]map[uuid.UUID]*model.Member{},
		roleOverwrites:   map[uuid.UUID]map[string]*model.Overwrite{},
		memberOverwrites: map[uuid.UUID]map[uuid.UUID]*model.Overwrite{},
		hidden:           map[visibilityKey]bool{},
	}
}

func (v *View) clone() *View {
	return &View{
		servers:          copyMap(v.servers),
		channels:         copyMap(v.channels),
		roles:            copyNestedMap(v.roles),
		members:          copyNestedMap(v.members),
		roleOverwrites:   copyNestedMap(v.roleOverwrites),
		memberOverwrites: copyNestedMap(v.memberOverwrites),
		hidden:           copyMap(v.hidden),
	}
}

func (v *View) putRole(role *model.Role) {
	roles, ok := v.roles[role.ServerId]
	if !ok {
		roles = map[string]*model.Role{}
		v.roles[role.ServerId] = roles
	}
	roles[role.Id] = role
}

func (v *View) putMember(member *model.Member) {
	members, ok := v.members[member.ServerId]
	if !ok {
		members = map[uuid.UUID]*model.Member{}
		v.members[member.ServerId] = members
	}
	members[member.UserId] = member
}

func (v *View) putOverwrite(overwrite *model.Overwrite) {
	switch overwrite.Target {
	case model.TargetRole:
		overwrites, ok := v.roleOverwrites[overwrite.ChannelId]
		if !ok {
			overwrites = map[string]*model.Overwrite{}
			v.roleOverwrites[overwrite.ChannelId] = overwrites
		}
		overwrites[overwrite.RoleId] = overwrite
	case model.TargetMember:
		overwrites, ok := v.memberOverwrites[overwrite.ChannelId]
		if !ok {
			overwrites = map[uuid.UUID]*model.Overwrite{}
			v.memberOverwrites[overwrite.ChannelId] = overwrites
		}
		overwrites[overwrite.UserId] = overwrite
	}
}

// Server resolves a channel to its owning server, the zero UUID when the
// channel is unknown.
func (v *View) Server(channelId uuid.UUID) uuid.UUID {
	if channel, ok := v.channels[channelId]; ok {
		return channel.ServerId
	}
	return uuid.Nil
}

func (v *View) Kind(channelId uuid.UUID) permissions.ChannelKind {
	if channel, ok := v.channels[channelId]; ok {
		return channel.Kind
	}
	return permissions.KindText
}

// IsVisible reports whether the user can observe the channel: the channel
// must exist and must not be explicitly hidden from the user.
func (v *View) IsVisible(channelId, userId uuid.UUID) bool {
	if _, ok := v.channels[channelId]; !ok {
		return false
	}
	return !v.hidden[visibilityKey{channelId: channelId, userId: userId}]
}

func (v *View) DefaultRole(serverId uuid.UUID) permissions.Role {
	if role, ok := v.roles[serverId][model.DefaultRoleId]; ok {
		return role.ToEngine()
	}
	return permissions.Role{ID: model.DefaultRoleId}
}

// MemberRoles returns the user's roles including the default role. Unknown
// users hold only the default role. Role ids without a stored role record
// are carried through by id so their overwrites still apply.
func (v *View) MemberRoles(serverId, userId uuid.UUID) []permissions.Role {
	roles := []permissions.Role{v.DefaultRole(serverId)}

	member, ok := v.members[serverId][userId]
	if !ok {
		return roles
	}

	for _, roleId := range member.RoleIds {
		if roleId == model.DefaultRoleId {
			continue
		}
		if role, ok := v.roles[serverId][roleId]; ok {
			roles = append(roles, role.ToEngine())
		} else {
			roles = append(roles, permissions.Role{ID: roleId})
		}
	}
	return roles
}

func (v *View) RoleOverwrite(channelId uuid.UUID, roleId string) permissions.Set {
	if overwrite, ok := v.roleOverwrites[channelId][roleId]; ok {
		return overwrite.PermissionSet()
	}
	return permissions.EmptySet()
}

func (v *View) MemberOverwrite(channelId, userId uuid.UUID) permissions.Set {
	if overwrite, ok := v.memberOverwrites[channelId][userId]; ok {
		return overwrite.PermissionSet()
	}
	return permissions.EmptySet()
}

// ServerPermissions merges the grants of every role the user holds into the
// server-wide permission set. A deny from any role is overridden by an allow
// from any other role. The second return reports server ownership.
func (v *View) ServerPermissions(serverId, userId uuid.UUID) (permissions.Set, bool) {
	builder := permissions.NewBuilder()

	grants := make([]permissions.Set, 0)
	for _, role := range v.MemberRoles(serverId, userId) {
		if stored, ok := v.roles[serverId][role.ID]; ok {
			grants = append(grants, stored.PermissionSet())
		}
	}

	for _, grant := range grants {
		for _, t := range permissions.Types() {
			if grant.State(t) == permissions.Denied {
				builder.Set(t, permissions.Denied)
			}
		}
	}
	for _, grant := range grants {
		for _, t := range permissions.Types() {
			if grant.State(t) == permissions.Allowed {
				builder.Set(t, permissions.Allowed)
			}
		}
	}

	isOwner := false
	if server, ok := v.servers[serverId]; ok {
		isOwner = server.OwnerId == userId
	}

	return builder.Build(), isOwner
}

// ChannelInfo returns the stored channel record.
func (v *View) ChannelInfo(channelId uuid.UUID) (*model.Channel, bool) {
	channel, ok := v.channels[channelId]
	return channel, ok
}

// RoleInfo returns the stored role record.
func (v *View) RoleInfo(serverId uuid.UUID, roleId string) (*model.Role, bool) {
	role, ok := v.roles[serverId][roleId]
	return role, ok
}

// RolesOf returns the stored role records the user holds, default role
// included, in no particular order.
func (v *View) RolesOf(serverId, userId uuid.UUID) []*model.Role {
	roles := make([]*model.Role, 0)
	for _, role := range v.MemberRoles(serverId, userId) {
		if stored, ok := v.roles[serverId][role.ID]; ok {
			roles = append(roles, stored)
		}
	}
	return roles
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyNestedMap[K1, K2 comparable, V any](src map[K1]map[K2]V) map[K1]map[K2]V {
	dst := make(map[K1]map[K2]V, len(src))
	for k, inner := range src {
		dst[k] = copyMap(inner)
	}
	return dst
}
