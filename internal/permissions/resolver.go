package permissions

import (
	"github.com/google/uuid"
)

// DefaultRoleID identifies the distinguished role every server member holds
// implicitly. Its channel overwrite forms the base layer of the merge.
const DefaultRoleID = "default"

// Role is the slice of role identity the resolver needs. Priority is carried
// for callers that order roles; the overwrite merge ignores it — only the
// default role is positionally special.
type Role struct {
	ID       string
	Priority uint32
}

// ChannelKind classifies a channel. Categories cannot be invited into.
type ChannelKind uint8

const (
	KindText ChannelKind = iota
	KindVoice
	KindCategory
	KindNews
)

func (k ChannelKind) String() string {
	switch k {
	case KindText:
		return "TEXT"
	case KindVoice:
		return "VOICE"
	case KindCategory:
		return "CATEGORY"
	case KindNews:
		return "NEWS"
	default:
		return "UNKNOWN"
	}
}

// Invitable reports whether invites may target a channel of this kind.
func (k ChannelKind) Invitable() bool {
	return k != KindCategory
}

// RoleSource resolves role membership within a server.
type RoleSource interface {
	// DefaultRole returns the server's default role.
	DefaultRole(serverID uuid.UUID) Role

	// MemberRoles returns the roles a user holds in a server, always
	// including the default role. Unknown users hold only the default role.
	MemberRoles(serverID, userID uuid.UUID) []Role
}

// OverwriteSource resolves explicit per-channel permission overwrites. Both
// lookups are total: an unconfigured overwrite is the empty (all-Unset) set,
// never an error.
type OverwriteSource interface {
	RoleOverwrite(channelID uuid.UUID, roleID string) Set
	MemberOverwrite(channelID, userID uuid.UUID) Set
}

// GrantSource resolves a user's server-wide permission set and whether the
// user owns the server.
type GrantSource interface {
	ServerPermissions(serverID, userID uuid.UUID) (Set, bool)
}

// ChannelSource resolves channel attributes. Server returns the zero UUID for
// unknown channels, which resolves to an empty server and therefore a fully
// denied result. IsVisible is the externally supplied visibility predicate
// consulted only by CanCreateInvite.
type ChannelSource interface {
	Server(channelID uuid.UUID) uuid.UUID
	Kind(channelID uuid.UUID) ChannelKind
	IsVisible(channelID, userID uuid.UUID) bool
}

// Snapshot is a consistent point-in-time view of all resolver inputs. A
// single resolution reads one snapshot; implementations must guarantee that a
// snapshot never mixes pre- and post-update state, e.g. by handing out
// immutable views. The resolver itself holds no locks and no shared state, so
// it is safe to call concurrently with distinct or shared snapshots.
type Snapshot interface {
	RoleSource
	OverwriteSource
	GrantSource
	ChannelSource
}

// Resolver computes effective permissions over one snapshot. Resolution is
// synchronous, allocation-light and free of I/O; it cannot fail.
type Resolver struct {
	snap Snapshot
}

func NewResolver(snap Snapshot) *Resolver {
	return &Resolver{snap: snap}
}

// EffectiveOverwrite merges a channel's overwrite layers for one user into a
// single set. Precedence, lowest to highest: the default role's overwrite, a
// deny from any held role, an allow from any held role, and the user's own
// overwrite. A single role allow therefore beats denies from every other
// role, and the member overwrite beats everything. Types no layer decided
// stay Unset.
func (r *Resolver) EffectiveOverwrite(channelID, userID uuid.UUID) Set {
	builder := NewBuilder()
	serverID := r.snap.Server(channelID)

	defaultRole := r.snap.DefaultRole(serverID)
	applyOverwrite(builder, r.snap.RoleOverwrite(channelID, defaultRole.ID))

	roles := r.heldRoles(serverID, userID, defaultRole)
	overwrites := make([]Set, len(roles))
	for i, role := range roles {
		overwrites[i] = r.snap.RoleOverwrite(channelID, role.ID)
	}

	for _, overwrite := range overwrites {
		for _, t := range Types() {
			if overwrite.State(t) == Denied {
				builder.Set(t, Denied)
			}
		}
	}
	for _, overwrite := range overwrites {
		for _, t := range Types() {
			if overwrite.State(t) == Allowed {
				builder.Set(t, Allowed)
			}
		}
	}

	applyOverwrite(builder, r.snap.MemberOverwrite(channelID, userID))

	return builder.Build()
}

// EffectivePermissions merges the user's server-wide permission set with the
// channel's effective overwrite and closes the result over default-deny, so
// the returned set never contains Unset. The server owner bypasses the
// overwrite layer entirely and receives the server-wide set verbatim.
//
// Semantic implications between capabilities (e.g. SendMessages being useless
// without ViewChannel) are deliberately not resolved here.
func (r *Resolver) EffectivePermissions(channelID, userID uuid.UUID) Set {
	serverID := r.snap.Server(channelID)

	global, isOwner := r.snap.ServerPermissions(serverID, userID)
	if isOwner {
		return global
	}

	builder := NewBuilderFrom(global)
	overwrite := r.EffectiveOverwrite(channelID, userID)
	for _, t := range Types() {
		if state := overwrite.State(t); state != Unset {
			builder.Set(t, state)
		}
	}
	for _, t := range Types() {
		if builder.State(t) == Unset {
			builder.Set(t, Denied)
		}
	}

	return builder.Build()
}

// AllowedPermissions returns every capability the user may exercise in the
// channel.
func (r *Resolver) AllowedPermissions(channelID, userID uuid.UUID) []Type {
	return r.EffectivePermissions(channelID, userID).Allowed()
}

// DeniedPermissions returns every capability denied to the user in the
// channel.
func (r *Resolver) DeniedPermissions(channelID, userID uuid.UUID) []Type {
	return r.EffectivePermissions(channelID, userID).Denied()
}

// HasPermission reports whether the user's effective permissions allow t.
func (r *Resolver) HasPermission(channelID, userID uuid.UUID, t Type) bool {
	return r.EffectivePermissions(channelID, userID).State(t) == Allowed
}

// HasAllPermissions reports whether every given capability is allowed.
// Vacuously true for an empty list.
func (r *Resolver) HasAllPermissions(channelID, userID uuid.UUID, types ...Type) bool {
	effective := r.EffectivePermissions(channelID, userID)
	for _, t := range types {
		if effective.State(t) != Allowed {
			return false
		}
	}
	return true
}

// HasAnyPermission reports whether at least one of the given capabilities is
// allowed.
func (r *Resolver) HasAnyPermission(channelID, userID uuid.UUID, types ...Type) bool {
	effective := r.EffectivePermissions(channelID, userID)
	for _, t := range types {
		if effective.State(t) == Allowed {
			return true
		}
	}
	return false
}

// CanCreateInvite reports whether the user may create an invite to the
// channel: the channel must be visible to the user, must be of an invitable
// kind, and the user must hold Administrator or CreateInvite.
func (r *Resolver) CanCreateInvite(channelID, userID uuid.UUID) bool {
	if !r.snap.IsVisible(channelID, userID) {
		return false
	}
	if !r.snap.Kind(channelID).Invitable() {
		return false
	}
	return r.HasAnyPermission(channelID, userID, Administrator, CreateInvite)
}

// heldRoles returns the user's roles with the default role removed.
func (r *Resolver) heldRoles(serverID, userID uuid.UUID, defaultRole Role) []Role {
	memberRoles := r.snap.MemberRoles(serverID, userID)
	roles := make([]Role, 0, len(memberRoles))
	for _, role := range memberRoles {
		if role.ID == defaultRole.ID {
			continue
		}
		roles = append(roles, role)
	}
	return roles
}

func applyOverwrite(builder *Builder, overwrite Set) {
	for _, t := range Types() {
		switch overwrite.State(t) {
		case Denied:
			builder.Set(t, Denied)
		case Allowed:
			builder.Set(t, Allowed)
		}
	}
}
