package model

import (
	"github.com/google/uuid"

	"permission-engine/internal/permissions"
)

// DefaultRoleId is the id of the role every server member implicitly holds.
const DefaultRoleId = permissions.DefaultRoleID

type Server struct {
	Id      uuid.UUID `bson:"_id" json:"id"`
	Name    string    `bson:"name" json:"name"`
	OwnerId uuid.UUID `bson:"ownerId" json:"ownerId"`
}

type Channel struct {
	Id       uuid.UUID               `bson:"_id" json:"id"`
	ServerId uuid.UUID               `bson:"serverId" json:"serverId"`
	Name     string                  `bson:"name" json:"name"`
	Kind     permissions.ChannelKind `bson:"kind" json:"kind"`
	Position uint32                  `bson:"position" json:"position"`
}

// Role carries a server-wide permission grant. Priority orders roles for
// display purposes only; the overwrite merge ignores it.
type Role struct {
	Id          string           `bson:"roleId" json:"id"`
	ServerId    uuid.UUID        `bson:"serverId" json:"serverId"`
	Priority    uint32           `bson:"priority" json:"priority"`
	DisplayName *string          `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Permissions []PermissionNode `bson:"permissions" json:"permissions"`
}

func (r *Role) ToEngine() permissions.Role {
	return permissions.Role{ID: r.Id, Priority: r.Priority}
}

// PermissionSet converts the role's grant nodes into an engine set.
func (r *Role) PermissionSet() permissions.Set {
	return NodesToSet(r.Permissions)
}

// Member links a user to the roles they hold in one server. RoleIds always
// contains DefaultRoleId.
type Member struct {
	UserId   uuid.UUID `bson:"userId" json:"userId"`
	ServerId uuid.UUID `bson:"serverId" json:"serverId"`
	RoleIds  []string  `bson:"roleIds" json:"roleIds"`
}

// OverwriteTarget distinguishes role-keyed from member-keyed overwrites.
type OverwriteTarget string

const (
	TargetRole   OverwriteTarget = "role"
	TargetMember OverwriteTarget = "member"
)

// Overwrite is an explicit per-channel permission overwrite for one role or
// one member. Exactly one of RoleId/UserId identifies the target, per Target.
type Overwrite struct {
	ChannelId   uuid.UUID        `bson:"channelId" json:"channelId"`
	ServerId    uuid.UUID        `bson:"serverId" json:"serverId"`
	Target      OverwriteTarget  `bson:"target" json:"target"`
	RoleId      string           `bson:"roleId,omitempty" json:"roleId,omitempty"`
	UserId      uuid.UUID        `bson:"userId" json:"userId"`
	Permissions []PermissionNode `bson:"permissions" json:"permissions"`
}

func (o *Overwrite) PermissionSet() permissions.Set {
	return NodesToSet(o.Permissions)
}

// PermissionNode is one explicit per-type decision. Unset types are simply
// absent from a node list.
type PermissionNode struct {
	Type  permissions.Type  `bson:"type" json:"type"`
	State permissions.State `bson:"state" json:"state"`
}

// NodesToSet folds explicit nodes into a total set; types without a node stay
// Unset. Later nodes win on duplicates.
func NodesToSet(nodes []PermissionNode) permissions.Set {
	builder := permissions.NewBuilder()
	for _, node := range nodes {
		builder.Set(node.Type, node.State)
	}
	return builder.Build()
}

// NodesFromSet is the inverse of NodesToSet: one node per decided type, in
// enumeration order.
func NodesFromSet(set permissions.Set) []PermissionNode {
	nodes := make([]PermissionNode, 0)
	for _, t := range permissions.Types() {
		if state := set.State(t); state != permissions.Unset {
			nodes = append(nodes, PermissionNode{Type: t, State: state})
		}
	}
	return nodes
}
