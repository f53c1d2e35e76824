package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"permission-engine/internal/permissions"
	"permission-engine/internal/utils"
)

type nodesToSetTest struct {
	name     string
	input    []PermissionNode
	expected permissions.Set
}

var nodesToSetTests = []nodesToSetTest{
	{
		name:     "empty",
		input:    []PermissionNode{},
		expected: permissions.EmptySet(),
	},
	{
		name: "mixed states",
		input: []PermissionNode{
			{Type: permissions.ViewChannel, State: permissions.Allowed},
			{Type: permissions.SendMessages, State: permissions.Denied},
		},
		expected: permissions.NewBuilder().
			Set(permissions.ViewChannel, permissions.Allowed).
			Set(permissions.SendMessages, permissions.Denied).
			Build(),
	},
	{
		name: "duplicate nodes, last wins",
		input: []PermissionNode{
			{Type: permissions.Speak, State: permissions.Allowed},
			{Type: permissions.Speak, State: permissions.Denied},
		},
		expected: permissions.NewBuilder().
			Set(permissions.Speak, permissions.Denied).
			Build(),
	},
}

func TestNodesToSet(t *testing.T) {
	for _, test := range nodesToSetTests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, NodesToSet(test.input).Equal(test.expected))
		})
	}
}

func TestNodesFromSet(t *testing.T) {
	set := permissions.NewBuilder().
		Set(permissions.Administrator, permissions.Denied).
		Set(permissions.ViewChannel, permissions.Allowed).
		Build()

	nodes := NodesFromSet(set)
	assert.Equal(t, []PermissionNode{
		{Type: permissions.Administrator, State: permissions.Denied},
		{Type: permissions.ViewChannel, State: permissions.Allowed},
	}, nodes)

	// Round trip preserves the set.
	assert.True(t, NodesToSet(nodes).Equal(set))
}

func TestRole_PermissionSet(t *testing.T) {
	role := &Role{
		Id:          "mod",
		ServerId:    uuid.New(),
		Priority:    10,
		DisplayName: utils.PointerOf("Moderator"),
		Permissions: []PermissionNode{
			{Type: permissions.ManageMessages, State: permissions.Allowed},
			{Type: permissions.BanMembers, State: permissions.Denied},
		},
	}

	set := role.PermissionSet()
	assert.Equal(t, permissions.Allowed, set.State(permissions.ManageMessages))
	assert.Equal(t, permissions.Denied, set.State(permissions.BanMembers))
	assert.Equal(t, permissions.Unset, set.State(permissions.ViewChannel))

	assert.Equal(t, permissions.Role{ID: "mod", Priority: 10}, role.ToEngine())
}

func TestOverwrite_PermissionSet(t *testing.T) {
	overwrite := &Overwrite{
		ChannelId: uuid.New(),
		ServerId:  uuid.New(),
		Target:    TargetMember,
		UserId:    uuid.New(),
		Permissions: []PermissionNode{
			{Type: permissions.ViewChannel, State: permissions.Denied},
		},
	}

	set := overwrite.PermissionSet()
	assert.Equal(t, permissions.Denied, set.State(permissions.ViewChannel))
	assert.Empty(t, set.Allowed())
}
