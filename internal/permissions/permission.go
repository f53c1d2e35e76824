// Package permissions implements effective permission resolution for channels:
// a closed capability enumeration, three-valued permission states, immutable
// permission sets and the layered overwrite merge that combines server-wide
// grants with per-channel role and member overwrites.
package permissions

// Type is a single capability in the closed permission enumeration.
type Type int

const (
	Administrator Type = iota
	CreateInvite
	KickMembers
	BanMembers
	ManageChannel
	ManageServer
	ManageRoles
	ManageWebhooks
	ManageNicknames
	ChangeNickname
	ViewChannel
	SendMessages
	ManageMessages
	EmbedLinks
	AttachFiles
	ReadMessageHistory
	MentionEveryone
	AddReactions
	Connect
	Speak
	MuteMembers
	DeafenMembers
	MoveMembers
	UseVoiceActivity
	PrioritySpeaker

	numTypes int = iota
)

var typeNames = [numTypes]string{
	"ADMINISTRATOR",
	"CREATE_INVITE",
	"KICK_MEMBERS",
	"BAN_MEMBERS",
	"MANAGE_CHANNEL",
	"MANAGE_SERVER",
	"MANAGE_ROLES",
	"MANAGE_WEBHOOKS",
	"MANAGE_NICKNAMES",
	"CHANGE_NICKNAME",
	"VIEW_CHANNEL",
	"SEND_MESSAGES",
	"MANAGE_MESSAGES",
	"EMBED_LINKS",
	"ATTACH_FILES",
	"READ_MESSAGE_HISTORY",
	"MENTION_EVERYONE",
	"ADD_REACTIONS",
	"CONNECT",
	"SPEAK",
	"MUTE_MEMBERS",
	"DEAFEN_MEMBERS",
	"MOVE_MEMBERS",
	"USE_VOICE_ACTIVITY",
	"PRIORITY_SPEAKER",
}

func (t Type) String() string {
	if t < 0 || int(t) >= numTypes {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// Valid reports whether t is a member of the enumeration.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < numTypes
}

var allTypes = func() []Type {
	types := make([]Type, numTypes)
	for i := range types {
		types[i] = Type(i)
	}
	return types
}()

// Types returns every member of the permission enumeration in declaration
// order. The returned slice is shared; callers must not modify it.
func Types() []Type {
	return allTypes
}

// State is the decision recorded for one capability at one layer.
type State uint8

const (
	// Unset means no explicit decision at this layer. It is the identity
	// element of the overwrite merge and never appears in a resolved
	// effective permission set.
	Unset State = iota
	Allowed
	Denied
)

func (s State) String() string {
	switch s {
	case Allowed:
		return "ALLOWED"
	case Denied:
		return "DENIED"
	default:
		return "UNSET"
	}
}
