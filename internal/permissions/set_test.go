package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_ZeroValueIsAllUnset(t *testing.T) {
	s := EmptySet()
	for _, typ := range Types() {
		assert.Equal(t, Unset, s.State(typ))
	}
	assert.Empty(t, s.Allowed())
	assert.Empty(t, s.Denied())
}

func TestSet_StateOutOfRange(t *testing.T) {
	s := NewBuilder().Set(SendMessages, Allowed).Build()
	assert.Equal(t, Unset, s.State(Type(-1)))
	assert.Equal(t, Unset, s.State(Type(10000)))
}

func TestSet_AllowedAndDenied(t *testing.T) {
	s := NewBuilder().
		Set(ViewChannel, Allowed).
		Set(SendMessages, Allowed).
		Set(ManageChannel, Denied).
		Build()

	assert.Equal(t, []Type{ViewChannel, SendMessages}, s.Allowed())
	assert.Equal(t, []Type{ManageChannel}, s.Denied())
}

func TestSet_Equal(t *testing.T) {
	a := NewBuilder().Set(Speak, Allowed).Set(Connect, Denied).Build()
	b := NewBuilder().Set(Connect, Denied).Set(Speak, Allowed).Build()
	c := NewBuilder().Set(Speak, Denied).Set(Connect, Denied).Build()

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(EmptySet()))
}

func TestSet_BitsRoundTrip(t *testing.T) {
	tests := map[string]Set{
		"empty": EmptySet(),
		"mixed": NewBuilder().
			Set(Administrator, Denied).
			Set(ViewChannel, Allowed).
			Set(SendMessages, Allowed).
			Set(PrioritySpeaker, Denied).
			Build(),
		"single allow": NewBuilder().Set(CreateInvite, Allowed).Build(),
	}

	for name, set := range tests {
		t.Run(name, func(t *testing.T) {
			allow, deny := set.Bits()
			assert.Zero(t, allow&deny)
			assert.True(t, SetFromBits(allow, deny).Equal(set))
		})
	}
}

func TestBuilder_BuildDoesNotConsume(t *testing.T) {
	builder := NewBuilder().Set(ViewChannel, Allowed)

	first := builder.Build()
	builder.Set(SendMessages, Denied)
	second := builder.Build()

	// The first snapshot must not observe the later mutation.
	assert.Equal(t, Unset, first.State(SendMessages))
	assert.Equal(t, Denied, second.State(SendMessages))
	assert.Equal(t, Allowed, second.State(ViewChannel))
}

func TestBuilder_SeededFromSet(t *testing.T) {
	seed := NewBuilder().Set(Speak, Allowed).Set(Connect, Denied).Build()

	builder := NewBuilderFrom(seed)
	assert.Equal(t, Allowed, builder.State(Speak))
	assert.Equal(t, Denied, builder.State(Connect))

	builder.Set(Speak, Denied)
	assert.Equal(t, Denied, builder.Build().State(Speak))
	// The seed set itself stays untouched.
	assert.Equal(t, Allowed, seed.State(Speak))
}

func TestBuilder_OverwritesUnconditionally(t *testing.T) {
	builder := NewBuilder()
	builder.Set(BanMembers, Allowed)
	builder.Set(BanMembers, Denied)
	builder.Set(BanMembers, Unset)
	assert.Equal(t, Unset, builder.State(BanMembers))
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "ADMINISTRATOR", Administrator.String())
	assert.Equal(t, "PRIORITY_SPEAKER", PrioritySpeaker.String())
	assert.Equal(t, "UNKNOWN", Type(-1).String())
}

func TestTypes_CoversEnumeration(t *testing.T) {
	types := Types()
	assert.Len(t, types, numTypes)
	for i, typ := range types {
		assert.Equal(t, Type(i), typ)
		assert.True(t, typ.Valid())
	}
}
