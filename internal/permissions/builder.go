package permissions

// Builder accumulates per-type states and snapshots them into immutable Sets.
// Any type/state combination is legal; there are no failure modes.
type Builder struct {
	states [numTypes]State
}

// NewBuilder returns a builder with every type Unset.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderFrom returns a builder seeded with the states of an existing set.
func NewBuilderFrom(s Set) *Builder {
	return &Builder{states: s.states}
}

// Set records state for t unconditionally, replacing any earlier decision.
// Types outside the enumeration are ignored.
func (b *Builder) Set(t Type, state State) *Builder {
	if t.Valid() {
		b.states[t] = state
	}
	return b
}

// State returns the current state for t, Unset if never set.
func (b *Builder) State(t Type) State {
	if !t.Valid() {
		return Unset
	}
	return b.states[t]
}

// Build snapshots the current states into an immutable Set. The builder
// remains usable afterwards.
func (b *Builder) Build() Set {
	return Set{states: b.states}
}
