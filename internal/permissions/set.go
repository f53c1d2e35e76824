package permissions

// Set is an immutable total mapping from every permission Type to a State.
// The zero value maps every type to Unset. Sets are plain values; copying one
// is cheap and every copy is independent.
type Set struct {
	states [numTypes]State
}

// EmptySet returns a set with every type Unset.
func EmptySet() Set {
	return Set{}
}

// State returns the state recorded for t, Unset for types outside the
// enumeration.
func (s Set) State(t Type) State {
	if !t.Valid() {
		return Unset
	}
	return s.states[t]
}

// Allowed returns every type mapped to Allowed, in declaration order.
func (s Set) Allowed() []Type {
	return s.withState(Allowed)
}

// Denied returns every type mapped to Denied, in declaration order.
func (s Set) Denied() []Type {
	return s.withState(Denied)
}

func (s Set) withState(want State) []Type {
	types := make([]Type, 0, numTypes)
	for _, t := range Types() {
		if s.states[t] == want {
			types = append(types, t)
		}
	}
	return types
}

// Equal reports whether every type maps to the same state in both sets.
func (s Set) Equal(other Set) bool {
	return s.states == other.states
}

// Bits encodes the set as a pair of bitmasks, one bit per type. A type with
// neither bit set is Unset. Used as the compact cache representation.
func (s Set) Bits() (allow, deny uint64) {
	for _, t := range Types() {
		switch s.states[t] {
		case Allowed:
			allow |= 1 << uint(t)
		case Denied:
			deny |= 1 << uint(t)
		}
	}
	return allow, deny
}

// SetFromBits is the inverse of Bits. When a bit is set in both masks, deny
// wins; encoders never produce that shape.
func SetFromBits(allow, deny uint64) Set {
	var s Set
	for _, t := range Types() {
		bit := uint64(1) << uint(t)
		switch {
		case deny&bit != 0:
			s.states[t] = Denied
		case allow&bit != 0:
			s.states[t] = Allowed
		}
	}
	return s
}
