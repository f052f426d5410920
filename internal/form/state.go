package form

// InstanceState is the life cycle of one instance of a group:
// Empty -> PartiallyFilled -> Usable -> Committed or Stale.
type InstanceState int

const (
	Empty InstanceState = iota
	PartiallyFilled
	Usable
	Committed
	Stale
)

func (s InstanceState) String() string {
	switch s {
	case Empty:
		return "empty"
	case PartiallyFilled:
		return "partially filled"
	case Usable:
		return "usable"
	case Committed:
		return "committed"
	case Stale:
		return "stale"
	}
	return "unknown"
}

// settle moves the classified states of a group through a commit of usable
// entries.
func settle(states []InstanceState, usable int) []InstanceState {
	out := make([]InstanceState, len(states))
	for i, s := range states {
		switch {
		case i < usable:
			out[i] = Committed
		case s == Empty:
			out[i] = Empty
		default:
			out[i] = Stale
		}
	}
	return out
}
