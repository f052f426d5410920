package form

// Layout tracks how many instances of each repeated group are on screen.
// Instances are only added, never removed, until Reset.
type Layout struct {
	counts map[string]int
}

// NewLayout returns a layout with no instances.
func NewLayout() *Layout {
	return &Layout{counts: map[string]int{}}
}

// Instances returns the number of instances of group.
func (l *Layout) Instances(group string) int {
	return l.counts[group]
}

// AddInstance appends an instance to group and returns its 0-based index.
// It does not touch the aircraft.
func (l *Layout) AddInstance(group string) int {
	i := l.counts[group]
	l.counts[group] = i + 1
	return i
}

// Apply realises the growth requested by a projection pass.
func (l *Layout) Apply(a Assignments) {
	for group, n := range a.Growth {
		if n > 0 {
			l.counts[group] += n
		}
	}
}

// Reset drops every instance, as on a whole-model reload.
func (l *Layout) Reset() {
	l.counts = map[string]int{}
}

// Groups returns a copy of the instance counts.
func (l *Layout) Groups() map[string]int {
	out := make(map[string]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}
