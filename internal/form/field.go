// Package form reconciles the aircraft model with the input form: the
// projection pass writes the model into field values, the collection pass
// reads field values back into a new model.
package form

import (
	"fmt"
	"sort"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

// Sentinel is the text shown in a field whose component is absent.
const Sentinel = units.Sentinel

// Key addresses one field: an attribute of one instance of a template.
// Scalar components always use instance 0.
type Key struct {
	Group    string
	Instance int
	Attr     string
}

func (k Key) String() string {
	return fmt.Sprintf("%s[%d].%s", k.Group, k.Instance, k.Attr)
}

// Value is the content of one field. Unit is the selected unit label and
// only set for quantity attributes; an empty Unit means no selection.
type Value struct {
	Text string
	Unit string
}

// Blank reports whether the text is empty or the sentinel.
func (v Value) Blank() bool {
	return units.IsBlank(v.Text)
}

// InstanceCounter reports how many instances of a group are on screen.
type InstanceCounter interface {
	Instances(group string) int
}

// Snapshot is the state of the form read by the collection pass.
type Snapshot struct {
	Fields map[Key]Value
	Counts map[string]int
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Fields: map[Key]Value{},
		Counts: map[string]int{},
	}
}

// Set stores a field value and makes sure the instance is counted.
func (s *Snapshot) Set(k Key, v Value) {
	s.Fields[k] = v
	if s.Counts[k.Group] < k.Instance+1 {
		s.Counts[k.Group] = k.Instance + 1
	}
}

// Get returns the value of a field.
func (s *Snapshot) Get(k Key) (Value, bool) {
	v, ok := s.Fields[k]
	return v, ok
}

// Instances returns the number of instances of group in the snapshot.
func (s *Snapshot) Instances(group string) int {
	if s == nil {
		return 0
	}
	return s.Counts[group]
}

// Merge copies assignments into the snapshot, as if written to the form.
func (s *Snapshot) Merge(a Assignments) {
	for group, n := range a.Growth {
		s.Counts[group] += n
	}
	for k, v := range a.Fields {
		s.Set(k, v)
	}
}

// Assignments are the field values produced by the projection pass together
// with the number of instances each group must grow by before they are
// written.
type Assignments struct {
	Fields map[Key]Value
	Growth map[string]int
}

func newAssignments() Assignments {
	return Assignments{
		Fields: map[Key]Value{},
		Growth: map[string]int{},
	}
}

// Keys returns the assigned keys in a stable order.
func (a Assignments) Keys() []Key {
	keys := make([]Key, 0, len(a.Fields))
	for k := range a.Fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Group != keys[j].Group {
			return keys[i].Group < keys[j].Group
		}
		if keys[i].Instance != keys[j].Instance {
			return keys[i].Instance < keys[j].Instance
		}
		return keys[i].Attr < keys[j].Attr
	})
	return keys
}
