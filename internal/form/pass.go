package form

import (
	"errors"

	"github.com/piwi3910/AirframeDesk/internal/log"
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

// ErrNoAircraft is returned by Collect when there is no aircraft to update.
var ErrNoAircraft = errors.New("no aircraft loaded")

// Option configures a projection or collection pass.
type Option func(*options)

type options struct {
	system units.System
	lg     *log.Logger
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDisplayUnits converts projected quantities to a unit system.
func WithDisplayUnits(s units.System) Option {
	return func(o *options) { o.system = s }
}

// WithLogger sets the logger of the pass.
func WithLogger(lg *log.Logger) Option {
	return func(o *options) { o.lg = lg }
}

// Project computes the field values showing ac on the form. counter reports
// how many instances of each group are currently shown; groups whose
// collection is larger are reported in Assignments.Growth and must be grown
// before the fields are written.
func Project(ac *model.Aircraft, templates []Template, counter InstanceCounter, opts ...Option) Assignments {
	o := newOptions(opts)
	out := newAssignments()
	if ac == nil {
		ac = &model.Aircraft{}
	}
	for _, t := range templates {
		current := 0
		if counter != nil {
			current = counter.Instances(t.Name())
		}
		t.project(ac, current, o, &out)
	}
	o.lg.Debug("projection done", "fields", len(out.Fields), "growth", out.Growth)
	return out
}

// Result is the outcome of a collection pass.
type Result struct {
	// Aircraft is the updated copy. Templates that failed left their part
	// of it unchanged.
	Aircraft *model.Aircraft
	// Warnings lists the cardinality mismatches, for the caller to show
	// once the form is settled.
	Warnings []Warning
	// Committed names the templates whose data was replaced.
	Committed []string
	// States holds the state of every instance after the pass.
	States map[string][]InstanceState
}

// Collect reads the form back into a copy of ac. Each template is committed
// on its own: a parse, unit or choice error aborts that template only and
// is returned joined with the others, while templates committed earlier in
// the pass stay committed in the returned aircraft. ac is never modified.
func Collect(snap *Snapshot, templates []Template, ac *model.Aircraft, opts ...Option) (Result, error) {
	if ac == nil {
		return Result{}, ErrNoAircraft
	}
	if snap == nil {
		snap = NewSnapshot()
	}
	o := newOptions(opts)
	res := Result{
		Aircraft: ac.Clone(),
		States:   map[string][]InstanceState{},
	}

	var errs []error
	for _, t := range templates {
		committed, err := t.collect(snap, res.Aircraft, o, &res)
		if committed {
			res.Committed = append(res.Committed, t.Name())
		}
		if err != nil {
			o.lg.Warn("collection failed", "template", t.Name(), "error", err)
			errs = append(errs, err)
		}
	}
	return res, errors.Join(errs...)
}

// Classify returns the state of every instance of a template without
// committing anything.
func Classify(snap *Snapshot, t Template) []InstanceState {
	return t.classify(snap)
}
