package form

import (
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

// Template names.
const (
	GroupAircraft              = "aircraft"
	GroupFuselage              = "fuselage"
	GroupFuselageSpoilers      = "fuselage-spoilers"
	GroupWing                  = "wing"
	GroupWingEquivalent        = "wing-equivalent"
	GroupWingPanels            = "wing-panels"
	GroupWingFlaps             = "wing-flaps"
	GroupWingSlats             = "wing-slats"
	GroupWingAilerons          = "wing-ailerons"
	GroupWingSpoilers          = "wing-spoilers"
	GroupHTail                 = "htail"
	GroupHTailPanels           = "htail-panels"
	GroupHTailElevators        = "htail-elevators"
	GroupVTail                 = "vtail"
	GroupVTailPanels           = "vtail-panels"
	GroupVTailRudders          = "vtail-rudders"
	GroupCanard                = "canard"
	GroupCanardPanels          = "canard-panels"
	GroupCanardControlSurfaces = "canard-control-surfaces"
	GroupEngines               = "engines"
	GroupNacelles              = "nacelles"
	GroupLandingGears          = "landing-gears"
	GroupCabinConfiguration    = "cabin-configuration"
	GroupCabinClasses          = "cabin-classes"
	GroupSystems               = "systems"
)

// DefaultTemplates returns the aircraft form in collection order: owners
// come before the groups they own, so a component filled in for the first
// time exists before its sub-components are committed.
func DefaultTemplates() []Template {
	return []Template{
		aircraftTemplate(),
		fuselageTemplate(),
		spoilerGroup(GroupFuselageSpoilers, "Fuselage Spoiler", fuselageSpoilers),

		surfaceTemplate(GroupWing, "Wing", wingOf).After(deriveFuelTank),
		equivalentWingTemplate(),
		panelGroup(GroupWingPanels, "Wing Panel", wingOf).
			SkipWhen(equivalentWingEnabled).
			After(deriveFuelTank),
		flapGroup(GroupWingFlaps, "Wing Flap", wingOf),
		slatGroup(GroupWingSlats, "Wing Slat", wingOf),
		aileronGroup(GroupWingAilerons, "Wing Aileron", wingOf),
		spoilerGroup(GroupWingSpoilers, "Wing Spoiler", wingSpoilers),

		surfaceTemplate(GroupHTail, "Horizontal Tail", htailOf),
		panelGroup(GroupHTailPanels, "Horizontal Tail Panel", htailOf),
		flapGroup(GroupHTailElevators, "Elevator", htailOf),

		surfaceTemplate(GroupVTail, "Vertical Tail", vtailOf),
		panelGroup(GroupVTailPanels, "Vertical Tail Panel", vtailOf),
		flapGroup(GroupVTailRudders, "Rudder", vtailOf),

		surfaceTemplate(GroupCanard, "Canard", canardOf),
		panelGroup(GroupCanardPanels, "Canard Panel", canardOf),
		flapGroup(GroupCanardControlSurfaces, "Canard Control Surface", canardOf),

		engineGroup(),
		nacelleGroup(),
		landingGearsTemplate(),
		cabinConfigurationTemplate(),
		cabinClassGroup(),
		systemsTemplate(),
	}
}

// ─── Aircraft ───

func aircraftTemplate() *Component[model.Aircraft] {
	return NewComponent(GroupAircraft, "Aircraft",
		func(ac *model.Aircraft) *model.Aircraft { return ac },
		func(ac *model.Aircraft, t *model.Aircraft) error {
			ac.Type = t.Type
			ac.Regulations = t.Regulations
			ac.CabinConfigurationFile = t.CabinConfigurationFile
			return nil
		},
		ChoiceAttr("type", "Aircraft type", model.AircraftType("").Values(),
			func(a *model.Aircraft) *model.AircraftType { return &a.Type }),
		LabeledChoiceAttr("regulations", "Regulations", model.Regulations("").Values(), model.Regulations.Label,
			func(a *model.Aircraft) *model.Regulations { return &a.Regulations }),
		TextAttr("cabin-configuration-file", "Cabin configuration file",
			func(a *model.Aircraft) *string { return &a.CabinConfigurationFile }),
	)
}

// ─── Fuselage ───

func fuselageTemplate() *Component[model.Fuselage] {
	type F = model.Fuselage
	length := func(name, label string, get func(*F) *units.Quantity) Attribute[F] {
		return QuantityAttr(name, label, units.Length, get)
	}
	attrs := join(
		[]Attribute[F]{TextAttr("file", "File", func(f *F) *string { return &f.FilePath })},
		positionAttrs("", "Apex ", func(f *F) *model.Position { return &f.Position }),
		[]Attribute[F]{
			BoolAttr("pressurized", "Pressurized", func(f *F) *bool { return &f.Pressurized }),
			IntegerAttr("deck-number", "Deck number", func(f *F) *int { return &f.DeckNumber }),
			length("length", "Length", func(f *F) *units.Quantity { return &f.Length }),
			length("roughness", "Surface roughness", func(f *F) *units.Quantity { return &f.Roughness }),

			NumberAttr("nose-length-ratio", "Nose length ratio", func(f *F) *float64 { return &f.NoseLengthRatio }),
			length("nose-tip-offset", "Nose tip offset", func(f *F) *units.Quantity { return &f.NoseTipOffset }),
			NumberAttr("nose-dx-cap", "Nose dx cap (%)", func(f *F) *float64 { return &f.NoseDxCapPercent }),
			ChoiceAttr("windshield-type", "Windshield type", model.WindshieldType("").Values(),
				func(f *F) *model.WindshieldType { return &f.WindshieldType }),
			length("windshield-width", "Windshield width", func(f *F) *units.Quantity { return &f.WindshieldWidth }),
			length("windshield-height", "Windshield height", func(f *F) *units.Quantity { return &f.WindshieldHeight }),
			NumberAttr("nose-mid-section-height-ratio", "Nose mid section height ratio", func(f *F) *float64 { return &f.NoseMidSectionHeightRatio }),
			NumberAttr("nose-rho-upper", "Nose section rho upper", func(f *F) *float64 { return &f.NoseRhoUpper }),
			NumberAttr("nose-rho-lower", "Nose section rho lower", func(f *F) *float64 { return &f.NoseRhoLower }),

			NumberAttr("cylinder-length-ratio", "Cylinder length ratio", func(f *F) *float64 { return &f.CylinderLengthRatio }),
			length("section-width", "Section width", func(f *F) *units.Quantity { return &f.SectionWidth }),
			length("section-height", "Section height", func(f *F) *units.Quantity { return &f.SectionHeight }),
			length("height-from-ground", "Height from ground", func(f *F) *units.Quantity { return &f.HeightFromGround }),
			NumberAttr("cylinder-mid-section-height-ratio", "Cylinder mid section height ratio", func(f *F) *float64 { return &f.CylinderMidSectionHeightRatio }),
			NumberAttr("cylinder-rho-upper", "Cylinder section rho upper", func(f *F) *float64 { return &f.CylinderRhoUpper }),
			NumberAttr("cylinder-rho-lower", "Cylinder section rho lower", func(f *F) *float64 { return &f.CylinderRhoLower }),

			length("tail-tip-offset", "Tail tip offset", func(f *F) *units.Quantity { return &f.TailTipOffset }),
			NumberAttr("tail-dx-cap", "Tail dx cap (%)", func(f *F) *float64 { return &f.TailDxCapPercent }),
			NumberAttr("tail-mid-section-height-ratio", "Tail mid section height ratio", func(f *F) *float64 { return &f.TailMidSectionHeightRatio }),
			NumberAttr("tail-rho-upper", "Tail section rho upper", func(f *F) *float64 { return &f.TailRhoUpper }),
			NumberAttr("tail-rho-lower", "Tail section rho lower", func(f *F) *float64 { return &f.TailRhoLower }),
		},
	)
	return NewComponent(GroupFuselage, "Fuselage",
		func(ac *model.Aircraft) *F { return ac.Fuselage },
		func(ac *model.Aircraft, f *F) error {
			cp := *f
			ac.Fuselage = &cp
			return nil
		},
		attrs...,
	)
}

func fuselageSpoilers(ac *model.Aircraft) *[]model.Spoiler {
	if ac.Fuselage == nil {
		return nil
	}
	return &ac.Fuselage.Spoilers
}

// ─── Lifting surfaces ───

type surfaceRef func(*model.Aircraft) **model.LiftingSurface

func wingOf(ac *model.Aircraft) **model.LiftingSurface   { return &ac.Wing }
func htailOf(ac *model.Aircraft) **model.LiftingSurface  { return &ac.HTail }
func vtailOf(ac *model.Aircraft) **model.LiftingSurface  { return &ac.VTail }
func canardOf(ac *model.Aircraft) **model.LiftingSurface { return &ac.Canard }

func wingSpoilers(ac *model.Aircraft) *[]model.Spoiler {
	if ac.Wing == nil {
		return nil
	}
	return &ac.Wing.Spoilers
}

func surfaceTemplate(name, title string, ref surfaceRef) *Component[model.LiftingSurface] {
	type S = model.LiftingSurface
	attrs := join(
		[]Attribute[S]{TextAttr("file", "File", func(s *S) *string { return &s.FilePath })},
		positionAttrs("", "Apex ", func(s *S) *model.Position { return &s.Position }),
		[]Attribute[S]{
			QuantityAttr("rigging-angle", "Rigging angle", units.Angle, func(s *S) *units.Quantity { return &s.RiggingAngle }),
			NumberAttr("main-spar", "Main spar position (x/c)", func(s *S) *float64 { return &s.MainSparPosition }),
			NumberAttr("secondary-spar", "Secondary spar position (x/c)", func(s *S) *float64 { return &s.SecondarySparPosition }),
			QuantityAttr("roughness", "Surface roughness", units.Length, func(s *S) *units.Quantity { return &s.Roughness }),
			QuantityAttr("winglet-height", "Winglet height", units.Length, func(s *S) *units.Quantity { return &s.WingletHeight }).AsOptional(),
		},
	)
	return NewComponent(name, title,
		func(ac *model.Aircraft) *S { return *ref(ac) },
		func(ac *model.Aircraft, s *S) error {
			cp := *s
			*ref(ac) = &cp
			return nil
		},
		attrs...,
	)
}

func equivalentWingTemplate() *Component[model.EquivalentWing] {
	type E = model.EquivalentWing
	return NewComponent(GroupWingEquivalent, "Equivalent Wing",
		func(ac *model.Aircraft) *E {
			if ac.Wing == nil {
				return nil
			}
			return ac.Wing.Equivalent
		},
		func(ac *model.Aircraft, e *E) error {
			if ac.Wing == nil {
				return ErrMissingParent
			}
			cp := *e
			ac.Wing.Equivalent = &cp
			return nil
		},
		BoolAttr("enabled", "Use equivalent wing", func(e *E) *bool { return &e.Enabled }),
		QuantityAttr("area", "Area", units.Area, func(e *E) *units.Quantity { return &e.Area }),
		NumberAttr("aspect-ratio", "Aspect ratio", func(e *E) *float64 { return &e.AspectRatio }),
		NumberAttr("taper-ratio", "Taper ratio", func(e *E) *float64 { return &e.TaperRatio }),
		NumberAttr("kink-eta", "Kink station (eta)", func(e *E) *float64 { return &e.KinkEtaStation }),
		QuantityAttr("sweep-le", "Leading edge sweep", units.Angle, func(e *E) *units.Quantity { return &e.SweepLE }),
		QuantityAttr("twist-tip", "Tip twist", units.Angle, func(e *E) *units.Quantity { return &e.TwistTip }),
		QuantityAttr("dihedral", "Dihedral", units.Angle, func(e *E) *units.Quantity { return &e.Dihedral }),
		NumberAttr("x-offset-root-le", "Root chord LE offset (x/c)", func(e *E) *float64 { return &e.XOffsetRootLE }),
		NumberAttr("x-offset-root-te", "Root chord TE offset (x/c)", func(e *E) *float64 { return &e.XOffsetRootTE }),
		TextAttr("airfoil-root", "Root airfoil", func(e *E) *string { return &e.AirfoilRoot }),
		TextAttr("airfoil-kink", "Kink airfoil", func(e *E) *string { return &e.AirfoilKink }),
		TextAttr("airfoil-tip", "Tip airfoil", func(e *E) *string { return &e.AirfoilTip }),
	).After(func(ac *model.Aircraft) error {
		if !equivalentWingEnabled(ac) {
			return nil
		}
		ac.Wing.Panels = []model.Panel{ac.Wing.Equivalent.Panel(model.ComponentID("Wing Panel", 0, ac.ID))}
		return deriveFuelTank(ac)
	})
}

func equivalentWingEnabled(ac *model.Aircraft) bool {
	return ac.Wing != nil && ac.Wing.Equivalent != nil && ac.Wing.Equivalent.Enabled
}

// deriveFuelTank re-anchors the fuel tank on the committed wing. Without a
// wing root panel the tank is left as it is.
func deriveFuelTank(ac *model.Aircraft) error {
	if ac.Wing == nil || len(ac.Wing.Panels) == 0 {
		return nil
	}
	tank, err := model.DeriveFuelTank(ac.Wing)
	if err != nil {
		return err
	}
	ac.FuelTank = tank
	return nil
}

func panelGroup(name, title string, ref surfaceRef) *Group[model.Panel] {
	type P = model.Panel
	return NewGroup(name, title,
		surfaceItems(ref, func(s *model.LiftingSurface) *[]P { return &s.Panels }),
		surfaceReplace(ref, func(s *model.LiftingSurface) *[]P { return &s.Panels }),
		func(ac *model.Aircraft, i int) P { return P{ID: model.ComponentID(title, i, ac.ID)} },
		QuantityAttr("span", "Span", units.Length, func(p *P) *units.Quantity { return &p.Span }),
		QuantityAttr("sweep-le", "Leading edge sweep", units.Angle, func(p *P) *units.Quantity { return &p.SweepLE }),
		QuantityAttr("dihedral", "Dihedral", units.Angle, func(p *P) *units.Quantity { return &p.Dihedral }),
		QuantityAttr("chord-root", "Root chord", units.Length, func(p *P) *units.Quantity { return &p.ChordRoot }),
		QuantityAttr("chord-tip", "Tip chord", units.Length, func(p *P) *units.Quantity { return &p.ChordTip }),
		QuantityAttr("twist-root", "Root twist", units.Angle, func(p *P) *units.Quantity { return &p.TwistRoot }),
		QuantityAttr("twist-tip", "Tip twist", units.Angle, func(p *P) *units.Quantity { return &p.TwistTip }),
		TextAttr("airfoil-root", "Root airfoil", func(p *P) *string { return &p.AirfoilRoot }),
		TextAttr("airfoil-tip", "Tip airfoil", func(p *P) *string { return &p.AirfoilTip }),
	)
}

func flapGroup(name, title string, ref surfaceRef) *Group[model.Flap] {
	type F = model.Flap
	return NewGroup(name, title,
		surfaceItems(ref, func(s *model.LiftingSurface) *[]F { return &s.Flaps }),
		surfaceReplace(ref, func(s *model.LiftingSurface) *[]F { return &s.Flaps }),
		func(ac *model.Aircraft, i int) F { return F{ID: model.ComponentID(title, i, ac.ID)} },
		ChoiceAttr("type", "Type", model.FlapType("").Values(), func(f *F) *model.FlapType { return &f.Type }),
		NumberAttr("inner-position", "Inner position (eta)", func(f *F) *float64 { return &f.InnerPosition }),
		NumberAttr("outer-position", "Outer position (eta)", func(f *F) *float64 { return &f.OuterPosition }),
		NumberAttr("inner-chord-ratio", "Inner chord ratio", func(f *F) *float64 { return &f.InnerChordRatio }),
		NumberAttr("outer-chord-ratio", "Outer chord ratio", func(f *F) *float64 { return &f.OuterChordRatio }),
		QuantityAttr("min-deflection", "Minimum deflection", units.Angle, func(f *F) *units.Quantity { return &f.MinDeflection }),
		QuantityAttr("max-deflection", "Maximum deflection", units.Angle, func(f *F) *units.Quantity { return &f.MaxDeflection }),
	)
}

func slatGroup(name, title string, ref surfaceRef) *Group[model.Slat] {
	type S = model.Slat
	return NewGroup(name, title,
		surfaceItems(ref, func(s *model.LiftingSurface) *[]S { return &s.Slats }),
		surfaceReplace(ref, func(s *model.LiftingSurface) *[]S { return &s.Slats }),
		func(ac *model.Aircraft, i int) S { return S{ID: model.ComponentID(title, i, ac.ID)} },
		NumberAttr("inner-position", "Inner position (eta)", func(s *S) *float64 { return &s.InnerPosition }),
		NumberAttr("outer-position", "Outer position (eta)", func(s *S) *float64 { return &s.OuterPosition }),
		NumberAttr("inner-chord-ratio", "Inner chord ratio", func(s *S) *float64 { return &s.InnerChordRatio }),
		NumberAttr("outer-chord-ratio", "Outer chord ratio", func(s *S) *float64 { return &s.OuterChordRatio }),
		NumberAttr("extension-ratio", "Extension ratio", func(s *S) *float64 { return &s.ExtensionRatio }),
		QuantityAttr("min-deflection", "Minimum deflection", units.Angle, func(s *S) *units.Quantity { return &s.MinDeflection }),
		QuantityAttr("max-deflection", "Maximum deflection", units.Angle, func(s *S) *units.Quantity { return &s.MaxDeflection }),
	)
}

func aileronGroup(name, title string, ref surfaceRef) *Group[model.Aileron] {
	type A = model.Aileron
	return NewGroup(name, title,
		surfaceItems(ref, func(s *model.LiftingSurface) *[]A { return &s.Ailerons }),
		surfaceReplace(ref, func(s *model.LiftingSurface) *[]A { return &s.Ailerons }),
		func(ac *model.Aircraft, i int) A { return A{ID: model.ComponentID(title, i, ac.ID)} },
		ChoiceAttr("side", "Side", model.AileronSide("").Values(), func(a *A) *model.AileronSide { return &a.Side }),
		ChoiceAttr("type", "Type", model.FlapType("").Values(), func(a *A) *model.FlapType { return &a.Type }),
		NumberAttr("inner-position", "Inner position (eta)", func(a *A) *float64 { return &a.InnerPosition }),
		NumberAttr("outer-position", "Outer position (eta)", func(a *A) *float64 { return &a.OuterPosition }),
		NumberAttr("inner-chord-ratio", "Inner chord ratio", func(a *A) *float64 { return &a.InnerChordRatio }),
		NumberAttr("outer-chord-ratio", "Outer chord ratio", func(a *A) *float64 { return &a.OuterChordRatio }),
		QuantityAttr("min-deflection", "Minimum deflection", units.Angle, func(a *A) *units.Quantity { return &a.MinDeflection }),
		QuantityAttr("max-deflection", "Maximum deflection", units.Angle, func(a *A) *units.Quantity { return &a.MaxDeflection }),
	)
}

// spoilerGroup serves both the wing and the fuselage spoilers; list returns
// nil when the owner is absent.
func spoilerGroup(name, title string, list func(*model.Aircraft) *[]model.Spoiler) *Group[model.Spoiler] {
	type S = model.Spoiler
	return NewGroup(name, title,
		func(ac *model.Aircraft) []S {
			if l := list(ac); l != nil {
				return *l
			}
			return nil
		},
		func(ac *model.Aircraft, items []S) error {
			l := list(ac)
			if l == nil {
				return ErrMissingParent
			}
			*l = items
			return nil
		},
		func(ac *model.Aircraft, i int) S { return S{ID: model.ComponentID(title, i, ac.ID)} },
		NumberAttr("inner-spanwise-position", "Inner spanwise position", func(s *S) *float64 { return &s.InnerSpanwisePosition }),
		NumberAttr("outer-spanwise-position", "Outer spanwise position", func(s *S) *float64 { return &s.OuterSpanwisePosition }),
		NumberAttr("inner-chordwise-position", "Inner chordwise position", func(s *S) *float64 { return &s.InnerChordwisePosition }),
		NumberAttr("outer-chordwise-position", "Outer chordwise position", func(s *S) *float64 { return &s.OuterChordwisePosition }),
		QuantityAttr("min-deflection", "Minimum deflection", units.Angle, func(s *S) *units.Quantity { return &s.MinDeflection }),
		QuantityAttr("max-deflection", "Maximum deflection", units.Angle, func(s *S) *units.Quantity { return &s.MaxDeflection }),
	)
}

func surfaceItems[T any](ref surfaceRef, list func(*model.LiftingSurface) *[]T) func(*model.Aircraft) []T {
	return func(ac *model.Aircraft) []T {
		s := *ref(ac)
		if s == nil {
			return nil
		}
		return *list(s)
	}
}

func surfaceReplace[T any](ref surfaceRef, list func(*model.LiftingSurface) *[]T) func(*model.Aircraft, []T) error {
	return func(ac *model.Aircraft, items []T) error {
		s := *ref(ac)
		if s == nil {
			return ErrMissingParent
		}
		*list(s) = items
		return nil
	}
}

// ─── Power plant ───

func engineGroup() *Group[model.Engine] {
	type E = model.Engine
	q := func(name, label string, dim units.Dimension, get func(*E) *units.Quantity) Attribute[E] {
		return QuantityAttr(name, label, dim, get)
	}
	attrs := join(
		[]Attribute[E]{TextAttr("file", "File", func(e *E) *string { return &e.FilePath })},
		positionAttrs("", "Apex ", func(e *E) *model.Position { return &e.Position }),
		[]Attribute[E]{
			q("tilt-angle", "Tilting angle", units.Angle, func(e *E) *units.Quantity { return &e.TiltAngle }),
			ChoiceAttr("mounting-position", "Mounting position", model.EngineMountingPosition("").Values(),
				func(e *E) *model.EngineMountingPosition { return &e.MountingPosition }),
			ChoiceAttr("type", "Engine type", model.EngineType("").Values(), func(e *E) *model.EngineType { return &e.Type }),
			TextAttr("database", "Engine database", func(e *E) *string { return &e.DatabaseName }),
			q("length", "Length", units.Length, func(e *E) *units.Quantity { return &e.Length }).AsOptional(),
			q("dry-mass", "Dry mass", units.Mass, func(e *E) *units.Quantity { return &e.DryMass }).AsOptional(),
			q("static-thrust", "Static thrust", units.Force, func(e *E) *units.Quantity { return &e.StaticThrust }).AsOptional(),
			NumberAttr("bpr", "By-pass ratio", func(e *E) *float64 { return &e.BypassRatio }).AsOptional(),
			q("static-power", "Static power", units.Power, func(e *E) *units.Quantity { return &e.StaticPower }).AsOptional(),
			q("propeller-diameter", "Propeller diameter", units.Length, func(e *E) *units.Quantity { return &e.PropellerDiameter }).AsOptional(),
			IntegerAttr("blades", "Number of blades", func(e *E) *int { return &e.NumberOfBlades }).AsOptional(),
			NumberAttr("propeller-efficiency", "Propeller efficiency", func(e *E) *float64 { return &e.PropellerEfficiency }).AsOptional(),
			IntegerAttr("compressor-stages", "Compressor stages", func(e *E) *int { return &e.CompressorStages }).AsOptional(),
			IntegerAttr("shafts", "Number of shafts", func(e *E) *int { return &e.Shafts }).AsOptional(),
			NumberAttr("overall-pressure-ratio", "Overall pressure ratio", func(e *E) *float64 { return &e.OverallPressureRatio }).AsOptional(),
		},
	)
	return NewGroup(GroupEngines, "Engine",
		func(ac *model.Aircraft) []E { return ac.Engines },
		func(ac *model.Aircraft, items []E) error {
			ac.Engines = items
			return nil
		},
		func(ac *model.Aircraft, i int) E { return E{ID: model.ComponentID("Engine", i, ac.ID)} },
		attrs...,
	)
}

func nacelleGroup() *Group[model.Nacelle] {
	type N = model.Nacelle
	attrs := join(
		[]Attribute[N]{TextAttr("file", "File", func(n *N) *string { return &n.FilePath })},
		positionAttrs("", "Apex ", func(n *N) *model.Position { return &n.Position }),
		[]Attribute[N]{
			ChoiceAttr("mounting-position", "Mounting position", model.NacelleMountingPosition("").Values(),
				func(n *N) *model.NacelleMountingPosition { return &n.MountingPosition }),
			QuantityAttr("length", "Length", units.Length, func(n *N) *units.Quantity { return &n.Length }).AsOptional(),
			QuantityAttr("max-diameter", "Maximum diameter", units.Length, func(n *N) *units.Quantity { return &n.MaxDiameter }).AsOptional(),
			QuantityAttr("roughness", "Surface roughness", units.Length, func(n *N) *units.Quantity { return &n.Roughness }).AsOptional(),
			NumberAttr("k-inlet", "K inlet", func(n *N) *float64 { return &n.KInlet }).AsOptional(),
			NumberAttr("k-outlet", "K outlet", func(n *N) *float64 { return &n.KOutlet }).AsOptional(),
			NumberAttr("k-length", "K length", func(n *N) *float64 { return &n.KLength }).AsOptional(),
			NumberAttr("k-diameter-outlet", "K diameter outlet", func(n *N) *float64 { return &n.KDiameterOutlet }).AsOptional(),
		},
	)
	return NewGroup(GroupNacelles, "Nacelle",
		func(ac *model.Aircraft) []N { return ac.Nacelles },
		func(ac *model.Aircraft, items []N) error {
			ac.Nacelles = items
			return nil
		},
		func(ac *model.Aircraft, i int) N { return N{ID: model.ComponentID("Nacelle", i, ac.ID)} },
		attrs...,
	)
}

// ─── Landing gears, cabin and systems ───

func landingGearsTemplate() *Component[model.LandingGears] {
	type L = model.LandingGears
	length := func(name, label string, get func(*L) *units.Quantity) Attribute[L] {
		return QuantityAttr(name, label, units.Length, get)
	}
	attrs := join(
		[]Attribute[L]{TextAttr("file", "File", func(l *L) *string { return &l.FilePath })},
		positionAttrs("nose-", "Nose gear ", func(l *L) *model.Position { return &l.NosePosition }),
		positionAttrs("main-", "Main gear ", func(l *L) *model.Position { return &l.MainPosition }),
		[]Attribute[L]{
			ChoiceAttr("mounting-position", "Mounting position", model.LandingGearsMountingPosition("").Values(),
				func(l *L) *model.LandingGearsMountingPosition { return &l.MountingPosition }),
			length("main-legs-length", "Main legs length", func(l *L) *units.Quantity { return &l.MainLegsLength }),
			length("distance-between-wheels", "Distance between wheels", func(l *L) *units.Quantity { return &l.DistanceBetweenWheels }),
			IntegerAttr("frontal-wheels", "Number of frontal wheels", func(l *L) *int { return &l.FrontalWheels }),
			IntegerAttr("rear-wheels", "Number of rear wheels", func(l *L) *int { return &l.RearWheels }),
			length("frontal-wheel-height", "Frontal wheel height", func(l *L) *units.Quantity { return &l.FrontalWheelHeight }),
			length("frontal-wheel-width", "Frontal wheel width", func(l *L) *units.Quantity { return &l.FrontalWheelWidth }),
			length("rear-wheel-height", "Rear wheel height", func(l *L) *units.Quantity { return &l.RearWheelHeight }),
			length("rear-wheel-width", "Rear wheel width", func(l *L) *units.Quantity { return &l.RearWheelWidth }),
		},
	)
	return NewComponent(GroupLandingGears, "Landing Gears",
		func(ac *model.Aircraft) *L { return ac.LandingGears },
		func(ac *model.Aircraft, l *L) error {
			cp := *l
			ac.LandingGears = &cp
			return nil
		},
		attrs...,
	)
}

func cabinConfigurationTemplate() *Component[model.CabinConfiguration] {
	type C = model.CabinConfiguration
	return NewComponent(GroupCabinConfiguration, "Cabin Configuration",
		func(ac *model.Aircraft) *C { return ac.CabinConfiguration },
		func(ac *model.Aircraft, c *C) error {
			cp := *c
			ac.CabinConfiguration = &cp
			return nil
		},
		IntegerAttr("actual-passengers", "Actual passengers", func(c *C) *int { return &c.ActualPassengers }),
		IntegerAttr("maximum-passengers", "Maximum passengers", func(c *C) *int { return &c.MaximumPassengers }),
		IntegerAttr("flight-crew", "Flight crew", func(c *C) *int { return &c.FlightCrew }),
		IntegerAttr("aisles", "Number of aisles", func(c *C) *int { return &c.Aisles }),
		QuantityAttr("x-first-row", "X coordinate of first row", units.Length, func(c *C) *units.Quantity { return &c.XFirstRow }),
	)
}

func cabinClassGroup() *Group[model.SeatBlock] {
	type B = model.SeatBlock
	return NewGroup(GroupCabinClasses, "Cabin Class",
		func(ac *model.Aircraft) []B {
			if ac.CabinConfiguration == nil {
				return nil
			}
			return ac.CabinConfiguration.Classes
		},
		func(ac *model.Aircraft, items []B) error {
			if ac.CabinConfiguration == nil {
				return ErrMissingParent
			}
			ac.CabinConfiguration.Classes = items
			return nil
		},
		func(ac *model.Aircraft, i int) B { return B{ID: model.ComponentID("Cabin Class", i, ac.ID)} },
		ChoiceAttr("class", "Class", model.CabinClass("").Values(), func(b *B) *model.CabinClass { return &b.Class }),
		QuantityAttr("pitch", "Seat pitch", units.Length, func(b *B) *units.Quantity { return &b.Pitch }),
		QuantityAttr("width", "Seat width", units.Length, func(b *B) *units.Quantity { return &b.Width }),
		QuantityAttr("distance-from-wall", "Distance from wall", units.Length, func(b *B) *units.Quantity { return &b.DistanceFromWall }),
		IntegerAttr("rows", "Rows", func(b *B) *int { return &b.Rows }),
		IntegerAttr("columns", "Columns", func(b *B) *int { return &b.Columns }),
	)
}

func systemsTemplate() *Component[model.Systems] {
	return NewComponent(GroupSystems, "Systems",
		func(ac *model.Aircraft) *model.Systems { return ac.Systems },
		func(ac *model.Aircraft, s *model.Systems) error {
			cp := *s
			ac.Systems = &cp
			return nil
		},
		ChoiceAttr("primary-electric", "Primary electrical system", model.ElectricSystem("").Values(),
			func(s *model.Systems) *model.ElectricSystem { return &s.PrimaryElectric }),
	)
}

// ─── Helpers ───

func positionAttrs[T any](prefix, label string, pos func(*T) *model.Position) []Attribute[T] {
	return []Attribute[T]{
		QuantityAttr(prefix+"x", label+"X", units.Length, func(t *T) *units.Quantity { return &pos(t).X }),
		QuantityAttr(prefix+"y", label+"Y", units.Length, func(t *T) *units.Quantity { return &pos(t).Y }),
		QuantityAttr(prefix+"z", label+"Z", units.Length, func(t *T) *units.Quantity { return &pos(t).Z }),
	}
}

func join[T any](parts ...[]Attribute[T]) []Attribute[T] {
	var out []Attribute[T]
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
