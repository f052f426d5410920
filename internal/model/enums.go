package model

// AircraftType classifies the aircraft for the sizing methods downstream.
type AircraftType string

const (
	AircraftJet             AircraftType = "JET"
	AircraftFighter         AircraftType = "FIGHTER"
	AircraftBusinessJet     AircraftType = "BUSINESS_JET"
	AircraftTurboprop       AircraftType = "TURBOPROP"
	AircraftGeneralAviation AircraftType = "GENERAL_AVIATION"
	AircraftCommuter        AircraftType = "COMMUTER"
	AircraftAcrobatic       AircraftType = "ACROBATIC"
)

// Values returns every AircraftType in selector order.
func (AircraftType) Values() []AircraftType {
	return []AircraftType{
		AircraftJet, AircraftFighter, AircraftBusinessJet, AircraftTurboprop,
		AircraftGeneralAviation, AircraftCommuter, AircraftAcrobatic,
	}
}

// Regulations is the certification basis.
type Regulations string

const (
	FAR23 Regulations = "FAR_23"
	FAR25 Regulations = "FAR_25"
)

// Values returns every Regulations value in selector order.
func (Regulations) Values() []Regulations {
	return []Regulations{FAR23, FAR25}
}

// Label returns the form used on screen ("FAR-25").
func (r Regulations) Label() string {
	switch r {
	case FAR23:
		return "FAR-23"
	case FAR25:
		return "FAR-25"
	}
	return string(r)
}

// WindshieldType is the shape of the fuselage nose windshield.
type WindshieldType string

const (
	WindshieldDouble         WindshieldType = "DOUBLE"
	WindshieldFlatFlush      WindshieldType = "FLAT_FLUSH"
	WindshieldFlatProtruding WindshieldType = "FLAT_PROTRUDING"
	WindshieldSingleRound    WindshieldType = "SINGLE_ROUND"
	WindshieldSingleSharp    WindshieldType = "SINGLE_SHARP"
)

// Values returns every WindshieldType in selector order.
func (WindshieldType) Values() []WindshieldType {
	return []WindshieldType{
		WindshieldDouble, WindshieldFlatFlush, WindshieldFlatProtruding,
		WindshieldSingleRound, WindshieldSingleSharp,
	}
}

// EngineMountingPosition locates an engine on the airframe.
type EngineMountingPosition string

const (
	EngineBuried       EngineMountingPosition = "BURIED"
	EngineWing         EngineMountingPosition = "WING"
	EngineAftFuselage  EngineMountingPosition = "AFT_FUSELAGE"
	EngineHTail        EngineMountingPosition = "HTAIL"
	EngineRearFuselage EngineMountingPosition = "REAR_FUSELAGE"
)

// Values returns every EngineMountingPosition in selector order.
func (EngineMountingPosition) Values() []EngineMountingPosition {
	return []EngineMountingPosition{EngineBuried, EngineWing, EngineAftFuselage, EngineHTail, EngineRearFuselage}
}

// NacelleMountingPosition locates a nacelle on the airframe.
type NacelleMountingPosition string

const (
	NacelleWing                 NacelleMountingPosition = "WING"
	NacelleFuselage             NacelleMountingPosition = "FUSELAGE"
	NacelleHTail                NacelleMountingPosition = "HTAIL"
	NacelleUndercarriageHousing NacelleMountingPosition = "UNDERCARRIAGE_HOUSING"
)

// Values returns every NacelleMountingPosition in selector order.
func (NacelleMountingPosition) Values() []NacelleMountingPosition {
	return []NacelleMountingPosition{NacelleWing, NacelleFuselage, NacelleHTail, NacelleUndercarriageHousing}
}

// LandingGearsMountingPosition locates the main landing gear.
type LandingGearsMountingPosition string

const (
	GearFuselage LandingGearsMountingPosition = "FUSELAGE"
	GearWing     LandingGearsMountingPosition = "WING"
	GearNacelle  LandingGearsMountingPosition = "NACELLE"
)

// Values returns every LandingGearsMountingPosition in selector order.
func (LandingGearsMountingPosition) Values() []LandingGearsMountingPosition {
	return []LandingGearsMountingPosition{GearFuselage, GearWing, GearNacelle}
}

// ElectricSystem is the primary electrical system type.
type ElectricSystem string

const (
	ElectricAC ElectricSystem = "AC"
	ElectricDC ElectricSystem = "DC"
)

// Values returns every ElectricSystem in selector order.
func (ElectricSystem) Values() []ElectricSystem {
	return []ElectricSystem{ElectricAC, ElectricDC}
}

// FlapType is the high-lift device type of a symmetric flap.
type FlapType string

const (
	FlapSingleSlotted   FlapType = "SINGLE_SLOTTED"
	FlapDoubleSlotted   FlapType = "DOUBLE_SLOTTED"
	FlapPlain           FlapType = "PLAIN"
	FlapFowler          FlapType = "FOWLER"
	FlapOptimizedFowler FlapType = "OPTIMIZED_FOWLER"
	FlapTripleSlotted   FlapType = "TRIPLE_SLOTTED"
)

// Values returns every FlapType in selector order.
func (FlapType) Values() []FlapType {
	return []FlapType{
		FlapSingleSlotted, FlapDoubleSlotted, FlapPlain,
		FlapFowler, FlapOptimizedFowler, FlapTripleSlotted,
	}
}

// EngineType is the propulsion family of an engine.
type EngineType string

const (
	EngineTurbofan  EngineType = "TURBOFAN"
	EngineTurbojet  EngineType = "TURBOJET"
	EngineTurboprop EngineType = "TURBOPROP"
	EnginePiston    EngineType = "PISTON"
)

// Values returns every EngineType in selector order.
func (EngineType) Values() []EngineType {
	return []EngineType{EngineTurbofan, EngineTurbojet, EngineTurboprop, EnginePiston}
}

// CabinClass is a seating class of the cabin layout.
type CabinClass string

const (
	ClassEconomy  CabinClass = "ECONOMY"
	ClassBusiness CabinClass = "BUSINESS"
	ClassFirst    CabinClass = "FIRST"
)

// Values returns every CabinClass in selector order.
func (CabinClass) Values() []CabinClass {
	return []CabinClass{ClassEconomy, ClassBusiness, ClassFirst}
}

// AileronSide tells the left aileron from the right one.
type AileronSide string

const (
	AileronLeft  AileronSide = "LEFT"
	AileronRight AileronSide = "RIGHT"
)

// Values returns both aileron sides.
func (AileronSide) Values() []AileronSide {
	return []AileronSide{AileronLeft, AileronRight}
}
