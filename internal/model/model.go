package model

import (
	"fmt"

	"github.com/brunoga/deep"
	"github.com/google/uuid"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

// Position is a point in the aircraft body reference frame.
type Position struct {
	X units.Quantity `json:"x" yaml:"x"`
	Y units.Quantity `json:"y" yaml:"y"`
	Z units.Quantity `json:"z" yaml:"z"`
}

// Meters returns the position in SI meters.
func (p Position) Meters() (x, y, z float64) {
	return p.X.SI(), p.Y.SI(), p.Z.SI()
}

// Aircraft is the aggregate edited by the input form. Optional components are
// nil when absent.
type Aircraft struct {
	ID                     string       `json:"id" yaml:"id"`
	Name                   string       `json:"name" yaml:"name"`
	Type                   AircraftType `json:"type" yaml:"type"`
	Regulations            Regulations  `json:"regulations" yaml:"regulations"`
	CabinConfigurationFile string       `json:"cabin_configuration_file,omitempty" yaml:"cabin_configuration_file,omitempty"`

	Fuselage           *Fuselage           `json:"fuselage,omitempty" yaml:"fuselage,omitempty"`
	Wing               *LiftingSurface     `json:"wing,omitempty" yaml:"wing,omitempty"`
	HTail              *LiftingSurface     `json:"htail,omitempty" yaml:"htail,omitempty"`
	VTail              *LiftingSurface     `json:"vtail,omitempty" yaml:"vtail,omitempty"`
	Canard             *LiftingSurface     `json:"canard,omitempty" yaml:"canard,omitempty"`
	Engines            []Engine            `json:"engines,omitempty" yaml:"engines,omitempty"`
	Nacelles           []Nacelle           `json:"nacelles,omitempty" yaml:"nacelles,omitempty"`
	LandingGears       *LandingGears       `json:"landing_gears,omitempty" yaml:"landing_gears,omitempty"`
	CabinConfiguration *CabinConfiguration `json:"cabin_configuration,omitempty" yaml:"cabin_configuration,omitempty"`
	Systems            *Systems            `json:"systems,omitempty" yaml:"systems,omitempty"`
	FuelTank           *FuelTank           `json:"fuel_tank,omitempty" yaml:"fuel_tank,omitempty"`
}

// NewAircraft creates an empty aircraft with a fresh ID.
func NewAircraft(name string) *Aircraft {
	return &Aircraft{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Type:        AircraftJet,
		Regulations: FAR25,
	}
}

// Clone returns a deep copy of the aircraft. Nothing is shared with the
// receiver, so the copy can be edited while the original stays intact.
func (a *Aircraft) Clone() *Aircraft {
	if a == nil {
		return nil
	}
	return deep.MustCopy(a)
}

// ComponentID builds the identifier of the n-th (0-based) member of a
// repeated group, e.g. "Engine 2 - ab12cd34".
func ComponentID(title string, n int, aircraftID string) string {
	return fmt.Sprintf("%s %d - %s", title, n+1, aircraftID)
}

// Fuselage describes the fuselage geometry.
type Fuselage struct {
	FilePath    string         `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Position    Position       `json:"position" yaml:"position"`
	Pressurized bool           `json:"pressurized" yaml:"pressurized"`
	DeckNumber  int            `json:"deck_number" yaml:"deck_number"`
	Length      units.Quantity `json:"length" yaml:"length"`
	Roughness   units.Quantity `json:"roughness" yaml:"roughness"`

	NoseLengthRatio           float64        `json:"nose_length_ratio" yaml:"nose_length_ratio"`
	NoseTipOffset             units.Quantity `json:"nose_tip_offset" yaml:"nose_tip_offset"`
	NoseDxCapPercent          float64        `json:"nose_dx_cap_percent" yaml:"nose_dx_cap_percent"`
	WindshieldType            WindshieldType `json:"windshield_type" yaml:"windshield_type"`
	WindshieldWidth           units.Quantity `json:"windshield_width" yaml:"windshield_width"`
	WindshieldHeight          units.Quantity `json:"windshield_height" yaml:"windshield_height"`
	NoseMidSectionHeightRatio float64        `json:"nose_mid_section_height_ratio" yaml:"nose_mid_section_height_ratio"`
	NoseRhoUpper              float64        `json:"nose_rho_upper" yaml:"nose_rho_upper"`
	NoseRhoLower              float64        `json:"nose_rho_lower" yaml:"nose_rho_lower"`

	CylinderLengthRatio           float64        `json:"cylinder_length_ratio" yaml:"cylinder_length_ratio"`
	SectionWidth                  units.Quantity `json:"section_width" yaml:"section_width"`
	SectionHeight                 units.Quantity `json:"section_height" yaml:"section_height"`
	HeightFromGround              units.Quantity `json:"height_from_ground" yaml:"height_from_ground"`
	CylinderMidSectionHeightRatio float64        `json:"cylinder_mid_section_height_ratio" yaml:"cylinder_mid_section_height_ratio"`
	CylinderRhoUpper              float64        `json:"cylinder_rho_upper" yaml:"cylinder_rho_upper"`
	CylinderRhoLower              float64        `json:"cylinder_rho_lower" yaml:"cylinder_rho_lower"`

	TailTipOffset             units.Quantity `json:"tail_tip_offset" yaml:"tail_tip_offset"`
	TailDxCapPercent          float64        `json:"tail_dx_cap_percent" yaml:"tail_dx_cap_percent"`
	TailMidSectionHeightRatio float64        `json:"tail_mid_section_height_ratio" yaml:"tail_mid_section_height_ratio"`
	TailRhoUpper              float64        `json:"tail_rho_upper" yaml:"tail_rho_upper"`
	TailRhoLower              float64        `json:"tail_rho_lower" yaml:"tail_rho_lower"`

	Spoilers []Spoiler `json:"spoilers,omitempty" yaml:"spoilers,omitempty"`
}

// LiftingSurface describes a wing, horizontal tail, vertical tail or canard.
// On the tails and the canard the symmetric flaps are the elevators, rudders
// and control surfaces respectively.
type LiftingSurface struct {
	FilePath              string          `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Position              Position        `json:"position" yaml:"position"`
	RiggingAngle          units.Quantity  `json:"rigging_angle" yaml:"rigging_angle"`
	MainSparPosition      float64         `json:"main_spar_position" yaml:"main_spar_position"`
	SecondarySparPosition float64         `json:"secondary_spar_position" yaml:"secondary_spar_position"`
	Roughness             units.Quantity  `json:"roughness" yaml:"roughness"`
	WingletHeight         units.Quantity  `json:"winglet_height" yaml:"winglet_height"`
	Equivalent            *EquivalentWing `json:"equivalent,omitempty" yaml:"equivalent,omitempty"`

	Panels   []Panel   `json:"panels,omitempty" yaml:"panels,omitempty"`
	Flaps    []Flap    `json:"flaps,omitempty" yaml:"flaps,omitempty"`
	Slats    []Slat    `json:"slats,omitempty" yaml:"slats,omitempty"`
	Ailerons []Aileron `json:"ailerons,omitempty" yaml:"ailerons,omitempty"`
	Spoilers []Spoiler `json:"spoilers,omitempty" yaml:"spoilers,omitempty"`
}

// EquivalentWing is the trapezoidal planform a wing may be described by
// instead of its panels.
type EquivalentWing struct {
	Enabled        bool           `json:"enabled" yaml:"enabled"`
	Area           units.Quantity `json:"area" yaml:"area"`
	AspectRatio    float64        `json:"aspect_ratio" yaml:"aspect_ratio"`
	TaperRatio     float64        `json:"taper_ratio" yaml:"taper_ratio"`
	KinkEtaStation float64        `json:"kink_eta_station" yaml:"kink_eta_station"`
	SweepLE        units.Quantity `json:"sweep_le" yaml:"sweep_le"`
	TwistTip       units.Quantity `json:"twist_tip" yaml:"twist_tip"`
	Dihedral       units.Quantity `json:"dihedral" yaml:"dihedral"`
	XOffsetRootLE  float64        `json:"x_offset_root_le" yaml:"x_offset_root_le"`
	XOffsetRootTE  float64        `json:"x_offset_root_te" yaml:"x_offset_root_te"`
	AirfoilRoot    string         `json:"airfoil_root,omitempty" yaml:"airfoil_root,omitempty"`
	AirfoilKink    string         `json:"airfoil_kink,omitempty" yaml:"airfoil_kink,omitempty"`
	AirfoilTip     string         `json:"airfoil_tip,omitempty" yaml:"airfoil_tip,omitempty"`
}

// Panel is one trapezoidal spanwise panel of a lifting surface.
type Panel struct {
	ID          string         `json:"id" yaml:"id"`
	Span        units.Quantity `json:"span" yaml:"span"`
	SweepLE     units.Quantity `json:"sweep_le" yaml:"sweep_le"`
	Dihedral    units.Quantity `json:"dihedral" yaml:"dihedral"`
	ChordRoot   units.Quantity `json:"chord_root" yaml:"chord_root"`
	ChordTip    units.Quantity `json:"chord_tip" yaml:"chord_tip"`
	TwistRoot   units.Quantity `json:"twist_root" yaml:"twist_root"`
	TwistTip    units.Quantity `json:"twist_tip" yaml:"twist_tip"`
	AirfoilRoot string         `json:"airfoil_root,omitempty" yaml:"airfoil_root,omitempty"`
	AirfoilTip  string         `json:"airfoil_tip,omitempty" yaml:"airfoil_tip,omitempty"`
}

// Flap is a symmetric movable surface: a wing flap, elevator, rudder or
// canard control surface.
type Flap struct {
	ID              string         `json:"id" yaml:"id"`
	Type            FlapType       `json:"type" yaml:"type"`
	InnerPosition   float64        `json:"inner_position" yaml:"inner_position"`
	OuterPosition   float64        `json:"outer_position" yaml:"outer_position"`
	InnerChordRatio float64        `json:"inner_chord_ratio" yaml:"inner_chord_ratio"`
	OuterChordRatio float64        `json:"outer_chord_ratio" yaml:"outer_chord_ratio"`
	MinDeflection   units.Quantity `json:"min_deflection" yaml:"min_deflection"`
	MaxDeflection   units.Quantity `json:"max_deflection" yaml:"max_deflection"`
}

// Slat is a leading-edge high-lift device.
type Slat struct {
	ID              string         `json:"id" yaml:"id"`
	InnerPosition   float64        `json:"inner_position" yaml:"inner_position"`
	OuterPosition   float64        `json:"outer_position" yaml:"outer_position"`
	InnerChordRatio float64        `json:"inner_chord_ratio" yaml:"inner_chord_ratio"`
	OuterChordRatio float64        `json:"outer_chord_ratio" yaml:"outer_chord_ratio"`
	ExtensionRatio  float64        `json:"extension_ratio" yaml:"extension_ratio"`
	MinDeflection   units.Quantity `json:"min_deflection" yaml:"min_deflection"`
	MaxDeflection   units.Quantity `json:"max_deflection" yaml:"max_deflection"`
}

// Aileron is an asymmetric roll-control flap.
type Aileron struct {
	ID              string         `json:"id" yaml:"id"`
	Side            AileronSide    `json:"side" yaml:"side"`
	Type            FlapType       `json:"type" yaml:"type"`
	InnerPosition   float64        `json:"inner_position" yaml:"inner_position"`
	OuterPosition   float64        `json:"outer_position" yaml:"outer_position"`
	InnerChordRatio float64        `json:"inner_chord_ratio" yaml:"inner_chord_ratio"`
	OuterChordRatio float64        `json:"outer_chord_ratio" yaml:"outer_chord_ratio"`
	MinDeflection   units.Quantity `json:"min_deflection" yaml:"min_deflection"`
	MaxDeflection   units.Quantity `json:"max_deflection" yaml:"max_deflection"`
}

// Spoiler is a lift-dumping surface on the wing or the fuselage.
type Spoiler struct {
	ID                     string         `json:"id" yaml:"id"`
	InnerSpanwisePosition  float64        `json:"inner_spanwise_position" yaml:"inner_spanwise_position"`
	OuterSpanwisePosition  float64        `json:"outer_spanwise_position" yaml:"outer_spanwise_position"`
	InnerChordwisePosition float64        `json:"inner_chordwise_position" yaml:"inner_chordwise_position"`
	OuterChordwisePosition float64        `json:"outer_chordwise_position" yaml:"outer_chordwise_position"`
	MinDeflection          units.Quantity `json:"min_deflection" yaml:"min_deflection"`
	MaxDeflection          units.Quantity `json:"max_deflection" yaml:"max_deflection"`
}

// Engine is one installed engine with its specification.
type Engine struct {
	ID               string                 `json:"id" yaml:"id"`
	FilePath         string                 `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Position         Position               `json:"position" yaml:"position"`
	TiltAngle        units.Quantity         `json:"tilt_angle" yaml:"tilt_angle"`
	MountingPosition EngineMountingPosition `json:"mounting_position" yaml:"mounting_position"`
	Type             EngineType             `json:"type" yaml:"type"`
	DatabaseName     string                 `json:"database_name,omitempty" yaml:"database_name,omitempty"`
	Length           units.Quantity         `json:"length" yaml:"length"`
	DryMass          units.Quantity         `json:"dry_mass" yaml:"dry_mass"`

	StaticThrust         units.Quantity `json:"static_thrust" yaml:"static_thrust"`
	BypassRatio          float64        `json:"bypass_ratio" yaml:"bypass_ratio"`
	StaticPower          units.Quantity `json:"static_power" yaml:"static_power"`
	PropellerDiameter    units.Quantity `json:"propeller_diameter" yaml:"propeller_diameter"`
	NumberOfBlades       int            `json:"number_of_blades" yaml:"number_of_blades"`
	PropellerEfficiency  float64        `json:"propeller_efficiency" yaml:"propeller_efficiency"`
	CompressorStages     int            `json:"compressor_stages" yaml:"compressor_stages"`
	Shafts               int            `json:"shafts" yaml:"shafts"`
	OverallPressureRatio float64        `json:"overall_pressure_ratio" yaml:"overall_pressure_ratio"`
}

// Nacelle is the fairing around one engine.
type Nacelle struct {
	ID               string                  `json:"id" yaml:"id"`
	FilePath         string                  `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Position         Position                `json:"position" yaml:"position"`
	MountingPosition NacelleMountingPosition `json:"mounting_position" yaml:"mounting_position"`
	Length           units.Quantity          `json:"length" yaml:"length"`
	MaxDiameter      units.Quantity          `json:"max_diameter" yaml:"max_diameter"`
	Roughness        units.Quantity          `json:"roughness" yaml:"roughness"`
	KInlet           float64                 `json:"k_inlet" yaml:"k_inlet"`
	KOutlet          float64                 `json:"k_outlet" yaml:"k_outlet"`
	KLength          float64                 `json:"k_length" yaml:"k_length"`
	KDiameterOutlet  float64                 `json:"k_diameter_outlet" yaml:"k_diameter_outlet"`
}

// LandingGears describes the nose and main undercarriage.
type LandingGears struct {
	FilePath              string                       `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	NosePosition          Position                     `json:"nose_position" yaml:"nose_position"`
	MainPosition          Position                     `json:"main_position" yaml:"main_position"`
	MountingPosition      LandingGearsMountingPosition `json:"mounting_position" yaml:"mounting_position"`
	MainLegsLength        units.Quantity               `json:"main_legs_length" yaml:"main_legs_length"`
	DistanceBetweenWheels units.Quantity               `json:"distance_between_wheels" yaml:"distance_between_wheels"`
	FrontalWheels         int                          `json:"frontal_wheels" yaml:"frontal_wheels"`
	RearWheels            int                          `json:"rear_wheels" yaml:"rear_wheels"`
	FrontalWheelHeight    units.Quantity               `json:"frontal_wheel_height" yaml:"frontal_wheel_height"`
	FrontalWheelWidth     units.Quantity               `json:"frontal_wheel_width" yaml:"frontal_wheel_width"`
	RearWheelHeight       units.Quantity               `json:"rear_wheel_height" yaml:"rear_wheel_height"`
	RearWheelWidth        units.Quantity               `json:"rear_wheel_width" yaml:"rear_wheel_width"`
}

// CabinConfiguration describes the passenger cabin layout.
type CabinConfiguration struct {
	ActualPassengers  int            `json:"actual_passengers" yaml:"actual_passengers"`
	MaximumPassengers int            `json:"maximum_passengers" yaml:"maximum_passengers"`
	FlightCrew        int            `json:"flight_crew" yaml:"flight_crew"`
	Aisles            int            `json:"aisles" yaml:"aisles"`
	XFirstRow         units.Quantity `json:"x_first_row" yaml:"x_first_row"`
	Classes           []SeatBlock    `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// SeatBlock is the seating layout of one cabin class.
type SeatBlock struct {
	ID               string         `json:"id" yaml:"id"`
	Class            CabinClass     `json:"class" yaml:"class"`
	Pitch            units.Quantity `json:"pitch" yaml:"pitch"`
	Width            units.Quantity `json:"width" yaml:"width"`
	DistanceFromWall units.Quantity `json:"distance_from_wall" yaml:"distance_from_wall"`
	Rows             int            `json:"rows" yaml:"rows"`
	Columns          int            `json:"columns" yaml:"columns"`
}

// Seats returns the number of seats in the block.
func (b SeatBlock) Seats() int {
	return b.Rows * b.Columns
}

// TotalSeats returns the number of seats over all classes.
func (c *CabinConfiguration) TotalSeats() int {
	n := 0
	for _, b := range c.Classes {
		n += b.Seats()
	}
	return n
}

// Systems holds the on-board systems choices.
type Systems struct {
	PrimaryElectric ElectricSystem `json:"primary_electric" yaml:"primary_electric"`
}

// FuelTank is derived from the wing and never edited directly.
type FuelTank struct {
	Position Position `json:"position" yaml:"position"`
}
