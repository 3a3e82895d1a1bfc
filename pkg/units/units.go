package units

import (
	"fmt"
	"math"
	"strings"
)

// Family identifies one of the independently configurable unit systems.
type Family int

const (
	Range Family = iota
	Altitude
	Angle
)

// String returns the keyword used in source text to override the family.
func (f Family) String() string {
	switch f {
	case Range:
		return "rangeunits"
	case Altitude:
		return "altitudeunits"
	case Angle:
		return "angleunits"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Unit is a named unit with a fixed scale factor to its family's base unit.
type Unit struct {
	Name   string
	Abbrev string
	angle  bool
	factor float64
}

// ToBase converts v expressed in u to the base unit (meters or radians).
func (u Unit) ToBase(v float64) float64 { return v * u.factor }

// FromBase converts v expressed in the base unit to u.
func (u Unit) FromBase(v float64) float64 { return v / u.factor }

// ConvertTo converts v from u to another unit of the same kind.
// Converting between a length and an angle unit returns v unchanged.
func (u Unit) ConvertTo(to Unit, v float64) float64 {
	if u.angle != to.angle {
		return v
	}
	return to.FromBase(u.ToBase(v))
}

// IsAngle reports whether u measures angles.
func (u Unit) IsAngle() bool { return u.angle }

func (u Unit) String() string { return u.Abbrev }

// Length units. The base length unit is the meter.
var (
	Meters        = Unit{Name: "meters", Abbrev: "m", factor: 1}
	Kilometers    = Unit{Name: "kilometers", Abbrev: "km", factor: 1000}
	Feet          = Unit{Name: "feet", Abbrev: "ft", factor: 0.3048}
	Kilofeet      = Unit{Name: "kilofeet", Abbrev: "kf", factor: 304.8}
	Yards         = Unit{Name: "yards", Abbrev: "yd", factor: 0.9144}
	Kiloyards     = Unit{Name: "kiloyards", Abbrev: "kyd", factor: 914.4}
	NauticalMiles = Unit{Name: "nautical miles", Abbrev: "nm", factor: 1852}
	StatuteMiles  = Unit{Name: "statute miles", Abbrev: "sm", factor: 1609.344}
	DataMiles     = Unit{Name: "data miles", Abbrev: "dm", factor: 1828.8}
)

// Angle units. The base angle unit is the radian.
var (
	Degrees  = Unit{Name: "degrees", Abbrev: "deg", angle: true, factor: math.Pi / 180}
	Radians  = Unit{Name: "radians", Abbrev: "rad", angle: true, factor: 1}
	Mils     = Unit{Name: "mils", Abbrev: "mil", angle: true, factor: 2 * math.Pi / 6400}
	Gradians = Unit{Name: "gradians", Abbrev: "grad", angle: true, factor: math.Pi / 200}
)

var lengthNames = map[string]Unit{
	"m": Meters, "meter": Meters, "meters": Meters,
	"km": Kilometers, "kilometer": Kilometers, "kilometers": Kilometers,
	"ft": Feet, "foot": Feet, "feet": Feet,
	"kf": Kilofeet, "kft": Kilofeet, "kilofoot": Kilofeet, "kilofeet": Kilofeet,
	"yd": Yards, "yds": Yards, "yard": Yards, "yards": Yards,
	"kyd": Kiloyards, "kiloyard": Kiloyards, "kiloyards": Kiloyards,
	"nm": NauticalMiles, "nmi": NauticalMiles, "nauticalmiles": NauticalMiles,
	"sm": StatuteMiles, "mi": StatuteMiles, "mile": StatuteMiles, "miles": StatuteMiles,
	"dm": DataMiles, "datamiles": DataMiles,
}

var angleNames = map[string]Unit{
	"deg": Degrees, "degree": Degrees, "degrees": Degrees,
	"rad": Radians, "radian": Radians, "radians": Radians,
	"mil": Mils, "mils": Mils,
	"grad": Gradians, "gradian": Gradians, "gradians": Gradians,
}

// Lookup finds a unit by name or abbreviation, case-insensitively.
// Range and Altitude share the length table; Angle uses the angle table.
func Lookup(f Family, name string) (Unit, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(name), ""))
	if f == Angle {
		u, ok := angleNames[key]
		return u, ok
	}
	u, ok := lengthNames[key]
	return u, ok
}

// DegreesToRadians converts a geographic coordinate in degrees to radians.
func DegreesToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Sweep returns the counter-clockwise sweep from start to end, both in
// radians, normalized to [0, 2π).
func Sweep(start, end float64) float64 {
	const full = 2 * math.Pi
	s := math.Mod(math.Mod(end-start, full)+full, full)
	if s >= full {
		s = 0
	}
	return s
}
