package gog

import (
	"fmt"
	"strings"

	"github.com/matzehuels/overlay/pkg/units"
)

// Vec3 is a position, scale or orientation triple.
//
// Absolute positions hold latitude and longitude in radians in X and Y and
// altitude in meters in Z. Relative positions hold east, north and up
// offsets in meters.
type Vec3 struct {
	X, Y, Z float64
}

// DefaultReferencePosition is the reference point used for relative shapes
// that do not name one: 22.1194392°N 159.9194988°W at sea level.
var DefaultReferencePosition = Vec3{
	X: units.DegreesToRadians(22.1194392),
	Y: units.DegreesToRadians(-159.9194988),
}

// Color is an 8-bit RGBA color. The zero Color is what accessors return for
// color attributes that were never set.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// AltitudeMode controls how altitudes are interpreted relative to terrain.
type AltitudeMode int

const (
	AltitudeNone AltitudeMode = iota
	AltitudeClampToGround
	AltitudeRelative
	AltitudeExtrude
)

var altitudeModeNames = []string{"none", "clamptoground", "relativetoground", "extrude"}

func (m AltitudeMode) String() string { return enumName(altitudeModeNames, int(m)) }

func parseAltitudeMode(s string) (AltitudeMode, bool) {
	i, ok := enumValue(altitudeModeNames, s)
	return AltitudeMode(i), ok
}

// LineStyle is the stroke pattern of outlines.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
)

var lineStyleNames = []string{"solid", "dashed"}

func (s LineStyle) String() string { return enumName(lineStyleNames, int(s)) }

func parseLineStyle(s string) (LineStyle, bool) {
	i, ok := enumValue(lineStyleNames, s)
	return LineStyle(i), ok
}

// Tessellation controls how segments between points follow the earth.
type Tessellation int

const (
	TessellateNone Tessellation = iota
	TessellateGreatCircle
	TessellateRhumbLine
)

var tessellationNames = []string{"none", "greatcircle", "rhumbline"}

func (t Tessellation) String() string { return enumName(tessellationNames, int(t)) }

// OutlineThickness is the weight of the outline drawn around annotation text.
type OutlineThickness int

const (
	OutlineNone OutlineThickness = iota
	OutlineThin
	OutlineThick
)

var outlineThicknessNames = []string{"none", "thin", "thick"}

func (t OutlineThickness) String() string { return enumName(outlineThicknessNames, int(t)) }

func parseOutlineThickness(s string) (OutlineThickness, bool) {
	i, ok := enumValue(outlineThicknessNames, s)
	return OutlineThickness(i), ok
}

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("unknown(%d)", i)
}

func enumValue(names []string, s string) (int, bool) {
	s = strings.ToLower(s)
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}
