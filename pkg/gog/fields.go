package gog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/overlay/pkg/units"
)

// fieldID identifies an optional attribute in a shape context's sparse map.
type fieldID int

const (
	fieldName fieldID = iota
	fieldDrawn
	fieldDepthBuffer
	fieldAltitudeOffset
	fieldAltitudeMode
	fieldReference
	fieldScale
	fieldFollowYaw
	fieldFollowPitch
	fieldFollowRoll
	fieldYawOffset
	fieldPitchOffset
	fieldRollOffset

	fieldOutline
	fieldLineWidth
	fieldLineStyle
	fieldLineColor
	fieldFilled
	fieldFillColor

	fieldRadius
	fieldHeight
	fieldAngleStart
	fieldAngleSweep
	fieldAngleEnd
	fieldMajorAxis
	fieldMinorAxis

	fieldTessellate
	fieldLineProjection
	fieldPointSize

	fieldFontName
	fieldFontSize
	fieldTextOutlineColor
	fieldTextOutlineThickness
	fieldIcon
)

// annotationStyle lists the fields that nested annotations share with the
// first annotation in their block that set them.
var annotationStyle = []fieldID{
	fieldFontName,
	fieldFontSize,
	fieldLineColor,
	fieldTextOutlineColor,
	fieldTextOutlineThickness,
}

// fieldHandler applies one field line to the block's current shape context.
type fieldHandler func(b *block, l Line) error

// fieldHandlers maps every non-structural, non-type keyword to its handler.
var fieldHandlers map[string]fieldHandler

func init() {
	fieldHandlers = map[string]fieldHandler{
		// common
		"name":           setText(fieldName),
		"3d":             handle3D,
		"off":            setConst(fieldDrawn, false),
		"draw":           setBool(fieldDrawn),
		"depthbuffer":    setBool(fieldDepthBuffer),
		"altitudeoffset": setLength(fieldAltitudeOffset, units.Altitude),
		"altitudemode":   setEnum(fieldAltitudeMode, parseAltitudeMode),
		"ref":            handleReference,
		"referencepoint": handleReference,
		"scale":          handleScale,
		"orient":         handleOrient,

		// outline and fill
		"outline":   setBool(fieldOutline),
		"linewidth": setInt(fieldLineWidth),
		"linestyle": setEnum(fieldLineStyle, parseLineStyle),
		"linecolor": setColor(fieldLineColor),
		"filled":    setBool(fieldFilled),
		"fillcolor": setColor(fieldFillColor),

		// circular and elliptical
		"radius":     setLength(fieldRadius, units.Range),
		"height":     setLength(fieldHeight, units.Altitude),
		"anglestart": setLength(fieldAngleStart, units.Angle),
		"angledeg":   setExclusive(fieldAngleSweep, fieldAngleEnd),
		"angleend":   setExclusive(fieldAngleEnd, fieldAngleSweep),
		"majoraxis":  setLength(fieldMajorAxis, units.Range),
		"minoraxis":  setLength(fieldMinorAxis, units.Range),

		// paths and points
		"tessellate":     setBool(fieldTessellate),
		"lineprojection": setEnum(fieldLineProjection, parseProjection),
		"pointsize":      setInt(fieldPointSize),

		// annotations
		"fontname":             setText(fieldFontName),
		"fontsize":             setInt(fieldFontSize),
		"textoutlinecolor":     setColor(fieldTextOutlineColor),
		"textoutlinethickness": setEnum(fieldTextOutlineThickness, parseOutlineThickness),
		"kml_icon":             setText(fieldIcon),

		// units
		"rangeunits":    setUnits(units.Range),
		"altitudeunits": setUnits(units.Altitude),
		"angleunits":    setUnits(units.Angle),

		// positions
		"ll":         addPoint(absolute, 2),
		"lla":        addPoint(absolute, 3),
		"xy":         addPoint(relative, 2),
		"xyz":        addPoint(relative, 3),
		"centerll":   setCenter(absolute, 2, false),
		"centerlla":  setCenter(absolute, 3, false),
		"centerxy":   setCenter(relative, 2, false),
		"centerxyz":  setCenter(relative, 3, false),
		"centerll2":  setCenter(absolute, 2, true),
		"centerlla2": setCenter(absolute, 3, true),
		"centerxy2":  setCenter(relative, 2, true),
		"centerxyz2": setCenter(relative, 3, true),
	}
}

// IsFieldKeyword reports whether keyword names an attribute or position field.
func IsFieldKeyword(keyword string) bool {
	_, ok := fieldHandlers[strings.ToLower(keyword)]
	return ok
}

// =============================================================================
// Handler constructors
// =============================================================================

func setText(id fieldID) fieldHandler {
	return func(b *block, l Line) error {
		if l.Args == "" {
			return fmt.Errorf("%s: missing value", l.Keyword)
		}
		b.current().set(id, l.Args)
		return nil
	}
}

func setConst[T any](id fieldID, v T) fieldHandler {
	return func(b *block, _ Line) error {
		b.current().set(id, v)
		return nil
	}
}

// setBool accepts an optional boolean argument; a bare keyword means true.
func setBool(id fieldID) fieldHandler {
	return func(b *block, l Line) error {
		args := l.Fields()
		if len(args) == 0 {
			b.current().set(id, true)
			return nil
		}
		v, err := parseBool(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", l.Keyword, err)
		}
		b.current().set(id, v)
		return nil
	}
}

func setInt(id fieldID) fieldHandler {
	return func(b *block, l Line) error {
		args := l.Fields()
		if len(args) == 0 {
			return fmt.Errorf("%s: missing value", l.Keyword)
		}
		v, err := parseInt(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", l.Keyword, err)
		}
		b.current().set(id, v)
		return nil
	}
}

func setEnum[T any](id fieldID, parse func(string) (T, bool)) fieldHandler {
	return func(b *block, l Line) error {
		args := l.Fields()
		if len(args) == 0 {
			return fmt.Errorf("%s: missing value", l.Keyword)
		}
		v, ok := parse(args[0])
		if !ok {
			return fmt.Errorf("%s: unknown value %q", l.Keyword, args[0])
		}
		b.current().set(id, v)
		return nil
	}
}

func setColor(id fieldID) fieldHandler {
	return func(b *block, l Line) error {
		c, err := parseColor(l.Fields())
		if err != nil {
			return fmt.Errorf("%s: %w", l.Keyword, err)
		}
		b.current().set(id, c)
		return nil
	}
}

// setLength converts a single number through the unit family f as
// configured at the time the line is read.
func setLength(id fieldID, f units.Family) fieldHandler {
	return func(b *block, l Line) error {
		v, err := b.scalar(l, f)
		if err != nil {
			return err
		}
		b.current().set(id, v)
		return nil
	}
}

// setExclusive stores an angle and clears its alternative, so the last of
// angledeg and angleend wins.
func setExclusive(id, other fieldID) fieldHandler {
	return func(b *block, l Line) error {
		v, err := b.scalar(l, units.Angle)
		if err != nil {
			return err
		}
		ctx := b.current()
		ctx.set(id, v)
		delete(ctx.attrs, other)
		return nil
	}
}

func setUnits(f units.Family) fieldHandler {
	return func(b *block, l Line) error {
		if l.Args == "" {
			return fmt.Errorf("%s: missing unit", l.Keyword)
		}
		return b.units.Set(f, l.Args)
	}
}

func addPoint(form posForm, n int) fieldHandler {
	return func(b *block, l Line) error {
		p, err := b.position(l, form, n)
		if err != nil {
			return err
		}
		ctx := b.current()
		ctx.points = append(ctx.points, p)
		ctx.forms |= form
		return nil
	}
}

func setCenter(form posForm, n int, second bool) fieldHandler {
	return func(b *block, l Line) error {
		p, err := b.position(l, form, n)
		if err != nil {
			return err
		}
		ctx := b.current()
		if second {
			ctx.center2 = &p
		} else {
			ctx.center = &p
		}
		ctx.forms |= form
		return nil
	}
}

// =============================================================================
// Composite handlers
// =============================================================================

// handle3D dispatches the "3d name", "3d offsetalt", "3d follow" and
// "3d offset{course,pitch,roll}" subcommands.
func handle3D(b *block, l Line) error {
	sub, rest := splitWord(l.Args)
	sl := Line{Number: l.Number, Keyword: "3d " + strings.ToLower(sub), Args: rest}
	switch strings.ToLower(sub) {
	case "name":
		return setText(fieldName)(b, sl)
	case "offsetalt":
		return setLength(fieldAltitudeOffset, units.Altitude)(b, sl)
	case "offsetcourse", "offsetyaw":
		return setLength(fieldYawOffset, units.Angle)(b, sl)
	case "offsetpitch":
		return setLength(fieldPitchOffset, units.Angle)(b, sl)
	case "offsetroll":
		return setLength(fieldRollOffset, units.Angle)(b, sl)
	case "follow":
		return handleFollow(b, sl)
	case "":
		return fmt.Errorf("3d: missing subcommand")
	}
	return fmt.Errorf("3d: unknown subcommand %q", sub)
}

// handleFollow sets the follow flags from a word of c (course), p and r.
// Flags whose letter is absent are set to false.
func handleFollow(b *block, l Line) error {
	word := strings.ToLower(strings.Join(l.Fields(), ""))
	if word == "" {
		return fmt.Errorf("%s: missing components", l.Keyword)
	}
	if strings.Trim(word, "cpry") != "" {
		return fmt.Errorf("%s: invalid components %q", l.Keyword, word)
	}
	ctx := b.current()
	ctx.set(fieldFollowYaw, strings.ContainsAny(word, "cy"))
	ctx.set(fieldFollowPitch, strings.ContainsRune(word, 'p'))
	ctx.set(fieldFollowRoll, strings.ContainsRune(word, 'r'))
	return nil
}

// handleReference reads "ref lat lon [alt]".
func handleReference(b *block, l Line) error {
	p, err := b.position(l, absolute, 2)
	if err != nil {
		return err
	}
	b.current().set(fieldReference, p)
	return nil
}

// handleScale reads "scale s" or "scale x y z".
func handleScale(b *block, l Line) error {
	v, err := parseNumbers(l.Fields())
	if err != nil {
		return fmt.Errorf("%s: %w", l.Keyword, err)
	}
	switch len(v) {
	case 1:
		b.current().set(fieldScale, Vec3{X: v[0], Y: v[0], Z: v[0]})
	case 3:
		b.current().set(fieldScale, Vec3{X: v[0], Y: v[1], Z: v[2]})
	default:
		return fmt.Errorf("%s: want 1 or 3 values, got %d", l.Keyword, len(v))
	}
	return nil
}

// handleOrient reads "orient heading [pitch [roll]]" in angle units.
func handleOrient(b *block, l Line) error {
	v, err := parseNumbers(l.Fields())
	if err != nil {
		return fmt.Errorf("%s: %w", l.Keyword, err)
	}
	if len(v) == 0 || len(v) > 3 {
		return fmt.Errorf("%s: want 1 to 3 values, got %d", l.Keyword, len(v))
	}
	ctx := b.current()
	ids := []fieldID{fieldYawOffset, fieldPitchOffset, fieldRollOffset}
	for i, x := range v {
		ctx.set(ids[i], b.units.ToBase(units.Angle, x))
	}
	return nil
}

// =============================================================================
// Argument parsing
// =============================================================================

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// parseNumber accepts finite decimal numbers only.
func parseNumber(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// parseInt accepts numbers with no fractional part, such as 4 or 4.0.
func parseInt(s string) (int, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(v), nil
}

func parseNumbers(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := parseNumber(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseProjection(s string) (Tessellation, bool) {
	switch strings.ToLower(s) {
	case "greatcircle":
		return TessellateGreatCircle, true
	case "rhumbline":
		return TessellateRhumbLine, true
	}
	return TessellateNone, false
}
