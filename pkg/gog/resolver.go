package gog

import (
	"fmt"

	errs "github.com/matzehuels/overlay/pkg/errors"
	"github.com/matzehuels/overlay/pkg/units"
)

// posForm records which coordinate forms a shape's positions used.
type posForm uint8

const (
	absolute posForm = 1 << iota
	relative
)

// shapeContext accumulates the fields of one shape while its block is open.
type shapeContext struct {
	line    int
	text    string
	hasText bool
	attrs   map[fieldID]any
	center  *Vec3
	center2 *Vec3
	points  []Vec3
	forms   posForm
}

func newShapeContext(line int) *shapeContext {
	return &shapeContext{line: line, attrs: make(map[fieldID]any)}
}

func (c *shapeContext) set(id fieldID, v any) { c.attrs[id] = v }

// block is the state of one start/end region.
type block struct {
	line  int
	kind  Kind
	units units.Config

	// conflict is the line of a second type keyword, or 0.
	conflict int

	// shapes holds one context per shape; only annotation blocks hold more
	// than one.
	shapes []*shapeContext
}

func newBlock(line int) *block {
	return &block{
		line:   line,
		units:  units.DefaultConfig(),
		shapes: []*shapeContext{newShapeContext(line)},
	}
}

func (b *block) current() *shapeContext { return b.shapes[len(b.shapes)-1] }

// scalar reads one number and converts it through family f.
func (b *block) scalar(l Line, f units.Family) (float64, error) {
	args := l.Fields()
	if len(args) == 0 {
		return 0, fmt.Errorf("%s: missing value", l.Keyword)
	}
	v, err := parseNumber(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", l.Keyword, err)
	}
	return b.units.ToBase(f, v), nil
}

// position reads at least n coordinates and an optional third.
// Absolute positions are lat/lon degrees plus altitude; relative positions
// are x/y in range units plus z in altitude units.
func (b *block) position(l Line, form posForm, n int) (Vec3, error) {
	v, err := parseNumbers(l.Fields())
	if err != nil {
		return Vec3{}, fmt.Errorf("%s: %w", l.Keyword, err)
	}
	if len(v) < n || len(v) > 3 {
		return Vec3{}, fmt.Errorf("%s: want %d coordinates, got %d", l.Keyword, n, len(v))
	}
	var p Vec3
	if form == absolute {
		p.X = units.DegreesToRadians(v[0])
		p.Y = units.DegreesToRadians(v[1])
	} else {
		p.X = b.units.ToBase(units.Range, v[0])
		p.Y = b.units.ToBase(units.Range, v[1])
	}
	if len(v) == 3 {
		p.Z = b.units.ToBase(units.Altitude, v[2])
	}
	return p, nil
}

// finalize validates every shape context against the block's kind and
// returns the finished shapes. Any invalid context drops only that shape.
func (b *block) finalize() ([]*Shape, []Diagnostic) {
	var (
		out      []*Shape
		problems []Diagnostic
	)
	for _, ctx := range b.shapes {
		s, err := build(b.kind, ctx)
		if err != nil {
			problems = append(problems, Diagnostic{Line: ctx.line, Err: err})
			continue
		}
		out = append(out, s)
	}
	return out, problems
}

// inheritAnnotationStyle copies into next each style field already set by
// an earlier annotation of the block, taking the first value set.
func inheritAnnotationStyle(prev []*shapeContext, next *shapeContext) {
	for _, id := range annotationStyle {
		for _, ctx := range prev {
			if v, ok := ctx.attrs[id]; ok {
				next.attrs[id] = v
				break
			}
		}
	}
}

// =============================================================================
// Building
// =============================================================================

func attr[T any](attrs map[fieldID]any, id fieldID, def T) Optional[T] {
	if v, ok := attrs[id].(T); ok {
		return explicit(v)
	}
	return fallback(def)
}

func missing(kind Kind, format string, args ...any) error {
	return errs.New(errs.ErrCodeMissingField, "%s %s", kind, fmt.Sprintf(format, args...))
}

// build resolves defaults for kind and validates required fields.
func build(kind Kind, ctx *shapeContext) (*Shape, error) {
	if ctx.forms == absolute|relative {
		return nil, errs.New(errs.ErrCodeInvalidField, "%s mixes absolute and relative positions", kind)
	}

	spec := kind.spec()
	a := ctx.attrs
	s := &Shape{
		kind: kind,
		line: ctx.line,
		common: Common{
			name:           attr(a, fieldName, ""),
			drawn:          attr(a, fieldDrawn, true),
			depthBuffer:    attr(a, fieldDepthBuffer, false),
			altitudeOffset: attr(a, fieldAltitudeOffset, 0.0),
			altitudeMode:   attr(a, fieldAltitudeMode, AltitudeNone),
			reference:      attr(a, fieldReference, DefaultReferencePosition),
			scale:          attr(a, fieldScale, Vec3{X: 1, Y: 1, Z: 1}),
			followYaw:      attr(a, fieldFollowYaw, false),
			followPitch:    attr(a, fieldFollowPitch, false),
			followRoll:     attr(a, fieldFollowRoll, false),
			yawOffset:      attr(a, fieldYawOffset, 0.0),
			pitchOffset:    attr(a, fieldPitchOffset, 0.0),
			rollOffset:     attr(a, fieldRollOffset, 0.0),
			relative:       ctx.forms == relative,
		},
	}

	g := spec.groups
	if g.has(groupOutline) {
		s.outline = &OutlineAttrs{outlined: attr(a, fieldOutline, true)}
	}
	if g.has(groupFill) {
		s.fill = &FillAttrs{
			lineWidth: attr(a, fieldLineWidth, 1),
			lineStyle: attr(a, fieldLineStyle, LineSolid),
			lineColor: attr(a, fieldLineColor, Color{}),
			filled:    attr(a, fieldFilled, false),
			fillColor: attr(a, fieldFillColor, Color{}),
		}
	}
	if g.has(groupCircle) {
		center, ok := firstPosition(ctx)
		if !ok {
			return nil, missing(kind, "has no center")
		}
		s.circle = &CircleAttrs{center: center, radius: attr(a, fieldRadius, 500.0)}
	}
	if g.has(groupHeight) {
		s.height = &HeightAttrs{height: attr(a, fieldHeight, 500.0)}
	}
	if g.has(groupArc) {
		s.arc = buildArc(a)
	}
	if g.has(groupAxes) {
		s.axes = &AxesAttrs{
			major: attr(a, fieldMajorAxis, spec.axesDefault),
			minor: attr(a, fieldMinorAxis, spec.axesDefault),
		}
	}
	if g.has(groupOrbit) {
		if ctx.center2 == nil {
			return nil, missing(kind, "has no second center")
		}
		s.orbit = &OrbitAttrs{center2: *ctx.center2}
	}
	if g.has(groupPath) {
		if len(ctx.points) < spec.minPoints {
			return nil, missing(kind, "needs %d points, got %d", spec.minPoints, len(ctx.points))
		}
		s.path = &PathAttrs{points: ctx.points, tessellation: buildTessellation(a)}
	}
	if g.has(groupPoints) {
		if len(ctx.points) < spec.minPoints {
			return nil, missing(kind, "needs %d points, got %d", spec.minPoints, len(ctx.points))
		}
		s.points = &PointsAttrs{
			points:    ctx.points,
			pointSize: attr(a, fieldPointSize, 1),
			color:     attr(a, fieldLineColor, Color{}),
		}
	}
	if g.has(groupLabel) {
		if !ctx.hasText {
			return nil, missing(kind, "has no text")
		}
		pos, ok := firstPosition(ctx)
		if !ok {
			return nil, missing(kind, "has no position")
		}
		s.label = &LabelAttrs{
			text:             ctx.text,
			position:         pos,
			fontName:         attr(a, fieldFontName, ""),
			textSize:         attr(a, fieldFontSize, 15),
			textColor:        attr(a, fieldLineColor, Color{}),
			outlineColor:     attr(a, fieldTextOutlineColor, Color{}),
			outlineThickness: attr(a, fieldTextOutlineThickness, OutlineNone),
			iconFile:         attr(a, fieldIcon, ""),
		}
	}
	return s, nil
}

// firstPosition returns the center, falling back to the first point.
func firstPosition(ctx *shapeContext) (Vec3, bool) {
	if ctx.center != nil {
		return *ctx.center, true
	}
	if len(ctx.points) > 0 {
		return ctx.points[0], true
	}
	return Vec3{}, false
}

// buildArc derives the sweep from an end angle when no sweep was given.
func buildArc(a map[fieldID]any) *ArcAttrs {
	arc := &ArcAttrs{
		start: attr(a, fieldAngleStart, 0.0),
		sweep: attr(a, fieldAngleSweep, 0.0),
	}
	if end, ok := a[fieldAngleEnd].(float64); ok && !arc.sweep.IsSet() {
		arc.sweep = explicit(units.Sweep(arc.start.Value(), end))
	}
	return arc
}

func buildTessellation(a map[fieldID]any) Optional[Tessellation] {
	on, ok := a[fieldTessellate].(bool)
	switch {
	case !ok:
		return fallback(TessellateNone)
	case !on:
		return explicit(TessellateNone)
	}
	if p, ok := a[fieldLineProjection].(Tessellation); ok {
		return explicit(p)
	}
	return explicit(TessellateRhumbLine)
}
