package gog

import "slices"

// Shape is a finalized, validated shape.
//
// A Shape is a tagged variant: Kind says which attribute groups are present,
// and the group accessors return nil for groups the kind does not carry.
// Shapes are never modified after the parser returns them.
//
//	switch s.Kind() {
//	case gog.KindCircle, gog.KindSphere:
//	    r, explicit := s.Circle().Radius()
//	case gog.KindAnnotation:
//	    text := s.Label().Text()
//	}
type Shape struct {
	kind   Kind
	line   int
	common Common

	outline *OutlineAttrs
	fill    *FillAttrs
	circle  *CircleAttrs
	height  *HeightAttrs
	arc     *ArcAttrs
	axes    *AxesAttrs
	orbit   *OrbitAttrs
	path    *PathAttrs
	points  *PointsAttrs
	label   *LabelAttrs
}

// Kind returns the shape's type tag.
func (s *Shape) Kind() Kind { return s.kind }

// Line returns the source line of the block that produced the shape.
func (s *Shape) Line() int { return s.line }

// Common returns the attributes every shape carries.
func (s *Shape) Common() *Common { return &s.common }

// Outline returns the outline attributes, or nil for annotations.
func (s *Shape) Outline() *OutlineAttrs { return s.outline }

// Fill returns line and fill attributes, or nil for points and annotations.
func (s *Shape) Fill() *FillAttrs { return s.fill }

// Circle returns center and radius for circular kinds.
func (s *Shape) Circle() *CircleAttrs { return s.circle }

// Height returns the height of ellipsoids, cones and cylinders.
func (s *Shape) Height() *HeightAttrs { return s.height }

// Arc returns start and sweep angles for arcs, ellipses and cylinders.
func (s *Shape) Arc() *ArcAttrs { return s.arc }

// Axes returns major and minor axes for elliptical kinds and ellipsoids.
func (s *Shape) Axes() *AxesAttrs { return s.axes }

// Orbit returns the second center of an orbit.
func (s *Shape) Orbit() *OrbitAttrs { return s.orbit }

// Path returns the points of lines, line segments and polygons.
func (s *Shape) Path() *PathAttrs { return s.path }

// Points returns the point set of a points shape.
func (s *Shape) Points() *PointsAttrs { return s.points }

// Label returns the text attributes of an annotation.
func (s *Shape) Label() *LabelAttrs { return s.label }

// Positions returns every position of the shape in source order.
func (s *Shape) Positions() []Vec3 {
	switch {
	case s.path != nil:
		return s.path.Points()
	case s.points != nil:
		return s.points.Points()
	case s.label != nil:
		return []Vec3{s.label.position}
	case s.orbit != nil:
		return []Vec3{s.circle.center, s.orbit.center2}
	case s.circle != nil:
		return []Vec3{s.circle.center}
	}
	return nil
}

// Common holds the attributes shared by all shape kinds.
type Common struct {
	name           Optional[string]
	drawn          Optional[bool]
	depthBuffer    Optional[bool]
	altitudeOffset Optional[float64]
	altitudeMode   Optional[AltitudeMode]
	reference      Optional[Vec3]
	scale          Optional[Vec3]
	followYaw      Optional[bool]
	followPitch    Optional[bool]
	followRoll     Optional[bool]
	yawOffset      Optional[float64]
	pitchOffset    Optional[float64]
	rollOffset     Optional[float64]
	relative       bool
}

// Name returns the display name. Default "".
func (c *Common) Name() (string, bool) { return c.name.Get() }

// Drawn reports whether the shape is drawn. Default true.
func (c *Common) Drawn() (bool, bool) { return c.drawn.Get() }

// DepthBufferActive reports whether depth testing is enabled. Default false.
func (c *Common) DepthBufferActive() (bool, bool) { return c.depthBuffer.Get() }

// AltitudeOffset returns the altitude offset in meters. Default 0.
func (c *Common) AltitudeOffset() (float64, bool) { return c.altitudeOffset.Get() }

// AltitudeMode returns the altitude mode. Default AltitudeNone.
func (c *Common) AltitudeMode() (AltitudeMode, bool) { return c.altitudeMode.Get() }

// ReferencePosition returns the origin for relative positions.
// Default DefaultReferencePosition.
func (c *Common) ReferencePosition() (Vec3, bool) { return c.reference.Get() }

// Scale returns the non-uniform scale. Default (1, 1, 1).
func (c *Common) Scale() (Vec3, bool) { return c.scale.Get() }

// FollowingYaw reports whether the shape follows its host's yaw. Default false.
func (c *Common) FollowingYaw() (bool, bool) { return c.followYaw.Get() }

// FollowingPitch reports whether the shape follows its host's pitch. Default false.
func (c *Common) FollowingPitch() (bool, bool) { return c.followPitch.Get() }

// FollowingRoll reports whether the shape follows its host's roll. Default false.
func (c *Common) FollowingRoll() (bool, bool) { return c.followRoll.Get() }

// YawOffset returns the yaw offset in radians. Default 0.
func (c *Common) YawOffset() (float64, bool) { return c.yawOffset.Get() }

// PitchOffset returns the pitch offset in radians. Default 0.
func (c *Common) PitchOffset() (float64, bool) { return c.pitchOffset.Get() }

// RollOffset returns the roll offset in radians. Default 0.
func (c *Common) RollOffset() (float64, bool) { return c.rollOffset.Get() }

// Relative reports whether positions are relative x/y/z offsets rather
// than absolute geographic coordinates.
func (c *Common) Relative() bool { return c.relative }

// OutlineAttrs is the Outlined capability layer.
type OutlineAttrs struct {
	outlined Optional[bool]
}

// Outlined reports whether the outline is drawn. Default true.
func (a *OutlineAttrs) Outlined() (bool, bool) { return a.outlined.Get() }

// FillAttrs is the Fillable capability layer.
type FillAttrs struct {
	lineWidth Optional[int]
	lineStyle Optional[LineStyle]
	lineColor Optional[Color]
	filled    Optional[bool]
	fillColor Optional[Color]
}

// LineWidth returns the outline width in pixels. Default 1.
func (a *FillAttrs) LineWidth() (int, bool) { return a.lineWidth.Get() }

// LineStyle returns the outline style. Default LineSolid.
func (a *FillAttrs) LineStyle() (LineStyle, bool) { return a.lineStyle.Get() }

// LineColor returns the outline color. Default is the zero Color.
func (a *FillAttrs) LineColor() (Color, bool) { return a.lineColor.Get() }

// Filled reports whether the interior is filled. Default false.
func (a *FillAttrs) Filled() (bool, bool) { return a.filled.Get() }

// FillColor returns the fill color. Default is the zero Color.
func (a *FillAttrs) FillColor() (Color, bool) { return a.fillColor.Get() }

// CircleAttrs is the Circular capability layer.
type CircleAttrs struct {
	center Vec3
	radius Optional[float64]
}

// Center returns the required center position.
func (a *CircleAttrs) Center() Vec3 { return a.center }

// Radius returns the radius in meters. Default 500.
func (a *CircleAttrs) Radius() (float64, bool) { return a.radius.Get() }

// HeightAttrs extends circular kinds with a vertical extent.
type HeightAttrs struct {
	height Optional[float64]
}

// Height returns the height in meters. Default 500.
func (a *HeightAttrs) Height() (float64, bool) { return a.height.Get() }

// ArcAttrs holds the angular extent of elliptical kinds.
type ArcAttrs struct {
	start Optional[float64]
	sweep Optional[float64]
}

// AngleStart returns the start angle in radians. Default 0.
func (a *ArcAttrs) AngleStart() (float64, bool) { return a.start.Get() }

// AngleSweep returns the sweep in radians, in [0, 2π) when derived from an
// end angle. Default 0.
func (a *ArcAttrs) AngleSweep() (float64, bool) { return a.sweep.Get() }

// AxesAttrs holds ellipse axes. Defaults depend on the kind: 0 for arcs,
// ellipses and cylinders, 1000 for ellipsoids.
type AxesAttrs struct {
	major Optional[float64]
	minor Optional[float64]
}

// MajorAxis returns the major axis length in meters.
func (a *AxesAttrs) MajorAxis() (float64, bool) { return a.major.Get() }

// MinorAxis returns the minor axis length in meters.
func (a *AxesAttrs) MinorAxis() (float64, bool) { return a.minor.Get() }

// OrbitAttrs holds the second center of an orbit.
type OrbitAttrs struct {
	center2 Vec3
}

// Center2 returns the required second center position.
func (a *OrbitAttrs) Center2() Vec3 { return a.center2 }

// PathAttrs is the PointBased capability layer.
type PathAttrs struct {
	points       []Vec3
	tessellation Optional[Tessellation]
}

// Points returns a copy of the path's positions.
func (a *PathAttrs) Points() []Vec3 { return slices.Clone(a.points) }

// Tessellation returns the tessellation style. Default TessellateNone.
func (a *PathAttrs) Tessellation() (Tessellation, bool) { return a.tessellation.Get() }

// PointsAttrs is the Points capability layer.
type PointsAttrs struct {
	points    []Vec3
	pointSize Optional[int]
	color     Optional[Color]
}

// Points returns a copy of the positions.
func (a *PointsAttrs) Points() []Vec3 { return slices.Clone(a.points) }

// PointSize returns the point size in pixels. Default 1.
func (a *PointsAttrs) PointSize() (int, bool) { return a.pointSize.Get() }

// Color returns the point color. Default is the zero Color.
func (a *PointsAttrs) Color() (Color, bool) { return a.color.Get() }

// LabelAttrs is the Annotation capability layer.
type LabelAttrs struct {
	text             string
	position         Vec3
	fontName         Optional[string]
	textSize         Optional[int]
	textColor        Optional[Color]
	outlineColor     Optional[Color]
	outlineThickness Optional[OutlineThickness]
	iconFile         Optional[string]
}

// Text returns the required label text.
func (a *LabelAttrs) Text() string { return a.text }

// Position returns the required label position.
func (a *LabelAttrs) Position() Vec3 { return a.position }

// FontName returns the font name. Default "".
func (a *LabelAttrs) FontName() (string, bool) { return a.fontName.Get() }

// TextSize returns the font size. Default 15.
func (a *LabelAttrs) TextSize() (int, bool) { return a.textSize.Get() }

// TextColor returns the text color. Default is the zero Color.
func (a *LabelAttrs) TextColor() (Color, bool) { return a.textColor.Get() }

// OutlineColor returns the text outline color. Default is the zero Color.
func (a *LabelAttrs) OutlineColor() (Color, bool) { return a.outlineColor.Get() }

// OutlineThickness returns the text outline weight. Default OutlineNone.
func (a *LabelAttrs) OutlineThickness() (OutlineThickness, bool) { return a.outlineThickness.Get() }

// IconFile returns the icon file reference. Default "".
func (a *LabelAttrs) IconFile() (string, bool) { return a.iconFile.Get() }
