package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	errs "github.com/matzehuels/overlay/pkg/errors"
	"github.com/matzehuels/overlay/pkg/gog"
)

// Document is the JSON form of one parse: its shapes and diagnostics.
type Document struct {
	Shapes      []Shape      `json:"shapes"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Shape is the JSON form of a finalized shape.
type Shape struct {
	Kind      string           `json:"kind"`
	Line      int              `json:"line"`
	Relative  bool             `json:"relative"`
	Text      string           `json:"text,omitempty"`
	Positions []Position       `json:"positions"`
	Fields    map[string]Field `json:"fields"`
}

// Position is a position in meters and radians.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Field is an optional attribute: its resolved value and whether it was
// present in the source text.
type Field struct {
	Value    any  `json:"value"`
	Explicit bool `json:"explicit"`
}

// Diagnostic is the JSON form of a dropped block or ignored line.
type Diagnostic struct {
	Line    int    `json:"line"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// ExplicitFields counts the fields that were present in the source text.
func (s Shape) ExplicitFields() int {
	n := 0
	for _, f := range s.Fields {
		if f.Explicit {
			n++
		}
	}
	return n
}

// NewDocument converts parser output to its JSON form.
func NewDocument(shapes []*gog.Shape, diags []gog.Diagnostic) *Document {
	doc := &Document{
		Shapes:      make([]Shape, len(shapes)),
		Diagnostics: make([]Diagnostic, len(diags)),
	}
	for i, s := range shapes {
		doc.Shapes[i] = encodeShape(s)
	}
	for i, d := range diags {
		doc.Diagnostics[i] = encodeDiagnostic(d)
	}
	return doc
}

// WriteJSON encodes doc as indented JSON and writes it to w.
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

// =============================================================================
// Encoding
// =============================================================================

type fieldSet map[string]Field

func add(fs fieldSet, name string, v any, explicit bool) {
	fs[name] = Field{Value: jsonValue(v), Explicit: explicit}
}

// jsonValue turns enums, colors and vectors into plain JSON values.
func jsonValue(v any) any {
	switch x := v.(type) {
	case gog.Vec3:
		return position(x)
	case fmt.Stringer:
		return x.String()
	}
	return v
}

func position(v gog.Vec3) Position { return Position{X: v.X, Y: v.Y, Z: v.Z} }

func encodeShape(s *gog.Shape) Shape {
	out := Shape{
		Kind:     s.Kind().String(),
		Line:     s.Line(),
		Relative: s.Common().Relative(),
	}
	for _, p := range s.Positions() {
		out.Positions = append(out.Positions, position(p))
	}

	fs := fieldSet{}
	addCommon(fs, s.Common())

	if o := s.Outline(); o != nil {
		v, ok := o.Outlined()
		add(fs, "outline", v, ok)
	}
	if f := s.Fill(); f != nil {
		width, ok := f.LineWidth()
		add(fs, "lineWidth", width, ok)
		style, ok := f.LineStyle()
		add(fs, "lineStyle", style, ok)
		lc, ok := f.LineColor()
		add(fs, "lineColor", lc, ok)
		filled, ok := f.Filled()
		add(fs, "filled", filled, ok)
		fc, ok := f.FillColor()
		add(fs, "fillColor", fc, ok)
	}
	if ci := s.Circle(); ci != nil {
		r, ok := ci.Radius()
		add(fs, "radius", r, ok)
	}
	if h := s.Height(); h != nil {
		v, ok := h.Height()
		add(fs, "height", v, ok)
	}
	if a := s.Arc(); a != nil {
		start, ok := a.AngleStart()
		add(fs, "angleStart", start, ok)
		sweep, ok := a.AngleSweep()
		add(fs, "angleSweep", sweep, ok)
	}
	if a := s.Axes(); a != nil {
		major, ok := a.MajorAxis()
		add(fs, "majorAxis", major, ok)
		minor, ok := a.MinorAxis()
		add(fs, "minorAxis", minor, ok)
	}
	if p := s.Path(); p != nil {
		t, ok := p.Tessellation()
		add(fs, "tessellation", t, ok)
	}
	if p := s.Points(); p != nil {
		size, ok := p.PointSize()
		add(fs, "pointSize", size, ok)
		color, ok := p.Color()
		add(fs, "pointColor", color, ok)
	}
	if l := s.Label(); l != nil {
		out.Text = l.Text()
		font, ok := l.FontName()
		add(fs, "fontName", font, ok)
		size, ok := l.TextSize()
		add(fs, "textSize", size, ok)
		tc, ok := l.TextColor()
		add(fs, "textColor", tc, ok)
		oc, ok := l.OutlineColor()
		add(fs, "outlineColor", oc, ok)
		th, ok := l.OutlineThickness()
		add(fs, "outlineThickness", th, ok)
		icon, ok := l.IconFile()
		add(fs, "iconFile", icon, ok)
	}
	out.Fields = fs
	return out
}

func addCommon(fs fieldSet, c *gog.Common) {
	name, ok := c.Name()
	add(fs, "name", name, ok)
	drawn, ok := c.Drawn()
	add(fs, "drawn", drawn, ok)
	depth, ok := c.DepthBufferActive()
	add(fs, "depthBuffer", depth, ok)
	offset, ok := c.AltitudeOffset()
	add(fs, "altitudeOffset", offset, ok)
	mode, ok := c.AltitudeMode()
	add(fs, "altitudeMode", mode, ok)
	ref, ok := c.ReferencePosition()
	add(fs, "referencePosition", ref, ok)
	scale, ok := c.Scale()
	add(fs, "scale", scale, ok)
	yaw, ok := c.FollowingYaw()
	add(fs, "followYaw", yaw, ok)
	pitch, ok := c.FollowingPitch()
	add(fs, "followPitch", pitch, ok)
	roll, ok := c.FollowingRoll()
	add(fs, "followRoll", roll, ok)
	yo, ok := c.YawOffset()
	add(fs, "yawOffset", yo, ok)
	po, ok := c.PitchOffset()
	add(fs, "pitchOffset", po, ok)
	ro, ok := c.RollOffset()
	add(fs, "rollOffset", ro, ok)
}

func encodeDiagnostic(d gog.Diagnostic) Diagnostic {
	out := Diagnostic{Line: d.Line, Message: d.Err.Error()}
	var e *errs.Error
	if errors.As(d.Err, &e) {
		out.Code = string(e.Code)
		out.Message = e.Message
		if e.Cause != nil {
			out.Message += ": " + e.Cause.Error()
		}
	}
	return out
}
