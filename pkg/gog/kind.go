package gog

import (
	"fmt"
	"strings"
)

// Kind is the type tag of a shape. Callers switch on Kind and then read the
// attribute groups that kind carries.
type Kind int

const (
	KindUnknown Kind = iota
	KindCircle
	KindSphere
	KindHemisphere
	KindEllipsoid
	KindArc
	KindEllipse
	KindCylinder
	KindCone
	KindOrbit
	KindLine
	KindLineSegs
	KindPolygon
	KindPoints
	KindAnnotation
)

// group is a bit set of the attribute groups a kind carries.
type group uint16

const (
	groupOutline group = 1 << iota
	groupFill
	groupCircle
	groupHeight
	groupArc
	groupAxes
	groupOrbit
	groupPath
	groupPoints
	groupLabel
)

func (g group) has(o group) bool { return g&o != 0 }

const (
	circularGroups   = groupOutline | groupFill | groupCircle
	ellipticalGroups = circularGroups | groupArc | groupAxes
	pathGroups       = groupOutline | groupFill | groupPath
)

// kindSpec describes a shape kind: the keywords that select it, the
// attribute groups it carries and its required-field rules.
type kindSpec struct {
	name     string
	keywords []string
	groups   group

	// minPoints is the number of ll/lla/xy/xyz points required by path
	// and point-set kinds.
	minPoints int

	// axesDefault is the default major and minor axis length in meters.
	axesDefault float64
}

var kindSpecs = map[Kind]kindSpec{
	KindCircle:     {name: "circle", keywords: []string{"circle"}, groups: circularGroups},
	KindSphere:     {name: "sphere", keywords: []string{"sphere"}, groups: circularGroups},
	KindHemisphere: {name: "hemisphere", keywords: []string{"hemisphere"}, groups: circularGroups},
	KindEllipsoid:  {name: "ellipsoid", keywords: []string{"ellipsoid"}, groups: circularGroups | groupHeight | groupAxes, axesDefault: 1000},
	KindArc:        {name: "arc", keywords: []string{"arc"}, groups: ellipticalGroups},
	KindEllipse:    {name: "ellipse", keywords: []string{"ellipse"}, groups: ellipticalGroups},
	KindCylinder:   {name: "cylinder", keywords: []string{"cylinder"}, groups: ellipticalGroups | groupHeight},
	KindCone:       {name: "cone", keywords: []string{"cone"}, groups: circularGroups | groupHeight},
	KindOrbit:      {name: "orbit", keywords: []string{"orbit"}, groups: circularGroups | groupOrbit},
	KindLine:       {name: "line", keywords: []string{"line"}, groups: pathGroups, minPoints: 2},
	KindLineSegs:   {name: "linesegs", keywords: []string{"linesegs"}, groups: pathGroups, minPoints: 2},
	KindPolygon:    {name: "polygon", keywords: []string{"poly", "polygon"}, groups: pathGroups, minPoints: 3},
	KindPoints:     {name: "points", keywords: []string{"points"}, groups: groupOutline | groupPoints, minPoints: 1},
	KindAnnotation: {name: "annotation", keywords: []string{"annotation"}, groups: groupLabel},
}

// kindByKeyword maps every shape keyword to its kind.
var kindByKeyword = func() map[string]Kind {
	m := make(map[string]Kind)
	for k, spec := range kindSpecs {
		for _, kw := range spec.keywords {
			m[kw] = k
		}
	}
	return m
}()

// LookupKind returns the shape kind selected by keyword, case-insensitively.
func LookupKind(keyword string) (Kind, bool) {
	k, ok := kindByKeyword[strings.ToLower(keyword)]
	return k, ok
}

// Kinds returns all shape kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindSpecs))
	for k := KindCircle; k <= KindAnnotation; k++ {
		out = append(out, k)
	}
	return out
}

// String returns the canonical keyword of k.
func (k Kind) String() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of String and also accepts keyword aliases.
func ParseKind(s string) (Kind, error) {
	if k, ok := LookupKind(s); ok {
		return k, nil
	}
	return KindUnknown, fmt.Errorf("unknown shape kind %q", s)
}

func (k Kind) spec() kindSpec { return kindSpecs[k] }
