// Package gog parses the overlay text format into typed, validated shapes.
//
// # Overview
//
// Source text is line oriented. Each shape is described by a block that
// opens with start, names exactly one shape type, lists fields and closes
// with end:
//
//	start
//	  circle
//	  centerll 24.4 43.2
//	  radius 10
//	  rangeunits km    # affects later fields only
//	  linecolor green
//	end
//
// Keywords are case-insensitive. Everything from the comment character
// (default '#') to the end of a line is ignored, except for meta-comments
// such as "# kml_icon icon.png" which set a field.
//
// # Blocks
//
// A block is dropped when it has no type keyword, more than one type
// keyword, a nested start, no end, or is missing a field its kind requires.
// Dropped blocks never stop the parse; the next start begins a fresh block.
// An annotation block may contain further annotation keywords, each of which
// starts a sibling annotation that shares the font, size, colors and outline
// thickness first set by any annotation in the block.
//
// # Shapes
//
// A [Shape] is a tagged variant. [Shape.Kind] returns the [Kind], and the
// group accessors such as [Shape.Circle] or [Shape.Path] return nil for
// groups the kind does not carry. Every optional attribute accessor returns
// the value together with whether it was explicitly present in the source:
//
//	radius, explicit := shape.Circle().Radius()
//
// When explicit is false the value is the kind's documented default.
//
// # Units
//
// Numbers are converted to meters and radians when their line is read,
// using the units configured so far in the block. See package units for
// the unit families and their defaults.
//
// # Diagnostics
//
// The parser never logs. Dropped blocks, ignored fields and unknown keywords
// are reported through [observability.ParseHooks]; use a [Collector] to
// gather them:
//
//	var diags gog.Collector
//	p := gog.NewParser()
//	p.SetHooks(&diags)
//	shapes, err := p.Parse(r)
package gog
