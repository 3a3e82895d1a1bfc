// Package pkg provides the libraries behind overlay, a reader for GOG
// geometry and annotation files.
//
// # Overview
//
// A GOG file is line oriented. Each start/end block declares one shape type
// (circle, arc, line, annotation, ...) followed by field lines that set its
// positions and attributes. The libraries turn such a file into typed,
// immutable shapes whose every optional attribute reports whether it was
// written in the source or defaulted.
//
// The typical data flow:
//
//	GOG source (file, stdin, HTTP body)
//	         ↓
//	    [gog] package (tokenize, group blocks, validate, build shapes)
//	         ↓
//	    [io] package (JSON documents of shapes and diagnostics)
//	         ↓
//	    [cache] package (content-addressed result cache, file or Redis)
//
// # Quick Start
//
//	p := gog.NewParser()
//	collector := &gog.Collector{}
//	p.SetHooks(collector)
//
//	shapes, err := p.Parse(f)
//	if err != nil {
//	    return err // the reader failed; shapes holds what was read
//	}
//	doc := io.NewDocument(shapes, collector.Diagnostics)
//	return io.WriteJSON(doc, os.Stdout)
//
// # Main Packages
//
// [gog] - The parser: line normalization, block state machine, field
// handlers, per-kind validation and the Shape accessors.
//
// [units] - Range, altitude and angle units. Values are converted to meters
// and radians when a field is read.
//
// [io] - JSON export and import of parse results.
//
// [cache] - Cache interface with file, Redis and null backends, plus key
// derivation from source content.
//
// [config] - TOML configuration with environment overrides.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for parse, cache and HTTP events.
//
// [buildinfo] - Version information injected at build time.
//
// [gog]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/gog
// [units]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/units
// [io]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/overlay/pkg/buildinfo
package pkg
