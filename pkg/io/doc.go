// Package io provides JSON export and import of parsed shapes.
//
// # Overview
//
// Finalized shapes are read-only values with unexported state. This package
// gives them a stable JSON form for external tools, the HTTP service and the
// parse cache:
//
//	{
//	  "shapes": [
//	    {
//	      "kind": "circle",
//	      "line": 1,
//	      "relative": false,
//	      "positions": [{"x": 0.4276, "y": 0.9529, "z": 0}],
//	      "fields": {
//	        "radius": {"value": 10000, "explicit": true},
//	        "lineWidth": {"value": 1, "explicit": false}
//	      }
//	    }
//	  ],
//	  "diagnostics": [
//	    {"line": 9, "code": "MISSING_FIELD", "message": "line needs 2 points, got 1"}
//	  ]
//	}
//
// Every optional attribute of a shape's kind appears in fields, whether or
// not it was set, so consumers can tell a default from an explicit value.
// Positions are in radians and meters; colors are "#rrggbbaa" strings and
// enums use their keyword names.
//
// # Export
//
// Use [NewDocument] to convert parser output, then [WriteJSON] or
// [ExportJSON]:
//
//	doc := io.NewDocument(shapes, collector.Diagnostics)
//	err := io.ExportJSON(doc, "shapes.json")
//
// # Import
//
// [ReadJSON] and [ImportJSON] decode a document back into the same types.
// Decoded shapes are data only; they cannot be turned back into gog shapes.
package io
