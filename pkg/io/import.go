package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a document previously written by [WriteJSON].
//
// Field values decode to plain JSON types: numbers as float64, colors and
// enums as strings, and positions as map[string]any. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, s := range doc.Shapes {
		if s.Kind == "" {
			return nil, fmt.Errorf("shape %d: missing kind", i)
		}
	}
	return &doc, nil
}

// ImportJSON reads a document from the JSON file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
