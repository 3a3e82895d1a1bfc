package gog

import "testing"

func TestLookupKind(t *testing.T) {
	tests := []struct {
		keyword string
		want    Kind
		ok      bool
	}{
		{"circle", KindCircle, true},
		{"CIRCLE", KindCircle, true},
		{"poly", KindPolygon, true},
		{"Polygon", KindPolygon, true},
		{"linesegs", KindLineSegs, true},
		{"annotation", KindAnnotation, true},
		{"radius", KindUnknown, false},
		{"", KindUnknown, false},
	}
	for _, tt := range tests {
		got, ok := LookupKind(tt.keyword)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupKind(%q) = %v, %v; want %v, %v", tt.keyword, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKindsRoundTrip(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 14 {
		t.Fatalf("Kinds() returned %d kinds, want 14", len(kinds))
	}
	for _, k := range kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q): %v", k, err)
			continue
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("hexagon"); err == nil {
		t.Error("ParseKind(hexagon) should fail")
	}
}

func TestKindKeywordsAreNotFields(t *testing.T) {
	for kw := range kindByKeyword {
		if IsFieldKeyword(kw) {
			t.Errorf("%q is both a shape type and a field keyword", kw)
		}
	}
	for _, kw := range []string{"start", "end"} {
		if IsFieldKeyword(kw) {
			t.Errorf("%q must not be a field keyword", kw)
		}
	}
}
