package resolution

import "testing"

func TestClassifyShape(t *testing.T) {
	cases := []struct {
		name string
		want ShapeTag
	}{
		{"Layout 3 Horizontal", ShapeHorizontal},
		{"Layout 2 Vertical", ShapeVertical},
		{"Layout 1 Square", ShapeSquare},
		{"Layout 3 Panoramic", ShapePanoramic},
		{"Layout 7 Hexagon", ShapeHexagon},
		{"Layout 5 Mix", ShapeMix},
		{"layout 3 horizontal", ShapeHorizontal},
		{"LAYOUT 5 MIX", ShapeMix},
		{"Layout-4-Horizontal", ShapeHorizontal},
		{"unknown-pattern", ShapeUnknown},
		{"", ShapeUnknown},
	}
	for _, tc := range cases {
		if got := ClassifyShape(tc.name); got != tc.want {
			t.Errorf("ClassifyShape(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPieceCount(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Layout 7 Hexagon", 7},
		{"Layout 3 Horizontal", 3},
		{"layout 1 square", 1},
		{"Framed Canvas", 1},
		{"Layout 9 Experimental", 9},
		{"", 1},
	}
	for _, tc := range cases {
		if got := PieceCount(tc.name); got != tc.want {
			t.Errorf("PieceCount(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestClassifyFormatType(t *testing.T) {
	cases := []struct {
		label string
		want  FormatType
	}{
		{"1 Piece", FormatCanvas},
		{"3 Piece", FormatCanvas},
		{"7 Piece", FormatCanvas},
		{"Framed Canvas", FormatFramedCanvas},
		{"Poster", FormatPoster},
		{"Floating Frame", FormatFloatingFrame},
		{"8 Piece", FormatUnknown},
		{"", FormatUnknown},
	}
	for _, tc := range cases {
		if got := ClassifyFormatType(tc.label); got != tc.want {
			t.Errorf("ClassifyFormatType(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestShapeRulePriorityOrder(t *testing.T) {
	want := []ShapeTag{ShapeHorizontal, ShapeVertical, ShapeSquare, ShapePanoramic, ShapeHexagon, ShapeMix}
	if len(shapeRules) != len(want) {
		t.Fatalf("expected %d shape rules, got %d", len(want), len(shapeRules))
	}
	for i, rule := range shapeRules {
		if rule.tag != want[i] {
			t.Errorf("shape rule %d = %q, want %q", i, rule.tag, want[i])
		}
	}
}
