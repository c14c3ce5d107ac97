package canopy

import "testing"

func TestMarginOf(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Margin
	}{
		{"none", nil, Margin{}},
		{"one", []float64{5}, Margin{5, 5, 5, 5}},
		{"two", []float64{1, 2}, Margin{Top: 1, Right: 2, Bottom: 1, Left: 2}},
		{"three", []float64{1, 2, 3}, Margin{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		{"four", []float64{1, 2, 3, 4}, Margin{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"extra ignored", []float64{1, 2, 3, 4, 5, 6}, Margin{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"negative", []float64{-2}, Margin{-2, -2, -2, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarginOf(tt.values...); got != tt.want {
				t.Errorf("MarginOf(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMarginConstructorsAgree(t *testing.T) {
	if UniformMargin(3) != MarginOf(3) {
		t.Error("UniformMargin != MarginOf(1 value)")
	}
	if SymmetricMargin(1, 2) != MarginOf(1, 2) {
		t.Error("SymmetricMargin != MarginOf(2 values)")
	}
	if Margin3(1, 2, 3) != MarginOf(1, 2, 3) {
		t.Error("Margin3 != MarginOf(3 values)")
	}
	if NewMargin(1, 2, 3, 4) != MarginOf(1, 2, 3, 4) {
		t.Error("NewMargin != MarginOf(4 values)")
	}
}

func TestMarginSums(t *testing.T) {
	m := NewMargin(1, 2, 3, 4)
	if m.Horizontal() != 6 {
		t.Errorf("Horizontal = %v, want 6", m.Horizontal())
	}
	if m.Vertical() != 4 {
		t.Errorf("Vertical = %v, want 4", m.Vertical())
	}
	if got := m.Offset(); got != (Vec2{4, 1}) {
		t.Errorf("Offset = %v, want {4 1}", got)
	}
}
