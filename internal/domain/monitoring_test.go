package domain

import "testing"

func TestVegetationHealth(t *testing.T) {
	tests := []struct {
		ndvi float64
		want string
	}{
		{0.85, "excellent"},
		{0.7, "excellent"},
		{0.55, "good"},
		{0.5, "good"},
		{0.35, "fair"},
		{0.3, "fair"},
		{0.1, "poor"},
		{-0.2, "poor"},
	}

	for _, tt := range tests {
		if got := VegetationHealth(tt.ndvi); got != tt.want {
			t.Errorf("VegetationHealth(%v) = %q, want %q", tt.ndvi, got, tt.want)
		}
	}
}
