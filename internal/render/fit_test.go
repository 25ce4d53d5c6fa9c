package render

import (
	"math"
	"testing"

	"banner-studio/internal/transform"
)

func TestFitScale(t *testing.T) {
	tests := []struct {
		name         string
		availW       float64
		availH       float64
		want         float64
	}{
		{"landscape container", 1000, 800, 720.0 / 1080},
		{"portrait container", 800, 1000, 720.0 / 1080},
		{"exact fit", 1160, 1160, 1.0},
		{"oversized container", 2240, 2240, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitScale(tt.availW, tt.availH)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FitScale(%v, %v) = %v, want %v", tt.availW, tt.availH, got, tt.want)
			}
		})
	}
}

func TestFitScaleNeverReachesZero(t *testing.T) {
	for _, dim := range []float64{0, 10, 80} {
		if got := FitScale(dim, dim); got != transform.MinPreviewScale {
			t.Errorf("FitScale(%v, %v) = %v, want floor %v", dim, dim, got, transform.MinPreviewScale)
		}
	}
}
