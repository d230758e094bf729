package components

import "testing"

func TestRenderLayersIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RenderLayersData
		want bool
	}{
		{"same layer", LayerPixelPerfect, LayerPixelPerfect, true},
		{"disjoint layers", LayerPixelPerfect, LayerHighRes, false},
		{"superset", LayerPixelPerfect | LayerHighRes, LayerHighRes, true},
		{"empty against full", 0, LayerPixelPerfect | LayerHighRes, false},
		{"both empty", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("(%b).Intersects(%b) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("(%b).Intersects(%b) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
