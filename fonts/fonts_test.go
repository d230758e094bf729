package fonts

import "testing"

func TestNewSet(t *testing.T) {
	s, err := NewSet(10, 12, 14, 12)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if got := len(s.faces); got != 3 {
		t.Errorf("len(faces) = %d, want 3 (duplicates collapsed)", got)
	}
	for _, size := range []float64{10, 12, 14} {
		if s.Face(size) == nil {
			t.Errorf("Face(%v) = nil, want a face", size)
		}
	}
}

func TestFaceNearest(t *testing.T) {
	s, err := NewSet(10, 14)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	tests := []struct {
		name string
		size float64
		want float64
	}{
		{"exact", 10, 10},
		{"rounds down", 11, 10},
		{"rounds up", 13.5, 14},
		{"tie prefers smaller", 12, 10},
		{"above range", 40, 14},
		{"below range", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Face(tt.size); got != s.faces[tt.want] {
				t.Errorf("Face(%v) is not the %vpx face", tt.size, tt.want)
			}
		})
	}
}

func TestFaceEmptySet(t *testing.T) {
	s, err := NewSet()
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if got := s.Face(12); got != nil {
		t.Errorf("Face(12) on empty set = %v, want nil", got)
	}
}
