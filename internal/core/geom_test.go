package core

import "testing"

func TestRect(t *testing.T) {
	// The well border: 20 columns plus walls, 18 rows plus floor and ceiling
	r := NewRect(3, 1, 22, 20)

	if r.Right() != 25 || r.Bottom() != 21 {
		t.Errorf("edges = (%d, %d), want (25, 21)", r.Right(), r.Bottom())
	}

	tests := []struct {
		x, y int
		want bool
	}{
		{3, 1, true},
		{24, 20, true},
		{25, 1, false},
		{3, 21, false},
		{2, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
