package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	if r.Right() != 110 {
		t.Errorf("Right() = %v, want 110", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", r.Bottom())
	}
	if r.CenterX() != 60 {
		t.Errorf("CenterX() = %v, want 60", r.CenterX())
	}
	if r.CenterY() != 45 {
		t.Errorf("CenterY() = %v, want 45", r.CenterY())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{5, 5}, true},
		{"top-left corner", Point{0, 0}, true},
		{"right edge exclusive", Point{10, 5}, false},
		{"bottom edge exclusive", Point{5, 10}, false},
		{"outside", Point{-1, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundsArea(t *testing.T) {
	b := Bounds{
		Viewport: Size{W: 1000, H: 800},
		Padding:  Insets{Top: 40, Right: 16, Bottom: 16, Left: 16},
	}
	want := Rect{X: 16, Y: 40, Width: 968, Height: 744}
	if got := b.Area(); got != want {
		t.Errorf("Area() = %+v, want %+v", got, want)
	}
}

func TestInsetNeverNegative(t *testing.T) {
	r := Rect{Width: 10, Height: 10}.Inset(Uniform(20))
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("Inset() = %+v, want zero size", r)
	}
}
