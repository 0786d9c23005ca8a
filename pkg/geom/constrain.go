package geom

import "math"

// Clamp returns r corrected so that it is at least min in size and lies
// inside area. A rectangle larger than area is shrunk to fit, but never below
// min; if it still does not fit it is pinned to the area's top-left corner.
// An empty area only applies the minimum size.
func Clamp(r Rect, min Size, area Rect) Rect {
	r.Width = math.Max(r.Width, min.W)
	r.Height = math.Max(r.Height, min.H)
	if area.Width <= 0 || area.Height <= 0 {
		return r
	}

	r.Width = math.Max(math.Min(r.Width, area.Width), min.W)
	r.Height = math.Max(math.Min(r.Height, area.Height), min.H)
	r.X = clampAxis(r.X, r.Width, area.X, area.Right())
	r.Y = clampAxis(r.Y, r.Height, area.Y, area.Bottom())
	return r
}

// ClampPosition keeps the size of r and only moves it inside area.
func ClampPosition(r Rect, area Rect) Rect {
	if area.Width <= 0 || area.Height <= 0 {
		return r
	}
	r.X = clampAxis(r.X, r.Width, area.X, area.Right())
	r.Y = clampAxis(r.Y, r.Height, area.Y, area.Bottom())
	return r
}

func clampAxis(pos, size, lo, hi float64) float64 {
	if pos+size > hi {
		pos = hi - size
	}
	if pos < lo {
		pos = lo
	}
	return pos
}
