package canvas

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// ExtractBBox computes the bounding box of a path. The box is derived from
// the point sequence when present, otherwise from the start/end pair. It
// returns ok=false when neither encoding is usable; it never panics.
func ExtractBBox(p *PathData) (BBox, bool) {
	if p == nil {
		return BBox{}, false
	}

	var xs, ys []float64
	if len(p.Points) > 0 {
		for _, pt := range p.Points {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
	} else if p.Start != nil && p.End != nil {
		xs = []float64{p.Start.X, p.End.X}
		ys = []float64{p.Start.Y, p.End.Y}
	}

	if len(xs) == 0 {
		return BBox{}, false
	}

	box := BBox{MinX: xs[0], MaxX: xs[0], MinY: ys[0], MaxY: ys[0]}
	for i := 1; i < len(xs); i++ {
		if xs[i] < box.MinX {
			box.MinX = xs[i]
		}
		if xs[i] > box.MaxX {
			box.MaxX = xs[i]
		}
		if ys[i] < box.MinY {
			box.MinY = ys[i]
		}
		if ys[i] > box.MaxY {
			box.MaxY = ys[i]
		}
	}
	return box, true
}
