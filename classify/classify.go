// Package classify implements the geometric fast path for recognition.
// It inspects only the vector primitives inside the selection and labels
// the obvious cases without any backend call.
package classify

import (
	"fmt"

	"github.com/rescanvas/assist/canvas"
)

// Result is a recognition verdict produced from geometry alone.
type Result struct {
	Label       string
	Confidence  float64
	Explanation string
}

var (
	trunkBrown   = canvas.RGB{R: 139, G: 69, B: 19}
	foliageGreen = canvas.RGB{R: 34, G: 139, B: 34}
)

const (
	trunkTolerance   = 100
	foliageTolerance = 120
)

func countType(objects []canvas.DrawingObject, t canvas.ShapeType) int {
	n := 0
	for _, o := range objects {
		if o.PathData != nil && o.PathData.Type == t {
			n++
		}
	}
	return n
}

func isTriangle(o canvas.DrawingObject) bool {
	return o.PathData != nil && o.PathData.Type == canvas.Polygon && len(o.PathData.Points) == 3
}

// Match tries the rules in fixed order and reports the first hit. The
// ordering is load bearing: a scene with both wheels and a triangular
// roof is a car, not a house.
func Match(objects []canvas.DrawingObject) (Result, bool) {
	circles := countType(objects, canvas.Circle)

	if circles == 1 && len(objects) == 1 {
		return Result{
			Label:       "circle",
			Confidence:  0.95,
			Explanation: "Single circular shape primitive within selection.",
		}, true
	}

	for _, o := range objects {
		if o.PathData != nil && o.PathData.Type == canvas.Text && o.PathData.Text != "" {
			return Result{
				Label:       fmt.Sprintf("text: '%s'", o.PathData.Text),
				Confidence:  0.98,
				Explanation: "A text primitive with an explicit string was found.",
			}, true
		}
	}

	rects := countType(objects, canvas.Rectangle)
	polys := countType(objects, canvas.Polygon)
	if rects+polys >= 1 && circles >= 2 {
		return Result{
			Label:       "car",
			Confidence:  0.90,
			Explanation: "Rectangular/polygonal body plus multiple circular wheel primitives.",
		}, true
	}

	triangles := 0
	for _, o := range objects {
		if isTriangle(o) {
			triangles++
		}
	}
	if rects >= 1 && triangles >= 1 {
		return Result{
			Label:       "house",
			Confidence:  0.90,
			Explanation: "Rectangular base plus triangular roof polygon detected.",
		}, true
	}

	var trunk, foliage []int
	for i, o := range objects {
		if o.PathData == nil || o.PathData.Tool != canvas.ToolFreehand {
			continue
		}
		rgb := canvas.HexToRGB(o.Color)
		if rgb.Within(trunkBrown, trunkTolerance) {
			trunk = append(trunk, i)
		}
		if rgb.Within(foliageGreen, foliageTolerance) {
			foliage = append(foliage, i)
		}
	}
	if pairable(trunk, foliage) {
		return Result{
			Label:       "tree",
			Confidence:  0.88,
			Explanation: "Brown trunk-like stroke plus clustered green freehand strokes resembling foliage.",
		}, true
	}

	return Result{}, false
}

// pairable reports whether a trunk index and a foliage index can be
// chosen as two distinct strokes. A single stroke whose color sits
// within both tolerances does not make a tree on its own.
func pairable(trunk, foliage []int) bool {
	for _, t := range trunk {
		for _, f := range foliage {
			if t != f {
				return true
			}
		}
	}
	return false
}
