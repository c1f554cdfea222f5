package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rescanvas/assist/canvas"
)

func shape(t canvas.ShapeType, start, end canvas.Point) canvas.DrawingObject {
	return canvas.DrawingObject{
		Color:     "#000000",
		LineWidth: 2,
		PathData:  &canvas.PathData{Tool: canvas.ToolShape, Type: t, Start: &start, End: &end},
	}
}

func polygon(points ...canvas.Point) canvas.DrawingObject {
	return canvas.DrawingObject{
		Color:     "#000000",
		LineWidth: 2,
		PathData:  &canvas.PathData{Tool: canvas.ToolShape, Type: canvas.Polygon, Points: points},
	}
}

func freehand(color string, points ...canvas.Point) canvas.DrawingObject {
	return canvas.DrawingObject{
		Color:     color,
		LineWidth: 3,
		PathData:  &canvas.PathData{Tool: canvas.ToolFreehand, Type: canvas.Stroke, Points: points},
	}
}

func TestMatchSingleCircle(t *testing.T) {
	objects := []canvas.DrawingObject{
		shape(canvas.Circle, canvas.Point{X: 10, Y: 10}, canvas.Point{X: 20, Y: 10}),
	}

	res, ok := Match(objects)
	assert.True(t, ok)
	assert.Equal(t, "circle", res.Label)
	assert.Equal(t, 0.95, res.Confidence)
}

func TestMatchCircleNotAlone(t *testing.T) {
	objects := []canvas.DrawingObject{
		shape(canvas.Circle, canvas.Point{X: 10, Y: 10}, canvas.Point{X: 20, Y: 10}),
		shape(canvas.Line, canvas.Point{X: 0, Y: 0}, canvas.Point{X: 50, Y: 50}),
	}

	_, ok := Match(objects)
	assert.False(t, ok)
}

func TestMatchText(t *testing.T) {
	objects := []canvas.DrawingObject{
		shape(canvas.Line, canvas.Point{X: 0, Y: 0}, canvas.Point{X: 50, Y: 0}),
		{PathData: &canvas.PathData{Tool: canvas.ToolShape, Type: canvas.Text, Text: "Hi"}},
	}

	res, ok := Match(objects)
	assert.True(t, ok)
	assert.Equal(t, "text: 'Hi'", res.Label)
	assert.Equal(t, 0.98, res.Confidence)
}

func TestMatchCar(t *testing.T) {
	objects := []canvas.DrawingObject{
		shape(canvas.Rectangle, canvas.Point{X: 150, Y: 160}, canvas.Point{X: 320, Y: 210}),
		shape(canvas.Circle, canvas.Point{X: 180, Y: 210}, canvas.Point{X: 200, Y: 210}),
		shape(canvas.Circle, canvas.Point{X: 270, Y: 210}, canvas.Point{X: 290, Y: 210}),
	}

	res, ok := Match(objects)
	assert.True(t, ok)
	assert.Equal(t, "car", res.Label)
	assert.Equal(t, 0.90, res.Confidence)
}

func TestMatchCarWinsOverHouse(t *testing.T) {
	// Rectangle plus triangle reads as a house, but two wheels make it a
	// car because the car rule runs first.
	objects := []canvas.DrawingObject{
		shape(canvas.Rectangle, canvas.Point{X: 100, Y: 100}, canvas.Point{X: 300, Y: 200}),
		polygon(canvas.Point{X: 100, Y: 100}, canvas.Point{X: 200, Y: 40}, canvas.Point{X: 300, Y: 100}),
		shape(canvas.Circle, canvas.Point{X: 130, Y: 200}, canvas.Point{X: 150, Y: 200}),
		shape(canvas.Circle, canvas.Point{X: 250, Y: 200}, canvas.Point{X: 270, Y: 200}),
	}

	res, ok := Match(objects)
	assert.True(t, ok)
	assert.Equal(t, "car", res.Label)
}

func TestMatchHouse(t *testing.T) {
	objects := []canvas.DrawingObject{
		shape(canvas.Rectangle, canvas.Point{X: 100, Y: 100}, canvas.Point{X: 300, Y: 200}),
		polygon(canvas.Point{X: 100, Y: 100}, canvas.Point{X: 200, Y: 40}, canvas.Point{X: 300, Y: 100}),
	}

	res, ok := Match(objects)
	assert.True(t, ok)
	assert.Equal(t, "house", res.Label)
	assert.Equal(t, 0.90, res.Confidence)
}

func TestMatchTree(t *testing.T) {
	objects := []canvas.DrawingObject{
		freehand("#8B4513", canvas.Point{X: 100, Y: 200}, canvas.Point{X: 100, Y: 300}),
		freehand("#228B22", canvas.Point{X: 80, Y: 150}, canvas.Point{X: 120, Y: 140}),
	}

	res, ok := Match(objects)
	assert.True(t, ok)
	assert.Equal(t, "tree", res.Label)
	assert.Equal(t, 0.88, res.Confidence)
}

func TestMatchTreeAmbiguousStrokePairing(t *testing.T) {
	// Dark olive sits within tolerance of both brown and green. It must
	// still pair as foliage with a pure brown trunk, whichever order the
	// strokes arrive in.
	olive := freehand("#57681B", canvas.Point{X: 80, Y: 150}, canvas.Point{X: 120, Y: 140})
	brown := freehand("#8B4513", canvas.Point{X: 100, Y: 200}, canvas.Point{X: 100, Y: 300})

	for _, objects := range [][]canvas.DrawingObject{
		{olive, brown},
		{brown, olive},
	} {
		res, ok := Match(objects)
		assert.True(t, ok)
		assert.Equal(t, "tree", res.Label)
		assert.Equal(t, 0.88, res.Confidence)
	}

	// Alone, the ambiguous stroke cannot be both trunk and foliage.
	_, ok := Match([]canvas.DrawingObject{olive})
	assert.False(t, ok)
}

func TestMatchTreeNeedsSeparateStrokes(t *testing.T) {
	// One brown stroke alone is never a tree.
	objects := []canvas.DrawingObject{
		freehand("#8B4513", canvas.Point{X: 100, Y: 200}, canvas.Point{X: 100, Y: 300}),
		shape(canvas.Line, canvas.Point{X: 0, Y: 0}, canvas.Point{X: 10, Y: 10}),
	}

	_, ok := Match(objects)
	assert.False(t, ok)
}

func TestMatchNoRule(t *testing.T) {
	objects := []canvas.DrawingObject{
		shape(canvas.Line, canvas.Point{X: 0, Y: 0}, canvas.Point{X: 50, Y: 50}),
	}

	_, ok := Match(objects)
	assert.False(t, ok)
}

func TestMatchIsPure(t *testing.T) {
	objects := []canvas.DrawingObject{
		shape(canvas.Rectangle, canvas.Point{X: 0, Y: 0}, canvas.Point{X: 10, Y: 10}),
		polygon(canvas.Point{X: 0, Y: 0}, canvas.Point{X: 5, Y: -5}, canvas.Point{X: 10, Y: 0}),
	}

	first, ok := Match(objects)
	assert.True(t, ok)
	second, ok := Match(objects)
	assert.True(t, ok)
	assert.Equal(t, first, second)
}
