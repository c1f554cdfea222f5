package canvas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBBoxFromPoints(t *testing.T) {
	p := &PathData{
		Tool: ToolFreehand,
		Type: Stroke,
		Points: []Point{
			{X: 10, Y: 40},
			{X: 30, Y: 20},
			{X: 25, Y: 55},
		},
	}

	box, ok := ExtractBBox(p)
	require.True(t, ok)
	assert.Equal(t, 10.0, box.MinX)
	assert.Equal(t, 30.0, box.MaxX)
	assert.Equal(t, 20.0, box.MinY)
	assert.Equal(t, 55.0, box.MaxY)
	assert.Equal(t, Point{X: 20, Y: 37.5}, box.Center())
}

func TestExtractBBoxFromStartEnd(t *testing.T) {
	p := &PathData{
		Tool:  ToolShape,
		Type:  Rectangle,
		Start: &Point{X: 100, Y: 200},
		End:   &Point{X: 50, Y: 250},
	}

	box, ok := ExtractBBox(p)
	require.True(t, ok)
	assert.Equal(t, 50.0, box.MinX)
	assert.Equal(t, 100.0, box.MaxX)
	assert.Equal(t, 50.0, box.Width())
	assert.Equal(t, 50.0, box.Height())
}

func TestExtractBBoxUnusableGeometry(t *testing.T) {
	// A text path has neither points nor a start/end pair.
	_, ok := ExtractBBox(&PathData{Type: Text, Text: "Hi"})
	assert.False(t, ok)

	// Only one endpoint present.
	_, ok = ExtractBBox(&PathData{Type: Line, Start: &Point{X: 1, Y: 2}})
	assert.False(t, ok)

	_, ok = ExtractBBox(nil)
	assert.False(t, ok)
}

func TestPathDataUnmarshalNormalizes(t *testing.T) {
	// A reply that populates every encoding keeps only the one matching
	// its type tag.
	raw := `{"tool":"shape","type":"circle","start":{"x":10,"y":10},"end":{"x":20,"y":10},"points":[{"x":1,"y":1}],"text":"junk"}`

	var p PathData
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, Circle, p.Type)
	require.NotNil(t, p.Start)
	assert.Nil(t, p.Points)
	assert.Empty(t, p.Text)

	raw = `{"tool":"freehand","type":"stroke","start":{"x":0,"y":0},"points":[{"x":1,"y":2},{"x":3,"y":4}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Nil(t, p.Start)
	assert.Len(t, p.Points, 2)
}

func TestHexToRGB(t *testing.T) {
	assert.Equal(t, RGB{R: 139, G: 69, B: 19}, HexToRGB("#8B4513"))
	assert.Equal(t, RGB{R: 34, G: 139, B: 34}, HexToRGB("228B22"))
	assert.Equal(t, RGB{}, HexToRGB("#xyzxyz"))
	assert.Equal(t, RGB{}, HexToRGB(""))
	assert.Equal(t, RGB{}, HexToRGB("#fff"))
}

func TestRGBWithin(t *testing.T) {
	brown := RGB{R: 139, G: 69, B: 19}
	assert.True(t, brown.Within(RGB{R: 139, G: 69, B: 19}, 0))
	assert.True(t, RGB{R: 160, G: 82, B: 45}.Within(brown, 100)) // sienna
	assert.False(t, RGB{R: 34, G: 139, B: 34}.Within(brown, 100))
}
