// Package canvas defines the geometry model shared by every component of
// the assist pipeline: drawing objects as the frontend submits them and as
// the generation backends emit them.
package canvas

import "encoding/json"

// Tool distinguishes rigid shape commands from freehand strokes.
type Tool string

const (
	ToolShape    Tool = "shape"
	ToolFreehand Tool = "freehand"
)

// ShapeType is the geometry tag of a path.
type ShapeType string

const (
	Line      ShapeType = "line"
	Rectangle ShapeType = "rectangle"
	Circle    ShapeType = "circle"
	Polygon   ShapeType = "polygon"
	Text      ShapeType = "text"
	Stroke    ShapeType = "stroke"
)

// Point is an absolute canvas coordinate, (0,0) at top-left.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the valid coordinate range [0,Width]x[0,Height].
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SelectionBox is the user's recognition selection.
type SelectionBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PathData is a tagged variant over Tool and ShapeType. Exactly one geometry
// encoding is populated, consistent with Type: Start/End for line, rectangle
// and circle, Points for polygon and stroke, Text for text.
type PathData struct {
	Tool  Tool      `json:"tool,omitempty"`
	Type  ShapeType `json:"type"`
	Start *Point    `json:"start,omitempty"`
	End   *Point    `json:"end,omitempty"`
	Points []Point  `json:"points,omitempty"`
	Text  string    `json:"text,omitempty"`
}

// UnmarshalJSON decodes a path and normalizes it so that only the geometry
// encoding matching Type survives. Backends occasionally echo every field
// from the schema description; the extra encodings are dropped rather than
// rejected.
func (p *PathData) UnmarshalJSON(data []byte) error {
	type alias PathData
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PathData(raw)
	switch p.Type {
	case Line, Rectangle, Circle:
		p.Points = nil
		p.Text = ""
	case Polygon, Stroke:
		p.Start = nil
		p.End = nil
		p.Text = ""
	case Text:
		p.Start = nil
		p.End = nil
		p.Points = nil
	}
	return nil
}

// StampData places a raster element on the canvas.
type StampData struct {
	ImageDataURL string   `json:"imageDataUrl,omitempty"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Width        *float64 `json:"width,omitempty"`
	Height       *float64 `json:"height,omitempty"`
}

// RenderMetadata tells the frontend renderer how to display an object.
// It is synthesized during style post-processing and never required on
// input.
type RenderMetadata struct {
	DrawingType string                 `json:"drawingType,omitempty"`
	BrushType   string                 `json:"brushType,omitempty"`
	BrushParams map[string]interface{} `json:"brushParams,omitempty"`
	StampData   *StampData             `json:"stampData,omitempty"`
}

// Drawing type values used in RenderMetadata.
const (
	DrawStroke = "stroke"
	DrawImage  = "image"
	DrawStamp  = "stamp"
)

// DrawingObject is a single renderable command. Vector objects carry
// PathData; raster objects emitted by style transfer carry ImageDataURL
// plus a placement.
type DrawingObject struct {
	ID        string          `json:"id,omitempty"`
	Color     string          `json:"color,omitempty"`
	LineWidth float64         `json:"lineWidth,omitempty"`
	PathData  *PathData       `json:"pathData,omitempty"`
	Metadata  *RenderMetadata `json:"metadata,omitempty"`

	DrawingType  string   `json:"drawingType,omitempty"`
	ImageDataURL string   `json:"imageDataUrl,omitempty"`
	X            float64  `json:"x,omitempty"`
	Y            float64  `json:"y,omitempty"`
	Width        *float64 `json:"width,omitempty"`
	Height       *float64 `json:"height,omitempty"`
}

// IsImage reports whether the object is raster-like rather than a vector
// path.
func (o *DrawingObject) IsImage() bool {
	return o.DrawingType == DrawImage || o.ImageDataURL != ""
}

// State is the snapshot of the drawing surface supplied with a request.
// Object order is z-order and is preserved end to end.
type State struct {
	Bounds  Bounds          `json:"bounds"`
	Objects []DrawingObject `json:"objects"`
}
