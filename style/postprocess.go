package style

import (
	"github.com/rescanvas/assist/canvas"
)

// Relative stroke paths for the two texture overlays, expressed as
// fractions of the source bounding box around its center.
var (
	overlayPath1 = [][2]float64{{-0.3, -0.2}, {-0.1, -0.25}, {0.1, -0.15}}
	overlayPath2 = [][2]float64{{-0.4, 0.1}, {0.0, 0.15}, {0.35, 0.05}}
)

// Postprocess fills in rendering metadata on every restyled object and,
// for the impasto class, appends texture overlays. Objects that arrived
// with their own metadata are left untouched, and a single such object
// suppresses overlays for the whole batch. Enrichment is best effort: the
// input order is preserved and nothing here can fail the request.
func Postprocess(objects []canvas.DrawingObject, styleText string) []canvas.DrawingObject {
	brush := Map(styleText)

	processed := make([]canvas.DrawingObject, 0, len(objects))
	hadExplicit := false

	for _, o := range objects {
		explicit := o.Metadata != nil
		meta := canvas.RenderMetadata{}
		if o.Metadata != nil {
			meta = *o.Metadata
		}

		if o.IsImage() {
			if meta.DrawingType == "" {
				meta.DrawingType = canvas.DrawImage
			}
			if meta.StampData == nil {
				meta.StampData = &canvas.StampData{
					ImageDataURL: o.ImageDataURL,
					X:            o.X,
					Y:            o.Y,
					Width:        o.Width,
					Height:       o.Height,
				}
			}
		} else {
			if meta.DrawingType == "" {
				meta.DrawingType = canvas.DrawStroke
			}
			if meta.BrushType == "" {
				meta.BrushType = brush.Type
			}
			if meta.BrushParams == nil {
				meta.BrushParams = copyParams(brush.Params)
			}
		}

		o.Metadata = &meta
		processed = append(processed, o)

		if explicit && meta.BrushType != "" {
			hadExplicit = true
		}
	}

	if IsImpasto(styleText) && !hadExplicit {
		var overlays []canvas.DrawingObject
		for i, o := range processed {
			if o.Metadata != nil && o.Metadata.DrawingType == canvas.DrawImage {
				continue
			}
			if o.PathData == nil {
				continue
			}
			bbox, ok := canvas.ExtractBBox(o.PathData)
			if !ok {
				continue
			}
			overlays = append(overlays, synthesizeOverlays(o, bbox, brush.Params, i)...)
		}
		processed = append(processed, overlays...)
	}

	return processed
}

// firstMixColor digs the first palette entry out of brush params, which
// hold either decoded JSON or the mapper's own values.
func firstMixColor(params map[string]interface{}) (string, bool) {
	switch colors := params["mixColors"].(type) {
	case []interface{}:
		if len(colors) > 0 {
			if c, ok := colors[0].(string); ok {
				return c, true
			}
		}
	case []string:
		if len(colors) > 0 {
			return colors[0], true
		}
	}
	return "", false
}

// synthesizeOverlays builds the two short freehand strokes that fake
// impasto texture over one source object. The jitter offset cycles with
// the object index so consecutive overlays do not stack exactly.
func synthesizeOverlays(o canvas.DrawingObject, bbox canvas.BBox, params map[string]interface{}, index int) []canvas.DrawingObject {
	color := o.Color
	if o.Metadata != nil && o.Metadata.BrushParams != nil {
		if c, ok := firstMixColor(o.Metadata.BrushParams); ok {
			color = c
		}
	}
	if color == "" {
		color = "#000000"
	}

	brushType := "wacky"
	if base, ok := params["base"].(string); ok && base != "" {
		brushType = base
	}

	width := bbox.Width()
	height := bbox.Height()
	center := bbox.Center()
	offs := float64((index%3)-1) * 4

	stroke := func(rel [][2]float64, mult float64) canvas.DrawingObject {
		points := make([]canvas.Point, 0, len(rel))
		for _, r := range rel {
			points = append(points, canvas.Point{
				X: center.X + r[0]*width + offs,
				Y: center.Y + r[1]*height + offs,
			})
		}

		lw := int(o.LineWidth * mult)
		if lw < 2 {
			lw = 2
		}

		overlayParams := copyParams(params)
		if _, ok := overlayParams["opacity"]; !ok {
			overlayParams["opacity"] = 0.9
		}

		return canvas.DrawingObject{
			Color:     color,
			LineWidth: float64(lw),
			PathData:  &canvas.PathData{Tool: canvas.ToolFreehand, Type: canvas.Stroke, Points: points},
			Metadata: &canvas.RenderMetadata{
				DrawingType: canvas.DrawStroke,
				BrushType:   brushType,
				BrushParams: overlayParams,
			},
		}
	}

	return []canvas.DrawingObject{
		stroke(overlayPath1, 1.0),
		stroke(overlayPath2, 1.3),
	}
}
