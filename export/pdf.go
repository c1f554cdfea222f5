// Package export renders a canvas snapshot into a PDF so drawings can be
// shared outside the app.
package export

import (
	"fmt"
	"math"

	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/rescanvas/assist/canvas"
	"github.com/rescanvas/assist/log"
)

const (
	pageWidth      = 595
	circleSegments = 24
)

// Fallback canvas size when the snapshot carries no bounds.
const (
	defaultCanvasWidth  = 1200
	defaultCanvasHeight = 800
)

type PdfExporter struct {
	outputFilePath string
	options        PdfExporterOptions
}

type PdfExporterOptions struct {
	AddPageNumbers bool
	Title          string
}

func NewPdfExporter(outputFilePath string, options PdfExporterOptions) *PdfExporter {
	return &PdfExporter{outputFilePath: outputFilePath, options: options}
}

// Export writes the snapshot as a single-page PDF scaled to a standard
// page width. Vector objects are drawn as paths; raster objects are
// skipped with a warning since their pixels live on the frontend.
func (e *PdfExporter) Export(state canvas.State) error {
	bounds := state.Bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = canvas.Bounds{Width: defaultCanvasWidth, Height: defaultCanvasHeight}
	}

	ratio := float64(pageWidth) / bounds.Width
	pageHeight := bounds.Height * ratio

	c := creator.New()
	c.SetPageSize(creator.PageSize{pageWidth, pageHeight})
	page := c.NewPage()

	if e.options.Title != "" {
		title := c.NewParagraph(e.options.Title)
		title.SetFontSize(10)
		title.SetPos(10, 10)
		if err := c.Draw(title); err != nil {
			return fmt.Errorf("export: draw title: %w", err)
		}
	}

	contentCreator := contentstream.NewContentCreator()
	for _, o := range state.Objects {
		if o.IsImage() {
			log.Warning.Printf("export: skipping raster object %s", o.ID)
			continue
		}
		if o.PathData == nil {
			continue
		}
		if o.PathData.Type == canvas.Text {
			if err := e.drawText(c, o, ratio); err != nil {
				return err
			}
			continue
		}

		path, ok := objectPath(o.PathData, ratio, c.Height())
		if !ok {
			continue
		}

		rgb := canvas.HexToRGB(o.Color)
		lineWidth := o.LineWidth * ratio
		if lineWidth <= 0 {
			lineWidth = ratio
		}

		contentCreator.Add_q()
		contentCreator.Add_w(lineWidth)
		contentCreator.Add_RG(float64(rgb.R)/255, float64(rgb.G)/255, float64(rgb.B)/255)
		draw.DrawPathWithCreator(path, contentCreator)
		contentCreator.Add_S()
		contentCreator.Add_Q()
	}

	ops := contentCreator.Operations()
	if err := page.AppendContentStream(string(ops.Bytes())); err != nil {
		return fmt.Errorf("export: append content: %w", err)
	}

	if e.options.AddPageNumbers {
		c.DrawFooter(func(block *creator.Block, args creator.FooterFunctionArgs) {
			p := c.NewParagraph(fmt.Sprintf("%d", args.PageNum))
			p.SetFontSize(8)
			p.SetPos(block.Width()-20, block.Height()-10)
			block.Draw(p)
		})
	}

	return c.WriteToFile(e.outputFilePath)
}

func (e *PdfExporter) drawText(c *creator.Creator, o canvas.DrawingObject, ratio float64) error {
	p := c.NewParagraph(o.PathData.Text)
	p.SetFontSize(12)
	p.SetPos(o.X*ratio, o.Y*ratio)
	if err := c.Draw(p); err != nil {
		return fmt.Errorf("export: draw text: %w", err)
	}
	return nil
}

// objectPath converts one vector object into a page-space path. The
// vertical axis flips because PDF coordinates grow upward.
func objectPath(p *canvas.PathData, ratio, pageHeight float64) (draw.Path, bool) {
	flip := func(pt canvas.Point) draw.Point {
		return draw.NewPoint(pt.X*ratio, pageHeight-pt.Y*ratio)
	}

	path := draw.NewPath()

	switch p.Type {
	case canvas.Stroke, canvas.Polygon:
		if len(p.Points) == 0 {
			return path, false
		}
		for _, pt := range p.Points {
			path = path.AppendPoint(flip(pt))
		}
		if p.Type == canvas.Polygon {
			path = path.AppendPoint(flip(p.Points[0]))
		}

	case canvas.Line:
		if p.Start == nil || p.End == nil {
			return path, false
		}
		path = path.AppendPoint(flip(*p.Start))
		path = path.AppendPoint(flip(*p.End))

	case canvas.Rectangle:
		if p.Start == nil || p.End == nil {
			return path, false
		}
		corners := []canvas.Point{
			*p.Start,
			{X: p.End.X, Y: p.Start.Y},
			*p.End,
			{X: p.Start.X, Y: p.End.Y},
			*p.Start,
		}
		for _, pt := range corners {
			path = path.AppendPoint(flip(pt))
		}

	case canvas.Circle:
		if p.Start == nil || p.End == nil {
			return path, false
		}
		radius := math.Hypot(p.End.X-p.Start.X, p.End.Y-p.Start.Y)
		if radius == 0 {
			return path, false
		}
		for i := 0; i <= circleSegments; i++ {
			angle := 2 * math.Pi * float64(i) / circleSegments
			path = path.AppendPoint(flip(canvas.Point{
				X: p.Start.X + radius*math.Cos(angle),
				Y: p.Start.Y + radius*math.Sin(angle),
			}))
		}

	default:
		return path, false
	}

	return path, true
}
