package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/rescanvas/assist/canvas"
	"github.com/rescanvas/assist/pipeline"
)

func parseBox(s string) (canvas.SelectionBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return canvas.SelectionBox{}, fmt.Errorf("box must be x,y,width,height")
	}
	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return canvas.SelectionBox{}, fmt.Errorf("bad box value %q", p)
		}
		values[i] = v
	}
	return canvas.SelectionBox{X: values[0], Y: values[1], Width: values[2], Height: values[3]}, nil
}

// inBox keeps the objects whose bounding box overlaps the selection.
func inBox(objects []canvas.DrawingObject, box canvas.SelectionBox) []canvas.DrawingObject {
	var selected []canvas.DrawingObject
	for _, o := range objects {
		bbox, ok := canvas.ExtractBBox(o.PathData)
		if !ok {
			continue
		}
		if bbox.MaxX < box.X || bbox.MinX > box.X+box.Width ||
			bbox.MaxY < box.Y || bbox.MinY > box.Y+box.Height {
			continue
		}
		selected = append(selected, o)
	}
	return selected
}

func recognizeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "recognize",
		Help: "label the selection, usage: recognize [--box x,y,w,h]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("recognize", flag.ContinueOnError)
			var boxArg string
			flagSet.StringVar(&boxArg, "box", "", "selection box as x,y,width,height (default: whole canvas)")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			box := canvas.SelectionBox{
				Width:  ctx.state.Bounds.Width,
				Height: ctx.state.Bounds.Height,
			}
			objects := ctx.state.Objects
			if boxArg != "" {
				var err error
				box, err = parseBox(boxArg)
				if err != nil {
					c.Err(err)
					return
				}
				objects = inBox(objects, box)
			}

			if len(objects) == 0 {
				c.Err(errors.New("nothing inside the selection"))
				return
			}

			result, err := ctx.pipeline.Run(context.Background(), pipeline.Request{
				Mode:      pipeline.ModeRecognize,
				Selection: box,
				State:     canvas.State{Bounds: ctx.state.Bounds, Objects: objects},
			})
			if err != nil {
				c.Err(err)
				return
			}

			displayJSON(c, result.Recognition)
		},
	}
}
