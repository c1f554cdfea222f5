package shell

import (
	"encoding/json"

	"github.com/abiosoft/ishell"

	"github.com/rescanvas/assist/canvas"
)

func displayObject(c *ishell.Context, index int, o canvas.DrawingObject) {
	oType := "image"
	if o.PathData != nil {
		oType = string(o.PathData.Type)
	}
	c.Printf("[%d]\t%s\t%s\tlw=%g\n", index, oType, o.Color, o.LineWidth)
}

func displayJSON(c *ishell.Context, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	c.Println(string(output))
	return nil
}

func objectsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "objects",
		Help: "list the objects of the loaded canvas",
		Func: func(c *ishell.Context) {
			for i, o := range ctx.state.Objects {
				displayObject(c, i, o)
			}
		},
	}
}
