package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/rescanvas/assist/pipeline"
)

func styleCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "style",
		Help: "restyle the drawing, usage: style <style text, e.g. Van Gogh oil painting>",
		Func: func(c *ishell.Context) {
			styleText := strings.Join(c.Args, " ")
			if styleText == "" {
				c.Err(errors.New("missing style text"))
				return
			}

			result, err := ctx.pipeline.Run(context.Background(), pipeline.Request{
				Mode:      pipeline.ModeStyle,
				StyleText: styleText,
				State:     ctx.state,
			})
			if err != nil {
				c.Err(err)
				return
			}

			ctx.state.Objects = result.Objects
			if result.Backend == "rollback" {
				c.Println("backends unavailable, canvas unchanged")
				return
			}
			c.Printf("%d object(s) from %s\n", len(result.Objects), result.Backend)
		},
	}
}
