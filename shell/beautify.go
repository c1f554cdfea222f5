package shell

import (
	"context"

	"github.com/abiosoft/ishell"

	"github.com/rescanvas/assist/pipeline"
)

func beautifyCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "beautify",
		Help: "clean up the loaded drawing",
		Func: func(c *ishell.Context) {
			result, err := ctx.pipeline.Run(context.Background(), pipeline.Request{
				Mode:  pipeline.ModeBeautify,
				State: ctx.state,
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
