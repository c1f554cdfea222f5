package shell

import (
	"context"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/rescanvas/assist/pipeline"
)

func completeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "complete",
		Help: "suggest the next stroke, usage: complete [--apply]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("complete", flag.ContinueOnError)
			var apply bool
			flagSet.BoolVar(&apply, "apply", false, "append the suggestion to the canvas")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			result, err := ctx.pipeline.Run(context.Background(), pipeline.Request{
				Mode:  pipeline.ModeComplete,
				State: ctx.state,
			})
			if err != nil {
				c.Err(err)
				return
			}

			if err := displayJSON(c, result.Completion); err != nil {
				c.Err(err)
				return
			}

			if apply && result.Completion.Object != nil {
				ctx.state.Objects = append(ctx.state.Objects, *result.Completion.Object)
				c.Println("applied")
			}
		},
	}
}
