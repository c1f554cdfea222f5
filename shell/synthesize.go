package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/rescanvas/assist/pipeline"
)

func synthesizeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "synthesize",
		Help: "generate drawing commands from text, usage: synthesize [--replace] <prompt>",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("synthesize", flag.ContinueOnError)
			var replace bool
			flagSet.BoolVar(&replace, "replace", false, "replace the canvas instead of appending")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			prompt := strings.Join(flagSet.Args(), " ")
			if prompt == "" {
				c.Err(errors.New("missing prompt"))
				return
			}

			result, err := ctx.pipeline.Run(context.Background(), pipeline.Request{
				Mode:   pipeline.ModeSynthesize,
				Prompt: prompt,
				State:  ctx.state,
			})
			if err != nil {
				c.Err(err)
				return
			}

			if replace {
				ctx.state.Objects = result.Objects
			} else {
				ctx.state.Objects = append(ctx.state.Objects, result.Objects...)
			}
			c.Printf("%d object(s) from %s\n", len(result.Objects), result.Backend)
		},
	}
}
