package shell

import (
	"encoding/json"
	"errors"
	"io/ioutil"

	"github.com/abiosoft/ishell"

	"github.com/rescanvas/assist/canvas"
)

func loadCmd(ctx *ShellCtxt, shell *ishell.Shell) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "load",
		Help: "load a canvas snapshot, usage: load <file.json>",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing snapshot file"))
				return
			}

			fileName := c.Args[0]
			data, err := ioutil.ReadFile(fileName)
			if err != nil {
				c.Err(err)
				return
			}

			var state canvas.State
			if err := json.Unmarshal(data, &state); err != nil {
				c.Err(err)
				return
			}

			ctx.state = state
			ctx.fileName = fileName
			shell.SetPrompt(ctx.prompt())
			c.Printf("loaded %d object(s), bounds %gx%g\n",
				len(state.Objects), state.Bounds.Width, state.Bounds.Height)
		},
	}
}
