package shell

import (
	"encoding/json"
	"errors"
	"io/ioutil"

	"github.com/abiosoft/ishell"
)

func saveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "save",
		Help: "write the canvas snapshot back to disk, usage: save [file.json]",
		Func: func(c *ishell.Context) {
			fileName := ctx.fileName
			if len(c.Args) > 0 {
				fileName = c.Args[0]
			}
			if fileName == "" {
				c.Err(errors.New("no file name, use: save <file.json>"))
				return
			}

			data, err := json.MarshalIndent(ctx.state, "", "  ")
			if err != nil {
				c.Err(err)
				return
			}

			if err := ioutil.WriteFile(fileName, data, 0644); err != nil {
				c.Err(err)
				return
			}

			ctx.fileName = fileName
			c.Println("OK")
		},
	}
}
