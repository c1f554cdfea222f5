// Package shell is the interactive console for working with canvas
// snapshots locally: load a snapshot, run assist modes against the
// configured backends, inspect the results and export them.
package shell

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/rescanvas/assist/canvas"
	"github.com/rescanvas/assist/pipeline"
)

type ShellCtxt struct {
	pipeline *pipeline.Pipeline
	state    canvas.State
	fileName string
}

func (ctx *ShellCtxt) prompt() string {
	name := ctx.fileName
	if name == "" {
		name = "canvas"
	}
	return fmt.Sprintf("[%s]>", name)
}

func RunShell(p *pipeline.Pipeline) error {
	ctx := &ShellCtxt{
		pipeline: p,
		state:    canvas.State{Bounds: canvas.Bounds{Width: 1200, Height: 800}},
	}

	shell := ishell.New()
	shell.Println("canvas assist shell")
	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(loadCmd(ctx, shell))
	shell.AddCmd(saveCmd(ctx))
	shell.AddCmd(objectsCmd(ctx))
	shell.AddCmd(synthesizeCmd(ctx))
	shell.AddCmd(completeCmd(ctx))
	shell.AddCmd(beautifyCmd(ctx))
	shell.AddCmd(styleCmd(ctx))
	shell.AddCmd(recognizeCmd(ctx))
	shell.AddCmd(exportCmd(ctx))
	shell.AddCmd(imageCmd(ctx))

	shell.Run()
	return nil
}
