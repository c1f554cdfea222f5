package shell

import (
	"path/filepath"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/rescanvas/assist/export"
)

func exportCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "export",
		Help: "export the canvas to pdf, usage: export [-o out.pdf] [--title text] [--page-numbers]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("export", flag.ContinueOnError)
			var outputName, title string
			var pageNumbers bool
			flagSet.StringVarP(&outputName, "output", "o", "", "output file name")
			flagSet.StringVar(&title, "title", "", "page title")
			flagSet.BoolVar(&pageNumbers, "page-numbers", false, "add page numbers")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			if outputName == "" {
				if ctx.fileName != "" {
					outputName = strings.TrimSuffix(ctx.fileName, filepath.Ext(ctx.fileName)) + ".pdf"
				} else {
					outputName = "canvas.pdf"
				}
			}

			options := export.PdfExporterOptions{
				AddPageNumbers: pageNumbers,
				Title:          title,
			}
			if err := export.NewPdfExporter(outputName, options).Export(ctx.state); err != nil {
				c.Err(err)
				return
			}

			c.Printf("written %s\n", outputName)
		},
	}
}
