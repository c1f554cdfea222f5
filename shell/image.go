package shell

import (
	"encoding/base64"
	"errors"
	"io/ioutil"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/rescanvas/assist/imagegen"
)

func imageCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "image",
		Help: "generate a placeholder image, usage: image [-o out.png] [--width N] [--height N]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("image", flag.ContinueOnError)
			var outputName string
			var width, height int
			flagSet.StringVarP(&outputName, "output", "o", "placeholder.png", "output file name")
			flagSet.IntVar(&width, "width", 0, "image width")
			flagSet.IntVar(&height, "height", 0, "image height")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			dataURL, err := imagegen.Placeholder(width, height)
			if err != nil {
				c.Err(err)
				return
			}

			idx := strings.Index(dataURL, ",")
			if idx < 0 {
				c.Err(errors.New("malformed data url"))
				return
			}
			raw, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
			if err != nil {
				c.Err(err)
				return
			}

			if err := ioutil.WriteFile(outputName, raw, 0644); err != nil {
				c.Err(err)
				return
			}
			c.Printf("written %s\n", outputName)
		},
	}
}
