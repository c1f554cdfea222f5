package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rescanvas/assist/backend"
	"github.com/rescanvas/assist/config"
	"github.com/rescanvas/assist/log"
	"github.com/rescanvas/assist/pipeline"
	"github.com/rescanvas/assist/shell"
)

const version = "0.2.0"

func main() {
	var (
		serve       = flag.Bool("serve", false, "run the HTTP API instead of the interactive shell")
		configPath  = flag.String("config", defaultConfigPath(), "configuration file")
		verbose     = flag.Bool("verbose", false, "enable verbose logging")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	log.InitLog(*verbose)

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error.Fatal(err)
	}

	if *serve {
		runServerMode(cfg)
		return
	}

	if err := shell.RunShell(newPipeline(cfg)); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rescanvas", "assist.yaml")
}

// newPipeline wires the two backend tiers from the configuration. The
// hosted tier picks a bigger-output model for synthesis; the local tier
// runs one model for everything.
func newPipeline(cfg config.Config) *pipeline.Pipeline {
	primary := pipeline.Tier{
		Generator: backend.NewOpenAIClient(cfg.OpenAI.Endpoint, cfg.OpenAI.APIKey,
			time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second),
		Models: map[pipeline.Mode]string{
			pipeline.ModeSynthesize: cfg.OpenAI.SynthesisModel,
			pipeline.ModeComplete:   cfg.OpenAI.Model,
			pipeline.ModeBeautify:   cfg.OpenAI.Model,
			pipeline.ModeStyle:      cfg.OpenAI.Model,
			pipeline.ModeRecognize:  cfg.OpenAI.Model,
		},
	}

	secondary := pipeline.Tier{
		Generator: backend.NewOllamaClient(cfg.Ollama.Endpoint,
			time.Duration(cfg.Ollama.TimeoutSeconds)*time.Second),
		Models: map[pipeline.Mode]string{
			pipeline.ModeSynthesize: cfg.Ollama.Model,
			pipeline.ModeComplete:   cfg.Ollama.Model,
			pipeline.ModeBeautify:   cfg.Ollama.Model,
			pipeline.ModeStyle:      cfg.Ollama.Model,
			pipeline.ModeRecognize:  cfg.Ollama.Model,
		},
	}

	return pipeline.New(primary, secondary)
}
