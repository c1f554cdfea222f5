// Package config loads the service configuration from a YAML file with
// environment overrides for the values that are usually injected by the
// deployment (API key, local model host).
package config

import (
	"fmt"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// OpenAI configures the hosted Primary backend.
type OpenAI struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
	// Model serves every mode except synthesis, which needs the larger
	// output window of SynthesisModel.
	Model          string `yaml:"model"`
	SynthesisModel string `yaml:"synthesisModel"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Ollama configures the local Secondary backend.
type Ollama struct {
	Endpoint       string `yaml:"endpoint"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Config is the full service configuration.
type Config struct {
	Listen      string `yaml:"listen"`
	MaxInFlight int64  `yaml:"maxInFlight"`
	OpenAI      OpenAI `yaml:"openai"`
	Ollama      Ollama `yaml:"ollama"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:      ":5001",
		MaxInFlight: 4,
		OpenAI: OpenAI{
			Model:          "gpt-4.1-mini",
			SynthesisModel: "gpt-4o-mini",
			TimeoutSeconds: 60,
		},
		Ollama: Ollama{
			Model:          "llama3:8b",
			TimeoutSeconds: 120,
		},
	}
}

// Load reads the file at path and applies environment overrides. An empty
// path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.OpenAI.APIKey = key
	}
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		c.Ollama.Endpoint = host
	}
}
