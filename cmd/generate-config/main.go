package main

import (
	"drawpoker/internal/config"
	"fmt"
	"gopkg.in/yaml.v2"
	"os"
)

// prints the default configuration, i.e., go run ./cmd/generate-config > config.yaml
func main() {
	_, _ = fmt.Fprintln(os.Stdout, "# five-card draw configuration, every value can be overridden with DRAWPOKER_* environment variables")
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
