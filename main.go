package main

import (
	"fmt"
	"os"

	"github.com/arssetima/codex/internal/config"
	"github.com/arssetima/codex/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	cfg := config.NewConfig()
	if err := entrypoint.Run(cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
