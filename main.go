package main

import (
	"flag"
	"fmt"
	"os"

	"solaced/internal/di"
	"solaced/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "duplicate logs to stdout")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "solaced: %s\n", err)
		os.Exit(1)
	}
}
