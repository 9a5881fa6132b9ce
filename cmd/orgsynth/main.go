package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"orgsynth/internal/platform/config"
	"orgsynth/internal/seed"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file overlaying the environment defaults")
	flag.Usage = usage
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			log.Fatalf("config file failed: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var err error
	switch command {
	case "employees":
		err = seed.RunPhase1(cfg)
	case "performance":
		err = seed.RunPhase2(cfg)
	case "all":
		err = seed.RunAll(cfg)
	case "clean":
		err = seed.Clean(cfg)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: orgsynth [-config file] <command>

Commands:
  employees    generate review cycles and the employee hierarchy (phase 1)
  performance  generate ratings, reviews and survey responses (phase 2,
               requires the phase 1 snapshot)
  all          run both phases in sequence
  clean        remove generated outputs and the snapshot
`)
}
