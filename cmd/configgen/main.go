package main

import (
	"flag"
	"log"

	"github.com/danmuck/callsdk/internal/config"
)

const defaultPath = "callsdk.toml"

func main() {
	output := flag.String("output", defaultPath, "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", defaultPath, "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		cfg, err := config.Load(*input)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := cfg.Codec(); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated config at %s (%d enum policy overrides)", *input, len(cfg.Decode.EnumPolicies))
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote config template to %s", *output)
}
