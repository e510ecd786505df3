package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/placeholders"
)

func main() {
	configPath := flag.String("config", "data/config.yaml", "path to the game config")
	root := flag.String("out", ".", "directory the asset paths are resolved against")
	flag.Parse()

	fmt.Println("Duskblade Placeholder Sprite Generator")
	fmt.Println("======================================")
	fmt.Println()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	written, err := placeholders.GenerateAndSave(cfg, *root)
	for _, p := range written {
		fmt.Printf("  wrote %s\n", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder sprites are ready to use.")
}
