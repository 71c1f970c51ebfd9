package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"filetree/internal/config"
	"filetree/internal/repository/memory"
	"filetree/internal/seed"

	"github.com/joho/godotenv"
)

// demo creates a root folder named "test folder" and prints the root-level
// folders matching "t". With -fixture, a YAML fixture is applied first.
func main() {
	fixturePath := flag.String("fixture", "", "YAML fixture to load before the demo")
	query := flag.String("q", "t", "substring to search root-level folders for")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()

	store := memory.New()

	if *fixturePath != "" {
		fixture, err := seed.LoadFile(*fixturePath)
		if err != nil {
			log.Fatalf("Failed to load fixture: %v", err)
		}
		if _, err := seed.NewFixtureSeeder(store, logger).Apply(context.Background(), fixture); err != nil {
			log.Fatalf("Failed to apply fixture: %v", err)
		}
	}

	store.CreateFolder("test folder", nil)

	out, err := json.MarshalIndent(store.SearchFolders(*query, nil), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode results: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
