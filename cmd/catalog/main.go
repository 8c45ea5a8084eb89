package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"copydesk/internal/bootstrap"
	"copydesk/internal/content"
	"copydesk/internal/infra"
)

func main() {
	var (
		idFlag      string
		persistFlag bool
		timeoutFlag time.Duration
	)

	flag.StringVar(&idFlag, "id", "", "catalog product ID to complete (e.g. prod001)")
	flag.BoolVar(&persistFlag, "persist", false, "write the completed product back to the catalog")
	flag.DurationVar(&timeoutFlag, "timeout", 2*time.Minute, "overall time budget for generation")
	flag.Parse()

	productID := strings.TrimSpace(idFlag)
	if productID == "" {
		exitWithError(errors.New("-id is required"))
	}

	_ = godotenv.Load()
	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	logger := infra.NewLogger("cli").Output(os.Stderr).With().Str("cmd", "catalog").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	products, closeCatalog, err := bootstrap.OpenCatalog(ctx, cfg, logger)
	if err != nil {
		exitWithError(fmt.Errorf("failed to open catalog: %w", err))
	}
	defer closeCatalog()

	text, images, err := bootstrap.NewGenerators(cfg, logger)
	if err != nil {
		exitWithError(err)
	}
	completer := content.NewCompleter(bootstrap.NewOrchestrator(cfg, text, images, products, logger))

	source, err := products.GetByID(ctx, productID)
	if err != nil {
		exitWithError(fmt.Errorf("failed to load product: %w", err))
	}
	completed, err := completer.Complete(ctx, *source)
	if err != nil {
		exitWithError(fmt.Errorf("failed to complete product: %w", err))
	}

	if persistFlag {
		saved, err := products.Update(ctx, productID, completed)
		if err != nil {
			exitWithError(fmt.Errorf("failed to save product: %w", err))
		}
		completed = *saved
		fmt.Fprintf(os.Stderr, "Product %s updated in catalog\n", productID)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(completed); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
