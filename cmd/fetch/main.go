package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"stocktracker/internal/api"
	"stocktracker/internal/app"
	"stocktracker/internal/config"
	"stocktracker/internal/logging"
	"stocktracker/internal/quote"
)

func main() {
	_ = godotenv.Load()

	var symbol string
	var configPath string

	flag.StringVar(&symbol, "symbol", getenv("SYMBOL", "AAPL"), "ticker symbol, 1-5 letters")
	flag.StringVar(&configPath, "config", "", "path to config.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Diagnostics go to stderr so stdout stays valid JSON.
	logger := logging.NewWriter(os.Stderr, cfg.Log)
	svc := app.QuoteService(cfg, logger, nil)

	res, err := svc.Fetch(context.Background(), symbol)
	if err != nil {
		var qerr *quote.Error
		if !errors.As(err, &qerr) {
			qerr = quote.ErrInternal(err)
		}
		printJSON(api.ErrorResponse{
			Error:         qerr.Message,
			Code:          string(qerr.Code),
			Details:       qerr.Details,
			AvailableKeys: qerr.AvailableKeys,
		})
		os.Exit(1)
	}
	printJSON(res)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(b))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
