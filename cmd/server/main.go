package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/NiviGiridharan/smart-pantry-assistant/config"
	httpDelivery "github.com/NiviGiridharan/smart-pantry-assistant/internal/delivery/http"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/infrastructure/cache"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/infrastructure/foodkeeper"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/usecase"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Smart Pantry Assistant v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the food reference once; a missing file degrades to defaults.
	reference, err := foodkeeper.NewLoader(cfg.Reference.Path).Load()
	if err != nil {
		if errors.Is(err, domain.ErrReferenceUnavailable) {
			log.Printf("WARNING: food reference unavailable (%v) - shelf-life matching will use default estimates", err)
		} else {
			log.Fatalf("Failed to load food reference: %v", err)
		}
	} else {
		log.Printf("Food reference: %d entries from %s", reference.Len(), cfg.Reference.Path)
	}

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	shelfLife := usecase.NewShelfLifeService(memoryCache, reference, usecase.ShelfLifeServiceConfig{
		CacheTTL: cfg.Cache.TTL,
		Matcher: usecase.MatcherConfig{
			FuzzyThreshold:       cfg.Matching.FuzzyThreshold,
			DefaultShelfLifeDays: cfg.Matching.DefaultShelfLifeDays,
			EnableDebugLogging:   cfg.Matching.EnableDebugLogging,
		},
	})

	classifier := usecase.NewLineClassifier(usecase.ClassifierConfig{
		Stoplist: cfg.Extract.ReceiptStoplist,
	})
	receipts := usecase.NewReceiptExtractor(classifier, cfg.Extract.EnableDebugLogging)
	screenshots := usecase.NewScreenshotExtractor(usecase.ScreenshotExtractorConfig{
		Stoplist:       cfg.Extract.ScreenshotStoplist,
		LookbackLines:  cfg.Extract.LookbackLines,
		LookaheadLines: cfg.Extract.LookaheadLines,
		Debug:          cfg.Extract.EnableDebugLogging,
	})

	extraction := usecase.NewExtractionService(receipts, screenshots, shelfLife)

	log.Printf("Matching: threshold=%.2f, default days=%d, debug=%v",
		cfg.Matching.FuzzyThreshold,
		cfg.Matching.DefaultShelfLifeDays,
		cfg.Matching.EnableDebugLogging)

	handler := httpDelivery.NewHandler(extraction, workflow.NewStore())
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
