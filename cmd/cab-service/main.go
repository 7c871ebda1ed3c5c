// README: Entry point for the cab booking service; wires registry, fleet, estimates and the AI advisor.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	httptransport "wayfare/internal/http"
	"wayfare/internal/logging"
	"wayfare/internal/maps"
	"wayfare/internal/modules/booking"
	"wayfare/internal/modules/estimate"
	"wayfare/internal/modules/fleet"
	"wayfare/internal/modules/hotel"
	"wayfare/internal/modules/location"
	"wayfare/internal/modules/recommend"
)

const (
	driversPerLocation = 15
	hotelsPerCity      = 200
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []location.Option
	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		opts = append(opts, location.WithGeocoder(geocoder))
		logger.Info("drop-off geocoding enabled")
	}
	registry := location.NewRegistry(nil, opts...)

	// Catalog hotels resolve exactly as drop-offs instead of being approximated.
	registered := hotel.RegisterDropoffs(registry, hotel.NewCatalog(hotelsPerCity, nil), nil)
	logger.Info("catalog drop-offs registered", "count", registered)

	idx := fleet.New(registry.AirportNames(), driversPerLocation, nil)
	estimator := estimate.NewGenerator(nil)

	var advisor ai.RideAdvisor
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiAdvisor(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		advisor = gemini
		logger.Info("AI ride advisor enabled")
	} else {
		logger.Warn("GEMINI_API_KEY not set, recommendations use fallback rules only")
	}
	engine := recommend.NewService(advisor, cfg.AI.Timeout)

	bookingSvc := booking.NewService(registry, estimator, idx, engine, nil)

	server := &http.Server{
		Addr:    cfg.HTTP.CabAddr,
		Handler: httptransport.NewCabRouter(bookingSvc, logger),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("cab service listening", "addr", cfg.HTTP.CabAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
