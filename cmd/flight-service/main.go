// README: Entry point for the flight search service.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wayfare/internal/config"
	httptransport "wayfare/internal/http"
	"wayfare/internal/infra"
	"wayfare/internal/logging"
	"wayfare/internal/modules/flight"
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

	if cfg.Flight.APIKey == "" {
		logger.Warn("AVIATIONSTACK_API_KEY not set, upstream calls will be rejected")
	}

	client := flight.NewClient(cfg.Flight.APIBaseURL, cfg.Flight.APIKey, cfg.Flight.Timeout)

	var cache *flight.Cache
	if cfg.Redis.Addr != "" {
		cache = flight.NewCache(infra.NewRedis(cfg.Redis.Addr), cfg.Flight.CacheTTL)
		logger.Info("flight response cache enabled", "addr", cfg.Redis.Addr)
	}

	svc := flight.NewService(client, cache)

	server := &http.Server{
		Addr:    cfg.HTTP.FlightAddr,
		Handler: httptransport.NewFlightRouter(svc, logger),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("flight service listening", "addr", cfg.HTTP.FlightAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
