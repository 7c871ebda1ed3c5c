// README: Entry point for the hotel lookup service.
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
	"wayfare/internal/logging"
	"wayfare/internal/modules/hotel"
)

const hotelsPerCity = 200

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := hotel.NewService(hotel.NewCatalog(hotelsPerCity, nil))

	server := &http.Server{
		Addr:    cfg.HTTP.HotelAddr,
		Handler: httptransport.NewHotelRouter(svc, logger),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("hotel service listening", "addr", cfg.HTTP.HotelAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
