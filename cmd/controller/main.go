// README: Entry point for the travel controller; sequences the three agents.
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
	"wayfare/internal/modules/itinerary"
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

	clients := itinerary.NewClients(
		cfg.Controller.FlightURL+"/flights/search",
		cfg.Controller.HotelURL+"/hotels",
		cfg.Controller.CabURL+"/cabs/book",
	)
	svc := itinerary.NewService(clients, logger)

	server := &http.Server{
		Addr:    cfg.HTTP.ControllerAddr,
		Handler: httptransport.NewControllerRouter(svc, logger),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("controller listening", "addr", cfg.HTTP.ControllerAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
