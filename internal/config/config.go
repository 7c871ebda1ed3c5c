// README: Config loader with env defaults for HTTP, upstream APIs, Redis, and AI settings.
package config

import (
	"os"
	"time"
)

type Config struct {
	HTTP struct {
		FlightAddr     string
		HotelAddr      string
		CabAddr        string
		ControllerAddr string
	}
	Flight struct {
		APIBaseURL string
		APIKey     string
		Timeout    time.Duration
		CacheTTL   time.Duration
	}
	Controller struct {
		FlightURL string
		HotelURL  string
		CabURL    string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey string
		Timeout   time.Duration
	}
	Maps struct {
		APIKey string
	}
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.FlightAddr = envOrDefault("WAYFARE_FLIGHT_ADDR", ":5001")
	cfg.HTTP.HotelAddr = envOrDefault("WAYFARE_HOTEL_ADDR", ":5000")
	cfg.HTTP.CabAddr = envOrDefault("WAYFARE_CAB_ADDR", ":5002")
	cfg.HTTP.ControllerAddr = envOrDefault("WAYFARE_CONTROLLER_ADDR", ":5004")

	cfg.Flight.APIBaseURL = envOrDefault("WAYFARE_FLIGHT_API_URL", "http://api.aviationstack.com")
	cfg.Flight.APIKey = os.Getenv("AVIATIONSTACK_API_KEY")
	cfg.Flight.Timeout = envOrDefaultDuration("WAYFARE_FLIGHT_API_TIMEOUT", 30*time.Second)
	cfg.Flight.CacheTTL = envOrDefaultDuration("WAYFARE_FLIGHT_CACHE_TTL", 5*time.Minute)

	cfg.Controller.FlightURL = envOrDefault("WAYFARE_FLIGHT_URL", "http://localhost:5001")
	cfg.Controller.HotelURL = envOrDefault("WAYFARE_HOTEL_URL", "http://localhost:5000")
	cfg.Controller.CabURL = envOrDefault("WAYFARE_CAB_URL", "http://localhost:5002")

	// Empty addr disables the flight response cache.
	cfg.Redis.Addr = os.Getenv("WAYFARE_REDIS_ADDR")

	// Missing key is not fatal: the recommendation engine falls back to
	// deterministic rules when no advisor is configured.
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.Timeout = envOrDefaultDuration("WAYFARE_AI_TIMEOUT", 10*time.Second)

	// Empty key disables drop-off geocoding; unknown drop-offs are approximated.
	cfg.Maps.APIKey = os.Getenv("WAYFARE_MAPS_API_KEY")

	cfg.Log.Level = envOrDefault("WAYFARE_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
