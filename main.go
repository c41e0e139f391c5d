package main

import (
	"log"
	"net/http"
	"time"

	"rms-web/config"
	httpapi "rms-web/internal/api/http"
	"rms-web/internal/backend"
	"rms-web/internal/service"
	"rms-web/internal/storage"
)

func main() {
	cfg := config.Load()

	client := backend.New(cfg.APIBaseURL, &http.Client{Timeout: 15 * time.Second})

	var cache service.ListingCache
	if cfg.RedisAddr != "" {
		cache = storage.NewListingCache(config.MustInitRedis(cfg.RedisAddr), cfg.CacheTTL)
		log.Printf("[main] listing cache enabled via %s", cfg.RedisAddr)
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic))
		log.Printf("[main] order events enabled on topic %q", cfg.KafkaTopic)
	}

	handler := &httpapi.Handler{
		Auth:         service.NewAuthService(client),
		Menu:         service.NewMenuService(client, cache),
		Cart:         service.NewCartService(client, publisher),
		Orders:       service.NewOrderService(client),
		Reservations: service.NewReservationService(client),
		TrackingURL:  cfg.TrackingURL,
		CookieTTL:    cfg.CookieTTL,
	}

	router := httpapi.NewRouter(handler, cfg.AllowedOrigins)
	httpapi.StartServer(cfg.ListenAddr, router)
}
