package main

import (
	"context"
	"log"
	"os"

	"af-restro/config"
	httpapi "af-restro/internal/api/http"
	"af-restro/internal/service"
	"af-restro/internal/storage"

	"github.com/bwmarrin/snowflake"
)

const orderTopic = "orders"

func buildSlotStore(cfg config.App) (service.SlotStore, *storage.FileStore) {
	media, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to init data dir:", err)
	}

	switch cfg.StorageBackend {
	case "postgres":
		store := storage.NewPostgresStore(config.MustInitPostgres())
		if err := store.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		return store, media
	case "redis":
		return storage.NewRedisStore(config.MustInitRedis()), media
	case "memory":
		return storage.NewMemoryStore(), media
	default:
		return media, media
	}
}

func main() {
	cfg := config.Load()

	node, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatal("Failed to init id generator:", err)
	}

	store, media := buildSlotStore(cfg)

	catalog := service.NewCatalogService(store, media, node)
	if err := catalog.Load(); err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	cart := service.NewCartService(store, catalog, node)
	cart.Load()

	var publisher service.OrderPublisher
	var analytics *storage.AnalyticsStore
	if cfg.KafkaEnabled {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(orderTopic))
	}
	if os.Getenv("REDIS_HOST") != "" {
		analytics = storage.NewAnalyticsStore(config.MustInitRedis())
	}

	orders := service.NewOrderService(cart, publisher, service.DefaultQRGenerator{}, cfg.WhatsAppNumber)
	backup := service.NewBackupService(catalog)

	if cfg.KafkaEnabled && analytics != nil {
		consumer := service.NewOrderConsumer(config.NewKafkaReader(orderTopic, "af-restro-analytics"), analytics)
		go consumer.Start(context.Background())
	}

	var analyticsReader service.AnalyticsReader
	if analytics != nil {
		analyticsReader = analytics
	}
	handler := httpapi.NewHandler(catalog, cart, orders, backup, analyticsReader, cfg.AdminPIN)
	router := httpapi.NewRouter(handler)
	httpapi.StartServer(":"+cfg.Port, router)
}
