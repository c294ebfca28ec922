package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkov/barcounter/internal/common/clock"
	"github.com/avolkov/barcounter/internal/common/uuid"
	"github.com/avolkov/barcounter/internal/config"
	"github.com/avolkov/barcounter/internal/handlers/discord"
	"github.com/avolkov/barcounter/internal/locale"
	barRepo "github.com/avolkov/barcounter/internal/repositories/bar"
	"github.com/avolkov/barcounter/internal/scheduler"
	barService "github.com/avolkov/barcounter/internal/services/bar"
	"github.com/avolkov/barcounter/internal/services/jokes"
	offerService "github.com/avolkov/barcounter/internal/services/offer"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize the repository
	repo, err := barRepo.NewRedis(&barRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create bar repository: %v", err)
	}

	// Load the locale catalogs
	catalogs, err := locale.Load(cfg.Locale.Dir, cfg.Locale.DefaultLang)
	if err != nil {
		log.Fatalf("Failed to load locale catalogs: %v", err)
	}

	systemClock := clock.New()

	// Initialize the bar service
	barSvc, err := barService.New(&barService.Config{
		Repository:         repo,
		Catalogs:           catalogs,
		UUIDGenerator:      uuid.New(),
		MaxPortionSize:     cfg.Limits.MaxPortionSize,
		MaxPortionsPerDay:  cfg.Limits.MaxPortionsPerDay,
		MaxDrinkNameLength: cfg.Limits.MaxDrinkNameLength,
		MaxDrinksPerServer: cfg.Limits.MaxDrinksPerServer,
	})
	if err != nil {
		log.Fatalf("Failed to create bar service: %v", err)
	}

	// Initialize the offer service
	offerSvc, err := offerService.New(&offerService.Config{
		BarService: barSvc,
		Clock:      systemClock,
		TTL:        cfg.Jobs.OfferTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create offer service: %v", err)
	}

	// Initialize the bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		BarService:    barSvc,
		OfferService:  offerSvc,
		Jokes:         jokes.NewCatalogProvider(catalogs),
		Catalogs:      catalogs,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	// Initialize the maintenance scheduler; the bot cleans up the
	// prompts of swept offers
	sched, err := scheduler.New(&scheduler.Config{
		BarService:    barSvc,
		OfferService:  offerSvc,
		Notifier:      bot,
		Clock:         systemClock,
		DecayInterval: cfg.Jobs.DecayInterval,
		DecayStep:     cfg.Jobs.DecayStep,
		SweepInterval: cfg.Jobs.SweepInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	sched.Start(ctx)

	// Wait for a termination signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")

	stop()
	sched.Stop()

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}
}
