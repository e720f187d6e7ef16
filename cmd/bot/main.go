package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/celebi-bot/celebi/internal/clients/astonish"
	"github.com/celebi-bot/celebi/internal/config"
	"github.com/celebi-bot/celebi/internal/handlers/discord"
	"github.com/celebi-bot/celebi/internal/repositories/characters"
	"github.com/celebi-bot/celebi/internal/server"
	"github.com/celebi-bot/celebi/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client
	cache := newCharacterCache(cfg, &redisClient)

	forum, err := astonish.New(&astonish.Config{
		BaseURL:      cfg.Astonish.BaseURL,
		Username:     cfg.Astonish.Username,
		Password:     cfg.Astonish.Password,
		HttpClient:   &http.Client{Timeout: cfg.Astonish.Timeout},
		Cache:        cache,
		ShopCategory: cfg.Astonish.ShopCategory,
	})
	if err != nil {
		log.Fatalf("Failed to create forum client: %v", err)
	}
	defer forum.Close()

	// Fail fast on bad credentials instead of on the first command
	loginCtx, cancelLogin := context.WithTimeout(context.Background(), cfg.Astonish.Timeout)
	err = forum.Login(loginCtx)
	cancelLogin()
	if err != nil {
		log.Fatalf("Failed to log in to %s as %s: %v", forum.ForumURL(), cfg.Astonish.Username, err)
	}
	log.Printf("Logged in to %s as %s", forum.ForumURL(), cfg.Astonish.Username)

	serviceProvider := services.NewProvider(&services.ProviderConfig{
		AstonishClient: forum,
	})

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		ForumURL:        forum.ForumURL(),
	})

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Connected to Discord as %s", r.User.String())
	})

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}
	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	var status *http.Server
	if cfg.Status.Addr != "" {
		status = &http.Server{
			Addr: cfg.Status.Addr,
			Handler: server.New(&server.Config{
				Client: forum,
				Cache:  cache,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			log.Printf("Status server listening on %s", cfg.Status.Addr)
			if err := status.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Status server stopped: %v", err)
			}
		}()
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if status != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := status.Shutdown(ctx); err != nil {
			log.Printf("Error stopping status server: %v", err)
		}
		cancel()
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// newCharacterCache connects to Redis when configured and falls back to an
// in-memory cache otherwise. The Redis client, if any, is stored in rc.
func newCharacterCache(cfg *config.Config, rc **redis.Client) characters.Cache {
	if cfg.Redis.URL == "" {
		log.Println("No REDIS_URL found, caching characters in memory")
		return characters.NewInMemoryCache(cfg.Cache.Size, cfg.Cache.TTL)
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory cache")
		return characters.NewInMemoryCache(cfg.Cache.Size, cfg.Cache.TTL)
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory cache")
		_ = client.Close()
		return characters.NewInMemoryCache(cfg.Cache.Size, cfg.Cache.TTL)
	}

	log.Printf("Caching characters in Redis at %s", opts.Addr)
	*rc = client
	return characters.NewRedis(client, cfg.Cache.Size, cfg.Cache.TTL)
}
