package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/celebi-bot/celebi/internal/clients/astonish"
	"github.com/celebi-bot/celebi/internal/config"
	"github.com/celebi-bot/celebi/internal/entities"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug-character <member-id>")
		os.Exit(1)
	}

	memberID, err := strconv.Atoi(os.Args[1])
	if err != nil || memberID <= 0 {
		log.Fatalf("Invalid member id %q", os.Args[1])
	}

	_ = godotenv.Load()
	cfg, err := config.LoadAstonish()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := astonish.New(&astonish.Config{
		BaseURL:    cfg.BaseURL,
		Username:   cfg.Username,
		Password:   cfg.Password,
		HttpClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		log.Fatalf("Failed to create forum client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	char, err := client.GetCharacter(ctx, memberID, false)
	if err != nil {
		log.Fatalf("Failed to get character: %v", err)
	}

	log.Printf("Character: %s (ID: %d, group: %s)", char.Username, char.ID, char.Group)
	log.Printf("Profile: %s", char.ProfileURL(client.ForumURL()))
	log.Printf("Timezone: %s, PC: %d Pokémon, Extra version: %d",
		entities.FormatTimezone(char.PlayerTimezone), len(char.PersonalComputer), char.Extra.Version)

	inv, err := client.GetInventory(ctx, memberID)
	if err != nil {
		log.Printf("Failed to get inventory: %v", err)
	} else {
		log.Printf("Inventory: %d item stacks", len(inv.Items))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(char); err != nil {
		log.Fatalf("Failed to encode character: %v", err)
	}
}
