package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/joho/godotenv"

	"github.com/celebi-bot/celebi/internal/clients/astonish"
	"github.com/celebi-bot/celebi/internal/config"
)

func main() {
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

	members, err := client.GetAllCharacters(context.Background())
	if err != nil {
		log.Fatalf("Failed to list members: %v", err)
	}

	ids := make([]int, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Printf("Found %d members:\n", len(ids))
	for _, id := range ids {
		m := members[id]
		restricted := ""
		if m.Restricted() {
			restricted = " (hidden)"
		}
		fmt.Printf("  #%d %s [%s]%s\n", m.ID, m.Username, m.Group, restricted)
	}
}
