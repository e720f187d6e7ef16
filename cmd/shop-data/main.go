package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"github.com/celebi-bot/celebi/internal/clients/astonish"
	"github.com/celebi-bot/celebi/internal/config"
	"github.com/celebi-bot/celebi/internal/entities"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadAstonish()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := astonish.New(&astonish.Config{
		BaseURL:      cfg.BaseURL,
		Username:     cfg.Username,
		Password:     cfg.Password,
		HttpClient:   &http.Client{Timeout: cfg.Timeout},
		ShopCategory: cfg.ShopCategory,
	})
	if err != nil {
		log.Fatalf("Failed to create forum client: %v", err)
	}
	defer client.Close()

	shop, err := client.GetShopData(context.Background())
	if err != nil {
		log.Fatalf("Failed to get shop data: %v", err)
	}

	fmt.Printf("Regions (%d):\n", len(shop.Regions))
	for i := range shop.Regions {
		r := &shop.Regions[i]
		fmt.Printf("  %s\n", r.Name)
		fmt.Printf("    common: %s\n", strings.Join(r.TypesOf(entities.RarityCommon), ", "))
		fmt.Printf("    rare:   %s\n", strings.Join(r.TypesOf(entities.RarityRare), ", "))
	}

	printSet("Baby Pokémon", shop.BabyPokemon)
	printSet("Stage 1 starters", shop.Stage1Starters)
	printSet("Stage 2 starters", shop.Stage2Starters)
	printSet("Stage 3 starters", shop.Stage3Starters)
}

func printSet(title string, set entities.NameSet) {
	fmt.Printf("%s (%d): %s\n", title, len(set), strings.Join(set.Sorted(), ", "))
}
