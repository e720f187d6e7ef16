package services

import (
	"github.com/celebi-bot/celebi/internal/clients/astonish"
	characterService "github.com/celebi-bot/celebi/internal/services/character"
	"github.com/celebi-bot/celebi/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	UUIDGenerator    uuid.Generator
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	AstonishClient astonish.Client
	UUIDGenerator  uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Client: cfg.AstonishClient,
	})

	return &Provider{
		CharacterService: charService,
		UUIDGenerator:    gen,
	}
}
