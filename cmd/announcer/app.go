package main

import (
	"github.com/teamvirrey/meetup-announcer/internal/clients/pogoapi"
	"github.com/teamvirrey/meetup-announcer/internal/config"
	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
	redisclient "github.com/teamvirrey/meetup-announcer/internal/redis"
	"github.com/teamvirrey/meetup-announcer/internal/repositories/pokedex"
	"github.com/teamvirrey/meetup-announcer/internal/templates"
)

// app wires the configured dependency graph for a command invocation
type app struct {
	cfg     *config.Config
	repo    pokedex.Repository
	service event.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	redisConn, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	repo, err := pokedex.NewRedis(&pokedex.RedisConfig{Client: redisConn})
	if err != nil {
		return nil, err
	}

	client, err := pogoapi.New(&pogoapi.Config{
		BaseURL:     cfg.PoGoAPIBaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, err
	}

	manager, err := templates.New(&templates.Config{Dir: cfg.TemplatesDir})
	if err != nil {
		return nil, err
	}

	service, err := event.NewOrchestrator(&event.Config{
		Repo:      repo,
		Client:    client,
		Templates: manager,
	})
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, repo: repo, service: service}, nil
}
