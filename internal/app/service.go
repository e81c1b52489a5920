package app

import (
	"fmt"
	"time"

	"github.com/readmelens/readmelens/internal/config"
	"github.com/readmelens/readmelens/internal/github"
	"github.com/readmelens/readmelens/internal/lens"
	"github.com/readmelens/readmelens/internal/store"
)

// openService loads config and wires the store and GitHub client behind a
// lens.Service. The returned close func releases the database.
func openService() (*lens.Service, *config.Config, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening scan cache: %w", err)
	}

	gh := github.NewClient(
		cfg.GitHub.APIBase,
		cfg.GitHub.CodeloadBase,
		cfg.GitHub.Token,
		time.Duration(cfg.GitHub.TimeoutSeconds)*time.Second,
	)

	svc := lens.NewService(gh, db)
	return svc, cfg, func() { _ = db.Close() }, nil
}
