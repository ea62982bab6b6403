package main

import (
	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/logger"
	"github.com/Sabique-Islam/pixiefie/internal/pipeline"
	"github.com/Sabique-Islam/pixiefie/internal/platform"
	"github.com/Sabique-Islam/pixiefie/internal/profile"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
)

// appContext wires the services every command shares.
type appContext struct {
	log       *logger.Logger
	registry  *theme.Registry
	platforms *platform.Service
	exports   *pipeline.Service
}

func newAppContext(verbose bool) (*appContext, error) {
	level := "info"
	if verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, err
	}

	registry, err := theme.Load()
	if err != nil {
		return nil, err
	}

	return &appContext{
		log:       log,
		registry:  registry,
		platforms: platform.NewService(log),
		exports:   pipeline.NewService(card.NewCompositor(log), export.NewEncoder(), log),
	}, nil
}

// resolveTheme looks up the requested theme, deriving the platform-default
// entry against the profile's platform.
func (a *appContext) resolveTheme(id string, p *profile.Profile) (theme.Theme, error) {
	if id == theme.PlatformDefaultID && p != nil {
		return a.registry.PlatformTheme(p.Platform, nil), nil
	}
	return a.registry.Resolve(id)
}
