package container

import (
	"context"
	"os"

	"scaperune/inspector/internal/config"
	"scaperune/inspector/internal/service"
	"scaperune/inspector/internal/source"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Source  source.Source
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	if cfg.Catalog.URL != "" {
		container.Source = source.NewRemoteSource(cfg.Catalog)
		log.Infof("Using remote catalog at %s", cfg.Catalog.URL)
	} else {
		container.Source = source.NewFileSource(cfg.Catalog.Path, source.Format(cfg.Catalog.Format))
		log.Infof("Using local catalog at %s", cfg.Catalog.Path)
	}

	container.Service = service.NewService(
		container.Source,
		cfg.Report.Categories,
		cfg.Report.SampleLimit,
		os.Stdout,
	)

	return container, nil
}

// Run executes the inspection end to end
func (c *Container) Run(ctx context.Context) error {
	return c.Service.Run(ctx)
}
