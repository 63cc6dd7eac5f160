package container

import (
	"context"
	"errors"
	"fmt"

	"rickmorty/catalog/internal/catalog"
	"rickmorty/catalog/internal/client"
	"rickmorty/catalog/internal/config"
	"rickmorty/catalog/internal/labels"
	"rickmorty/catalog/internal/notify"
	"rickmorty/catalog/internal/proxy"
	"rickmorty/catalog/internal/service"
	"rickmorty/catalog/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.CharacterClient
	Catalog    *catalog.Catalog
	Publisher  notify.Publisher
	Translator *labels.Translator

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config:     cfg,
		Translator: labels.New(cfg.Labels.Language),
	}

	proxySupplier := proxy.NewSupplier(ctx, cfg.API.Proxies, client.CharacterEndpoint(cfg.API.BaseURL))

	container.Client = client.NewCharacterClient(cfg.API, proxySupplier)
	container.Catalog = catalog.New(container.Client, container.Translator.Messages().LoadError)

	container.Publisher = notify.NewNoopPublisher()
	if cfg.Notify.Redis.Enabled {
		publisher, err := notify.NewRedisPublisher(ctx, cfg.Notify.Redis)
		if err != nil {
			_ = container.Client.Close()
			return nil, fmt.Errorf("failed to initialize load notifications: %w", err)
		}
		container.Publisher = publisher
	}

	container.Service = service.NewService(container.Catalog, container.Publisher)

	return container, nil
}

// Browse runs the interactive browser until the user quits
func (c *Container) Browse(ctx context.Context) error {
	model := ui.New(ctx, c.Service, c.Catalog, c.Translator)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("browser exited: %w", err)
	}
	return nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	return errors.Join(c.Client.Close(), c.Publisher.Close())
}
