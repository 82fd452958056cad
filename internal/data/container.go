package data

import (
	"sync"

	"github.com/rs/zerolog"

	"amphibians/internal/logging"
	"amphibians/internal/network"
)

// Container builds application dependencies on first use.
type Container struct {
	cfg    network.Config
	logger zerolog.Logger

	once   sync.Once
	repo   Repository
	client *network.Client
	err    error
}

// NewContainer returns a container for the given endpoint config.
// Nothing is constructed until Repository or Client is called.
func NewContainer(cfg network.Config, logger zerolog.Logger) *Container {
	return &Container{cfg: cfg, logger: logger}
}

func (c *Container) init() {
	c.once.Do(func() {
		c.client, c.err = network.NewClient(c.cfg,
			network.WithLogger(logging.Component(c.logger, "network")),
		)
		if c.err != nil {
			return
		}
		c.repo = NewNetworkRepository(c.client)
	})
}

// Repository returns the network-backed repository.
func (c *Container) Repository() (Repository, error) {
	c.init()
	return c.repo, c.err
}

// Client returns the underlying network client.
func (c *Container) Client() (*network.Client, error) {
	c.init()
	return c.client, c.err
}
