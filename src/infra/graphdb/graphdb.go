package graphdb

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphClient owns the driver handle shared by every repository. It is built
// once at startup and closed on shutdown; sessions are opened per operation.
type GraphClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func NewGraphClient(
	ctx context.Context,
	uri string,
	username string,
	password string,
	database string,
	maxPoolSize int,
	acquisitionTimeout time.Duration,
) (*GraphClient, error) {
	driver, err := neo4j.NewDriverWithContext(
		uri,
		neo4j.BasicAuth(username, password, ""),
		func(config *neo4j.Config) {
			config.MaxConnectionPoolSize = maxPoolSize
			config.ConnectionAcquisitionTimeout = acquisitionTimeout
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect neo4j at %s: %w", uri, err)
	}

	return &GraphClient{
		driver:   driver,
		database: database,
	}, nil
}

// ReadSession opens a session routed to a reader. The caller must close it.
func (c *GraphClient) ReadSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.database,
	})
}

// WriteSession opens a session routed to the leader. The caller must close it.
func (c *GraphClient) WriteSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.database,
	})
}

func (c *GraphClient) HealthCheck(ctx context.Context) error {
	return c.driver.VerifyConnectivity(ctx)
}

func (c *GraphClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}
	return c.driver.Close(ctx)
}
