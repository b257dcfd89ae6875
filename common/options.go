package common

import "github.com/google/uuid"

type registryConfig struct {
	logger  Logger
	name    string
	metrics *Metrics
}

type Option func(*registryConfig)

func defaultRegistryConfig() *registryConfig {
	return &registryConfig{
		logger: &noopLogger{},
		name:   uuid.NewString(),
	}
}

func WithLogger(logger Logger) Option {
	return func(c *registryConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithName sets the name used in logs, metric labels and release errors.
func WithName(name string) Option {
	return func(c *registryConfig) {
		if name != "" {
			c.name = name
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *registryConfig) {
		c.metrics = m
	}
}
