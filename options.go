package rapporthttp

import "go.uber.org/zap"

// Option represents a configuration option applied at construction.
type Option func(*Client)

// WithPromises sets the promise factory used for the promise-style completion
// protocol and the fire-and-forget error path.
func WithPromises(factory PromiseFactory) Option {
	return func(c *Client) {
		c.promises = factory
	}
}

// WithLogger sets a custom logger for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithZapLogger enables debug logging through the given zap logger.
func WithZapLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewZapLogger(logger)
	}
}

// WithMetrics enables Prometheus metrics collection on the default registry.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithDebug enables debug logging with default configuration.
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets custom debug configuration.
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs.
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}
