package providermock

import (
	"os"

	"github.com/sirupsen/logrus"
)

// EnvLogLevel overrides the default log level, e.g. PROVIDERMOCK_LOG_LEVEL=debug
const EnvLogLevel = "PROVIDERMOCK_LOG_LEVEL"

// Config holds the configuration for a Provider
type Config struct {
	// Name is attached to every log line, useful when a test drives several providers
	Name string
	// Logger receives match and failure logs. When nil a logger writing to
	// stderr at LogLevel is created.
	Logger *logrus.Logger
	// LogLevel applies only to the logger created when Logger is nil
	LogLevel logrus.Level
	// VerifyOnCleanup runs Verify when the test finishes
	VerifyOnCleanup bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	level := logrus.WarnLevel
	if env := os.Getenv(EnvLogLevel); env != "" {
		if parsed, err := logrus.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	return &Config{
		LogLevel: level,
	}
}

// Option configures a Provider
type Option func(*Config)

// WithName labels the provider in logs
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithLogger routes logs to logger
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithLogLevel sets the level of the default logger
func WithLogLevel(level logrus.Level) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithVerifyOnCleanup runs Verify automatically through t.Cleanup
func WithVerifyOnCleanup() Option {
	return func(c *Config) {
		c.VerifyOnCleanup = true
	}
}

func (c *Config) entry() *logrus.Entry {
	logger := c.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(c.LogLevel)
	}
	fields := logrus.Fields{"component": "providermock"}
	if c.Name != "" {
		fields["provider"] = c.Name
	}
	return logger.WithFields(fields)
}
