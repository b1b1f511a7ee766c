package xxh

import (
	"errors"

	"github.com/storacha/go-xxh/internal/bufpool"
)

// DefaultTextLimit is the default maximum encoded length of a text argument.
const DefaultTextLimit = 16 * 1024

// DefaultFeature is the feature name announced when the module is loaded.
const DefaultFeature = "xxh"

// Option is an option configuring the bridge.
type Option func(cfg *config) error

type config struct {
	textLimit int
	allocator bufpool.Allocator
	feature   string
}

func newConfig(options ...Option) (config, error) {
	cfg := config{textLimit: DefaultTextLimit, feature: DefaultFeature}
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	if cfg.allocator == nil {
		cfg.allocator = bufpool.New()
	}
	return cfg, nil
}

// WithTextLimit sets the maximum encoded length in bytes of a text argument.
// A limit of zero or less removes the limit.
func WithTextLimit(limit int) Option {
	return func(cfg *config) error {
		cfg.textLimit = limit
		return nil
	}
}

// WithAllocator configures where hash buffers are acquired from.
func WithAllocator(a bufpool.Allocator) Option {
	return func(cfg *config) error {
		if a == nil {
			return errors.New("allocator must not be nil")
		}
		cfg.allocator = a
		return nil
	}
}

// WithFeature sets the feature name announced by [Load].
func WithFeature(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return errors.New("feature name must not be empty")
		}
		cfg.feature = name
		return nil
	}
}
