package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
)

// GeneratorFactory creates post generators for one language-model
// provider.
type GeneratorFactory interface {
	// CreatePostGenerator builds the provider's post generator.
	CreatePostGenerator(ctx context.Context, cfg *config.Config) (ports.PostGenerator, error)

	// ValidateConfig checks that the configuration carries everything
	// this provider needs.
	ValidateConfig(cfg *config.Config) error

	// Name returns the provider name.
	Name() string
}

// ProviderRegistry holds the registered language-model providers.
type ProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]GeneratorFactory
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		factories: make(map[string]GeneratorFactory),
	}
}

// Register adds a provider under the given name.
func (r *ProviderRegistry) Register(name string, factory GeneratorFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("provider '%s' is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// Get returns the factory registered under name.
func (r *ProviderRegistry) Get(name string) (GeneratorFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("provider '%s' is not registered (available: %v)", name, r.listLocked())
	}

	return factory, nil
}

// List returns the names of all registered providers.
func (r *ProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

func (r *ProviderRegistry) listLocked() []string {
	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// IsRegistered reports whether a provider is registered under name.
func (r *ProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// CreateGenerator resolves the configured provider, validates its
// configuration, and builds the post generator.
func (r *ProviderRegistry) CreateGenerator(ctx context.Context, cfg *config.Config) (ports.PostGenerator, error) {
	factory, err := r.Get(cfg.AI.Provider)
	if err != nil {
		return nil, err
	}
	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return factory.CreatePostGenerator(ctx, cfg)
}
