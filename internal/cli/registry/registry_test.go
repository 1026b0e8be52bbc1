package registry

import (
	"testing"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(_ *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{Name: m.name}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewRegistry(&config.Config{}, translations)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		registry := newTestRegistry(t)

		err := registry.Register("run", &mockCommandFactory{name: "run"})

		assert.NoError(t, err)
		assert.Contains(t, registry.factories, "run")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		registry := newTestRegistry(t)

		_ = registry.Register("run", &mockCommandFactory{name: "run"})
		err := registry.Register("run", &mockCommandFactory{name: "run"})

		assert.Error(t, err)
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	t.Run("should create commands in registration order", func(t *testing.T) {
		registry := newTestRegistry(t)

		require.NoError(t, registry.Register("run", &mockCommandFactory{name: "run"}))
		require.NoError(t, registry.Register("identity", &mockCommandFactory{name: "identity"}))
		require.NoError(t, registry.Register("auth", &mockCommandFactory{name: "auth"}))

		commands := registry.CreateCommands()

		require.Len(t, commands, 3)
		assert.Equal(t, "run", commands[0].Name)
		assert.Equal(t, "identity", commands[1].Name)
		assert.Equal(t, "auth", commands[2].Name)
	})
}
