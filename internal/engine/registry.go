// Package engine defines the tagging provider contract and the registry of
// engines that loaded at startup.
package engine

import (
	"context"
	"errors"

	"german-tagger/internal/models"
)

// Provider names as they appear in the /health providers map.
const (
	ProviderSpacy  = "spacy"
	ProviderStanza = "stanza"
)

// ErrEngineTimeout is returned by a provider whose sidecar call exceeded the
// configured deadline.
var ErrEngineTimeout = errors.New("ENGINE_TIMEOUT")

// Provider is one loaded tagging engine. Tag runs the engine on raw text and
// returns sentences already normalized to the unified schema.
type Provider interface {
	Name() string
	Model() string
	Transformer() bool
	Tag(ctx context.Context, text string, opts models.Options) ([]models.Sentence, error)
}

// Registry holds the engine handles that loaded successfully at startup.
// Either handle may be nil when its model failed to load; the registry is
// populated once and read-only for the rest of the process lifetime.
type Registry struct {
	primary   Provider
	secondary Provider
}

func NewRegistry(primary, secondary Provider) *Registry {
	return &Registry{primary: primary, secondary: secondary}
}

func (r *Registry) Primary() Provider {
	return r.primary
}

func (r *Registry) Secondary() Provider {
	return r.secondary
}

// Available reports whether the named engine loaded at startup.
func (r *Registry) Available(name string) bool {
	switch name {
	case ProviderSpacy:
		return r.primary != nil
	case ProviderStanza:
		return r.secondary != nil
	}
	return false
}

// Availability returns the per-engine availability map served by /health.
func (r *Registry) Availability() map[string]bool {
	return map[string]bool{
		ProviderSpacy:  r.primary != nil,
		ProviderStanza: r.secondary != nil,
	}
}

// AnyAvailable reports whether at least one engine loaded.
func (r *Registry) AnyAvailable() bool {
	return r.primary != nil || r.secondary != nil
}
