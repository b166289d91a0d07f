// internal/tagging/service.go
package tagging

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"german-tagger/internal/common/errors"
	"german-tagger/internal/common/logger"
	"german-tagger/internal/common/metrics"
	"german-tagger/internal/common/observability"
	"german-tagger/internal/engine"
	"german-tagger/internal/models"
)

// Service orchestrates the two-tier engine fallback. Availability is read
// from the registry on every call; there are no retries, no timeouts beyond
// the per-engine client deadline, and no merging of engine outputs.
type Service struct {
	registry *engine.Registry
	logger   logger.Logger
	obs      *observability.Observability
}

func NewService(registry *engine.Registry, obs *observability.Observability, log logger.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   log.With(map[string]interface{}{"component": "tagging"}),
		obs:      obs,
	}
}

// Tag validates the request text and runs the primary engine, falling through
// to the secondary on any failure. Exactly one engine's output ends up in the
// response.
func (s *Service) Tag(ctx context.Context, req *models.TagRequest) (*models.TagResponse, *errors.StandardError) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, errors.NewEmptyTextError()
	}

	opts := req.Resolve()

	if primary := s.registry.Primary(); primary != nil {
		resp, err := s.invoke(ctx, primary, text, opts)
		if err == nil {
			return resp, nil
		}
		metrics.EngineFallbacks.Inc()
	}

	if secondary := s.registry.Secondary(); secondary != nil {
		resp, err := s.invoke(ctx, secondary, text, opts)
		if err == nil {
			return resp, nil
		}
	}

	s.logger.Error("no tagging provider produced a result", map[string]interface{}{
		"primaryAvailable":   s.registry.Available(engine.ProviderSpacy),
		"secondaryAvailable": s.registry.Available(engine.ProviderStanza),
	})
	metrics.TagRequestsFailed.WithLabelValues("none", string(errors.ErrCodeNoProviderAvailable)).Inc()
	return nil, errors.NewNoProviderAvailableError()
}

// invoke runs one engine and records the outcome. Engine failures are logged
// and returned for the caller to fall through; they are never surfaced.
func (s *Service) invoke(ctx context.Context, p engine.Provider, text string, opts models.Options) (*models.TagResponse, error) {
	start := time.Now()
	sentences, err := p.Tag(ctx, text, opts)
	elapsed := time.Since(start)

	metrics.TagRequestDuration.WithLabelValues(p.Name()).Observe(elapsed.Seconds())
	s.obs.RecordRequestDuration(ctx, elapsed, p.Name())

	if err != nil {
		code := errors.ErrCodeEngineFailure
		if goerrors.Is(err, engine.ErrEngineTimeout) {
			code = errors.ErrCodeEngineTimeout
		}
		s.logger.WithError(err).Error("engine call failed", map[string]interface{}{
			"provider":  p.Name(),
			"errorCode": string(code),
		})
		metrics.TagRequestsFailed.WithLabelValues(p.Name(), string(code)).Inc()
		s.obs.RecordRequestProcessed(ctx, p.Name(), "error")
		return nil, err
	}

	metrics.TagRequestsCompleted.WithLabelValues(p.Name()).Inc()
	s.obs.RecordRequestProcessed(ctx, p.Name(), "ok")

	return &models.TagResponse{
		Model:       p.Model(),
		Transformer: p.Transformer(),
		Sentences:   sentences,
	}, nil
}

// Health reports overall and per-engine availability from registry state.
func (s *Service) Health() *models.HealthResponse {
	return &models.HealthResponse{
		OK:        s.registry.AnyAvailable(),
		Providers: s.registry.Availability(),
	}
}
