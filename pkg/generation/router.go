package generation

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoModelAvailable is returned when no provider is configured at all.
var ErrNoModelAvailable = errors.New("no model available")

// Router selects a provider for a requested model. When the requested model
// is offered by no configured provider, the first available model takes its
// place and a warning is logged; generation only fails outright when there
// are no providers.
type Router struct {
	providers []Provider
	logger    Logger
}

func NewRouter(logger Logger, providers ...Provider) *Router {
	return &Router{
		providers: providers,
		logger:    logger,
	}
}

// AvailableModels lists every model offered by the configured providers, in
// provider registration order.
func (r *Router) AvailableModels() []string {
	var models []string
	for _, p := range r.providers {
		models = append(models, p.Models()...)
	}
	return models
}

// providerFor matches a model name to a provider, first exactly against each
// provider's catalog, then by model-family prefix ("GPT ..." or "Claude ...").
func (r *Router) providerFor(model string) Provider {
	for _, p := range r.providers {
		for _, m := range p.Models() {
			if m == model {
				return p
			}
		}
	}
	family, _, ok := strings.Cut(model, " ")
	if !ok {
		return nil
	}
	for _, p := range r.providers {
		for _, m := range p.Models() {
			if strings.HasPrefix(m, family+" ") {
				return p
			}
		}
	}
	return nil
}

// Generate routes the request to the provider offering req.Model, falling
// back to the first available model when it is offered by none.
func (r *Router) Generate(ctx context.Context, req Request) (string, error) {
	if p := r.providerFor(req.Model); p != nil {
		return p.Generate(ctx, req)
	}

	available := r.AvailableModels()
	if len(available) == 0 {
		return "", ErrNoModelAvailable
	}
	fallback := available[0]
	r.logger.Warnf("Model %q not available, using %q", req.Model, fallback)
	req.Model = fallback
	return r.providerFor(fallback).Generate(ctx, req)
}
