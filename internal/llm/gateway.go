package llm

import (
	"context"
	"log"

	"github.com/skillpath/mitra/internal/schemas"
)

// ClientFactory builds a provider client for a credential. Injected in
// tests; defaults to NewGeminiClient.
type ClientFactory func(ctx context.Context, opts Options, apiKey string) (Client, error)

// Gateway is the single entry point for remote model calls. It owns the
// credential pool and, on a transient failure, rotates to the next
// credential and retries the call once. Structured tasks are additionally
// checked against their declared output schema before being returned.
type Gateway struct {
	opts    Options
	pool    *KeyPool
	factory ClientFactory
}

// NewGateway creates a gateway backed by Gemini.
func NewGateway(opts Options, pool *KeyPool) *Gateway {
	return NewGatewayWithFactory(opts, pool, func(ctx context.Context, o Options, apiKey string) (Client, error) {
		return NewGeminiClient(ctx, o, apiKey)
	})
}

// NewGatewayWithFactory creates a gateway with a custom client factory.
func NewGatewayWithFactory(opts Options, pool *KeyPool, factory ClientFactory) *Gateway {
	if pool == nil {
		pool = NewKeyPool(nil)
	}
	return &Gateway{
		opts:    opts.withDefaults(),
		pool:    pool,
		factory: factory,
	}
}

// Pool exposes the credential pool (for observability, not mutation
// outside Rotate).
func (g *Gateway) Pool() *KeyPool {
	return g.pool
}

// InvokeText runs a free-text generation task.
func (g *Gateway) InvokeText(ctx context.Context, prompt string) (string, error) {
	return invoke(g, ctx, func(ctx context.Context, c Client) (string, error) {
		return c.GenerateContent(ctx, prompt)
	})
}

// InvokeJSON runs a structured generation task and validates the output
// against the named schema. When validation fails, the raw text is still
// returned alongside the *schemas.ValidationError so the caller can
// attempt normalization and re-validate.
func (g *Gateway) InvokeJSON(ctx context.Context, prompt, schemaName string) (string, error) {
	text, err := invoke(g, ctx, func(ctx context.Context, c Client) (string, error) {
		return c.GenerateJSON(ctx, prompt)
	})
	if err != nil {
		return "", err
	}

	schema, err := schemas.Get(schemaName)
	if err != nil {
		return "", err
	}
	if verr := schemas.ValidateJSONString(schema, text); verr != nil {
		return text, verr
	}
	return text, nil
}

// SynthesizeSpeech runs a speech synthesis task, returning raw PCM
// samples. A NoAudioError passes through unwrapped so callers can degrade
// to text-only results.
func (g *Gateway) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	return invoke(g, ctx, func(ctx context.Context, c Client) ([]byte, error) {
		return c.SynthesizeSpeech(ctx, text)
	})
}

// invoke runs one remote call with the active credential, applying the
// per-call timeout. On a transient failure it rotates the pool and
// retries once; if rotation is a no-op the failure is surfaced.
func invoke[T any](g *Gateway, ctx context.Context, call func(context.Context, Client) (T, error)) (T, error) {
	var zero T

	result, err := attempt(g, ctx, call)
	if err == nil {
		return result, nil
	}
	if !IsTransient(err) {
		return zero, err
	}

	if !g.pool.Rotate() {
		return zero, &TransientError{Message: "provider call failed and no alternate credential is available", Cause: err}
	}
	log.Printf("[llm] transient provider failure, rotated credential (index: %d), retrying", g.pool.Index())

	result, err = attempt(g, ctx, call)
	if err == nil {
		return result, nil
	}
	if IsTransient(err) {
		return zero, &TransientError{Message: "provider call failed after credential rotation", Cause: err}
	}
	return zero, err
}

// attempt performs a single bounded call with a fresh client for the
// current credential.
func attempt[T any](g *Gateway, ctx context.Context, call func(context.Context, Client) (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, g.opts.RequestTimeout)
	defer cancel()

	client, err := g.factory(ctx, g.opts, g.pool.Current())
	if err != nil {
		return zero, err
	}
	defer func() { _ = client.Close() }()

	return call(ctx, client)
}
