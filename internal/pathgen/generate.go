// Package pathgen orchestrates learning-path generation: profile
// validation, prompt composition, the gateway call, and output
// normalization. No partial path ever reaches the caller.
package pathgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/skillpath/mitra/internal/catalog"
	"github.com/skillpath/mitra/internal/llm"
	"github.com/skillpath/mitra/internal/normalize"
	"github.com/skillpath/mitra/internal/prompts"
	"github.com/skillpath/mitra/internal/schemas"
	"github.com/skillpath/mitra/internal/types"
)

// Service runs the path-generation, explanation, and summarization tasks.
type Service struct {
	gateway *llm.Gateway
	// inflight deduplicates concurrent generations for the same session:
	// simultaneous triggers share a single remote call.
	inflight singleflight.Group
}

// NewService creates a pathgen service on top of the model gateway.
func NewService(gateway *llm.Gateway) *Service {
	return &Service{gateway: gateway}
}

// GenerateRequest is one path-generation trigger.
type GenerateRequest struct {
	Profile        types.LearnerProfile
	LabourMarket   *types.LabourMarketSignals
	SessionID      string
	ConsentToShare bool
}

// GeneratePath validates the profile, invokes the model, and normalizes
// the output. Validation failure makes no remote call and carries every
// field error jointly.
func (s *Service) GeneratePath(ctx context.Context, req GenerateRequest) (*types.LearningPath, error) {
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}

	key := req.SessionID
	if key == "" {
		// No session identity: nothing to guard, use a unique key.
		key = uuid.NewString()
	}

	// The generation runs on a context detached from the triggering
	// request: a flight may have sharers that outlive the first caller,
	// and one canceled request must not fail everyone waiting on it. The
	// gateway's per-call timeout still bounds the work.
	genCtx := context.WithoutCancel(ctx)
	result, err, _ := s.inflight.Do(key, func() (any, error) {
		return s.generate(genCtx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.LearningPath), nil
}

func (s *Service) generate(ctx context.Context, req GenerateRequest) (*types.LearningPath, error) {
	profile := &req.Profile
	if !req.ConsentToShare {
		profile = profile.Redacted()
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	labour := req.LabourMarket
	if labour == nil {
		snapshot := catalog.DefaultLabourSnapshot()
		labour = &snapshot
	}
	labourJSON, err := json.Marshal(labour)
	if err != nil {
		return nil, fmt.Errorf("failed to encode labour market data: %w", err)
	}

	prompt := prompts.BuildPathPrompt(string(profileJSON), string(labourJSON), catalog.CoursesJSON(), req.ConsentToShare)

	raw, err := s.gateway.InvokeJSON(ctx, prompt, schemas.LearningPath)
	var verr *schemas.ValidationError
	switch {
	case err == nil:
		// First pass valid.
	case errors.As(err, &verr):
		// Otherwise-well-formed payload failing the strict pass: repair
		// and re-validate before giving up.
		repaired, _, nerr := normalize.PathJSON(raw)
		if nerr != nil {
			return nil, &llm.MalformedOutputError{Message: "model output is not usable", Cause: nerr}
		}
		if rerr := schemas.Validate(schemas.LearningPath, repaired); rerr != nil {
			return nil, &llm.MalformedOutputError{Message: "model output failed schema after repair", Cause: rerr}
		}
		raw = repaired
	default:
		return nil, err
	}

	_, path, err := normalize.PathJSON(raw)
	if err != nil {
		return nil, &llm.MalformedOutputError{Message: "model output is not usable", Cause: err}
	}

	if err := normalize.CheckParity(path); err != nil {
		return nil, &llm.MalformedOutputError{Message: "model output is not index-consistent", Cause: err}
	}
	if !path.Confidence.Valid() {
		return nil, &llm.MalformedOutputError{Message: fmt.Sprintf("unknown confidence level %q", path.Confidence)}
	}

	normalize.StampIdentity(path, req.SessionID)
	return path, nil
}
