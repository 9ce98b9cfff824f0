package pathgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skillpath/mitra/internal/llm"
	"github.com/skillpath/mitra/internal/prompts"
	"github.com/skillpath/mitra/internal/schemas"
	"github.com/skillpath/mitra/internal/types"
)

// ExplainCourse produces one free-text paragraph explaining why a course
// was recommended: the learner's aspiration, the skill gap addressed, the
// evidentiary source, and a confidence label.
func (s *Service) ExplainCourse(ctx context.Context, courseID string, profile *types.LearnerProfile, path *types.LearningPath) (string, error) {
	if courseID == "" {
		return "", fmt.Errorf("course id is required")
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}
	pathJSON, err := json.Marshal(path)
	if err != nil {
		return "", fmt.Errorf("failed to encode learning path: %w", err)
	}

	prompt := prompts.BuildExplainPrompt(courseID, string(profileJSON), string(pathJSON))
	raw, err := s.gateway.InvokeJSON(ctx, prompt, schemas.CourseExplanation)
	if err != nil {
		return "", wrapStructuredErr(err)
	}

	var out types.CourseExplanation
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", &llm.MalformedOutputError{Message: "explanation output is not usable", Cause: err}
	}
	return out.Explanation, nil
}

// SummarizePath produces the standalone bilingual summary of a path.
func (s *Service) SummarizePath(ctx context.Context, path *types.LearningPath) (*types.PathSummary, error) {
	pathJSON, err := json.Marshal(path)
	if err != nil {
		return nil, fmt.Errorf("failed to encode learning path: %w", err)
	}

	prompt := prompts.BuildSummaryPrompt(string(pathJSON))
	raw, err := s.gateway.InvokeJSON(ctx, prompt, schemas.PathSummary)
	if err != nil {
		return nil, wrapStructuredErr(err)
	}

	var out types.PathSummary
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &llm.MalformedOutputError{Message: "summary output is not usable", Cause: err}
	}
	return &out, nil
}

// wrapStructuredErr converts a schema failure on a simple structured task
// into a malformed-output error; transient and terminal provider errors
// pass through unchanged.
func wrapStructuredErr(err error) error {
	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		return &llm.MalformedOutputError{Message: "model output failed schema", Cause: verr}
	}
	return err
}
