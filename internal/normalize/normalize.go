// Package normalize repairs common shape mismatches in model output so
// downstream consumers can rely on the validated schema. Repairs are
// best-effort and idempotent: normalizing an already-normalized value
// yields the same value.
package normalize

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillpath/mitra/internal/types"
)

// ParityError means explainability/next_actions are not index-parallel
// with nsqf_mapping. The normalizer never reorders these arrays; a length
// mismatch is unrepairable.
type ParityError struct {
	Steps          int
	Explainability int
	NextActions    int
}

func (e *ParityError) Error() string {
	return fmt.Sprintf("array parity violated: %d steps, %d explainability entries, %d next actions",
		e.Steps, e.Explainability, e.NextActions)
}

// PathJSON repairs a raw learning-path payload and returns both the
// repaired JSON (for re-validation) and the typed value. Numeric fields
// returned as digit-containing strings are coerced by the FlexInt rule;
// fields with no digits become zero.
func PathJSON(raw string) (string, *types.LearningPath, error) {
	var path types.LearningPath
	if err := json.Unmarshal([]byte(raw), &path); err != nil {
		return "", nil, fmt.Errorf("payload is not well-formed JSON: %w", err)
	}

	repaired, err := json.Marshal(&path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to re-encode repaired payload: %w", err)
	}
	return string(repaired), &path, nil
}

// StampIdentity stamps a server-generated unique identifier and an
// ISO-8601 generation timestamp onto the path. These are never requested
// from the model. Existing values are kept, which is what keeps repeated
// normalization idempotent.
func StampIdentity(path *types.LearningPath, userID string) {
	if path.UserID == "" {
		if userID == "" {
			userID = uuid.NewString()
		}
		path.UserID = userID
	}
	if path.Timestamp == "" {
		path.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
}

// CheckParity verifies the index correspondence between nsqf_mapping,
// explainability, and next_actions. A partially-shaped path must never
// reach the caller.
func CheckParity(path *types.LearningPath) error {
	steps := len(path.NsqfMapping)
	if len(path.Explainability) != steps || len(path.NextActions) != steps {
		return &ParityError{
			Steps:          steps,
			Explainability: len(path.Explainability),
			NextActions:    len(path.NextActions),
		}
	}
	return nil
}
