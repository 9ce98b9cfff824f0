package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPathDocument = `{
  "career_goal": "Data Analyst",
  "career_match_score": 86,
  "nsqf_mapping": [
    {"step": "Data Analytics Foundation", "nsqf_level": 4, "course_id": "NSQF002", "provider": "NCVET", "duration_weeks": 16, "cost_inr": 35000}
  ],
  "skill_gap": [
    {"skill": "SQL", "current_level": "none", "required_level": "intermediate", "recommended_action": "complete course"}
  ],
  "alternative_paths": ["Business Analyst"],
  "labour_market_signals": {"demand_index": 85, "avg_salary_inr": 950000, "top_locations": ["Bengaluru"]},
  "confidence": "high",
  "explainability": ["Closest official mapping for an analytics entry role."],
  "next_actions": [{"type": "enroll", "id": "NSQF002", "label": "Enroll in Data Analytics Foundation"}],
  "summary_en": "A focused analytics path.",
  "summary_hi": "एक केंद्रित विश्लेषण पथ।"
}`

func TestGet_KnownSchemas(t *testing.T) {
	for _, name := range []string{LearningPath, PathSummary, Conversational, CourseExplanation} {
		schema, err := Get(name)
		require.NoError(t, err, "schema %s should be embedded", name)
		assert.NotEmpty(t, schema)
	}
}

func TestMustGet(t *testing.T) {
	for _, name := range []string{LearningPath, PathSummary, Conversational, CourseExplanation} {
		assert.NotPanics(t, func() { MustGet(name) })
	}
	assert.Panics(t, func() { MustGet("no_such_schema") })
}

func TestGet_UnknownSchema(t *testing.T) {
	_, err := Get("no_such_schema")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_schema")
}

func TestValidate_ValidLearningPath(t *testing.T) {
	assert.NoError(t, Validate(LearningPath, validPathDocument))
}

func TestValidate_IdentityFieldsOptional(t *testing.T) {
	// user_id and timestamp are stamped server-side after validation, so
	// the schema must accept model output without them.
	assert.NoError(t, Validate(LearningPath, validPathDocument))
}

func TestValidate_RejectsStringScore(t *testing.T) {
	doc := `{
	  "career_goal": "Data Analyst",
	  "career_match_score": "86",
	  "nsqf_mapping": [{"step": "s", "nsqf_level": 4, "course_id": "NSQF002", "provider": "p", "duration_weeks": 1, "cost_inr": 0}],
	  "skill_gap": [],
	  "alternative_paths": [],
	  "labour_market_signals": {"demand_index": 50, "avg_salary_inr": 0, "top_locations": []},
	  "confidence": "low",
	  "explainability": ["r"],
	  "next_actions": [{"type": "enroll", "id": "NSQF002", "label": "l"}],
	  "summary_en": "e",
	  "summary_hi": "h"
	}`

	err := Validate(LearningPath, doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Equal(t, "career_match_score", verr.Errors[0].Field)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	err := Validate(LearningPath, `{"career_goal": ""}`)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// Every missing required field plus the minLength violation.
	assert.GreaterOrEqual(t, len(verr.Errors), 10)
}

func TestValidate_ConfidenceEnum(t *testing.T) {
	doc := `{
	  "career_goal": "Data Analyst",
	  "career_match_score": 40,
	  "nsqf_mapping": [{"step": "s", "nsqf_level": 4, "course_id": "NSQF002", "provider": "p", "duration_weeks": 1, "cost_inr": 0}],
	  "skill_gap": [],
	  "alternative_paths": [],
	  "labour_market_signals": {"demand_index": 50, "avg_salary_inr": 0, "top_locations": []},
	  "confidence": "certain",
	  "explainability": ["r"],
	  "next_actions": [{"type": "enroll", "id": "NSQF002", "label": "l"}],
	  "summary_en": "e",
	  "summary_hi": "h"
	}`

	err := Validate(LearningPath, doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "confidence", verr.Errors[0].Field)
}

func TestValidate_PathSummary(t *testing.T) {
	assert.NoError(t, Validate(PathSummary, `{"english_summary": "ok", "hindi_summary": "ठीक"}`))

	err := Validate(PathSummary, `{"english_summary": "ok"}`)
	require.Error(t, err)
}

func TestValidate_Conversational(t *testing.T) {
	assert.NoError(t, Validate(Conversational, `{"conversational_text": "Namaste Anjali!"}`))
	assert.Error(t, Validate(Conversational, `{}`))
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)

	var serr *SchemaLoadError
	assert.ErrorAs(t, err, &serr)
}
