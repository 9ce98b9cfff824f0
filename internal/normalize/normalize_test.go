package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/mitra/internal/types"
)

const rawPathWithStringNumbers = `{
  "career_goal": "Data Analyst",
  "career_match_score": "86",
  "nsqf_mapping": [
    {"step": "Data Analytics Foundation", "nsqf_level": "Level 4", "course_id": "NSQF002", "provider": "NCVET", "duration_weeks": 16, "cost_inr": "₹35,000"}
  ],
  "skill_gap": [
    {"skill": "SQL", "current_level": "none", "required_level": "intermediate", "recommended_action": "complete course"}
  ],
  "alternative_paths": ["Business Analyst"],
  "labour_market_signals": {"demand_index": 85, "avg_salary_inr": "₹9,50,000", "top_locations": ["Bengaluru"]},
  "confidence": "high",
  "explainability": ["Closest official mapping for an analytics entry role."],
  "next_actions": [{"type": "enroll", "id": "NSQF002", "label": "Enroll in Data Analytics Foundation"}],
  "summary_en": "A focused analytics path.",
  "summary_hi": "एक केंद्रित विश्लेषण पथ।"
}`

func TestPathJSON_CoercesStringNumbers(t *testing.T) {
	repaired, path, err := PathJSON(rawPathWithStringNumbers)
	require.NoError(t, err)
	require.NotEmpty(t, repaired)

	assert.Equal(t, 86, path.CareerMatchScore.Int())
	assert.Equal(t, 4, path.NsqfMapping[0].NsqfLevel.Int())
	assert.Equal(t, 35000, path.NsqfMapping[0].CostINR.Int())
	assert.Equal(t, 950000, path.LabourMarketSignals.AvgSalaryINR.Int())
}

func TestPathJSON_NoDigitsBecomesZero(t *testing.T) {
	raw := `{"career_goal": "x", "labour_market_signals": {"avg_salary_inr": "N/A", "top_locations": []}}`
	_, path, err := PathJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, path.LabourMarketSignals.AvgSalaryINR.Int())
}

func TestPathJSON_Idempotent(t *testing.T) {
	once, _, err := PathJSON(rawPathWithStringNumbers)
	require.NoError(t, err)

	twice, _, err := PathJSON(once)
	require.NoError(t, err)

	assert.JSONEq(t, once, twice)
}

func TestPathJSON_RejectsMalformedJSON(t *testing.T) {
	_, _, err := PathJSON(`not json at all`)
	require.Error(t, err)
}

func TestStampIdentity_SetsMissingFields(t *testing.T) {
	path := &types.LearningPath{}
	StampIdentity(path, "")

	assert.NotEmpty(t, path.UserID)
	assert.NotEmpty(t, path.Timestamp)
}

func TestStampIdentity_Idempotent(t *testing.T) {
	path := &types.LearningPath{}
	StampIdentity(path, "learner-1")

	userID := path.UserID
	timestamp := path.Timestamp

	StampIdentity(path, "learner-2")
	assert.Equal(t, userID, path.UserID)
	assert.Equal(t, timestamp, path.Timestamp)
	assert.Equal(t, "learner-1", path.UserID)
}

func TestCheckParity(t *testing.T) {
	path := &types.LearningPath{
		NsqfMapping:    make([]types.NsqfStep, 2),
		Explainability: []string{"a", "b"},
		NextActions:    make([]types.NextAction, 2),
	}
	require.NoError(t, CheckParity(path))

	path.Explainability = []string{"a"}
	err := CheckParity(path)
	require.Error(t, err)

	var perr *ParityError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Steps)
	assert.Equal(t, 1, perr.Explainability)
}
