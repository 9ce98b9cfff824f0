package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("interview.json", "system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "ONE question at a time")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("interview.json", "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, you scored {{.Score}}.", map[string]string{
		"Name":  "Anjali",
		"Score": "86",
	})
	assert.Equal(t, "Hello Anjali, you scored 86.", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestList(t *testing.T) {
	keys, err := List("speech.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"conversational", "fallback-en", "fallback-hi"}, keys)
}

func TestClearCache(t *testing.T) {
	_, err := Get("path.json", "generate-learning-path")
	require.NoError(t, err)

	ClearCache()

	prompt, err := Get("path.json", "generate-learning-path")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
}
