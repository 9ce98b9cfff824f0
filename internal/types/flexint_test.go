package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"indian salary format", "₹9,50,000", 950000},
		{"plain digits", "950000", 950000},
		{"level with prefix", "Level 5", 5},
		{"no digits", "N/A", 0},
		{"empty", "", 0},
		// The sign is a non-digit and is stripped like any other; the
		// schema's minimum bounds reject genuinely negative values.
		{"signed string loses its sign", "-5", 5},
		{"currency suffix", "45,000 INR per annum", 45000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceInt(tt.input))
		})
	}
}

func TestFlexIntUnmarshal_StrictNumberFirst(t *testing.T) {
	var f FlexInt
	require.NoError(t, json.Unmarshal([]byte(`42`), &f))
	assert.Equal(t, 42, f.Int())

	require.NoError(t, json.Unmarshal([]byte(`85.0`), &f))
	assert.Equal(t, 85, f.Int())
}

func TestFlexIntUnmarshal_StringCoercion(t *testing.T) {
	var f FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"₹9,50,000"`), &f))
	assert.Equal(t, 950000, f.Int())

	require.NoError(t, json.Unmarshal([]byte(`"N/A"`), &f))
	assert.Equal(t, 0, f.Int())
}

func TestFlexIntMarshal_PlainInteger(t *testing.T) {
	data, err := json.Marshal(FlexInt(950000))
	require.NoError(t, err)
	assert.Equal(t, "950000", string(data))
}

func TestFlexInt_RoundTripIsStable(t *testing.T) {
	var f FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"₹1,20,000"`), &f))

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var g FlexInt
	require.NoError(t, json.Unmarshal(data, &g))
	assert.Equal(t, f, g)
}
