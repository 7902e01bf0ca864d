package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Hours
		expectError bool
	}{
		{
			name:     "should parse whole hours",
			input:    "8",
			expected: 800,
		},
		{
			name:     "should parse one decimal digit",
			input:    "8.5",
			expected: 850,
		},
		{
			name:     "should parse two decimal digits",
			input:    "8.25",
			expected: 825,
		},
		{
			name:     "should parse the smallest increment",
			input:    "0.25",
			expected: 25,
		},
		{
			name:     "should parse the daily maximum",
			input:    "24.00",
			expected: 2400,
		},
		{
			name:     "should parse non-increment values exactly",
			input:    "1.10",
			expected: 110,
		},
		{
			name:     "should parse negative values",
			input:    "-0.5",
			expected: -50,
		},
		{
			name:        "should reject three decimal digits",
			input:       "8.255",
			expectError: true,
		},
		{
			name:        "should reject empty input",
			input:       "",
			expectError: true,
		},
		{
			name:        "should reject a bare dot",
			input:       ".25",
			expectError: true,
		},
		{
			name:        "should reject non-numeric input",
			input:       "eight",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseHours(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestHours_IsQuarterIncrement(t *testing.T) {
	tests := []struct {
		name     string
		hours    Hours
		expected bool
	}{
		{name: "quarter hour", hours: 25, expected: true},
		{name: "half hour", hours: 50, expected: true},
		{name: "full day", hours: 2400, expected: true},
		{name: "zero", hours: 0, expected: true},
		{name: "1.10 is not an increment", hours: 110, expected: false},
		{name: "1.26 is not an increment", hours: 126, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.hours.IsQuarterIncrement())
		})
	}
}

func TestHours_String(t *testing.T) {
	assert.Equal(t, "8.25", Hours(825).String())
	assert.Equal(t, "0.25", Hours(25).String())
	assert.Equal(t, "24.00", Hours(2400).String())
	assert.Equal(t, "0.00", Hours(0).String())
	assert.Equal(t, "-0.25", Hours(-25).String())
}

func TestHours_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Hours(825))
	require.NoError(t, err)
	assert.Equal(t, "8.25", string(data))

	var parsed Hours
	require.NoError(t, json.Unmarshal([]byte("1.10"), &parsed))
	assert.Equal(t, Hours(110), parsed)

	require.NoError(t, json.Unmarshal([]byte(`"7.75"`), &parsed))
	assert.Equal(t, Hours(775), parsed)

	assert.Error(t, json.Unmarshal([]byte("1.255"), &parsed))
}
