package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{input: "0", want: 0},
		{input: "30", want: 30 * time.Minute},
		{input: "120", want: 120 * time.Minute},
		{input: "2h", want: 2 * time.Hour},
		{input: "45m", want: 45 * time.Minute},
		{input: "2h30m", want: 2*time.Hour + 30*time.Minute},
		{input: "1h30m45s", want: time.Hour + 30*time.Minute + 45*time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, input := range []string{"abc", "2x30m", ""} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Valid formats")
		})
	}
}
