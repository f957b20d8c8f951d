package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "home", expected: "home"},
		{input: "100%", expected: `100\%`},
		{input: "snake_case", expected: `snake\_case`},
		{input: `back\slash`, expected: `back\\slash`},
		{input: `_%\`, expected: `\_\%\\`},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, escapeLike(tt.input))
		})
	}
}
