package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrimLower(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "lowercases and dedupes",
			input:    []string{"Mailinator.com", "mailinator.com", "MAILINATOR.COM"},
			expected: []string{"mailinator.com"},
		},
		{
			name:     "trims and removes empty entries",
			input:    []string{"  mailinator.com ", "", "  ", "trash-mail.com"},
			expected: []string{"mailinator.com", "trash-mail.com"},
		},
		{
			name:     "preserves first-seen order",
			input:    []string{"b.example", "a.example", "B.example"},
			expected: []string{"b.example", "a.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupeAndTrimLower(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
