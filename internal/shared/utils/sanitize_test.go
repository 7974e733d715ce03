package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  Machado de Assis  ",
			expected: "machado de assis",
		},
		{
			name:     "collapses inner whitespace",
			input:    "Manuel        Bandeira",
			expected: "manuel bandeira",
		},
		{
			name:     "trims trailing whitespace",
			input:    "Edgar Alan Poe         ",
			expected: "edgar alan poe",
		},
		{
			name:     "removes punctuation entirely",
			input:    "Androides sonham com carneiros elétricos?",
			expected: "androides sonham com carneiros elétricos",
		},
		{
			name:     "keeps digits and inner symbols",
			input:    "  breno 77  ",
			expected: "breno 77",
		},
		{
			name:     "exclamation inside a word",
			input:    "Um d!a ensolarado!",
			expected: "um da ensolarado",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeIn(tt.input))
		})
	}
}

func TestSanitizeOut(t *testing.T) {
	assert.Equal(t, "Machado De Assis", SanitizeOut("machado de assis"))
	assert.Equal(t, "Clarice Lispector", SanitizeOut("clarice lispector"))
	assert.Equal(t, "", SanitizeOut(""))
}
