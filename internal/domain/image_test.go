package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImagePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: PlaceholderImage},
		{name: "whitespace only", input: "   \t", expected: PlaceholderImage},
		{name: "http unchanged", input: "http://cdn.example.com/a.jpg", expected: "http://cdn.example.com/a.jpg"},
		{name: "https unchanged", input: "https://cdn.example.com/a.jpg", expected: "https://cdn.example.com/a.jpg"},
		{name: "rooted unchanged", input: "/img/y.jpg", expected: "/img/y.jpg"},
		{name: "dot slash stripped", input: "./img/y.jpg", expected: "/img/y.jpg"},
		{name: "dot slash with extra slash", input: ".//img/y.jpg", expected: "/img/y.jpg"},
		{name: "bare name gets slash", input: "img/y.jpg", expected: "/img/y.jpg"},
		{name: "surrounding whitespace trimmed", input: "  img/y.jpg ", expected: "/img/y.jpg"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeImagePath(tc.input))
		})
	}
}

func TestNormalizeImagePath_Properties(t *testing.T) {
	inputs := []string{
		"", " ", "a.jpg", "./a.jpg", "/a.jpg", "//a.jpg", ".//a.jpg",
		"http://x/a.jpg", "https://x/a.jpg", "images/products/1.png",
		"  ./b.png", "\t", "汉字.jpg", "./汉字.jpg",
	}

	for _, input := range inputs {
		once := NormalizeImagePath(input)

		// Every output is rooted or protocol-qualified.
		rooted := strings.HasPrefix(once, "/") ||
			strings.HasPrefix(once, "http://") ||
			strings.HasPrefix(once, "https://")
		assert.True(t, rooted, "input %q produced %q", input, once)

		// Idempotent.
		assert.Equal(t, once, NormalizeImagePath(once), "input %q", input)
	}
}
