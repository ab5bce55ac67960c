package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLink(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *string
	}{
		{name: "https URL accepted unchanged", raw: "https://example.com/apply", expected: strPtr("https://example.com/apply")},
		{name: "http URL accepted", raw: "http://example.com", expected: strPtr("http://example.com")},
		{name: "non-web scheme rejected", raw: "ftp://x", expected: nil},
		{name: "free text rejected", raw: "not a url", expected: nil},
		{name: "blank rejected", raw: "", expected: nil},
		{name: "whitespace rejected", raw: "   ", expected: nil},
		{name: "relative path rejected", raw: "/jobs/apply", expected: nil},
		{name: "scheme without host rejected", raw: "https://", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLink(tt.raw)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
