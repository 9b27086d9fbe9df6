package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuota(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"AI", "All India"},
		{"AIQ", "All India"},
		{" AI ", "All India"},
		{"DU", "Delhi University"},
		{"State", "State Quota"},
		{"Armed Forces", "Armed Forces"}, // unmapped passes through
		{"ai", "ai"},                     // lookup is case-sensitive
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeQuota(tt.raw), "quota %q", tt.raw)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"GN", "GENERAL"},
		{"UR", "GENERAL"},
		{"OBC", "OBC"},
		{"BC", "OBC"},
		{"EWS", "EWS"},
		{"", "GENERAL"},
		{"   ", "GENERAL"},
		{"MINORITY", "MINORITY"}, // unmapped passes through
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategory(tt.raw), "category %q", tt.raw)
	}
}
