package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "My Report", "My Report"},
		{"path separators", `a/b\c`, "a_b_c"},
		{"quotes", `say "hi"`, "say _hi_"},
		{"control characters", "line\r\nbreak", "linebreak"},
		{"empty", "", "document"},
		{"only whitespace", "   ", "document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SafeFilename(tt.title))
		})
	}
}
