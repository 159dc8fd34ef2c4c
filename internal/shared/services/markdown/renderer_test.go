package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis and hard wraps",
			input:    "Nhà **mặt tiền**\ngần chợ",
			contains: []string{"<strong>mặt tiền</strong>", "<br"},
		},
		{
			name:     "script is stripped",
			input:    "Căn hộ đẹp <script>alert(1)</script>",
			excludes: []string{"<script"},
		},
		{
			name:     "inline images are dropped",
			input:    "![x](https://evil.example/x.png)",
			excludes: []string{"<img"},
		},
		{
			name:     "links get nofollow",
			input:    "[bản đồ](https://maps.example.com)",
			contains: []string{`rel="nofollow`, "https://maps.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
