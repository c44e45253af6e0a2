package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "atx headings in order",
			source: "# Title\n\ntext\n\n## First\n\n### Nested\n\n## Second\n",
			want:   []string{"# Title", "## First", "### Nested", "## Second"},
		},
		{
			name:   "inline markup is flattened",
			source: "## Core *Components* and `scaling`\n",
			want:   []string{"## Core Components and scaling"},
		},
		{
			name:   "setext heading",
			source: "Overview\n========\n",
			want:   []string{"# Overview"},
		},
		{
			name:   "hash lines inside code fences are not headings",
			source: "```mermaid\n# not a heading\n```\n",
			want:   nil,
		},
		{
			name:   "empty document",
			source: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Outline([]byte(tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
