package markdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p := NewParser()

	html, err := p.Parse([]byte("# Groceries\n\n- [ ] milk\n\n<script>alert(1)</script>"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "milk")
	assert.NotContains(t, string(html), "<script>")
}

func TestParseNote(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name    string
		file    string
		source  string
		title   string
		content string
		date    time.Time
	}{
		{
			name:    "frontmatter title and date",
			file:    "a.md",
			source:  "---\ntitle: Ideas\ndate: 2024-03-01\n---\nBuild a shed.\n",
			title:   "Ideas",
			content: "Build a shed.",
			date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "heading title",
			file:    "b.md",
			source:  "# Reading list\n\nDune\n",
			title:   "Reading list",
			content: "# Reading list\n\nDune",
		},
		{
			name:    "file name title",
			file:    "notes/journal.md",
			source:  "plain text",
			title:   "journal",
			content: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := p.ParseNote(tt.file, []byte(tt.source))
			assert.Equal(t, tt.title, note.Title)
			assert.Equal(t, tt.content, note.Content)
			assert.True(t, tt.date.Equal(note.CreatedAt), "got %v", note.CreatedAt)
		})
	}
}
