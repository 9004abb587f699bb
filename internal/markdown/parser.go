package markdown

import (
	"bytes"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Parser renders note content. Raw HTML inside notes is not passed through.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Parser) ExtractFrontmatter(source []byte) map[string]any {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	data := frontmatter.Get(context)
	if data == nil {
		return make(map[string]any)
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil {
		return make(map[string]any)
	}
	return meta
}

// ImportedNote is a note read from a markdown file.
type ImportedNote struct {
	Title     string
	Content   string
	CreatedAt time.Time // zero when the file has no date
}

// ParseNote reads a markdown file with optional frontmatter. The title comes
// from the "title" key, then the first heading, then the file name; the
// content is the body without the frontmatter block.
func (p *Parser) ParseNote(filename string, source []byte) ImportedNote {
	meta := p.ExtractFrontmatter(source)
	body := stripFrontmatter(string(source))

	note := ImportedNote{Content: strings.TrimSpace(body)}

	if title, ok := meta["title"].(string); ok && strings.TrimSpace(title) != "" {
		note.Title = strings.TrimSpace(title)
	} else if heading := firstHeading(body); heading != "" {
		note.Title = heading
	} else {
		note.Title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	switch v := meta["date"].(type) {
	case time.Time:
		note.CreatedAt = v.UTC()
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			t, err := time.Parse(layout, v)
			if err == nil {
				note.CreatedAt = t.UTC()
				break
			}
		}
	}

	return note
}

func stripFrontmatter(source string) string {
	for _, delim := range []string{"---", "+++"} {
		if !strings.HasPrefix(source, delim+"\n") {
			continue
		}
		rest := source[len(delim)+1:]
		end := strings.Index(rest, "\n"+delim)
		if end < 0 {
			return source
		}
		rest = rest[end+len(delim)+1:]
		return strings.TrimPrefix(rest, "\n")
	}
	return source
}

func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
