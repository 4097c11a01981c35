// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draft saves generated blog posts as Markdown files with a YAML
// front matter header.
package draft

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/gapwriter/pkg/types"
)

// ErrEmptySlug is returned when a topic has no characters usable in a
// file name.
var ErrEmptySlug = errors.New("topic produces an empty file name")

// nonSlugPattern matches runs of characters that are not letters or digits.
var nonSlugPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// maxSlugRunes keeps file names well under common filesystem limits.
const maxSlugRunes = 80

var lower = cases.Lower(language.Und)

// Now is the clock used for the front matter timestamp.
var Now = time.Now

// frontMatter is written ahead of the post body.
type frontMatter struct {
	Topic     string    `yaml:"topic"`
	Generated time.Time `yaml:"generated"`
}

// Slug turns a topic into a lowercase, hyphen-separated file name stem.
func Slug(topic string) string {
	s := nonSlugPattern.ReplaceAllString(lower.String(topic), "-")
	s = strings.Trim(s, "-")
	if r := []rune(s); len(r) > maxSlugRunes {
		s = strings.TrimRight(string(r[:maxSlugRunes]), "-")
	}
	return s
}

// Write saves post to dir/<slug>.md, creating dir if needed, and returns
// the file path. An existing file with the same name is overwritten.
func Write(dir string, post types.BlogPost) (string, error) {
	slug := Slug(post.Topic)
	if slug == "" {
		return "", fmt.Errorf("topic %q: %w", post.Topic, ErrEmptySlug)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	header, err := yaml.Marshal(frontMatter{Topic: post.Topic, Generated: Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(post.Content)
	if !strings.HasSuffix(post.Content, "\n") {
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, slug+".md")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing draft: %w", err)
	}
	return path, nil
}
