// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package completion

import (
	"bytes"
	"text/template"
)

// blogPromptTmpl is the prompt sent for every blog post. Lines one and two end
// with a space; lines two and three are indented eight spaces.
var blogPromptTmpl = template.Must(template.New("blog").Parse(
	`Write a comprehensive Neil Patel-style blog post about "{{.Topic}}". ` + "\n" +
		`        Include an introduction, why it matters, key strategies, common mistakes, and a conclusion. ` + "\n" +
		`        Format the post in Markdown with headers and bullet points where appropriate.`))

// BuildPrompt renders the blog post prompt for topic.
func BuildPrompt(topic string) (string, error) {
	var buf bytes.Buffer
	if err := blogPromptTmpl.Execute(&buf, struct{ Topic string }{topic}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
