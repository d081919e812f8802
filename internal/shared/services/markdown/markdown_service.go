// Package markdown renders ticket message bodies from markdown to HTML safe
// for embedding in the frontend.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	// RenderSanitized converts markdown to HTML and strips anything outside
	// the user-generated-content policy.
	RenderSanitized(markdown string) (string, error)
	// Sanitize strips unsafe HTML from already-rendered content.
	Sanitize(htmlContent string) string
}

type service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &service{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

func (s *service) RenderSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}

func (s *service) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}
