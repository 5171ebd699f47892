// Package sanitize cleans generated HTML before the console renders it.
package sanitize

import (
	"blogpilot/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer builds a policy for generated blog posts: user-generated
// content elements, relative image paths from the backend, and links opened
// in a new tab without a referrer.
func NewHTMLSanitizer() service.HTMLSanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowRelativeURLs(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	p.AllowAttrs("class").OnElements("figure", "figcaption", "div", "span", "section")
	p.AllowElements("figure", "figcaption", "section")

	return &htmlSanitizer{policy: p}
}

// Sanitize returns safe HTML. It is idempotent.
func (s *htmlSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
