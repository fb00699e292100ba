package jdtext

import (
	"regexp"
	"strings"
)

var (
	// headingRe matches ATX headings; group 1 = heading text.
	headingRe = regexp.MustCompile(`^#{1,6}\s+(.+)$`)

	// bulletRe matches list items with -, * or + prefix; group 1 = item text.
	bulletRe = regexp.MustCompile(`^[-*+]\s+(.+)$`)

	// setextUnderlineRe matches setext heading underlines.
	setextUnderlineRe = regexp.MustCompile(`^[-=]{2,}$`)

	// navLinkRe matches lines that consist entirely of markdown links.
	navLinkRe = regexp.MustCompile(`^(\[[^\]]*\]\([^)]*\)\s*)+$`)

	// linkRe matches an inline link; group 1 = link text.
	linkRe = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

	// emphasisRe matches bold/italic markers and inline code ticks.
	emphasisRe = regexp.MustCompile("[*_`]{1,3}")
)

// FromMarkdown returns plain text lines from a markdown or plain-text job
// description. Markup is removed; navigation-only lines and setext
// underlines are dropped.
func FromMarkdown(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || setextUnderlineRe.MatchString(trimmed) || navLinkRe.MatchString(trimmed) {
			continue
		}

		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			trimmed = m[1]
		} else if m := bulletRe.FindStringSubmatch(trimmed); m != nil {
			trimmed = m[1]
		}

		trimmed = linkRe.ReplaceAllString(trimmed, "$1")
		trimmed = emphasisRe.ReplaceAllString(trimmed, "")

		if trimmed = CleanText(trimmed); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return strings.Join(out, "\n")
}

// Extract returns the plain text of a job description, parsing it as HTML
// when it looks like HTML and as markdown otherwise.
func Extract(s string) (string, error) {
	if LooksLikeHTML(s) {
		return FromHTML(strings.NewReader(s))
	}

	return FromMarkdown(s), nil
}
