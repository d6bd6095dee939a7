// Package sanitize post-processes generated replies before they reach the
// user: cautionary boilerplate is stripped and multi-line answers are
// reshaped into bullet points.
package sanitize

import (
	"regexp"
	"strings"
)

// disclaimerRules is the ordered list of cautionary patterns removed from
// generated text. Kept as data so the set can grow without touching the
// dialog engine. Patterns ending in `.*?\.` consume up to the next sentence
// terminator; `.*` runs to the end of the line.
var disclaimerRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)I am an AI.*?\.`),
	regexp.MustCompile(`(?i)I can't give medical advice.*?\.`),
	regexp.MustCompile(`(?i)Consult a doctor.*?\.`),
	regexp.MustCompile(`(?i)This is not a substitute.*?\.`),
	regexp.MustCompile(`(?i)When to see a doctor:.*`),
	regexp.MustCompile(`(?i)Always consult your healthcare provider.*?\.`),
	regexp.MustCompile(`(?i)Remember to always.*?\.`),
}

// StripDisclaimers removes cautionary boilerplate from generated text by
// applying each rule in order. Text without any matching span comes back
// unchanged apart from surrounding whitespace.
func StripDisclaimers(text string) string {
	for _, rule := range disclaimerRules {
		text = rule.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// FormatReply reshapes a reply into a bulleted list when it spans multiple
// lines. Blank lines are dropped; a single-line reply is returned as-is.
//
// Re-applying FormatReply to an already bulleted multi-line reply stacks
// another bullet layer. That matches the historical output format and is
// pinned by a test; do not "fix" it without changing the user-visible
// contract.
func FormatReply(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) <= 1 {
		return text
	}

	for i, line := range lines {
		lines[i] = "- " + line
	}
	return strings.Join(lines, "\n")
}
