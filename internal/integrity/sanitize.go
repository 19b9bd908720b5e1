// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrity holds the cross-entity referential-integrity
// services of spec.md §4.4: mention sanitization, metadata footer
// construction, and label conflict resolution. Grounded on
// original_source/packages/github-data-tools/src/github_data_tools/github/sanitizers.py
// for the mention regex, re-expressed with Go's regexp/stdlib instead of
// the original's.
package integrity

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// mentionPattern matches an "@login" token preceded by start-of-string
// or whitespace, per spec.md §4.4: "@[alphanumeric][alphanumeric-]{0,37}[alphanumeric]?"
// preceded by start-of-line or whitespace. Using (^|\s) instead of \b
// keeps e-mail addresses like user@example.com untouched, since there
// the '@' is never preceded by whitespace.
var mentionPattern = regexp.MustCompile(`(^|\s)(@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?)`)

// SanitizeMentions wraps every @mention in body in backticks so GitHub
// does not send a notification to the mentioned user when the body is
// reposted on the restore target. Idempotence is not required by
// spec.md §4.4; running this twice over an already-wrapped mention is
// harmless (the backticks become part of the token and no longer match
// the leading-alphanumeric pattern).
func SanitizeMentions(body string) string {
	return mentionPattern.ReplaceAllString(body, "$1`$2`")
}

// Footer is the metadata appended to a restored body, per spec.md §4.4:
// "original author login (itself sanitized), timestamps, original URL."
type Footer struct {
	AuthorLogin string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	URL         string
}

// AppendFooter renders footer below body with a horizontal-rule
// separator. When body is empty, the rendered footer becomes the whole
// content instead of trailing empty text.
func AppendFooter(body string, footer Footer) string {
	var b strings.Builder
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	b.WriteString("---\n")
	if footer.AuthorLogin != "" {
		fmt.Fprintf(&b, "*Originally by %s", SanitizeMentions("@"+footer.AuthorLogin))
		if !footer.CreatedAt.IsZero() {
			fmt.Fprintf(&b, " on %s", footer.CreatedAt.Format(time.RFC3339))
		}
		b.WriteString("*\n")
	} else if !footer.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "*Originally created on %s*\n", footer.CreatedAt.Format(time.RFC3339))
	}
	if !footer.UpdatedAt.IsZero() && !footer.UpdatedAt.Equal(footer.CreatedAt) {
		fmt.Fprintf(&b, "*Last updated %s*\n", footer.UpdatedAt.Format(time.RFC3339))
	}
	if footer.URL != "" {
		fmt.Fprintf(&b, "*Original: %s*\n", footer.URL)
	}
	return b.String()
}
