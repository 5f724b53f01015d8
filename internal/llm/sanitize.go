// internal/llm/sanitize.go
package llm

import "regexp"

// Runs of asterisks, backslashes or underscores are markdown artifacts the
// model emits despite the strict-JSON instructions.
var artifactRe = regexp.MustCompile(`[*\\_]{2,}`)

// Sanitize strips markdown formatting artifacts from a completion.
func Sanitize(s string) string {
	return artifactRe.ReplaceAllString(s, "")
}
