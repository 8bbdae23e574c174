// internal/prompt/builder.go
package prompt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StyleKeywords are the style phrases injected into every generation prompt.
// CleanRevisedPrompt removes exactly these, so the two lists must stay in
// sync. Prompt building uses the first five.
var StyleKeywords = []string{
	"webtoon style illustration",
	"clean lines",
	"vibrant colors",
	"professional digital illustration",
	"studio quality",
	"manhwa art style",
	"digital art",
}

const styleKeywordCount = 5

// BuildWebtoonPrompt assembles the structured generation prompt: the style
// segment (when enabled), then "Character: ...", then "Scene: ...". Segments
// are joined with ". " and the result ends in a single period. Absent inputs
// simply omit their segment; the function never fails.
func BuildWebtoonPrompt(characterDescription, sceneDescription string, includeStyle bool) string {
	var parts []string

	if includeStyle {
		parts = append(parts, strings.Join(StyleKeywords[:styleKeywordCount], ", "))
	}

	if desc := strings.TrimSpace(characterDescription); desc != "" {
		parts = append(parts, "Character: "+desc)
	}

	if scene := strings.TrimSpace(sceneDescription); scene != "" {
		parts = append(parts, "Scene: "+scene)
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

// ComposeScene builds the caller-facing Korean sentence for the response
// body. With a character present the scene is prefixed with a clause that
// references it; otherwise the scene text is returned unchanged. Translation
// normalization happens in the orchestrator, not here.
func ComposeScene(characterDescription, sceneDescription string) string {
	scene := strings.TrimSpace(sceneDescription)

	if character := strings.TrimSpace(characterDescription); character != "" {
		return character + "의 모습이 담긴 장면으로, " + scene
	}
	return scene
}

var stylePrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Create\s+an?\s+`),
	regexp.MustCompile(`(?i)^An?\s+illustration\s+`),
	regexp.MustCompile(`(?i)resembling\s+`),
	regexp.MustCompile(`(?i)in\s+the\s+style\s+of\s+`),
}

var (
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
	doubleCommaRe   = regexp.MustCompile(`\s*,\s*,\s*`)
	leadingCommaRe  = regexp.MustCompile(`^\s*,\s*`)
	trailingCommaRe = regexp.MustCompile(`\s*,\s*$`)
	leadingDotRe    = regexp.MustCompile(`^\.+\s*`)
)

// CleanRevisedPrompt strips the injected style keywords and common style
// prefixes from the backend's revised prompt, leaving only the content that
// describes what was actually rendered.
func CleanRevisedPrompt(revisedPrompt string) string {
	if revisedPrompt == "" {
		return ""
	}

	text := revisedPrompt

	for _, keyword := range StyleKeywords {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
		text = re.ReplaceAllString(text, "")
	}

	for _, re := range stylePrefixes {
		text = re.ReplaceAllString(text, "")
	}

	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = doubleCommaRe.ReplaceAllString(text, ", ")
	text = leadingCommaRe.ReplaceAllString(text, "")
	text = trailingCommaRe.ReplaceAllString(text, "")
	text = leadingDotRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	if text == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}
