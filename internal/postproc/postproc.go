// internal/postproc/postproc.go

// Package postproc validates purification-model output before it is
// accepted. The model occasionally hallucinates, truncates, or rewrites
// beyond recognition; every check here falls back to the original sentence
// rather than letting a degenerate rewrite reach the image prompt.
package postproc

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// invalidTokens are degenerate decoder artifacts. Any occurrence marks the
// output as unusable.
var invalidTokens = []string{"<unk>", "[PAD]", "[UNK]", "<pad>", "<s>", "</s>"}

// meaningfulCharRe matches at least one Hangul syllable or Latin letter.
var meaningfulCharRe = regexp.MustCompile(`[가-힣a-zA-Z]`)

// whitelist holds short innocuous expressions young writers use verbatim.
// These never need purification, so the original is kept unconditionally.
var whitelist = map[string]bool{
	"좋아": true, "싫어": true, "예뻐": true, "귀여워": true, "멋있어": true,
	"보고싶어": true, "사랑해": true, "맛있어": true, "재미있어": true,
	"고마워": true, "미안해": true, "반가워": true, "즐거워": true,
	"행복해": true, "신나": true, "기뻐": true, "슬퍼": true,
}

const (
	// Length-ratio drift outside [minLengthRatio, maxLengthRatio] signals
	// runaway generation.
	minLengthRatio = 0.5
	maxLengthRatio = 1.7

	// Korean particles shift freely between register levels, so the word
	// overlap threshold is deliberately low.
	meaningThreshold = 0.4

	minOutputRunes   = 2
	maxCharRunLength = 4
	whitelistMaxLen  = 5
)

// Processor runs the validation chain and logs which check caused a
// fallback.
type Processor struct {
	log *zap.Logger
}

// NewProcessor creates a Processor logging through logger.
func NewProcessor(logger *zap.Logger) *Processor {
	return &Processor{log: logger.Named("postproc")}
}

// Apply gates the purified text. It returns the trimmed purified text when
// every check passes, and the original otherwise.
func (p *Processor) Apply(original, purified string) string {
	if !ValidateStructure(purified) {
		p.log.Warn("degenerate model output, keeping original",
			zap.String("purified", purified))
		return original
	}

	if IsOverModified(original, purified) {
		p.log.Warn("over-modified output, keeping original",
			zap.String("original", original),
			zap.String("purified", purified))
		return original
	}

	if !PreservesMeaning(original, purified) {
		p.log.Warn("meaning lost in purification, keeping original",
			zap.String("original", original),
			zap.String("purified", purified))
		return original
	}

	if IsWhitelisted(original) {
		p.log.Info("whitelisted sentence, keeping original",
			zap.String("original", original))
		return original
	}

	result := strings.TrimSpace(purified)
	p.log.Debug("purified output accepted",
		zap.String("result", result),
		zap.Bool("changed", original != result))
	return result
}

// ValidateStructure rejects structurally degenerate model output: blank,
// shorter than two characters, a run of five or more identical characters,
// no Hangul or Latin character at all, or a decoder placeholder token.
func ValidateStructure(purified string) bool {
	trimmed := strings.TrimSpace(purified)
	if trimmed == "" {
		return false
	}

	if len([]rune(trimmed)) < minOutputRunes {
		return false
	}

	if hasRepeatedRun(purified, maxCharRunLength) {
		return false
	}

	if !meaningfulCharRe.MatchString(purified) {
		return false
	}

	for _, token := range invalidTokens {
		if strings.Contains(purified, token) {
			return false
		}
	}

	return true
}

// hasRepeatedRun reports whether text contains more than limit consecutive
// occurrences of the same rune.
func hasRepeatedRun(text string, limit int) bool {
	var prev rune
	count := 0
	for _, r := range text {
		if r == prev {
			count++
			if count > limit {
				return true
			}
		} else {
			prev = r
			count = 1
		}
	}
	return false
}

// IsOverModified reports whether the purified text's length drifted outside
// the accepted ratio bounds relative to the original. The bounds themselves
// are accepted.
func IsOverModified(original, purified string) bool {
	originalLen := len([]rune(strings.TrimSpace(original)))
	purifiedLen := len([]rune(strings.TrimSpace(purified)))

	if originalLen == 0 {
		return false
	}

	ratio := float64(purifiedLen) / float64(originalLen)
	return ratio > maxLengthRatio || ratio < minLengthRatio
}

// PreservesMeaning reports whether enough of the original's words survive in
// the purified text. Commas and periods are treated as separators.
func PreservesMeaning(original, purified string) bool {
	originalWords := wordSet(original)
	if len(originalWords) == 0 {
		return true
	}

	purifiedWords := wordSet(purified)

	overlap := 0
	for word := range originalWords {
		if purifiedWords[word] {
			overlap++
		}
	}

	similarity := float64(overlap) / float64(len(originalWords))
	return similarity >= meaningThreshold
}

func wordSet(text string) map[string]bool {
	replaced := strings.NewReplacer(",", " ", ".", " ").Replace(text)
	set := make(map[string]bool)
	for _, word := range strings.Fields(replaced) {
		set[word] = true
	}
	return set
}

// IsWhitelisted reports whether text is one of the known innocuous
// expressions, compared with all internal whitespace removed. Short
// sentences composed entirely of whitelist entries also match.
func IsWhitelisted(text string) bool {
	clean := strings.ReplaceAll(strings.TrimSpace(text), " ", "")

	if whitelist[clean] {
		return true
	}

	if len([]rune(clean)) <= whitelistMaxLen {
		words := strings.Fields(clean)
		if len(words) == 0 {
			return false
		}
		for _, word := range words {
			if !whitelist[word] {
				return false
			}
		}
		return true
	}

	return false
}
