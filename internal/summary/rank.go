package summary

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Only the first candidates are scored to bound cost on huge sections.
const maxCandidates = 50

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)
	digitPattern     = regexp.MustCompile(`\d`)
)

// Keywords that suggest a sentence carries a finding or recommendation.
var importanceKeywords = []string{
	"result", "conclusion", "found", "significant", "important",
	"demonstrate", "show", "indicate", "suggest", "recommend",
	"key", "main", "primary", "critical", "essential",
}

type scoredSentence struct {
	text  string
	score int
}

// KeySentences picks up to maxSentences likely-informative sentences
// from a section body, best first. Ties keep document order. Only
// sentences scoring above zero are returned, so the result may be
// shorter than maxSentences or empty.
func KeySentences(text string, maxSentences int) []string {
	if maxSentences <= 0 {
		return nil
	}

	var candidates []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 20 {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	scored := make([]scoredSentence, 0, len(candidates))
	for _, s := range candidates {
		scored = append(scored, scoredSentence{text: s, score: scoreSentence(s)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var top []string
	for _, s := range scored {
		if len(top) >= maxSentences {
			break
		}
		if s.score > 0 {
			top = append(top, s.text)
		}
	}
	return top
}

func scoreSentence(s string) int {
	score := 0

	// Numbers usually mean data or facts.
	if digitPattern.MatchString(s) {
		score += 2
	}

	if strings.ContainsAny(s, `"'`) {
		score++
	}

	lower := strings.ToLower(s)
	for _, kw := range importanceKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}

	// Neither a fragment nor a wall of text.
	if n := utf8.RuneCountInString(s); n > 50 && n < 200 {
		score++
	}

	return score
}
