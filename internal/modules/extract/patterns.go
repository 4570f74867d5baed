// README: Regex extraction tiers (travel-phrase patterns and capitalized-run scan).
package extract

import (
	"regexp"
	"strings"
)

// fallbackPatterns are tried in order against the trimmed text; the first
// match wins. They are compiled case-insensitively on purpose: queries typed
// entirely in lowercase ("whats the weather in tokyo") still have to match.
var fallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:visit|go|travel|trip)\s+(?:some\s+)?(?:places\s+)?(?:in|at|to|near)\s+([A-Z][A-Za-z\s]+?)(?:[,.!?]|$)`),
	regexp.MustCompile(`(?i)\b(?:in|at|to|near)\s+([A-Z][A-Za-z\s]+?)(?:[,.!?]|$)`),
	regexp.MustCompile(`(?i)\b(?:visit|go|travel)\s+(?:to\s+)?([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)?)(?:[,.!?]|$)`),
}

// capitalRun matches sequences of capitalized words ("New York", "Berlin").
// Case sensitivity matters here: this tier only fires on real capitals.
var capitalRun = regexp.MustCompile(`[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*`)

// normalizeQuotes folds the typographic apostrophe into ASCII so patterns see
// "What's" regardless of the client keyboard.
func normalizeQuotes(text string) string {
	return strings.ReplaceAll(text, "’", "'")
}

// fromPatterns applies the ordered travel-phrase patterns and cleans the
// matched phrase of filler words. Candidates of 2 characters or fewer after
// cleaning are rejected and the next pattern is tried.
func fromPatterns(text string) (string, bool) {
	clean := strings.TrimSpace(normalizeQuotes(text))

	for _, re := range fallbackPatterns {
		m := re.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])

		words := strings.Fields(candidate)
		kept := words[:0]
		for _, w := range words {
			if _, filler := fillerWords[strings.ToLower(w)]; !filler {
				kept = append(kept, w)
			}
		}
		candidate = strings.Join(kept, " ")

		if len(candidate) > 2 {
			return strings.ToLower(candidate), true
		}
	}

	return "", false
}

// fromCapitalRuns scans capitalized-word runs from the end of the text and
// returns the first one that is not a known non-location token.
func fromCapitalRuns(text string) (string, bool) {
	runs := capitalRun.FindAllString(normalizeQuotes(text), -1)
	for i := len(runs) - 1; i >= 0; i-- {
		lower := strings.ToLower(runs[i])
		if _, stop := nonLocations[lower]; !stop {
			return lower, true
		}
	}
	return "", false
}
