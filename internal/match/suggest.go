package match

import "strings"

// closenessThreshold is the minimum normalized similarity for a
// candidate to be offered as a suggestion. Below it, a "did you mean"
// hint is more confusing than helpful.
const closenessThreshold = 0.5

// Normalize folds an identifier for comparison: lowercase with the
// common separators (_, -, space) stripped, so "MaxVerticalVelocity"
// and "max_vertical_velocity" normalize to the same string.
func Normalize(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// Closest returns the candidate most similar to name, if its
// normalized similarity clears the suggestion threshold. Ties keep the
// earliest candidate, so suggestions are deterministic for a fixed
// candidate order.
func Closest(name string, candidates []string) (string, bool) {
	norm := Normalize(name)

	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		score := Similarity(norm, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < closenessThreshold {
		return "", false
	}

	return best, true
}
