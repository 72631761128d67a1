package speech

import "unicode/utf8"

// ConfidenceScore derives a crude [0,1] confidence from transcript length.
// The provider response carries no usable confidence signal, so longer
// transcripts are treated as stronger answers, capped at 1.0.
func ConfidenceScore(text string) float64 {
	score := float64(utf8.RuneCountInString(text)) / 100
	if score > 1.0 {
		return 1.0
	}
	return score
}
