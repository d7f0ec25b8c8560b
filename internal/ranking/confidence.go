package ranking

// Confidence labels, highest first.
const (
	ConfidenceHigh       = "High"
	ConfidenceMediumHigh = "Medium-High"
	ConfidenceMedium     = "Medium"
	ConfidenceLowMedium  = "Low-Medium"
	ConfidenceLow        = "Low"
)

// Confidence maps an overall score to its band label.
func Confidence(score int) string {
	switch {
	case score >= 80:
		return ConfidenceHigh
	case score >= 60:
		return ConfidenceMediumHigh
	case score >= 40:
		return ConfidenceMedium
	case score >= 20:
		return ConfidenceLowMedium
	default:
		return ConfidenceLow
	}
}
