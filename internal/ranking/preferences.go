package ranking

import "strings"

type preferenceCategory struct {
	name     string
	keywords []string
}

// preferenceCategories is ordered; a preference counts once, for the first
// category that both claims it and is supported by the work environment.
var preferenceCategories = []preferenceCategory{
	{name: "remote", keywords: []string{"remote", "flexible", "work_from_home"}},
	{name: "travel", keywords: []string{"travel", "business_trip"}},
	{name: "creative", keywords: []string{"creativity", "innovation"}},
	{name: "leadership", keywords: []string{"leadership", "management"}},
	{name: "teamwork", keywords: []string{"team", "collaboration"}},
	{name: "independent", keywords: []string{"independent", "autonomous"}},
}

// claims reports whether the preference token belongs to the category.
func (c preferenceCategory) claims(preference string) bool {
	for _, kw := range c.keywords {
		if strings.Contains(preference, kw) {
			return true
		}
	}
	return false
}

// supportedBy reports whether a lowercased work environment description
// mentions the category by name or by any of its keywords.
func (c preferenceCategory) supportedBy(environment string) bool {
	if strings.Contains(environment, c.name) {
		return true
	}
	for _, kw := range c.keywords {
		if strings.Contains(environment, kw) {
			return true
		}
	}
	return false
}

func preferenceScore(preferences []string, workEnvironment string) float64 {
	if len(preferences) == 0 {
		return 0
	}

	environment := strings.ToLower(workEnvironment)
	matched := 0
	for _, pref := range preferences {
		pref = strings.ToLower(strings.TrimSpace(pref))
		if pref == "" {
			continue
		}
		for _, category := range preferenceCategories {
			if category.claims(pref) && category.supportedBy(environment) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(preferences)) * 100
}
